package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/handyops/proserve/internal/domain"
)

func Float(v float64) *float64 { return &v }

// Service options
type ServiceOption func(*domain.Service)

func WithCategory(c string) ServiceOption {
	return func(s *domain.Service) {
		s.Category = c
	}
}

func WithFlatRate(rate float64) ServiceOption {
	return func(s *domain.Service) {
		s.PricingType = domain.PricingFlat
		s.HourlyRate = nil
		s.FlatRate = Float(rate)
	}
}

func WithDuration(hours float64) ServiceOption {
	return func(s *domain.Service) {
		s.EstimatedDurationHours = hours
	}
}

func WithInactive() ServiceOption {
	return func(s *domain.Service) {
		s.IsActive = false
	}
}

// NewTestService builds an active hourly service at $45/hr for 2 hours.
func NewTestService(name string, opts ...ServiceOption) *domain.Service {
	now := time.Now().UTC()
	s := &domain.Service{
		ID:                     uuid.New().String(),
		Name:                   name,
		Category:               "General Repair",
		Description:            "test service",
		PricingType:            domain.PricingHourly,
		HourlyRate:             Float(45),
		EstimatedDurationHours: 2,
		IsActive:               true,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Job options
type JobOption func(*domain.Job)

func WithStatus(s domain.JobStatus) JobOption {
	return func(j *domain.Job) {
		j.Status = s
	}
}

func WithScheduledDate(d time.Time) JobOption {
	return func(j *domain.Job) {
		j.ScheduledDate = d
	}
}

func WithPrice(p float64) JobOption {
	return func(j *domain.Job) {
		j.Price = Float(p)
	}
}

func WithPaidAt(d time.Time) JobOption {
	return func(j *domain.Job) {
		j.PaidAt = &d
	}
}

func WithServiceType(s string) JobOption {
	return func(j *domain.Job) {
		j.ServiceType = s
	}
}

func NewTestJob(clientName string, opts ...JobOption) *domain.Job {
	now := time.Now().UTC()
	j := &domain.Job{
		ID:            uuid.New().String(),
		ClientName:    clientName,
		Phone:         "555-0100",
		Address:       "12 Oak St",
		ServiceType:   "General Repair",
		ScheduledDate: now,
		Status:        domain.JobScheduled,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Client options
type ClientOption func(*domain.Client)

func WithClientStatus(s domain.ClientStatus) ClientOption {
	return func(c *domain.Client) {
		c.Status = s
	}
}

func WithTotals(jobs int, spent float64) ClientOption {
	return func(c *domain.Client) {
		c.TotalJobs = jobs
		c.TotalSpent = spent
	}
}

func NewTestClient(name string, opts ...ClientOption) *domain.Client {
	now := time.Now().UTC()
	c := &domain.Client{
		ID:          uuid.New().String(),
		Name:        name,
		Email:       "test@example.com",
		Phone:       "555-0101",
		Status:      domain.ClientActive,
		ClientSince: now,
		LastContact: now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
