package service

import (
	"context"
	"time"

	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/metrics"
)

type CatalogService interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id string) error
	ListByCategory(ctx context.Context) ([]CategoryGroup, error)
	Search(ctx context.Context, query string) ([]*domain.Service, error)
}

// CategoryGroup is one catalog category and its active services, in
// the fixed category display order.
type CategoryGroup struct {
	Category string
	Services []*domain.Service
}

type JobService interface {
	Create(ctx context.Context, j *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]*domain.Job, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Job, error)
	Update(ctx context.Context, j *domain.Job) error
	Delete(ctx context.Context, id string) error

	// Advance moves the job one step along Scheduled, In Progress,
	// Completed, Paid. Advancing a paid job fails.
	Advance(ctx context.Context, id string) (*domain.Job, error)
	// Reschedule is the single update path for changing a job's slot;
	// the calendar goes through it too.
	Reschedule(ctx context.Context, id string, when time.Time) (*domain.Job, error)

	AddNote(ctx context.Context, jobID, text string) (*domain.Note, error)
	UpdateNote(ctx context.Context, jobID, noteID, text string) error
	DeleteNote(ctx context.Context, jobID, noteID string) error

	AddPhoto(ctx context.Context, jobID, filename, mimeType string, data []byte) (*domain.Photo, error)
	DeletePhoto(ctx context.Context, jobID, photoID string) error
}

type ClientService interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error

	// LogCommunication appends a touchpoint and bumps the client's
	// LastContact to the communication date.
	LogCommunication(ctx context.Context, c *domain.Communication) error
	// RecordJobPayment bumps the client's running job and spend
	// counters. The counters are only ever moved by explicit calls.
	RecordJobPayment(ctx context.Context, clientID string, amount float64) error
	Stats(ctx context.Context) (*ClientStats, error)
}

// ClientStats is the roll-up shown at the top of the client list.
type ClientStats struct {
	TotalClients     int
	ActiveClients    int
	TotalRevenue     float64
	AvgJobsPerClient float64
}

type CommunicationService interface {
	ListByClient(ctx context.Context, clientID string) ([]*domain.Communication, error)
	Delete(ctx context.Context, id string) error
}

type ReportService interface {
	Dashboard(ctx context.Context, now time.Time) (*metrics.Summary, error)
	RevenueByService(ctx context.Context) (map[string]float64, error)
	StatusDistribution(ctx context.Context) (map[domain.JobStatus]int, error)
	MonthlyRevenue(ctx context.Context, now time.Time, months int) ([]metrics.MonthBucket, error)
	// Export writes the report workbook for the trailing window to path.
	Export(ctx context.Context, path string, now time.Time, months int) error
}
