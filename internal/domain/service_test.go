package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fl(v float64) *float64 { return &v }

func validHourlyService() *Service {
	return &Service{
		ID:                     "svc-1",
		Name:                   "Drywall Installation",
		Category:               "Drywall",
		Description:            "Hang and finish drywall",
		PricingType:            PricingHourly,
		HourlyRate:             fl(45),
		EstimatedDurationHours: 2,
		IsActive:               true,
	}
}

func TestServiceValidate_Hourly(t *testing.T) {
	assert.NoError(t, validHourlyService().Validate())
}

func TestServiceValidate_Flat(t *testing.T) {
	s := validHourlyService()
	s.PricingType = PricingFlat
	s.HourlyRate = nil
	s.FlatRate = fl(250)
	assert.NoError(t, s.Validate())
}

func TestServiceValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Service)
	}{
		{"missing name", func(s *Service) { s.Name = "" }},
		{"missing description", func(s *Service) { s.Description = "" }},
		{"unknown category", func(s *Service) { s.Category = "Masonry" }},
		{"negative duration", func(s *Service) { s.EstimatedDurationHours = -1 }},
		{"zero hourly rate", func(s *Service) { s.HourlyRate = fl(0) }},
		{"missing hourly rate", func(s *Service) { s.HourlyRate = nil }},
		{"both rates set", func(s *Service) { s.FlatRate = fl(100) }},
		{"unknown pricing type", func(s *Service) { s.PricingType = "subscription" }},
		{"flat without rate", func(s *Service) {
			s.PricingType = PricingFlat
			s.HourlyRate = nil
			s.FlatRate = nil
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validHourlyService()
			tt.mutate(s)
			err := s.Validate()
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNextStatus_ForwardOnly(t *testing.T) {
	next, ok := NextStatus(JobScheduled)
	assert.True(t, ok)
	assert.Equal(t, JobInProgress, next)

	next, ok = NextStatus(JobInProgress)
	assert.True(t, ok)
	assert.Equal(t, JobCompleted, next)

	next, ok = NextStatus(JobCompleted)
	assert.True(t, ok)
	assert.Equal(t, JobPaid, next)

	_, ok = NextStatus(JobPaid)
	assert.False(t, ok, "Paid is terminal")

	_, ok = NextStatus(JobStatus("Cancelled"))
	assert.False(t, ok)
}

func TestStatusRank(t *testing.T) {
	assert.Equal(t, 0, StatusRank(JobScheduled))
	assert.Equal(t, 3, StatusRank(JobPaid))
	assert.Equal(t, -1, StatusRank(JobStatus("bogus")))
}
