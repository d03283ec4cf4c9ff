package domain

import (
	"fmt"
	"time"
)

// Service is a catalog entry: one offering the business quotes and schedules.
// Exactly one of HourlyRate/FlatRate is set, matching PricingType.
type Service struct {
	ID          string
	Name        string
	Category    string
	Description string
	PricingType PricingType

	HourlyRate *float64
	FlatRate   *float64

	EstimatedDurationHours float64
	IsActive               bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the catalog invariants before a create or update.
func (s *Service) Validate() error {
	if s.Name == "" || s.Category == "" || s.Description == "" {
		return fmt.Errorf("%w: name, category, and description are required", ErrValidation)
	}
	if !ValidCategory(s.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, s.Category)
	}
	if s.EstimatedDurationHours < 0 {
		return fmt.Errorf("%w: estimated duration must not be negative", ErrValidation)
	}
	switch s.PricingType {
	case PricingHourly:
		if s.HourlyRate == nil || *s.HourlyRate <= 0 {
			return fmt.Errorf("%w: hourly rate must be greater than 0", ErrValidation)
		}
		if s.FlatRate != nil {
			return fmt.Errorf("%w: hourly service must not carry a flat rate", ErrValidation)
		}
	case PricingFlat:
		if s.FlatRate == nil || *s.FlatRate <= 0 {
			return fmt.Errorf("%w: flat rate must be greater than 0", ErrValidation)
		}
		if s.HourlyRate != nil {
			return fmt.Errorf("%w: flat-rate service must not carry an hourly rate", ErrValidation)
		}
	default:
		return fmt.Errorf("%w: unknown pricing type %q", ErrValidation, s.PricingType)
	}
	return nil
}
