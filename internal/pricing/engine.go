// Package pricing computes line and estimate totals from catalog
// services. Everything here is pure: no clock, no store, no mutation
// of inputs. Dollar amounts stay in full precision; rounding happens
// only when a figure is formatted for display.
package pricing

import (
	"errors"
	"fmt"

	"github.com/handyops/proserve/internal/domain"
)

// OverheadMarkup is the fixed materials/overhead markup applied on top
// of labor cost when suggesting an estimate total.
const OverheadMarkup = 0.15

// ErrInvalidService is returned when a service's pricing fields are
// inconsistent (unknown pricing type or missing rate).
var ErrInvalidService = errors.New("invalid service pricing")

// LineItem pairs a catalog service with a quantity while an estimate
// is being built. It is never persisted.
type LineItem struct {
	Service  domain.Service
	Quantity int
}

// Totals are the derived figures for a set of line items.
type Totals struct {
	LaborCost      float64
	DurationHours  float64
	SuggestedTotal float64
}

// BaseRate returns the cost of quantity units of the service.
// Hourly services bill rate × estimated duration per unit; flat
// services bill the flat rate per unit. Linear in quantity.
func BaseRate(svc domain.Service, quantity int) (float64, error) {
	switch svc.PricingType {
	case domain.PricingHourly:
		if svc.HourlyRate == nil {
			return 0, fmt.Errorf("%w: service %q has no hourly rate", ErrInvalidService, svc.Name)
		}
		return *svc.HourlyRate * svc.EstimatedDurationHours * float64(quantity), nil
	case domain.PricingFlat:
		if svc.FlatRate == nil {
			return 0, fmt.Errorf("%w: service %q has no flat rate", ErrInvalidService, svc.Name)
		}
		return *svc.FlatRate * float64(quantity), nil
	default:
		return 0, fmt.Errorf("%w: unknown pricing type %q", ErrInvalidService, svc.PricingType)
	}
}

// LineTotal returns the cost of a single line item.
func LineTotal(l LineItem) (float64, error) {
	return BaseRate(l.Service, l.Quantity)
}

// Aggregate computes the totals for a set of line items.
// An empty set yields all zeros.
func Aggregate(lines []LineItem) (Totals, error) {
	var t Totals
	for _, l := range lines {
		cost, err := BaseRate(l.Service, l.Quantity)
		if err != nil {
			return Totals{}, err
		}
		t.LaborCost += cost
		t.DurationHours += l.Service.EstimatedDurationHours * float64(l.Quantity)
	}
	t.SuggestedTotal = t.LaborCost * (1 + OverheadMarkup)
	return t, nil
}
