package estimate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/pricing"
)

// BeginConvert builds a new Job from the current selection and moves
// the builder into Converting, blocking duplicate submissions while
// the create request is in flight. The caller persists the job and
// then reports the outcome through FinishConvert.
//
// The job is scheduled for now with no committed price, and carries a
// manifest snapshot of every selected service's rate and quantity;
// later edits to the catalog do not reach it.
func (b *Builder) BeginConvert(now time.Time) (*domain.Job, error) {
	if err := b.begin(StateConverting); err != nil {
		return nil, err
	}

	job, err := b.buildJob(now)
	if err != nil {
		b.end()
		return nil, err
	}
	return job, nil
}

// FinishConvert completes a conversion. On success the selection is
// cleared; on failure it is kept so the user can retry.
func (b *Builder) FinishConvert(success bool) {
	if b.state != StateConverting {
		return
	}
	if success {
		b.Reset()
		return
	}
	b.end()
}

func (b *Builder) buildJob(now time.Time) (*domain.Job, error) {
	totals, err := pricing.Aggregate(b.lines)
	if err != nil {
		return nil, err
	}

	var names []string
	var bullets []string
	manifest := make([]domain.ServiceLine, 0, len(b.lines))
	for _, l := range b.lines {
		lineTotal, err := pricing.LineTotal(l)
		if err != nil {
			return nil, err
		}
		names = append(names, fmt.Sprintf("%s (%dx)", l.Service.Name, l.Quantity))
		bullets = append(bullets, fmt.Sprintf("• %s - Qty: %d - %s = $%.2f",
			l.Service.Name, l.Quantity, describeRate(l.Service), lineTotal))

		rate := 0.0
		switch l.Service.PricingType {
		case domain.PricingHourly:
			rate = *l.Service.HourlyRate
		case domain.PricingFlat:
			rate = *l.Service.FlatRate
		}
		manifest = append(manifest, domain.ServiceLine{
			ServiceID:              l.Service.ID,
			ServiceName:            l.Service.Name,
			Quantity:               l.Quantity,
			Rate:                   rate,
			PricingType:            l.Service.PricingType,
			EstimatedDurationHours: l.Service.EstimatedDurationHours,
		})
	}

	description := fmt.Sprintf("Quick estimate for selected services:\n%s\n\nEstimated Total: $%.2f",
		strings.Join(bullets, "\n"), totals.LaborCost)

	return &domain.Job{
		ID:                     uuid.New().String(),
		ServiceType:            "Estimate: " + strings.Join(names, ", "),
		Description:            description,
		ScheduledDate:          now,
		Price:                  nil,
		EstimatedCost:          totals.LaborCost,
		EstimatedDurationHours: totals.DurationHours,
		Status:                 domain.JobScheduled,
		CreatedAt:              now,
		UpdatedAt:              now,
		Services:               manifest,
	}, nil
}

func describeRate(s domain.Service) string {
	if s.PricingType == domain.PricingHourly && s.HourlyRate != nil {
		return fmt.Sprintf("$%g/hr × %ghrs", *s.HourlyRate, s.EstimatedDurationHours)
	}
	if s.FlatRate != nil {
		return fmt.Sprintf("$%g flat rate", *s.FlatRate)
	}
	return "rate unavailable"
}
