package calendar

import (
	"context"
	"time"

	"github.com/handyops/proserve/internal/domain"
)

// Rescheduler is the single update path for moving a job. The calendar
// goes through the same operation ordinary edits use, so updatedAt
// stamping and validation are never bypassed.
type Rescheduler interface {
	Reschedule(ctx context.Context, jobID string, when time.Time) (*domain.Job, error)
}

// Move is one drag operation: apply the new slot locally for
// responsiveness, confirm against the store, and revert on failure.
// The job is never shown in two places and never silently dropped.
type Move struct {
	job      *domain.Job
	prev     time.Time
	applied  bool
	resolved bool
}

// StartMove begins a drag for the given job.
func StartMove(job *domain.Job) *Move {
	return &Move{job: job, prev: job.ScheduledDate}
}

// Job returns the job being moved.
func (m *Move) Job() *domain.Job {
	return m.job
}

// Apply optimistically places the job at the target time in local
// state. It may be called repeatedly while the drag hovers over
// different cells.
func (m *Move) Apply(target time.Time) {
	if m.resolved {
		return
	}
	m.job.ScheduledDate = target
	m.applied = true
}

// Confirm persists the applied slot. On failure the local position is
// reverted to where the drag started and the error is returned for
// surfacing; the store was not changed.
func (m *Move) Confirm(ctx context.Context, svc Rescheduler) error {
	if m.resolved || !m.applied {
		return nil
	}
	m.resolved = true

	updated, err := svc.Reschedule(ctx, m.job.ID, m.job.ScheduledDate)
	if err != nil {
		m.job.ScheduledDate = m.prev
		return err
	}
	*m.job = *updated
	return nil
}

// Cancel abandons the drag, restoring the original slot.
func (m *Move) Cancel() {
	if m.resolved {
		return
	}
	m.resolved = true
	if m.applied {
		m.job.ScheduledDate = m.prev
	}
}
