// Package estimate holds the in-memory estimate builder: an ordered
// selection of catalog services with quantities, plus the conversion
// of that selection into a schedulable job. Nothing here is persisted;
// only BuildJob's result ever reaches the store.
package estimate

import (
	"errors"

	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/pricing"
)

// ErrEmptySelection is returned when convert, print, or email is
// attempted with no services selected.
var ErrEmptySelection = errors.New("no services selected")

// ErrBusy is returned when an operation is attempted while a previous
// submission is still in flight.
var ErrBusy = errors.New("estimate operation already in progress")

// State is the builder's position in its lifecycle.
type State string

const (
	StateEmpty        State = "empty"
	StateHasSelection State = "has_selection"
	StateConverting   State = "converting"
	StatePrinting     State = "printing"
	StateEmailing     State = "emailing"
)

// Builder accumulates an ordered service selection. The busy states
// guard against duplicate submission while a convert/print/email is
// outstanding.
type Builder struct {
	lines []pricing.LineItem
	state State
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{state: StateEmpty}
}

// State returns the builder's current lifecycle state.
func (b *Builder) State() State {
	return b.state
}

// Lines returns a copy of the current selection in insertion order.
func (b *Builder) Lines() []pricing.LineItem {
	out := make([]pricing.LineItem, len(b.lines))
	copy(out, b.lines)
	return out
}

// Toggle adds the service with quantity 1, or removes it if already
// selected. One click per state change, so repeated toggles alternate.
func (b *Builder) Toggle(svc domain.Service) error {
	if b.busy() {
		return ErrBusy
	}
	for i, l := range b.lines {
		if l.Service.ID == svc.ID {
			b.lines = append(b.lines[:i], b.lines[i+1:]...)
			b.syncState()
			return nil
		}
	}
	b.lines = append(b.lines, pricing.LineItem{Service: svc, Quantity: 1})
	b.syncState()
	return nil
}

// SetQuantity sets the quantity for a selected service. Values below 1
// (including anything a caller coerced from bad input) clamp to 1.
// Unknown service IDs are ignored.
func (b *Builder) SetQuantity(serviceID string, qty int) error {
	if b.busy() {
		return ErrBusy
	}
	if qty < 1 {
		qty = 1
	}
	for i := range b.lines {
		if b.lines[i].Service.ID == serviceID {
			b.lines[i].Quantity = qty
			return nil
		}
	}
	return nil
}

// Totals computes the current selection's derived figures.
func (b *Builder) Totals() (pricing.Totals, error) {
	return pricing.Aggregate(b.lines)
}

// Reset clears the selection and returns the builder to Empty.
func (b *Builder) Reset() {
	b.lines = nil
	b.state = StateEmpty
}

// begin moves the builder into a busy state, failing when a submission
// is already outstanding or the selection is empty.
func (b *Builder) begin(busy State) error {
	if b.busy() {
		return ErrBusy
	}
	if len(b.lines) == 0 {
		return ErrEmptySelection
	}
	b.state = busy
	return nil
}

// end returns the builder from a busy state to HasSelection.
func (b *Builder) end() {
	b.syncState()
}

func (b *Builder) busy() bool {
	switch b.state {
	case StateConverting, StatePrinting, StateEmailing:
		return true
	}
	return false
}

func (b *Builder) syncState() {
	if len(b.lines) == 0 {
		b.state = StateEmpty
	} else {
		b.state = StateHasSelection
	}
}
