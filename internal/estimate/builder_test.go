package estimate

import (
	"testing"
	"time"

	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_ToggleAddsAndRemoves(t *testing.T) {
	b := NewBuilder()
	svc := testutil.NewTestService("Outlet Repair")

	assert.Equal(t, StateEmpty, b.State())

	require.NoError(t, b.Toggle(*svc))
	assert.Equal(t, StateHasSelection, b.State())
	require.Len(t, b.Lines(), 1)
	assert.Equal(t, 1, b.Lines()[0].Quantity)

	// Toggling the same service again removes it.
	require.NoError(t, b.Toggle(*svc))
	assert.Empty(t, b.Lines())
	assert.Equal(t, StateEmpty, b.State())
}

func TestBuilder_ToggleKeepsInsertionOrder(t *testing.T) {
	b := NewBuilder()
	a := testutil.NewTestService("A")
	c := testutil.NewTestService("C")
	m := testutil.NewTestService("M")

	require.NoError(t, b.Toggle(*m))
	require.NoError(t, b.Toggle(*a))
	require.NoError(t, b.Toggle(*c))

	lines := b.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "M", lines[0].Service.Name)
	assert.Equal(t, "A", lines[1].Service.Name)
	assert.Equal(t, "C", lines[2].Service.Name)
}

func TestBuilder_SetQuantityClamps(t *testing.T) {
	b := NewBuilder()
	svc := testutil.NewTestService("Painting")
	require.NoError(t, b.Toggle(*svc))

	require.NoError(t, b.SetQuantity(svc.ID, 4))
	assert.Equal(t, 4, b.Lines()[0].Quantity)

	require.NoError(t, b.SetQuantity(svc.ID, 0))
	assert.Equal(t, 1, b.Lines()[0].Quantity)

	require.NoError(t, b.SetQuantity(svc.ID, -7))
	assert.Equal(t, 1, b.Lines()[0].Quantity)

	// Unknown IDs are ignored.
	require.NoError(t, b.SetQuantity("unknown", 9))
	require.Len(t, b.Lines(), 1)
}

func TestBuilder_BeginConvertEmpty(t *testing.T) {
	b := NewBuilder()
	_, err := b.BeginConvert(time.Now())
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Equal(t, StateEmpty, b.State())
}

func TestBuilder_BusyGuardsDuplicateSubmission(t *testing.T) {
	b := NewBuilder()
	svc := testutil.NewTestService("Roof Patch")
	require.NoError(t, b.Toggle(*svc))

	_, err := b.BeginConvert(time.Now())
	require.NoError(t, err)
	assert.Equal(t, StateConverting, b.State())

	_, err = b.BeginConvert(time.Now())
	assert.ErrorIs(t, err, ErrBusy)
	assert.ErrorIs(t, b.Toggle(*svc), ErrBusy)
	assert.ErrorIs(t, b.SetQuantity(svc.ID, 2), ErrBusy)
}

func TestBuilder_FinishConvertSuccessResets(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Toggle(*testutil.NewTestService("Tile")))

	_, err := b.BeginConvert(time.Now())
	require.NoError(t, err)

	b.FinishConvert(true)
	assert.Equal(t, StateEmpty, b.State())
	assert.Empty(t, b.Lines())
}

func TestBuilder_FinishConvertFailureKeepsSelection(t *testing.T) {
	b := NewBuilder()
	require.NoError(t, b.Toggle(*testutil.NewTestService("Tile")))

	_, err := b.BeginConvert(time.Now())
	require.NoError(t, err)

	b.FinishConvert(false)
	assert.Equal(t, StateHasSelection, b.State())
	require.Len(t, b.Lines(), 1)
}

func TestBuilder_TotalsMatchPricing(t *testing.T) {
	b := NewBuilder()
	drywall := testutil.NewTestService("Drywall Installation")
	require.NoError(t, b.Toggle(*drywall))
	require.NoError(t, b.SetQuantity(drywall.ID, 3))

	totals, err := b.Totals()
	require.NoError(t, err)
	assert.Equal(t, 270.0, totals.LaborCost)
	assert.Equal(t, 6.0, totals.DurationHours)
	assert.InDelta(t, 310.50, totals.SuggestedTotal, 1e-9)
}

func TestBuilder_TotalsInvalidSelection(t *testing.T) {
	b := NewBuilder()
	bad := testutil.NewTestService("Bad")
	bad.PricingType = domain.PricingType("mystery")
	require.NoError(t, b.Toggle(*bad))

	_, err := b.Totals()
	assert.Error(t, err)
}
