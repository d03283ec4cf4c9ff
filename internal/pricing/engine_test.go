package pricing

import (
	"testing"

	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseRate_Hourly(t *testing.T) {
	// Drywall Installation: $45/hr × 2hrs, quantity 3 ⇒ 270.
	svc := testutil.NewTestService("Drywall Installation")
	got, err := BaseRate(*svc, 3)
	require.NoError(t, err)
	assert.Equal(t, 270.0, got)
}

func TestBaseRate_Flat(t *testing.T) {
	svc := testutil.NewTestService("Faucet Replacement", testutil.WithFlatRate(180))
	got, err := BaseRate(*svc, 2)
	require.NoError(t, err)
	assert.Equal(t, 360.0, got)
}

func TestBaseRate_LinearInQuantity(t *testing.T) {
	services := []*domain.Service{
		testutil.NewTestService("Hourly", testutil.WithDuration(3.5)),
		testutil.NewTestService("Flat", testutil.WithFlatRate(129.99)),
	}
	for _, svc := range services {
		for _, q := range []int{1, 2, 5, 8} {
			single, err := BaseRate(*svc, q)
			require.NoError(t, err)
			double, err := BaseRate(*svc, 2*q)
			require.NoError(t, err)
			assert.InDelta(t, 2*single, double, 1e-9, "%s qty %d", svc.Name, q)
		}
	}
}

func TestBaseRate_InvalidService(t *testing.T) {
	svc := testutil.NewTestService("Broken")
	svc.HourlyRate = nil
	_, err := BaseRate(*svc, 1)
	assert.ErrorIs(t, err, ErrInvalidService)

	svc = testutil.NewTestService("Weird")
	svc.PricingType = "subscription"
	_, err = BaseRate(*svc, 1)
	assert.ErrorIs(t, err, ErrInvalidService)

	svc = testutil.NewTestService("FlatNoRate", testutil.WithFlatRate(10))
	svc.FlatRate = nil
	_, err = BaseRate(*svc, 1)
	assert.ErrorIs(t, err, ErrInvalidService)
}

func TestAggregate_Empty(t *testing.T) {
	totals, err := Aggregate(nil)
	require.NoError(t, err)
	assert.Equal(t, Totals{}, totals)
}

func TestAggregate_DrywallScenario(t *testing.T) {
	// One line: $45/hr × 2hrs × 3 ⇒ labor 270, duration 6, suggested 310.50.
	lines := []LineItem{
		{Service: *testutil.NewTestService("Drywall Installation"), Quantity: 3},
	}
	totals, err := Aggregate(lines)
	require.NoError(t, err)
	assert.Equal(t, 270.0, totals.LaborCost)
	assert.Equal(t, 6.0, totals.DurationHours)
	assert.InDelta(t, 310.50, totals.SuggestedTotal, 1e-9)
}

func TestAggregate_MarkupProperty(t *testing.T) {
	lines := []LineItem{
		{Service: *testutil.NewTestService("A", testutil.WithDuration(1.5)), Quantity: 2},
		{Service: *testutil.NewTestService("B", testutil.WithFlatRate(99.95)), Quantity: 1},
		{Service: *testutil.NewTestService("C", testutil.WithFlatRate(42)), Quantity: 4},
	}
	totals, err := Aggregate(lines)
	require.NoError(t, err)
	assert.InDelta(t, totals.LaborCost*1.15, totals.SuggestedTotal, 1e-9)
}

func TestAggregate_DoesNotMutateInput(t *testing.T) {
	svc := testutil.NewTestService("Untouched")
	lines := []LineItem{{Service: *svc, Quantity: 2}}
	before := lines[0]

	_, err := Aggregate(lines)
	require.NoError(t, err)
	assert.Equal(t, before, lines[0])
}

func TestAggregate_PropagatesInvalidService(t *testing.T) {
	bad := testutil.NewTestService("Bad")
	bad.HourlyRate = nil
	lines := []LineItem{{Service: *bad, Quantity: 1}}
	_, err := Aggregate(lines)
	assert.ErrorIs(t, err, ErrInvalidService)
}
