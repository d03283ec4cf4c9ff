package metrics

import (
	"testing"
	"time"

	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestTodaysJobs(t *testing.T) {
	now := at(2026, time.March, 10, 11)
	jobs := []*domain.Job{
		testutil.NewTestJob("Today Early", testutil.WithScheduledDate(at(2026, time.March, 10, 7))),
		testutil.NewTestJob("Today Late", testutil.WithScheduledDate(at(2026, time.March, 10, 17))),
		testutil.NewTestJob("Tomorrow", testutil.WithScheduledDate(at(2026, time.March, 11, 9))),
	}

	got := TodaysJobs(jobs, now)
	require.Len(t, got, 2)
	assert.Equal(t, "Today Early", got[0].ClientName)
}

func TestPendingEstimates(t *testing.T) {
	jobs := []*domain.Job{
		testutil.NewTestJob("Unpriced"),
		testutil.NewTestJob("Priced", testutil.WithPrice(250)),
		testutil.NewTestJob("Unpriced completed", testutil.WithStatus(domain.JobCompleted)),
	}

	got := PendingEstimates(jobs)
	require.Len(t, got, 1)
	assert.Equal(t, "Unpriced", got[0].ClientName)
}

func TestMonthlyEarnings_PaidOnly(t *testing.T) {
	jobs := []*domain.Job{
		testutil.NewTestJob("A", testutil.WithStatus(domain.JobPaid), testutil.WithPrice(300)),
		testutil.NewTestJob("B", testutil.WithStatus(domain.JobPaid), testutil.WithPrice(150.50)),
		testutil.NewTestJob("C", testutil.WithStatus(domain.JobPaid)), // nil price counts as 0
		testutil.NewTestJob("D", testutil.WithStatus(domain.JobCompleted), testutil.WithPrice(999)),
	}

	assert.InDelta(t, 450.50, MonthlyEarnings(jobs), 1e-9)
}

func TestRecentPayments_CurrentMonthOnly(t *testing.T) {
	now := at(2026, time.March, 20, 12)
	jobs := []*domain.Job{
		testutil.NewTestJob("This month", testutil.WithStatus(domain.JobPaid), testutil.WithPaidAt(at(2026, time.March, 3, 10))),
		testutil.NewTestJob("Last month", testutil.WithStatus(domain.JobPaid), testutil.WithPaidAt(at(2026, time.February, 27, 10))),
		testutil.NewTestJob("Last year", testutil.WithStatus(domain.JobPaid), testutil.WithPaidAt(at(2025, time.March, 3, 10))),
		testutil.NewTestJob("No stamp", testutil.WithStatus(domain.JobPaid)),
	}

	got := RecentPayments(jobs, now)
	require.Len(t, got, 1)
	assert.Equal(t, "This month", got[0].ClientName)
}

func TestAverageJobValue_ExcludesUnpriced(t *testing.T) {
	jobs := []*domain.Job{
		testutil.NewTestJob("A", testutil.WithPrice(100)),
		testutil.NewTestJob("B", testutil.WithPrice(200)),
		testutil.NewTestJob("C"),
		testutil.NewTestJob("D"),
	}

	// 300 across 2 priced jobs, not 4 total jobs.
	assert.InDelta(t, 150, AverageJobValue(jobs), 1e-9)
	assert.Zero(t, AverageJobValue(nil))
}

func TestRevenueByService(t *testing.T) {
	jobs := []*domain.Job{
		testutil.NewTestJob("A", testutil.WithStatus(domain.JobPaid), testutil.WithPrice(300), testutil.WithServiceType("Plumbing")),
		testutil.NewTestJob("B", testutil.WithStatus(domain.JobPaid), testutil.WithPrice(200), testutil.WithServiceType("Plumbing")),
		testutil.NewTestJob("C", testutil.WithStatus(domain.JobPaid), testutil.WithPrice(120), testutil.WithServiceType("Electrical")),
		testutil.NewTestJob("D", testutil.WithStatus(domain.JobScheduled), testutil.WithPrice(500), testutil.WithServiceType("Plumbing")),
	}

	got := RevenueByService(jobs)
	assert.InDelta(t, 500, got["Plumbing"], 1e-9)
	assert.InDelta(t, 120, got["Electrical"], 1e-9)
	assert.Len(t, got, 2)
}

func TestStatusDistribution(t *testing.T) {
	jobs := []*domain.Job{
		testutil.NewTestJob("A"),
		testutil.NewTestJob("B"),
		testutil.NewTestJob("C", testutil.WithStatus(domain.JobInProgress)),
		testutil.NewTestJob("D", testutil.WithStatus(domain.JobPaid)),
	}

	got := StatusDistribution(jobs)
	assert.Equal(t, 2, got[domain.JobScheduled])
	assert.Equal(t, 1, got[domain.JobInProgress])
	assert.Equal(t, 0, got[domain.JobCompleted])
	assert.Equal(t, 1, got[domain.JobPaid])
}

func TestMonthlyRevenue_TrailingWindow(t *testing.T) {
	now := at(2026, time.March, 20, 12)
	jobs := []*domain.Job{
		testutil.NewTestJob("Jan", testutil.WithStatus(domain.JobPaid), testutil.WithPrice(100), testutil.WithPaidAt(at(2026, time.January, 5, 9))),
		testutil.NewTestJob("Jan 2", testutil.WithStatus(domain.JobPaid), testutil.WithPrice(50), testutil.WithPaidAt(at(2026, time.January, 28, 9))),
		testutil.NewTestJob("Mar", testutil.WithStatus(domain.JobPaid), testutil.WithPrice(300), testutil.WithPaidAt(at(2026, time.March, 2, 9))),
		testutil.NewTestJob("Too old", testutil.WithStatus(domain.JobPaid), testutil.WithPrice(999), testutil.WithPaidAt(at(2025, time.November, 2, 9))),
		testutil.NewTestJob("Unpaid", testutil.WithPrice(999), testutil.WithPaidAt(at(2026, time.February, 2, 9))),
	}

	got := MonthlyRevenue(jobs, now, 3)
	require.Len(t, got, 3)

	assert.Equal(t, at(2026, time.January, 1, 0), got[0].Month)
	assert.InDelta(t, 150, got[0].Revenue, 1e-9)
	assert.Equal(t, 2, got[0].Paid)

	assert.Equal(t, at(2026, time.February, 1, 0), got[1].Month)
	assert.Zero(t, got[1].Revenue)
	assert.Zero(t, got[1].Paid)

	assert.Equal(t, at(2026, time.March, 1, 0), got[2].Month)
	assert.InDelta(t, 300, got[2].Revenue, 1e-9)
	assert.Equal(t, 1, got[2].Paid)
}

func TestMonthlyRevenue_WindowCrossesYear(t *testing.T) {
	now := at(2026, time.February, 10, 12)
	jobs := []*domain.Job{
		testutil.NewTestJob("Dec", testutil.WithStatus(domain.JobPaid), testutil.WithPrice(75), testutil.WithPaidAt(at(2025, time.December, 20, 9))),
	}

	got := MonthlyRevenue(jobs, now, 6)
	require.Len(t, got, 6)
	assert.Equal(t, at(2025, time.September, 1, 0), got[0].Month)
	assert.InDelta(t, 75, got[3].Revenue, 1e-9)
}

func TestSummarize(t *testing.T) {
	now := at(2026, time.March, 10, 11)
	jobs := []*domain.Job{
		testutil.NewTestJob("Today", testutil.WithScheduledDate(at(2026, time.March, 10, 9))),
		testutil.NewTestJob("Paid", testutil.WithStatus(domain.JobPaid), testutil.WithPrice(400), testutil.WithPaidAt(at(2026, time.March, 1, 9))),
	}

	s := Summarize(jobs, now)
	assert.Len(t, s.TodaysJobs, 1)
	assert.Len(t, s.PendingEstimates, 1)
	assert.InDelta(t, 400, s.MonthlyEarnings, 1e-9)
	assert.Len(t, s.RecentPayments, 1)
	assert.Equal(t, 2, s.TotalJobs)
	assert.InDelta(t, 400, s.AverageJobValue, 1e-9)
}
