package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/repository"
	"github.com/handyops/proserve/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func seedReportJobs(t *testing.T) (ReportService, time.Time) {
	t.Helper()
	db := testutil.NewTestDB(t)
	jobs := repository.NewSQLiteJobRepo(db)
	ctx := context.Background()

	now := time.Date(2026, time.March, 20, 12, 0, 0, 0, time.UTC)
	seed := []*domain.Job{
		testutil.NewTestJob("Today", testutil.WithScheduledDate(now)),
		testutil.NewTestJob("Paid plumbing", testutil.WithStatus(domain.JobPaid), testutil.WithPrice(500),
			testutil.WithServiceType("Plumbing"), testutil.WithPaidAt(time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC))),
		testutil.NewTestJob("Paid electrical", testutil.WithStatus(domain.JobPaid), testutil.WithPrice(200),
			testutil.WithServiceType("Electrical"), testutil.WithPaidAt(time.Date(2026, time.February, 10, 9, 0, 0, 0, time.UTC))),
	}
	for _, j := range seed {
		require.NoError(t, jobs.Create(ctx, j))
	}
	return NewReportService(jobs), now
}

func TestReportService_Dashboard(t *testing.T) {
	svc, now := seedReportJobs(t)

	s, err := svc.Dashboard(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 3, s.TotalJobs)
	assert.Len(t, s.TodaysJobs, 1)
	assert.Len(t, s.PendingEstimates, 1)
	assert.InDelta(t, 700, s.MonthlyEarnings, 1e-9)
	assert.Len(t, s.RecentPayments, 1, "only the March payment is recent")
}

func TestReportService_Breakdowns(t *testing.T) {
	svc, now := seedReportJobs(t)
	ctx := context.Background()

	byService, err := svc.RevenueByService(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 500, byService["Plumbing"], 1e-9)

	statuses, err := svc.StatusDistribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, statuses[domain.JobScheduled])
	assert.Equal(t, 2, statuses[domain.JobPaid])

	buckets, err := svc.MonthlyRevenue(ctx, now, 3)
	require.NoError(t, err)
	require.Len(t, buckets, 3)
	assert.InDelta(t, 200, buckets[1].Revenue, 1e-9)
	assert.InDelta(t, 500, buckets[2].Revenue, 1e-9)
}

func TestReportService_Export(t *testing.T) {
	svc, now := seedReportJobs(t)
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, svc.Export(context.Background(), path, now, 3))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Summary", "Monthly Revenue", "Revenue by Service"}, f.GetSheetList())

	month, err := f.GetCellValue("Monthly Revenue", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Jan 2026", month)

	top, err := f.GetCellValue("Revenue by Service", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Plumbing", top, "services are ordered by revenue")
}
