package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/metrics"
	"github.com/handyops/proserve/internal/repository"
	"github.com/xuri/excelize/v2"
)

type reportService struct {
	jobs repository.JobRepo
}

func NewReportService(jobs repository.JobRepo) ReportService {
	return &reportService{jobs: jobs}
}

func (s *reportService) Dashboard(ctx context.Context, now time.Time) (*metrics.Summary, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	summary := metrics.Summarize(jobs, now)
	return &summary, nil
}

func (s *reportService) RevenueByService(ctx context.Context) (map[string]float64, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	return metrics.RevenueByService(jobs), nil
}

func (s *reportService) StatusDistribution(ctx context.Context) (map[domain.JobStatus]int, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	return metrics.StatusDistribution(jobs), nil
}

func (s *reportService) MonthlyRevenue(ctx context.Context, now time.Time, months int) ([]metrics.MonthBucket, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	return metrics.MonthlyRevenue(jobs, now, months), nil
}

// Export writes a workbook with a summary sheet, a monthly revenue
// sheet for the trailing window, and a revenue-by-service sheet.
func (s *reportService) Export(ctx context.Context, path string, now time.Time, months int) error {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return err
	}

	summary := metrics.Summarize(jobs, now)
	buckets := metrics.MonthlyRevenue(jobs, now, months)
	byService := metrics.RevenueByService(jobs)
	statuses := metrics.StatusDistribution(jobs)

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("building report: %w", err)
	}

	rows := [][]any{
		{"Generated", now.Format("2006-01-02 15:04")},
		{"Total jobs", summary.TotalJobs},
		{"Jobs today", len(summary.TodaysJobs)},
		{"Pending estimates", len(summary.PendingEstimates)},
		{"Earnings (paid jobs)", summary.MonthlyEarnings},
		{"Payments this month", len(summary.RecentPayments)},
		{"Average job value", summary.AverageJobValue},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("building report: %w", err)
		}
	}
	statusRow := len(rows) + 2
	for i, status := range []domain.JobStatus{domain.JobScheduled, domain.JobInProgress, domain.JobCompleted, domain.JobPaid} {
		cell, _ := excelize.CoordinatesToCellName(1, statusRow+i)
		row := []any{string(status), statuses[status]}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return fmt.Errorf("building report: %w", err)
		}
	}

	const monthlySheet = "Monthly Revenue"
	if _, err := f.NewSheet(monthlySheet); err != nil {
		return fmt.Errorf("building report: %w", err)
	}
	header := []any{"Month", "Revenue", "Jobs Paid"}
	if err := f.SetSheetRow(monthlySheet, "A1", &header); err != nil {
		return fmt.Errorf("building report: %w", err)
	}
	for i, b := range buckets {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{b.Month.Format("Jan 2006"), b.Revenue, b.Paid}
		if err := f.SetSheetRow(monthlySheet, cell, &row); err != nil {
			return fmt.Errorf("building report: %w", err)
		}
	}

	const serviceSheet = "Revenue by Service"
	if _, err := f.NewSheet(serviceSheet); err != nil {
		return fmt.Errorf("building report: %w", err)
	}
	if err := f.SetSheetRow(serviceSheet, "A1", &[]any{"Service", "Revenue"}); err != nil {
		return fmt.Errorf("building report: %w", err)
	}
	names := make([]string, 0, len(byService))
	for name := range byService {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return byService[names[i]] > byService[names[j]] })
	for i, name := range names {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{name, byService[name]}
		if err := f.SetSheetRow(serviceSheet, cell, &row); err != nil {
			return fmt.Errorf("building report: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
