// Package metrics derives dashboard and report figures from the job
// collection. Everything here is a pure function recomputed on each
// load; there is no cache to invalidate.
package metrics

import (
	"time"

	"github.com/handyops/proserve/internal/calendar"
	"github.com/handyops/proserve/internal/domain"
)

// Summary is the set of cards shown on the dashboard.
type Summary struct {
	TodaysJobs       []*domain.Job
	PendingEstimates []*domain.Job
	MonthlyEarnings  float64
	RecentPayments   []*domain.Job
	TotalJobs        int
	AverageJobValue  float64
}

// Summarize computes the dashboard figures for now.
func Summarize(jobs []*domain.Job, now time.Time) Summary {
	return Summary{
		TodaysJobs:       TodaysJobs(jobs, now),
		PendingEstimates: PendingEstimates(jobs),
		MonthlyEarnings:  MonthlyEarnings(jobs),
		RecentPayments:   RecentPayments(jobs, now),
		TotalJobs:        len(jobs),
		AverageJobValue:  AverageJobValue(jobs),
	}
}

// TodaysJobs returns jobs scheduled on the current calendar day.
func TodaysJobs(jobs []*domain.Job, now time.Time) []*domain.Job {
	var out []*domain.Job
	for _, j := range jobs {
		if calendar.SameDay(j.ScheduledDate, now) {
			out = append(out, j)
		}
	}
	return out
}

// PendingEstimates returns scheduled jobs that have no price yet. A
// job converted from an estimate stays in this bucket until a price
// is set.
func PendingEstimates(jobs []*domain.Job) []*domain.Job {
	var out []*domain.Job
	for _, j := range jobs {
		if j.Status == domain.JobScheduled && j.Price == nil {
			out = append(out, j)
		}
	}
	return out
}

// MonthlyEarnings sums the price of every paid job. A nil price
// counts as zero.
func MonthlyEarnings(jobs []*domain.Job) float64 {
	var total float64
	for _, j := range jobs {
		if j.Status == domain.JobPaid && j.Price != nil {
			total += *j.Price
		}
	}
	return total
}

// RecentPayments returns paid jobs whose payment landed in the current
// calendar month.
func RecentPayments(jobs []*domain.Job, now time.Time) []*domain.Job {
	var out []*domain.Job
	for _, j := range jobs {
		if j.Status != domain.JobPaid || j.PaidAt == nil {
			continue
		}
		if j.PaidAt.Year() == now.Year() && j.PaidAt.Month() == now.Month() {
			out = append(out, j)
		}
	}
	return out
}

// AverageJobValue divides total priced revenue by the number of jobs
// that carry a price. Unpriced jobs are left out of the denominator.
func AverageJobValue(jobs []*domain.Job) float64 {
	var total float64
	var priced int
	for _, j := range jobs {
		if j.Price == nil {
			continue
		}
		total += *j.Price
		priced++
	}
	if priced == 0 {
		return 0
	}
	return total / float64(priced)
}

// RevenueByService groups paid revenue by service type.
func RevenueByService(jobs []*domain.Job) map[string]float64 {
	out := make(map[string]float64)
	for _, j := range jobs {
		if j.Status != domain.JobPaid || j.Price == nil {
			continue
		}
		out[j.ServiceType] += *j.Price
	}
	return out
}

// StatusDistribution counts jobs per status.
func StatusDistribution(jobs []*domain.Job) map[domain.JobStatus]int {
	out := make(map[domain.JobStatus]int)
	for _, j := range jobs {
		out[j.Status]++
	}
	return out
}

// MonthBucket is one month of paid revenue in a report window.
type MonthBucket struct {
	Month   time.Time // first of the month, midnight UTC
	Revenue float64
	Paid    int
}

// MonthlyRevenue buckets paid revenue into the trailing months
// window, oldest first, ending with the current month. Months with no
// payments appear with zero revenue. Jobs are bucketed by when they
// were paid, not when they were scheduled.
func MonthlyRevenue(jobs []*domain.Job, now time.Time, months int) []MonthBucket {
	if months < 1 {
		months = 1
	}
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	start := first.AddDate(0, -(months - 1), 0)

	buckets := make([]MonthBucket, months)
	index := make(map[time.Time]int, months)
	for i := 0; i < months; i++ {
		m := start.AddDate(0, i, 0)
		buckets[i] = MonthBucket{Month: m}
		index[m] = i
	}

	for _, j := range jobs {
		if j.Status != domain.JobPaid || j.PaidAt == nil {
			continue
		}
		key := time.Date(j.PaidAt.Year(), j.PaidAt.Month(), 1, 0, 0, 0, 0, time.UTC)
		i, ok := index[key]
		if !ok {
			continue
		}
		if j.Price != nil {
			buckets[i].Revenue += *j.Price
		}
		buckets[i].Paid++
	}
	return buckets
}
