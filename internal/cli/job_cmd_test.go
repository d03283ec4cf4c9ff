package cli

import (
	"context"
	"testing"
	"time"

	"github.com/handyops/proserve/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pinLocal fixes the process-local zone for a test so wall-clock
// behavior is exercised away from UTC.
func pinLocal(t *testing.T, offsetHours int) *time.Location {
	t.Helper()
	orig := time.Local
	loc := time.FixedZone("TESTZONE", offsetHours*60*60)
	time.Local = loc
	t.Cleanup(func() { time.Local = orig })
	return loc
}

func TestParseSchedule_LocalWallClock(t *testing.T) {
	loc := pinLocal(t, -7)

	got, err := parseSchedule("2026-09-01 00:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 30, 0, 0, loc).UTC(), got.UTC())
	_, offset := got.Zone()
	assert.Equal(t, -7*60*60, offset, "input is read as local wall-clock, not UTC")

	_, err = parseSchedule("tomorrow-ish")
	assert.Error(t, err)
}

func TestJobAdd_VisibleOnItsCalendarDay(t *testing.T) {
	loc := pinLocal(t, -7)
	app := testApp(t)
	ctx := context.Background()

	root := NewRootCmd(app)
	root.SetArgs([]string{"job", "add",
		"--client", "Dana Whitfield",
		"--service", "Plumbing",
		"--at", "2026-09-01 00:30",
	})
	require.NoError(t, root.Execute())

	// The fetch for the day the user typed must return the job, and the
	// grid must place it on that day.
	anchor := time.Date(2026, 9, 1, 12, 0, 0, 0, loc)
	day := calendar.NewViewState(anchor).WithMode(calendar.ModeDay)
	from, to := day.Range()
	jobs, err := app.Jobs.ListBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.True(t, calendar.SameDay(jobs[0].ScheduledDate, anchor))
	assert.Equal(t, 0, jobs[0].ScheduledDate.Hour(), "early-morning slot survives the round trip")

	prevFrom, prevTo := day.Previous().Range()
	prev, err := app.Jobs.ListBetween(ctx, prevFrom, prevTo)
	require.NoError(t, err)
	assert.Empty(t, prev, "the job belongs to exactly one day")
}
