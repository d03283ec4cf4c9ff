package service

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/photostore"
	"github.com/handyops/proserve/internal/repository"
	"github.com/handyops/proserve/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobService(t *testing.T) JobService {
	t.Helper()
	db := testutil.NewTestDB(t)
	store, err := photostore.NewFSStore(t.TempDir())
	require.NoError(t, err)
	return NewJobService(repository.NewSQLiteJobRepo(db), store)
}

func TestJobService_CreateDefaults(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	j := &domain.Job{
		ClientName:    "Dana Reyes",
		Phone:         "555-0100",
		Address:       "12 Oak St",
		ServiceType:   "Plumbing",
		ScheduledDate: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC),
	}
	require.NoError(t, svc.Create(ctx, j))

	assert.NotEmpty(t, j.ID)
	assert.Equal(t, domain.JobScheduled, j.Status)
	assert.False(t, j.CreatedAt.IsZero())
}

func TestJobService_CreateRequiresClientAndDate(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	err := svc.Create(ctx, &domain.Job{ScheduledDate: time.Now()})
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = svc.Create(ctx, &domain.Job{ClientName: "Dana Reyes"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestJobService_AdvanceLifecycle(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	j := testutil.NewTestJob("Dana Reyes")
	require.NoError(t, svc.Create(ctx, j))

	j, err := svc.Advance(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobInProgress, j.Status)
	assert.Nil(t, j.CompletedAt)

	j, err = svc.Advance(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, j.Status)
	require.NotNil(t, j.CompletedAt)
	completedAt := *j.CompletedAt

	j, err = svc.Advance(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.JobPaid, j.Status)
	require.NotNil(t, j.PaidAt)
	assert.WithinDuration(t, completedAt, *j.CompletedAt, time.Second, "completion stamp set once")

	_, err = svc.Advance(ctx, j.ID)
	assert.ErrorIs(t, err, domain.ErrValidation, "paid is terminal")
}

func TestJobService_UpdatePreservesLifecycle(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	j := testutil.NewTestJob("Dana Reyes")
	require.NoError(t, svc.Create(ctx, j))
	advanced, err := svc.Advance(ctx, j.ID)
	require.NoError(t, err)

	edit := *advanced
	edit.Address = "44 Birch Ave"
	edit.Status = domain.JobPaid // must be ignored
	require.NoError(t, svc.Update(ctx, &edit))

	fetched, err := svc.GetByID(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, "44 Birch Ave", fetched.Address)
	assert.Equal(t, domain.JobInProgress, fetched.Status)
	assert.Nil(t, fetched.PaidAt)
}

func TestJobService_Reschedule(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	j := testutil.NewTestJob("Dana Reyes", testutil.WithScheduledDate(time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)))
	require.NoError(t, svc.Create(ctx, j))

	target := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	moved, err := svc.Reschedule(ctx, j.ID, target)
	require.NoError(t, err)
	assert.Equal(t, target, moved.ScheduledDate)

	fetched, err := svc.GetByID(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, target, fetched.ScheduledDate)
}

func TestJobService_RescheduleMissingJob(t *testing.T) {
	svc := newJobService(t)

	_, err := svc.Reschedule(context.Background(), "nonexistent", time.Now())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestJobService_AddNote(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	j := testutil.NewTestJob("Dana Reyes")
	require.NoError(t, svc.Create(ctx, j))

	n, err := svc.AddNote(ctx, j.ID, "  brought the wrong fittings, returning tomorrow  ")
	require.NoError(t, err)
	assert.Equal(t, "brought the wrong fittings, returning tomorrow", n.Text)

	_, err = svc.AddNote(ctx, j.ID, "   ")
	assert.ErrorIs(t, err, domain.ErrValidation)

	fetched, err := svc.GetByID(ctx, j.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Notes, 1)
}

func TestJobService_AddPhoto(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	j := testutil.NewTestJob("Dana Reyes")
	require.NoError(t, svc.Create(ctx, j))

	p, err := svc.AddPhoto(ctx, j.ID, "before.jpg", "image/jpeg", []byte("fake jpeg bytes"))
	require.NoError(t, err)
	assert.NotEmpty(t, p.URL)
	assert.Equal(t, int64(15), p.Size)

	path := strings.TrimPrefix(p.URL, "file://")
	_, err = os.Stat(path)
	require.NoError(t, err, "blob written to the store")

	fetched, err := svc.GetByID(ctx, j.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Photos, 1)

	require.NoError(t, svc.DeletePhoto(ctx, j.ID, p.ID))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "blob removed with the metadata")
}

func TestJobService_AddPhotoRejectsNonImage(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	j := testutil.NewTestJob("Dana Reyes")
	require.NoError(t, svc.Create(ctx, j))

	_, err := svc.AddPhoto(ctx, j.ID, "notes.pdf", "application/pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestJobService_AddPhotoRejectsOversize(t *testing.T) {
	svc := newJobService(t)
	ctx := context.Background()

	j := testutil.NewTestJob("Dana Reyes")
	require.NoError(t, svc.Create(ctx, j))

	_, err := svc.AddPhoto(ctx, j.ID, "huge.png", "image/png", make([]byte, MaxPhotoBytes+1))
	assert.ErrorIs(t, err, domain.ErrValidation)
}
