package service

import (
	"context"
	"testing"

	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/repository"
	"github.com/handyops/proserve/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) CatalogService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewCatalogService(repository.NewSQLiteServiceRepo(db))
}

func TestCatalogService_CreateStampsIdentity(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	entry := testutil.NewTestService("Outlet Replacement", testutil.WithCategory("Electrical"))
	entry.ID = ""
	require.NoError(t, svc.Create(ctx, entry))

	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.Equal(t, entry.CreatedAt, entry.UpdatedAt)
}

func TestCatalogService_CreateRejectsInvalid(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	entry := testutil.NewTestService("Mystery Work", testutil.WithCategory("Alchemy"))
	err := svc.Create(ctx, entry)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_ListByCategory(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, testutil.NewTestService("Deck Repair", testutil.WithCategory("Carpentry"))))
	require.NoError(t, svc.Create(ctx, testutil.NewTestService("Pipe Fix", testutil.WithCategory("Plumbing"))))
	require.NoError(t, svc.Create(ctx, testutil.NewTestService("Drain Cleaning", testutil.WithCategory("Plumbing"))))
	require.NoError(t, svc.Create(ctx, testutil.NewTestService("Old Offering", testutil.WithCategory("Roofing"), testutil.WithInactive())))

	groups, err := svc.ListByCategory(ctx)
	require.NoError(t, err)

	// Plumbing sorts before Carpentry in the fixed category order, and
	// the inactive Roofing entry does not produce a group.
	require.Len(t, groups, 2)
	assert.Equal(t, "Plumbing", groups[0].Category)
	assert.Len(t, groups[0].Services, 2)
	assert.Equal(t, "Carpentry", groups[1].Category)
}

func TestCatalogService_Search(t *testing.T) {
	svc := newCatalogService(t)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, testutil.NewTestService("Faucet Replacement", testutil.WithCategory("Plumbing"))))
	require.NoError(t, svc.Create(ctx, testutil.NewTestService("Ceiling Fan Install", testutil.WithCategory("Electrical"))))

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"case insensitive name", "FAUCET", 1},
		{"category match", "electrical", 1},
		{"no match", "gutters", 0},
		{"blank returns all", "  ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Search(ctx, tt.query)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestCatalogService_DeleteLeavesJobsIntact(t *testing.T) {
	db := testutil.NewTestDB(t)
	catalog := NewCatalogService(repository.NewSQLiteServiceRepo(db))
	jobs := repository.NewSQLiteJobRepo(db)
	ctx := context.Background()

	entry := testutil.NewTestService("Tile Work", testutil.WithCategory("Flooring"))
	require.NoError(t, catalog.Create(ctx, entry))

	job := testutil.NewTestJob("Pat Doyle", testutil.WithServiceType("Tile Work"))
	job.ServiceID = &entry.ID
	require.NoError(t, jobs.Create(ctx, job))

	require.NoError(t, catalog.Delete(ctx, entry.ID))

	fetched, err := jobs.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tile Work", fetched.ServiceType, "display falls back to the stored string")
}
