package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClient("Marta Reyes", testutil.WithTotals(3, 1250.50))
	require.NoError(t, repo.Create(ctx, c))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Marta Reyes", fetched.Name)
	assert.Equal(t, domain.ClientActive, fetched.Status)
	assert.Equal(t, 3, fetched.TotalJobs)
	assert.Equal(t, 1250.50, fetched.TotalSpent)
}

func TestClientRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(db)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientRepo_List_OrderedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestClient("Zoe")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestClient("Alan")))

	clients, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, "Alan", clients[0].Name)
	assert.Equal(t, "Zoe", clients[1].Name)
}

func TestClientRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClient("Lead Larry", testutil.WithClientStatus(domain.ClientLead))
	require.NoError(t, repo.Create(ctx, c))

	c.Status = domain.ClientActive
	c.TotalJobs = 1
	c.TotalSpent = 300
	c.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, c))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ClientActive, fetched.Status)
	assert.Equal(t, 1, fetched.TotalJobs)
	assert.Equal(t, 300.0, fetched.TotalSpent)
}

func TestClientRepo_DeleteCascadesCommunications(t *testing.T) {
	db := testutil.NewTestDB(t)
	clients := NewSQLiteClientRepo(db)
	comms := NewSQLiteCommunicationRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClient("Departing")
	require.NoError(t, clients.Create(ctx, c))
	require.NoError(t, comms.Create(ctx, &domain.Communication{
		ID:        uuid.New().String(),
		ClientID:  c.ID,
		Type:      domain.CommPhone,
		Direction: domain.DirectionOutbound,
		Subject:   "follow up",
		Date:      time.Now().UTC(),
	}))

	require.NoError(t, clients.Delete(ctx, c.ID))

	left, err := comms.ListByClient(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestCommunicationRepo_ListNewestFirst(t *testing.T) {
	db := testutil.NewTestDB(t)
	clients := NewSQLiteClientRepo(db)
	comms := NewSQLiteCommunicationRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClient("Talkative")
	require.NoError(t, clients.Create(ctx, c))

	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	for i, subject := range []string{"first", "second", "third"} {
		require.NoError(t, comms.Create(ctx, &domain.Communication{
			ID:        uuid.New().String(),
			ClientID:  c.ID,
			Type:      domain.CommEmail,
			Direction: domain.DirectionInbound,
			Subject:   subject,
			Date:      base.Add(time.Duration(i) * time.Hour),
		}))
	}

	list, err := comms.ListByClient(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "third", list[0].Subject)
	assert.Equal(t, "first", list[2].Subject)
}
