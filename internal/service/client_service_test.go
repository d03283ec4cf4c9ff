package service

import (
	"context"
	"testing"
	"time"

	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/repository"
	"github.com/handyops/proserve/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClientService(t *testing.T) (ClientService, CommunicationService) {
	t.Helper()
	db := testutil.NewTestDB(t)
	clients := repository.NewSQLiteClientRepo(db)
	comms := repository.NewSQLiteCommunicationRepo(db)
	return NewClientService(clients, comms), NewCommunicationService(comms)
}

func TestClientService_CreateDefaults(t *testing.T) {
	svc, _ := newClientService(t)
	ctx := context.Background()

	c := &domain.Client{Name: "Morgan Webb", Email: "morgan@example.com"}
	require.NoError(t, svc.Create(ctx, c))

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, domain.ClientActive, c.Status)
	assert.Zero(t, c.TotalJobs)
	assert.Zero(t, c.TotalSpent)
	assert.False(t, c.ClientSince.IsZero())
	assert.Equal(t, c.ClientSince, c.LastContact)
}

func TestClientService_CreateRequiresName(t *testing.T) {
	svc, _ := newClientService(t)

	err := svc.Create(context.Background(), &domain.Client{Email: "x@example.com"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClientService_LogCommunicationBumpsLastContact(t *testing.T) {
	svc, comms := newClientService(t)
	ctx := context.Background()

	c := testutil.NewTestClient("Morgan Webb")
	require.NoError(t, svc.Create(ctx, c))

	when := time.Date(2026, time.March, 5, 14, 0, 0, 0, time.UTC)
	comm := &domain.Communication{
		ClientID:  c.ID,
		Type:      domain.CommPhone,
		Direction: domain.DirectionOutbound,
		Subject:   "Scheduling follow-up",
		Date:      when,
	}
	require.NoError(t, svc.LogCommunication(ctx, comm))
	assert.NotEmpty(t, comm.ID)

	fetched, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, when, fetched.LastContact)

	logged, err := comms.ListByClient(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, logged, 1)
	assert.Equal(t, "Scheduling follow-up", logged[0].Subject)
}

func TestClientService_LogCommunicationRequiresSubject(t *testing.T) {
	svc, _ := newClientService(t)
	ctx := context.Background()

	c := testutil.NewTestClient("Morgan Webb")
	require.NoError(t, svc.Create(ctx, c))

	err := svc.LogCommunication(ctx, &domain.Communication{ClientID: c.ID, Type: domain.CommEmail})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClientService_LogCommunicationMissingClient(t *testing.T) {
	svc, _ := newClientService(t)

	err := svc.LogCommunication(context.Background(), &domain.Communication{ClientID: "nonexistent", Subject: "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClientService_RecordJobPayment(t *testing.T) {
	svc, _ := newClientService(t)
	ctx := context.Background()

	c := testutil.NewTestClient("Morgan Webb")
	require.NoError(t, svc.Create(ctx, c))

	require.NoError(t, svc.RecordJobPayment(ctx, c.ID, 310.50))
	require.NoError(t, svc.RecordJobPayment(ctx, c.ID, 89.50))

	fetched, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fetched.TotalJobs)
	assert.InDelta(t, 400, fetched.TotalSpent, 1e-9)
}

func TestClientService_RecordJobPaymentRejectsNegative(t *testing.T) {
	svc, _ := newClientService(t)

	err := svc.RecordJobPayment(context.Background(), "any", -5)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClientService_Stats(t *testing.T) {
	svc, _ := newClientService(t)
	ctx := context.Background()

	a := testutil.NewTestClient("A")
	b := testutil.NewTestClient("B")
	c := testutil.NewTestClient("C")
	for _, cl := range []*domain.Client{a, b, c} {
		require.NoError(t, svc.Create(ctx, cl))
	}

	lead := a
	lead.Status = domain.ClientLead
	require.NoError(t, svc.Update(ctx, lead))

	require.NoError(t, svc.RecordJobPayment(ctx, b.ID, 500))
	require.NoError(t, svc.RecordJobPayment(ctx, b.ID, 250))
	require.NoError(t, svc.RecordJobPayment(ctx, c.ID, 100))
	require.NoError(t, svc.RecordJobPayment(ctx, c.ID, 50))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalClients)
	assert.Equal(t, 2, stats.ActiveClients)
	assert.InDelta(t, 900, stats.TotalRevenue, 1e-9)
	assert.InDelta(t, 1.3, stats.AvgJobsPerClient, 1e-9, "4 jobs over 3 clients, rounded to one decimal")
}

func TestClientService_StatsEmpty(t *testing.T) {
	svc, _ := newClientService(t)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.TotalClients)
	assert.Zero(t, stats.AvgJobsPerClient)
}
