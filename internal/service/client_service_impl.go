package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/repository"
)

type clientService struct {
	clients repository.ClientRepo
	comms   repository.CommunicationRepo
}

func NewClientService(clients repository.ClientRepo, comms repository.CommunicationRepo) ClientService {
	return &clientService{clients: clients, comms: comms}
}

func (s *clientService) Create(ctx context.Context, c *domain.Client) error {
	if c.Name == "" {
		return fmt.Errorf("%w: client name is required", domain.ErrValidation)
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Status == "" {
		c.Status = domain.ClientActive
	}
	now := time.Now().UTC()
	c.TotalJobs = 0
	c.TotalSpent = 0
	c.ClientSince = now
	c.LastContact = now
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.clients.Create(ctx, c)
}

func (s *clientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

func (s *clientService) List(ctx context.Context) ([]*domain.Client, error) {
	return s.clients.List(ctx)
}

func (s *clientService) Update(ctx context.Context, c *domain.Client) error {
	c.UpdatedAt = time.Now().UTC()
	return s.clients.Update(ctx, c)
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	return s.clients.Delete(ctx, id)
}

func (s *clientService) LogCommunication(ctx context.Context, c *domain.Communication) error {
	client, err := s.clients.GetByID(ctx, c.ClientID)
	if err != nil {
		return err
	}
	if c.Subject == "" {
		return fmt.Errorf("%w: subject is required", domain.ErrValidation)
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.Date.IsZero() {
		c.Date = time.Now().UTC()
	}
	if err := s.comms.Create(ctx, c); err != nil {
		return err
	}

	client.LastContact = c.Date
	client.UpdatedAt = time.Now().UTC()
	return s.clients.Update(ctx, client)
}

func (s *clientService) RecordJobPayment(ctx context.Context, clientID string, amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: payment amount must not be negative", domain.ErrValidation)
	}
	client, err := s.clients.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	client.TotalJobs++
	client.TotalSpent += amount
	client.UpdatedAt = time.Now().UTC()
	return s.clients.Update(ctx, client)
}

func (s *clientService) Stats(ctx context.Context) (*ClientStats, error) {
	all, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &ClientStats{TotalClients: len(all)}
	var totalJobs int
	for _, c := range all {
		if c.Status == domain.ClientActive {
			stats.ActiveClients++
		}
		stats.TotalRevenue += c.TotalSpent
		totalJobs += c.TotalJobs
	}
	if len(all) > 0 {
		avg := float64(totalJobs) / float64(len(all))
		stats.AvgJobsPerClient = math.Round(avg*10) / 10
	}
	return stats, nil
}

type communicationService struct {
	comms repository.CommunicationRepo
}

func NewCommunicationService(comms repository.CommunicationRepo) CommunicationService {
	return &communicationService{comms: comms}
}

func (s *communicationService) ListByClient(ctx context.Context, clientID string) ([]*domain.Communication, error) {
	return s.comms.ListByClient(ctx, clientID)
}

func (s *communicationService) Delete(ctx context.Context, id string) error {
	return s.comms.Delete(ctx, id)
}
