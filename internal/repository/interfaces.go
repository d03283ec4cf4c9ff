package repository

import (
	"context"
	"time"

	"github.com/handyops/proserve/internal/domain"
)

// ServiceRepo is the catalog store.
type ServiceRepo interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Delete(ctx context.Context, id string) error
}

// JobRepo stores jobs together with their owned notes, photos, and
// conversion-time service manifest. List methods return jobs without
// the owned sub-collections; GetByID loads the full aggregate.
type JobRepo interface {
	Create(ctx context.Context, j *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context) ([]*domain.Job, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Job, error)
	Update(ctx context.Context, j *domain.Job) error
	Delete(ctx context.Context, id string) error

	AddNote(ctx context.Context, jobID string, n *domain.Note) error
	UpdateNote(ctx context.Context, jobID, noteID, text string, now time.Time) error
	DeleteNote(ctx context.Context, jobID, noteID string) error

	AddPhoto(ctx context.Context, jobID string, p *domain.Photo) error
	GetPhoto(ctx context.Context, jobID, photoID string) (*domain.Photo, error)
	DeletePhoto(ctx context.Context, jobID, photoID string) error
}

// ClientRepo stores clients and their logged communications.
type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
}

// CommunicationRepo stores per-client communication logs.
type CommunicationRepo interface {
	Create(ctx context.Context, c *domain.Communication) error
	ListByClient(ctx context.Context, clientID string) ([]*domain.Communication, error)
	Delete(ctx context.Context, id string) error
}
