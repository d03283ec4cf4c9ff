package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/photostore"
	"github.com/handyops/proserve/internal/repository"
)

// MaxPhotoBytes caps a single photo upload at 5 MiB.
const MaxPhotoBytes = 5 * 1024 * 1024

type jobService struct {
	jobs   repository.JobRepo
	photos photostore.Store
}

func NewJobService(jobs repository.JobRepo, photos photostore.Store) JobService {
	return &jobService{jobs: jobs, photos: photos}
}

func (s *jobService) Create(ctx context.Context, j *domain.Job) error {
	if j.ClientName == "" {
		return fmt.Errorf("%w: client name is required", domain.ErrValidation)
	}
	if j.ScheduledDate.IsZero() {
		return fmt.Errorf("%w: scheduled date is required", domain.ErrValidation)
	}
	if j.ID == "" {
		j.ID = uuid.New().String()
	}
	if j.Status == "" {
		j.Status = domain.JobScheduled
	}
	if domain.StatusRank(j.Status) < 0 {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, j.Status)
	}
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	return s.jobs.Create(ctx, j)
}

func (s *jobService) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *jobService) List(ctx context.Context) ([]*domain.Job, error) {
	return s.jobs.List(ctx)
}

func (s *jobService) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Job, error) {
	return s.jobs.ListBetween(ctx, from, to)
}

// Update edits a job's details. Status and its lifecycle stamps are
// carried over from the stored record; Advance is the only way to
// move them.
func (s *jobService) Update(ctx context.Context, j *domain.Job) error {
	stored, err := s.jobs.GetByID(ctx, j.ID)
	if err != nil {
		return err
	}
	j.Status = stored.Status
	j.CompletedAt = stored.CompletedAt
	j.PaidAt = stored.PaidAt
	j.CreatedAt = stored.CreatedAt
	j.UpdatedAt = time.Now().UTC()
	return s.jobs.Update(ctx, j)
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	return s.jobs.Delete(ctx, id)
}

func (s *jobService) Advance(ctx context.Context, id string) (*domain.Job, error) {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, ok := domain.NextStatus(j.Status)
	if !ok {
		return nil, fmt.Errorf("%w: job is already %s", domain.ErrValidation, j.Status)
	}

	now := time.Now().UTC()
	j.Status = next
	switch next {
	case domain.JobCompleted:
		if j.CompletedAt == nil {
			j.CompletedAt = &now
		}
	case domain.JobPaid:
		j.PaidAt = &now
	}
	j.UpdatedAt = now

	if err := s.jobs.Update(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *jobService) Reschedule(ctx context.Context, id string, when time.Time) (*domain.Job, error) {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	j.ScheduledDate = when
	j.UpdatedAt = time.Now().UTC()
	if err := s.jobs.Update(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (s *jobService) AddNote(ctx context.Context, jobID, text string) (*domain.Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: note text must not be blank", domain.ErrValidation)
	}
	n := &domain.Note{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.jobs.AddNote(ctx, jobID, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *jobService) UpdateNote(ctx context.Context, jobID, noteID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: note text must not be blank", domain.ErrValidation)
	}
	return s.jobs.UpdateNote(ctx, jobID, noteID, text, time.Now().UTC())
}

func (s *jobService) DeleteNote(ctx context.Context, jobID, noteID string) error {
	return s.jobs.DeleteNote(ctx, jobID, noteID)
}

func (s *jobService) AddPhoto(ctx context.Context, jobID, filename, mimeType string, data []byte) (*domain.Photo, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: %q is not an image type", domain.ErrValidation, mimeType)
	}
	if len(data) > MaxPhotoBytes {
		return nil, fmt.Errorf("%w: photo exceeds the 5 MiB limit", domain.ErrValidation)
	}

	url, err := s.photos.Save(ctx, jobID, filename, data)
	if err != nil {
		return nil, fmt.Errorf("saving photo: %w", err)
	}

	p := &domain.Photo{
		ID:        uuid.New().String(),
		Name:      filename,
		URL:       url,
		Size:      int64(len(data)),
		MimeType:  mimeType,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.jobs.AddPhoto(ctx, jobID, p); err != nil {
		// The metadata is the source of truth. Drop the orphaned blob.
		_ = s.photos.Remove(ctx, url)
		return nil, err
	}
	return p, nil
}

func (s *jobService) DeletePhoto(ctx context.Context, jobID, photoID string) error {
	p, err := s.jobs.GetPhoto(ctx, jobID, photoID)
	if err != nil {
		return err
	}
	if err := s.jobs.DeletePhoto(ctx, jobID, photoID); err != nil {
		return err
	}
	// Blob removal is best effort; a leftover file is harmless.
	_ = s.photos.Remove(ctx, p.URL)
	return nil
}
