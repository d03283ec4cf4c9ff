package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/handyops/proserve/internal/domain"
	"github.com/handyops/proserve/internal/repository"
)

type catalogService struct {
	services repository.ServiceRepo
}

func NewCatalogService(services repository.ServiceRepo) CatalogService {
	return &catalogService{services: services}
}

func (s *catalogService) Create(ctx context.Context, svc *domain.Service) error {
	if err := svc.Validate(); err != nil {
		return err
	}
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	svc.CreatedAt = now
	svc.UpdatedAt = now
	return s.services.Create(ctx, svc)
}

func (s *catalogService) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	return s.services.GetByID(ctx, id)
}

func (s *catalogService) List(ctx context.Context, activeOnly bool) ([]*domain.Service, error) {
	return s.services.List(ctx, activeOnly)
}

func (s *catalogService) Update(ctx context.Context, svc *domain.Service) error {
	if err := svc.Validate(); err != nil {
		return err
	}
	svc.UpdatedAt = time.Now().UTC()
	return s.services.Update(ctx, svc)
}

// Delete removes the catalog entry only. Jobs that referenced it keep
// their stored service-type string and snapshot rates.
func (s *catalogService) Delete(ctx context.Context, id string) error {
	return s.services.Delete(ctx, id)
}

// ListByCategory groups active services under the fixed category
// order. Categories with no active services are skipped.
func (s *catalogService) ListByCategory(ctx context.Context) ([]CategoryGroup, error) {
	all, err := s.services.List(ctx, true)
	if err != nil {
		return nil, err
	}

	byCat := make(map[string][]*domain.Service)
	for _, svc := range all {
		byCat[svc.Category] = append(byCat[svc.Category], svc)
	}

	var groups []CategoryGroup
	for _, cat := range domain.ServiceCategories {
		if list, ok := byCat[cat]; ok {
			groups = append(groups, CategoryGroup{Category: cat, Services: list})
		}
	}
	return groups, nil
}

// Search matches the query against name, description, and category,
// case-insensitively. A blank query returns every service.
func (s *catalogService) Search(ctx context.Context, query string) ([]*domain.Service, error) {
	all, err := s.services.List(ctx, false)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	var out []*domain.Service
	for _, svc := range all {
		if strings.Contains(strings.ToLower(svc.Name), q) ||
			strings.Contains(strings.ToLower(svc.Description), q) ||
			strings.Contains(strings.ToLower(svc.Category), q) {
			out = append(out, svc)
		}
	}
	return out, nil
}
