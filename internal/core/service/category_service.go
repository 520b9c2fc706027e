package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/stockroom/stock-api/internal/core/domain"
	"github.com/stockroom/stock-api/internal/core/ports"
)

// CategoryService implements category CRUD on top of the repository, with a
// cached list read path.
type CategoryService struct {
	repo  ports.CategoryRepository
	cache ListCache
	log   zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, cache ListCache, log zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, cache: cache, log: log}
}

// List returns all categories, served from cache when possible. Cache
// failures degrade to the store and never fail the request.
func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	if s.cache != nil {
		var cached []domain.Category
		hit, err := s.cache.Get(ctx, cacheKeyCategories, &cached)
		if err != nil {
			s.log.Warn().Err(err).Msg("category list cache read failed")
		} else if hit {
			return cached, nil
		}
	}

	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyCategories, categories); err != nil {
			s.log.Warn().Err(err).Msg("category list cache write failed")
		}
	}
	return categories, nil
}

func (s *CategoryService) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) Create(ctx context.Context, input ports.CreateCategoryInput) (*domain.Category, error) {
	now := time.Now().UTC()
	category := &domain.Category{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

// Update applies the provided fields and returns the refreshed record.
func (s *CategoryService) Update(ctx context.Context, id string, input ports.UpdateCategoryInput) (*domain.Category, error) {
	upd := ports.CategoryUpdate{Description: input.Description}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		upd.Name = &name
	}

	updated, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *CategoryService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// invalidate drops both list keys: the cached product list embeds category
// names, so a category write makes it stale too.
func (s *CategoryService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	for _, key := range []string{cacheKeyCategories, cacheKeyProducts} {
		if err := s.cache.Invalidate(ctx, key); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("list cache invalidation failed")
		}
	}
}
