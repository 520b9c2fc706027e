package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/stockroom/stock-api/internal/core/domain"
	"github.com/stockroom/stock-api/internal/core/ports"
)

// ProductService implements product CRUD. Reads resolve the category
// reference into its display name; writes verify the reference resolves.
type ProductService struct {
	repo       ports.ProductRepository
	categories ports.CategoryRepository
	cache      ListCache
	log        zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, categories ports.CategoryRepository, cache ListCache, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, categories: categories, cache: cache, log: log}
}

// List returns all products with category names resolved, served from cache
// when possible.
func (s *ProductService) List(ctx context.Context) ([]domain.ProductDetail, error) {
	if s.cache != nil {
		var cached []domain.ProductDetail
		hit, err := s.cache.Get(ctx, cacheKeyProducts, &cached)
		if err != nil {
			s.log.Warn().Err(err).Msg("product list cache read failed")
		} else if hit {
			return cached, nil
		}
	}

	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names, err := s.categoryNames(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]domain.ProductDetail, 0, len(products))
	for _, p := range products {
		details = append(details, domain.ProductDetail{Product: p, CategoryName: names[p.CategoryID]})
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKeyProducts, details); err != nil {
			s.log.Warn().Err(err).Msg("product list cache write failed")
		}
	}
	return details, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.ProductDetail, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &domain.ProductDetail{Product: *product}
	category, err := s.categories.FindByID(ctx, product.CategoryID)
	if err == nil {
		detail.CategoryName = category.Name
	} else if !errors.Is(err, domain.ErrCategoryNotFound) && !errors.Is(err, domain.ErrInvalidID) {
		return nil, err
	}
	return detail, nil
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Price < 0 || input.Stock < 0 {
		return nil, domain.ErrNegativeAmount
	}
	if err := s.resolveCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return created, nil
}

// Update applies the provided fields and returns the refreshed record, not
// the pre-update one.
func (s *ProductService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	if input.Price != nil && *input.Price < 0 {
		return nil, domain.ErrNegativeAmount
	}
	if input.Stock != nil && *input.Stock < 0 {
		return nil, domain.ErrNegativeAmount
	}
	if input.CategoryID != nil {
		if err := s.resolveCategory(ctx, *input.CategoryID); err != nil {
			return nil, err
		}
	}

	upd := ports.ProductUpdate{
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		CategoryID:  input.CategoryID,
	}
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

func (s *ProductService) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// resolveCategory verifies the reference points at an existing category.
func (s *ProductService) resolveCategory(ctx context.Context, categoryID string) error {
	_, err := s.categories.FindByID(ctx, categoryID)
	if errors.Is(err, domain.ErrCategoryNotFound) || errors.Is(err, domain.ErrInvalidID) {
		return domain.ErrCategoryRefInvalid
	}
	if err != nil {
		return fmt.Errorf("resolve category %s: %w", categoryID, err)
	}
	return nil
}

// categoryNames builds an id → name map for the read-time join.
func (s *ProductService) categoryNames(ctx context.Context) (map[string]string, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	return names, nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, cacheKeyProducts); err != nil {
		s.log.Warn().Err(err).Msg("product list cache invalidation failed")
	}
}
