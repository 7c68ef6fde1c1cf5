package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lmarchetti/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lmarchetti/storefront-backend/pkg/errors"
	"github.com/lmarchetti/storefront-backend/pkg/pagination"
	"gorm.io/gorm"
)

const recommendationLimit = 4

type productReader interface {
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	FindBySlug(ctx context.Context, slug string) (*models.Product, error)
	ListActive(ctx context.Context, params pagination.Params) ([]models.Product, error)
	ListRecommendations(ctx context.Context, excludeID int64, limit int) ([]models.Product, error)
}

// Service exposes storefront catalog reads.
type Service interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetProduct(ctx context.Context, slug string) (*ProductDTO, error)
	ListProducts(ctx context.Context, params pagination.Params) (*ProductListResult, error)
	Recommendations(ctx context.Context, excludeID int64) ([]ProductSummaryDTO, error)
}

type service struct {
	repo productReader
}

// NewService builds a catalog service around the given repository.
func NewService(repo productReader) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

// GetByID returns the raw product model, as needed by the cart pipeline.
func (s *service) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapLookupError(err)
	}
	return product, nil
}

func (s *service) GetProduct(ctx context.Context, slug string) (*ProductDTO, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product slug is required")
	}
	product, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, mapLookupError(err)
	}
	return toProductDTO(product), nil
}

func (s *service) ListProducts(ctx context.Context, params pagination.Params) (*ProductListResult, error) {
	products, err := s.repo.ListActive(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to list products")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	result := &ProductListResult{Products: make([]ProductSummaryDTO, 0, limit)}
	if len(products) > limit {
		last := products[limit-1]
		result.NextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
		products = products[:limit]
	}
	for i := range products {
		result.Products = append(result.Products, toSummaryDTO(&products[i]))
	}
	return result, nil
}

func (s *service) Recommendations(ctx context.Context, excludeID int64) ([]ProductSummaryDTO, error) {
	products, err := s.repo.ListRecommendations(ctx, excludeID, recommendationLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load recommendations")
	}
	summaries := make([]ProductSummaryDTO, 0, len(products))
	for i := range products {
		summaries = append(summaries, toSummaryDTO(&products[i]))
	}
	return summaries, nil
}

func mapLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to load product")
}
