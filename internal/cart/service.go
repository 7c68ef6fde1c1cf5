package cart

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lmarchetti/storefront-backend/internal/gallery"
	"github.com/lmarchetti/storefront-backend/internal/pricing"
	"github.com/lmarchetti/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lmarchetti/storefront-backend/pkg/errors"
	"github.com/lmarchetti/storefront-backend/pkg/metrics"
	"github.com/lmarchetti/storefront-backend/pkg/types"
)

type productLoader interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
}

// Service exposes cart document operations.
type Service interface {
	AddItem(ctx context.Context, token string, input AddItemInput) ([]Line, error)
	Get(ctx context.Context, token string) ([]Line, error)
	Clear(ctx context.Context, token string) error
}

// AddItemInput is the payload for an add-to-cart action.
type AddItemInput struct {
	ProductID int64
	Quantity  int
	Selection types.VariantSelection
}

type service struct {
	store    Store
	products productLoader
	metrics  *metrics.StorefrontMetrics
}

// NewService builds a cart service backed by the provided stack.
func NewService(store Store, products productLoader, m *metrics.StorefrontMetrics) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{store: store, products: products, metrics: m}, nil
}

// AddItem resolves the effective unit price for the selection, builds the
// denormalized line, and merges it into the persisted document.
func (s *service) AddItem(ctx context.Context, token string, input AddItemInput) ([]Line, error) {
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}
	if input.ProductID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if input.Quantity <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive")
	}

	product, err := s.products.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsActive {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "product is not available")
	}

	selection := input.Selection
	if selection == nil {
		selection = types.VariantSelection{}
	}

	price := pricing.Resolve(product, selection)
	line := Line{
		ProductID:               product.ID,
		Name:                    product.Name,
		Slug:                    product.Slug,
		Price:                   price.InexactFloat64(),
		Image:                   lineImage(product, selection),
		Quantity:                input.Quantity,
		SelectedVariants:        selection,
		SelectedVariantsDisplay: pricing.SelectedOptions(product, selection),
	}

	lines, err := s.store.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	lines, merged := AddOrMerge(lines, line)
	if err := s.store.Save(ctx, token, lines); err != nil {
		return nil, err
	}

	if merged {
		s.metrics.IncCartMerge()
	} else {
		s.metrics.IncCartAppend()
	}
	return lines, nil
}

// Get returns the current cart document, empty when nothing is stored.
func (s *service) Get(ctx context.Context, token string) ([]Line, error) {
	if token == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}
	return s.store.Load(ctx, token)
}

// Clear drops the persisted document.
func (s *service) Clear(ctx context.Context, token string) error {
	if token == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}
	return s.store.Clear(ctx, token)
}

// lineImage snapshots the image shown for the line: the first image of the
// gallery implied by the selection, walking variants in catalog order so the
// choice is deterministic.
func lineImage(product *models.Product, selection types.VariantSelection) string {
	for i := range product.Variants {
		variant := &product.Variants[i]
		optionID, ok := selection[strconv.FormatInt(variant.ID, 10)]
		if !ok {
			continue
		}
		for j := range variant.Options {
			option := &variant.Options[j]
			if option.ID == optionID && len(option.OptionImages) > 0 {
				return option.OptionImages[0]
			}
		}
	}
	g := gallery.Default(product)
	if len(g.Images) == 0 {
		return ""
	}
	return g.Images[0]
}
