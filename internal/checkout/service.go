package checkout

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lmarchetti/storefront-backend/internal/cart"
	"github.com/lmarchetti/storefront-backend/internal/orders"
	"github.com/lmarchetti/storefront-backend/pkg/config"
	"github.com/lmarchetti/storefront-backend/pkg/db/models"
	"github.com/lmarchetti/storefront-backend/pkg/enums"
	pkgerrors "github.com/lmarchetti/storefront-backend/pkg/errors"
	"github.com/lmarchetti/storefront-backend/pkg/logger"
	"github.com/lmarchetti/storefront-backend/pkg/metrics"
	"github.com/lmarchetti/storefront-backend/pkg/types"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type cartAccess interface {
	Get(ctx context.Context, token string) ([]cart.Line, error)
	Clear(ctx context.Context, token string) error
}

// PlaceOrderInput carries the submitted checkout form.
type PlaceOrderInput struct {
	CartToken       string
	PaymentMethod   enums.PaymentMethod
	ShippingAddress types.Address
	Card            *CardInput
}

// Service turns a cart into an order.
type Service interface {
	PlaceOrder(ctx context.Context, input PlaceOrderInput) (*orders.OrderDTO, error)
	Preview(ctx context.Context, token string) (Totals, error)
}

type service struct {
	carts    cartAccess
	orders   orders.Repository
	tx       txRunner
	cfg      config.CheckoutConfig
	currency enums.Currency
	metrics  *metrics.StorefrontMetrics
	logg     *logger.Logger
}

// NewService builds a checkout service with the required dependencies.
func NewService(carts cartAccess, repo orders.Repository, tx txRunner, cfg config.CheckoutConfig, m *metrics.StorefrontMetrics, logg *logger.Logger) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	currency, err := enums.ParseCurrency(cfg.Currency)
	if err != nil {
		return nil, fmt.Errorf("checkout currency: %w", err)
	}
	return &service{
		carts:    carts,
		orders:   repo,
		tx:       tx,
		cfg:      cfg,
		currency: currency,
		metrics:  m,
		logg:     logg,
	}, nil
}

// Preview computes totals for the current cart without placing an order.
func (s *service) Preview(ctx context.Context, token string) (Totals, error) {
	if token == "" {
		return Totals{}, pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}
	lines, err := s.carts.Get(ctx, token)
	if err != nil {
		return Totals{}, err
	}
	return ComputeTotals(lines, int64(s.cfg.ShippingFlatFeeCents)), nil
}

func (s *service) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*orders.OrderDTO, error) {
	if input.CartToken == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart token is required")
	}
	if err := validateInput(input.ShippingAddress, input.PaymentMethod, input.Card); err != nil {
		return nil, err
	}

	lines, err := s.carts.Get(ctx, input.CartToken)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	totals := ComputeTotals(lines, int64(s.cfg.ShippingFlatFeeCents))
	address := input.ShippingAddress

	order := &models.Order{
		CartToken:       input.CartToken,
		Status:          enums.OrderStatusPending,
		PaymentMethod:   input.PaymentMethod,
		ShippingAddress: &address,
		Currency:        s.currency,
		SubtotalCents:   Cents(totals.Subtotal),
		ShippingCents:   Cents(totals.Shipping),
		TotalCents:      Cents(totals.Total),
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.orders.WithTx(tx)
		if _, err := repo.CreateOrder(ctx, order); err != nil {
			return err
		}
		items := make([]models.OrderLineItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, lineItem(order.ID, line))
		}
		return repo.CreateOrderLineItems(ctx, items)
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to place order")
	}

	// The order is committed. A failed cart clear leaves a stale document
	// that expires on its own, so log and move on.
	if err := s.carts.Clear(ctx, input.CartToken); err != nil {
		s.logg.Error(s.logg.WithOrderID(ctx, order.ID.String()), "failed to clear cart after checkout", err)
	}
	s.metrics.ObserveOrder(totals.Total.InexactFloat64())

	placed, err := s.orders.FindByID(ctx, order.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to reload order")
	}
	return orders.ToDTO(placed), nil
}

func lineItem(orderID uuid.UUID, line cart.Line) models.OrderLineItem {
	return models.OrderLineItem{
		OrderID:                 orderID,
		ProductID:               line.ProductID,
		Name:                    line.Name,
		Slug:                    line.Slug,
		Image:                   line.Image,
		UnitPriceCents:          Cents(decimalFromPrice(line.Price)),
		Quantity:                line.Quantity,
		SelectedVariants:        line.SelectedVariants,
		SelectedVariantsDisplay: line.SelectedVariantsDisplay,
	}
}
