package checkout

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lmarchetti/storefront-backend/internal/cart"
	"github.com/lmarchetti/storefront-backend/internal/orders"
	"github.com/lmarchetti/storefront-backend/pkg/config"
	"github.com/lmarchetti/storefront-backend/pkg/db/models"
	"github.com/lmarchetti/storefront-backend/pkg/enums"
	pkgerrors "github.com/lmarchetti/storefront-backend/pkg/errors"
	"github.com/lmarchetti/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

type stubCarts struct {
	lines   map[string][]cart.Line
	cleared []string
}

func (s *stubCarts) Get(ctx context.Context, token string) ([]cart.Line, error) {
	return append([]cart.Line{}, s.lines[token]...), nil
}

func (s *stubCarts) Clear(ctx context.Context, token string) error {
	s.cleared = append(s.cleared, token)
	delete(s.lines, token)
	return nil
}

type stubOrderRepo struct {
	orders map[uuid.UUID]*models.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{orders: map[uuid.UUID]*models.Order{}}
}

func (s *stubOrderRepo) WithTx(tx *gorm.DB) orders.Repository { return s }

func (s *stubOrderRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	order.ID = uuid.New()
	s.orders[order.ID] = order
	return order, nil
}

func (s *stubOrderRepo) CreateOrderLineItems(ctx context.Context, items []models.OrderLineItem) error {
	for _, item := range items {
		order := s.orders[item.OrderID]
		order.Lines = append(order.Lines, item)
	}
	return nil
}

func (s *stubOrderRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if order, ok := s.orders[id]; ok {
		return order, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubTx struct{}

func (stubTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func newCheckoutService(t *testing.T, carts *stubCarts, repo *stubOrderRepo) Service {
	t.Helper()
	cfg := config.CheckoutConfig{ShippingFlatFeeCents: 1000, Currency: "USD"}
	svc, err := NewService(carts, repo, stubTx{}, cfg, nil, logger.New(logger.Options{}))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestPlaceOrderPersistsAndClearsCart(t *testing.T) {
	t.Parallel()

	carts := &stubCarts{lines: map[string][]cart.Line{
		"tok": {
			{ProductID: 1, Name: "Tote", Slug: "tote", Price: 10.00, Quantity: 2},
			{ProductID: 2, Name: "Mug", Slug: "mug", Price: 5.00, Quantity: 1},
		},
	}}
	repo := newStubOrderRepo()
	svc := newCheckoutService(t, carts, repo)

	dto, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CartToken:       "tok",
		PaymentMethod:   enums.PaymentMethodCashOnDelivery,
		ShippingAddress: fullAddress(),
	})
	if err != nil {
		t.Fatalf("PlaceOrder failed: %v", err)
	}
	if dto.Subtotal != 25.00 || dto.ShippingFee != 10.00 || dto.Total != 35.00 {
		t.Fatalf("unexpected totals %+v", dto)
	}
	if dto.Status != enums.OrderStatusPending {
		t.Fatalf("expected pending status, got %s", dto.Status)
	}
	if len(dto.Lines) != 2 {
		t.Fatalf("expected two frozen lines, got %d", len(dto.Lines))
	}
	if len(carts.cleared) != 1 || carts.cleared[0] != "tok" {
		t.Fatalf("expected cart cleared, got %v", carts.cleared)
	}

	stored := repo.orders[dto.ID]
	if stored.SubtotalCents != 2500 || stored.ShippingCents != 1000 || stored.TotalCents != 3500 {
		t.Fatalf("unexpected persisted cents %+v", stored)
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	t.Parallel()

	svc := newCheckoutService(t, &stubCarts{lines: map[string][]cart.Line{}}, newStubOrderRepo())

	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CartToken:       "tok",
		PaymentMethod:   enums.PaymentMethodCashOnDelivery,
		ShippingAddress: fullAddress(),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestPlaceOrderInvalidFormDoesNotTouchCart(t *testing.T) {
	t.Parallel()

	carts := &stubCarts{lines: map[string][]cart.Line{
		"tok": {{ProductID: 1, Price: 10.00, Quantity: 1}},
	}}
	repo := newStubOrderRepo()
	svc := newCheckoutService(t, carts, repo)

	address := fullAddress()
	address.Email = ""
	_, err := svc.PlaceOrder(context.Background(), PlaceOrderInput{
		CartToken:       "tok",
		PaymentMethod:   enums.PaymentMethodCashOnDelivery,
		ShippingAddress: address,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(carts.cleared) != 0 {
		t.Fatal("cart must not be cleared on a rejected submission")
	}
	if len(repo.orders) != 0 {
		t.Fatal("no order may be created on a rejected submission")
	}
}

func TestPreviewTotals(t *testing.T) {
	t.Parallel()

	carts := &stubCarts{lines: map[string][]cart.Line{
		"tok": {{ProductID: 1, Price: 55.00, Quantity: 3}},
	}}
	svc := newCheckoutService(t, carts, newStubOrderRepo())

	totals, err := svc.Preview(context.Background(), "tok")
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}
	if got := totals.Total.StringFixed(2); got != "175.00" {
		t.Fatalf("expected total 175.00, got %s", got)
	}
}

func TestNewServiceRejectsBadCurrency(t *testing.T) {
	t.Parallel()

	cfg := config.CheckoutConfig{ShippingFlatFeeCents: 1000, Currency: "doubloons"}
	_, err := NewService(&stubCarts{}, newStubOrderRepo(), stubTx{}, cfg, nil, logger.New(logger.Options{}))
	if err == nil {
		t.Fatal("expected currency rejection")
	}
}
