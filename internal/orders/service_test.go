package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lmarchetti/storefront-backend/pkg/db/models"
	"github.com/lmarchetti/storefront-backend/pkg/enums"
	pkgerrors "github.com/lmarchetti/storefront-backend/pkg/errors"
	"gorm.io/gorm"
)

type stubRepo struct {
	orders map[uuid.UUID]*models.Order
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubRepo) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	return order, nil
}

func (s *stubRepo) CreateOrderLineItems(ctx context.Context, items []models.OrderLineItem) error {
	return nil
}

func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if order, ok := s.orders[id]; ok {
		return order, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func TestGetOrderMapsCentsToDollars(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	repo := &stubRepo{orders: map[uuid.UUID]*models.Order{
		id: {
			ID:            id,
			Status:        enums.OrderStatusPending,
			PaymentMethod: enums.PaymentMethodCashOnDelivery,
			Currency:      enums.CurrencyUSD,
			SubtotalCents: 2500,
			ShippingCents: 1000,
			TotalCents:    3500,
			Lines: []models.OrderLineItem{
				{ProductID: 1, Name: "Tote", Slug: "tote", UnitPriceCents: 1000, Quantity: 2},
				{ProductID: 2, Name: "Mug", Slug: "mug", UnitPriceCents: 500, Quantity: 1},
			},
		},
	}}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	dto, err := svc.GetOrder(context.Background(), id)
	if err != nil {
		t.Fatalf("GetOrder failed: %v", err)
	}
	if dto.Subtotal != 25.00 || dto.ShippingFee != 10.00 || dto.Total != 35.00 {
		t.Fatalf("unexpected totals %+v", dto)
	}
	if len(dto.Lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(dto.Lines))
	}
	if dto.Lines[0].Price != 10.00 {
		t.Fatalf("expected line price 10.00, got %v", dto.Lines[0].Price)
	}
}

func TestGetOrderNotFound(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubRepo{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.GetOrder(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestGetOrderNilID(t *testing.T) {
	t.Parallel()

	svc, err := NewService(&stubRepo{})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}

	_, err = svc.GetOrder(context.Background(), uuid.Nil)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}
