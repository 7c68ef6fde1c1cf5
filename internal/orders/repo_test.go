package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lmarchetti/storefront-backend/pkg/db/models"
	"github.com/lmarchetti/storefront-backend/pkg/enums"
	"github.com/lmarchetti/storefront-backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	ordersTable := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  cart_token TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'pending',
  payment_method TEXT NOT NULL,
  shipping_address TEXT,
  currency TEXT NOT NULL DEFAULT 'USD',
  subtotal_cents INTEGER NOT NULL DEFAULT 0,
  shipping_cents INTEGER NOT NULL DEFAULT 0,
  total_cents INTEGER NOT NULL DEFAULT 0,
  created_at DATETIME,
  updated_at DATETIME
);`
	lineItemsTable := `
CREATE TABLE IF NOT EXISTS order_line_items (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id TEXT NOT NULL,
  product_id INTEGER NOT NULL,
  name TEXT NOT NULL,
  slug TEXT NOT NULL,
  image TEXT,
  unit_price_cents INTEGER NOT NULL,
  quantity INTEGER NOT NULL,
  selected_variants TEXT,
  selected_variants_display TEXT,
  created_at DATETIME
);`
	require.NoError(t, db.Exec(ordersTable).Error)
	require.NoError(t, db.Exec(lineItemsTable).Error)
	return db
}

func placeTestOrder(t *testing.T, repo Repository) *models.Order {
	t.Helper()

	order := &models.Order{
		ID:            uuid.New(),
		CartToken:     uuid.NewString(),
		Status:        enums.OrderStatusPending,
		PaymentMethod: enums.PaymentMethodCashOnDelivery,
		ShippingAddress: &types.Address{
			Name:    "Ada Lovelace",
			Line1:   "1 Analytical Way",
			City:    "London",
			Country: "GB",
		},
		Currency:      enums.CurrencyUSD,
		SubtotalCents: 2500,
		ShippingCents: 1000,
		TotalCents:    3500,
	}
	_, err := repo.CreateOrder(context.Background(), order)
	require.NoError(t, err)
	return order
}

func TestRepositoryCreateAndFind(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	order := placeTestOrder(t, repo)

	items := []models.OrderLineItem{
		{
			OrderID:          order.ID,
			ProductID:        1,
			Name:             "Canvas Tote",
			Slug:             "canvas-tote",
			Image:            "red-1.jpg",
			UnitPriceCents:   5500,
			Quantity:         3,
			SelectedVariants: types.VariantSelection{"10": 100},
			SelectedVariantsDisplay: types.SelectionDisplay{
				"Color": {ID: 100, Value: "Red", PriceAdjustment: 5.00},
			},
		},
		{
			OrderID:        order.ID,
			ProductID:      2,
			Name:           "Enamel Mug",
			Slug:           "enamel-mug",
			UnitPriceCents: 1250,
			Quantity:       1,
		},
	}
	require.NoError(t, repo.CreateOrderLineItems(ctx, items))

	loaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Lines, 2)
	assert.Equal(t, int64(3500), loaded.TotalCents)
	assert.Equal(t, enums.OrderStatusPending, loaded.Status)
	require.NotNil(t, loaded.ShippingAddress)
	assert.Equal(t, "Ada Lovelace", loaded.ShippingAddress.Name)

	first := loaded.Lines[0]
	assert.Equal(t, "canvas-tote", first.Slug)
	assert.Equal(t, int64(100), first.SelectedVariants["10"])
	assert.Equal(t, "Red", first.SelectedVariantsDisplay["Color"].Value)
}

func TestRepositoryCreateOrderLineItemsEmpty(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.CreateOrderLineItems(context.Background(), nil))
}

func TestRepositoryFindMissingOrder(t *testing.T) {
	db := setupOrdersTestDB(t)
	repo := NewRepository(db)

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
