package cart

import (
	"context"
	"testing"

	"github.com/lmarchetti/storefront-backend/pkg/db/models"
	pkgerrors "github.com/lmarchetti/storefront-backend/pkg/errors"
	"github.com/lmarchetti/storefront-backend/pkg/types"
)

type stubStore struct {
	docs map[string][]Line
}

func newStubStore() *stubStore {
	return &stubStore{docs: map[string][]Line{}}
}

func (s *stubStore) Load(ctx context.Context, token string) ([]Line, error) {
	return append([]Line{}, s.docs[token]...), nil
}

func (s *stubStore) Save(ctx context.Context, token string, lines []Line) error {
	s.docs[token] = lines
	return nil
}

func (s *stubStore) Clear(ctx context.Context, token string) error {
	delete(s.docs, token)
	return nil
}

type stubProductLoader struct {
	product *models.Product
}

func (s stubProductLoader) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	if s.product == nil || s.product.ID != id {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return s.product, nil
}

func toteProduct() *models.Product {
	return &models.Product{
		ID:           1,
		Name:         "Canvas Tote",
		Slug:         "canvas-tote",
		PriceCents:   5000,
		PrimaryImage: "main.jpg",
		Images:       []string{"alt.jpg"},
		IsActive:     true,
		Variants: []models.ProductVariant{
			{
				ID:   10,
				Name: "Color",
				Options: []models.VariantOption{
					{ID: 100, Value: "Red", PriceAdjustmentCents: 500, Stock: 4, OptionImages: []string{"red-1.jpg", "red-2.jpg"}},
					{ID: 101, Value: "Blue", Stock: 9},
				},
			},
			{
				ID:   20,
				Name: "Size",
				Options: []models.VariantOption{
					{ID: 200, Value: "M", Stock: 3},
					{ID: 201, Value: "L", Stock: 2},
				},
			},
		},
	}
}

func newTestService(t *testing.T, store Store, product *models.Product) Service {
	t.Helper()
	svc, err := NewService(store, stubProductLoader{product: product}, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestAddItemThenMerge(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	svc := newTestService(t, store, toteProduct())
	ctx := context.Background()
	selection := types.VariantSelection{"10": 100, "20": 201}

	lines, err := svc.AddItem(ctx, "tok", AddItemInput{ProductID: 1, Quantity: 2, Selection: selection})
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0].Price != 55.00 {
		t.Fatalf("expected effective price 55.00, got %v", lines[0].Price)
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", lines[0].Quantity)
	}

	// Same product, same two selections again: one merged line, latest price.
	lines, err = svc.AddItem(ctx, "tok", AddItemInput{ProductID: 1, Quantity: 1, Selection: selection})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected merged single line, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", lines[0].Quantity)
	}
	if lines[0].Price != 55.00 {
		t.Fatalf("expected price 55.00, got %v", lines[0].Price)
	}
}

func TestAddItemDifferentSelectionAppends(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	svc := newTestService(t, store, toteProduct())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "tok", AddItemInput{ProductID: 1, Quantity: 1, Selection: types.VariantSelection{"10": 100}}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	lines, err := svc.AddItem(ctx, "tok", AddItemInput{ProductID: 1, Quantity: 1, Selection: types.VariantSelection{"10": 101}})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(lines))
	}
}

func TestAddItemSnapshotsDisplayAndImage(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	svc := newTestService(t, store, toteProduct())

	lines, err := svc.AddItem(context.Background(), "tok", AddItemInput{ProductID: 1, Quantity: 1, Selection: types.VariantSelection{"10": 100}})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	line := lines[0]
	if line.Image != "red-1.jpg" {
		t.Fatalf("expected option image snapshot, got %q", line.Image)
	}
	color, ok := line.SelectedVariantsDisplay["Color"]
	if !ok {
		t.Fatal("expected Color display snapshot")
	}
	if color.Value != "Red" || color.PriceAdjustment != 5.00 {
		t.Fatalf("unexpected snapshot %+v", color)
	}
}

func TestAddItemWithoutOptionImagesUsesPrimary(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	svc := newTestService(t, store, toteProduct())

	lines, err := svc.AddItem(context.Background(), "tok", AddItemInput{ProductID: 1, Quantity: 1, Selection: types.VariantSelection{"10": 101}})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if lines[0].Image != "main.jpg" {
		t.Fatalf("expected primary image, got %q", lines[0].Image)
	}
}

func TestAddItemValidation(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubStore(), toteProduct())
	ctx := context.Background()

	cases := []struct {
		name  string
		token string
		input AddItemInput
	}{
		{name: "missing token", token: "", input: AddItemInput{ProductID: 1, Quantity: 1}},
		{name: "missing product", token: "tok", input: AddItemInput{Quantity: 1}},
		{name: "zero quantity", token: "tok", input: AddItemInput{ProductID: 1}},
		{name: "negative quantity", token: "tok", input: AddItemInput{ProductID: 1, Quantity: -2}},
	}
	for _, tc := range cases {
		if _, err := svc.AddItem(ctx, tc.token, tc.input); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("%s: expected validation code, got %v", tc.name, err)
		}
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, newStubStore(), toteProduct())
	_, err := svc.AddItem(context.Background(), "tok", AddItemInput{ProductID: 42, Quantity: 1})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddItemInactiveProduct(t *testing.T) {
	t.Parallel()

	product := toteProduct()
	product.IsActive = false
	svc := newTestService(t, newStubStore(), product)

	_, err := svc.AddItem(context.Background(), "tok", AddItemInput{ProductID: 1, Quantity: 1})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	t.Parallel()

	store := newStubStore()
	svc := newTestService(t, store, toteProduct())
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, "tok", AddItemInput{ProductID: 1, Quantity: 1}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Clear(ctx, "tok"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	lines, err := svc.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}
}
