package gallery

import (
	"testing"

	"github.com/lmarchetti/storefront-backend/pkg/db/models"
)

func TestResolveUsesOptionImages(t *testing.T) {
	t.Parallel()

	product := &models.Product{PrimaryImage: "main.jpg", Images: []string{"a.jpg", "b.jpg"}}
	option := &models.VariantOption{OptionImages: []string{"img1.jpg", "img2.jpg"}}

	got := Resolve(product, option)
	if len(got.Images) != 2 || got.Images[0] != "img1.jpg" || got.Images[1] != "img2.jpg" {
		t.Fatalf("expected option images in order, got %v", got.Images)
	}
	if got.ActiveIndex != 0 {
		t.Fatalf("active index must reset to 0, got %d", got.ActiveIndex)
	}
}

func TestResolveRevertsToProductGallery(t *testing.T) {
	t.Parallel()

	product := &models.Product{PrimaryImage: "main.jpg", Images: []string{"a.jpg", "b.jpg"}}
	option := &models.VariantOption{} // no option images

	got := Resolve(product, option)
	want := []string{"main.jpg", "a.jpg", "b.jpg"}
	if len(got.Images) != len(want) {
		t.Fatalf("expected %v, got %v", want, got.Images)
	}
	for i := range want {
		if got.Images[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got.Images)
		}
	}
	if got.ActiveIndex != 0 {
		t.Fatalf("active index must reset to 0, got %d", got.ActiveIndex)
	}
}

func TestResolveNilOptionFallsBack(t *testing.T) {
	t.Parallel()

	product := &models.Product{PrimaryImage: "main.jpg"}
	got := Resolve(product, nil)
	if len(got.Images) != 1 || got.Images[0] != "main.jpg" {
		t.Fatalf("expected product gallery, got %v", got.Images)
	}
}

func TestDefaultEmptyProduct(t *testing.T) {
	t.Parallel()

	if got := Default(nil); len(got.Images) != 0 {
		t.Fatalf("expected empty gallery for nil product, got %v", got.Images)
	}
	if got := Default(&models.Product{}); len(got.Images) != 0 {
		t.Fatalf("expected empty gallery for imageless product, got %v", got.Images)
	}
}

func TestResolveCopiesOptionImages(t *testing.T) {
	t.Parallel()

	option := &models.VariantOption{OptionImages: []string{"img1.jpg"}}
	got := Resolve(&models.Product{}, option)
	got.Images[0] = "mutated.jpg"
	if option.OptionImages[0] != "img1.jpg" {
		t.Fatal("gallery must not alias the option's backing slice")
	}
}
