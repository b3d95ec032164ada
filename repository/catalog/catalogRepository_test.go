package catalogrepo

import (
	"testing"

	"github.com/Uday-Kumarr/clickncut-main/model"
)

func TestDataset(t *testing.T) {
	r := New()

	items := r.List()
	if len(items) != 24 {
		t.Fatalf("catalog has %d products; want 24", len(items))
	}

	seen := map[string]bool{}
	for _, p := range items {
		if seen[p.ID] {
			t.Fatalf("duplicate product id %q", p.ID)
		}
		seen[p.ID] = true

		if _, ok := model.ParseCategory(string(p.Category)); !ok {
			t.Fatalf("product %s has unrecognized category %q", p.ID, p.Category)
		}
		if p.Price < 0 {
			t.Fatalf("product %s has negative price", p.ID)
		}
		if p.Stock < 0 {
			t.Fatalf("product %s has negative stock", p.ID)
		}
		if !p.RentalAvailable && p.Stock != model.UnlimitedStock {
			t.Fatalf("non-rental product %s should carry the unlimited-stock sentinel", p.ID)
		}
	}
}

func TestByID(t *testing.T) {
	r := New()

	p, ok := r.ByID("1")
	if !ok || p.Name != "Canon EOS R5" {
		t.Fatalf("ByID(1) = %+v, %v", p, ok)
	}

	if _, ok := r.ByID("999"); ok {
		t.Fatal("ByID(999) found a product")
	}
}

func TestList_CopiesDataset(t *testing.T) {
	r := New()

	a := r.List()
	a[0].Name = "mutated"

	b := r.List()
	if b[0].Name == "mutated" {
		t.Fatal("List must not expose the backing dataset")
	}
}

func TestPriceBounds(t *testing.T) {
	r := New()
	lo, hi := r.PriceBounds()
	if lo != 1200 || hi != 18500 {
		t.Fatalf("bounds = %v..%v; want 1200..18500", lo, hi)
	}
}
