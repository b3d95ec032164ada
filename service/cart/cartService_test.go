// service/cart/cart_service_test.go
package cartsvc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Uday-Kumarr/clickncut-main/model"
	cartsvc "github.com/Uday-Kumarr/clickncut-main/service/cart"
)

type repoMock struct {
	items   map[string][]model.CartItem
	loadErr error
	saveErr error
	saves   int
}

func newRepoMock() *repoMock {
	return &repoMock{items: map[string][]model.CartItem{}}
}

func (m *repoMock) Load(ctx context.Context, owner string) ([]model.CartItem, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	out := make([]model.CartItem, len(m.items[owner]))
	copy(out, m.items[owner])
	return out, nil
}

func (m *repoMock) Save(ctx context.Context, owner string, items []model.CartItem) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	cp := make([]model.CartItem, len(items))
	copy(cp, items)
	m.items[owner] = cp
	return nil
}

func (m *repoMock) Drop(ctx context.Context, owner string) error {
	delete(m.items, owner)
	return nil
}

var productA = model.Product{ID: "a1", Name: "Product A", Price: 100, Image: "a.jpg", Stock: 5}
var productB = model.Product{ID: "b2", Name: "Product B", Price: 250, Image: "b.jpg", Stock: 3}

func TestAddItem_MergesSameProduct(t *testing.T) {
	ctx := context.Background()
	s := cartsvc.New(newRepoMock(), 0)

	cart, n, err := s.AddItem(ctx, "u1", productA, 1, 1)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	if n.Title != "Added to cart" {
		t.Fatalf("first add notice = %q; want Added to cart", n.Title)
	}

	cart, n, err = s.AddItem(ctx, "u1", productA, 2, 7)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	if n.Title != "Cart updated" {
		t.Fatalf("second add notice = %q; want Cart updated", n.Title)
	}

	if len(cart.Items) != 1 {
		t.Fatalf("got %d line items; want 1", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Fatalf("quantity = %d; want 3", cart.Items[0].Quantity)
	}
	// A repeat add never rewrites the rental days recorded at creation.
	if cart.Items[0].RentalDays != 1 {
		t.Fatalf("rental days = %d; want 1", cart.Items[0].RentalDays)
	}
	if cart.TotalPrice != 300 {
		t.Fatalf("total = %v; want 300", cart.TotalPrice)
	}
	if cart.ItemCount != 3 {
		t.Fatalf("item count = %d; want 3", cart.ItemCount)
	}
}

func TestAddItem_DefaultsRentalDays(t *testing.T) {
	ctx := context.Background()
	s := cartsvc.New(newRepoMock(), 0)

	cart, _, err := s.AddItem(ctx, "u1", productA, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	if cart.Items[0].RentalDays != 1 {
		t.Fatalf("rental days = %d; want 1", cart.Items[0].RentalDays)
	}
}

func TestRemoveItem_Idempotent(t *testing.T) {
	ctx := context.Background()
	m := newRepoMock()
	s := cartsvc.New(m, 0)

	if _, _, err := s.AddItem(ctx, "u1", productA, 1, 1); err != nil {
		t.Fatal(err)
	}

	cart, n, err := s.RemoveItem(ctx, "u1", productA.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("got %d items after remove; want 0", len(cart.Items))
	}
	if n.Message != "Product A removed from cart" {
		t.Fatalf("notice = %q", n.Message)
	}

	saves := m.saves
	cart, n, err = s.RemoveItem(ctx, "u1", productA.ID)
	if err != nil {
		t.Fatalf("second remove must not error: %v", err)
	}
	if n != (cartsvc.Notice{}) {
		t.Fatalf("second remove emitted notice %+v", n)
	}
	if m.saves != saves {
		t.Fatal("second remove persisted a write")
	}
	if len(cart.Items) != 0 {
		t.Fatalf("got %d items; want 0", len(cart.Items))
	}
}

func TestSetQuantity_ZeroRemoves(t *testing.T) {
	ctx := context.Background()
	s := cartsvc.New(newRepoMock(), 0)

	if _, _, err := s.AddItem(ctx, "u1", productA, 2, 1); err != nil {
		t.Fatal(err)
	}

	cart, n, err := s.SetQuantity(ctx, "u1", productA.ID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("got %d items; want 0", len(cart.Items))
	}
	if n.Title != "Item removed" {
		t.Fatalf("notice = %q; want Item removed", n.Title)
	}
}

func TestSetQuantity_Overwrites(t *testing.T) {
	ctx := context.Background()
	s := cartsvc.New(newRepoMock(), 0)

	if _, _, err := s.AddItem(ctx, "u1", productA, 2, 1); err != nil {
		t.Fatal(err)
	}

	cart, _, err := s.SetQuantity(ctx, "u1", productA.ID, 5)
	if err != nil {
		t.Fatal(err)
	}
	if cart.Items[0].Quantity != 5 || cart.TotalPrice != 500 {
		t.Fatalf("quantity=%d total=%v; want 5, 500", cart.Items[0].Quantity, cart.TotalPrice)
	}
}

func TestSetQuantity_UnknownProductNoop(t *testing.T) {
	ctx := context.Background()
	m := newRepoMock()
	s := cartsvc.New(m, 0)

	if _, _, err := s.AddItem(ctx, "u1", productA, 1, 1); err != nil {
		t.Fatal(err)
	}
	saves := m.saves

	cart, _, err := s.SetQuantity(ctx, "u1", "nope", 9)
	if err != nil {
		t.Fatalf("unknown id must be a silent no-op: %v", err)
	}
	if m.saves != saves {
		t.Fatal("no-op persisted a write")
	}
	if cart.Items[0].Quantity != 1 {
		t.Fatalf("quantity changed to %d", cart.Items[0].Quantity)
	}
}

func TestSetRentalDays(t *testing.T) {
	ctx := context.Background()
	s := cartsvc.New(newRepoMock(), 0)

	if _, _, err := s.AddItem(ctx, "u1", productA, 1, 1); err != nil {
		t.Fatal(err)
	}

	cart, err := s.SetRentalDays(ctx, "u1", productA.ID, 7)
	if err != nil {
		t.Fatal(err)
	}
	if cart.Items[0].RentalDays != 7 {
		t.Fatalf("rental days = %d; want 7", cart.Items[0].RentalDays)
	}
	// Total never includes rental days.
	if cart.TotalPrice != 100 {
		t.Fatalf("total = %v; want 100", cart.TotalPrice)
	}

	cart, err = s.SetRentalDays(ctx, "u1", productA.ID, 0)
	if err != nil {
		t.Fatal(err)
	}
	if cart.Items[0].RentalDays != 7 {
		t.Fatalf("non-positive days overwrote to %d", cart.Items[0].RentalDays)
	}

	if _, err := s.SetRentalDays(ctx, "u1", "nope", 3); err != nil {
		t.Fatalf("unknown id must be a silent no-op: %v", err)
	}
}

func TestTotals_EmptyCart(t *testing.T) {
	ctx := context.Background()
	s := cartsvc.New(newRepoMock(), 0)

	cart, err := s.Get(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if cart.TotalPrice != 0 || cart.ItemCount != 0 || len(cart.Items) != 0 {
		t.Fatalf("empty cart totals: %+v", cart)
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	m := newRepoMock()
	s := cartsvc.New(m, 0)

	if _, _, err := s.AddItem(ctx, "u1", productA, 1, 1); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.AddItem(ctx, "u1", productB, 2, 1); err != nil {
		t.Fatal(err)
	}

	cart, n, err := s.Clear(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 0 {
		t.Fatalf("got %d items after clear", len(cart.Items))
	}
	if n.Title != "Cart cleared" {
		t.Fatalf("notice = %q", n.Title)
	}
	if _, ok := m.items["u1"]; ok {
		t.Fatal("persisted cart not destroyed")
	}
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	m := newRepoMock()
	s := cartsvc.New(m, 0)

	if _, _, err := s.AddItem(ctx, "u1", productA, 3, 1); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.AddItem(ctx, "u1", productB, 1, 1); err != nil {
		t.Fatal(err)
	}

	order, n, err := s.Checkout(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if order.TotalPrice != 550 || order.ItemCount != 4 {
		t.Fatalf("order = %+v; want total 550 count 4", order)
	}
	if n.Title != "Order placed successfully!" {
		t.Fatalf("notice = %q", n.Title)
	}

	cart, err := s.Get(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(cart.Items) != 0 {
		t.Fatal("cart survived checkout")
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	ctx := context.Background()
	s := cartsvc.New(newRepoMock(), 0)

	_, _, err := s.Checkout(ctx, "u1")
	if !errors.Is(err, cartsvc.ErrEmptyCart) {
		t.Fatalf("err = %v; want ErrEmptyCart", err)
	}
}

func TestAddItem_LoadError(t *testing.T) {
	ctx := context.Background()
	m := newRepoMock()
	m.loadErr = errors.New("store down")
	s := cartsvc.New(m, 0)

	if _, _, err := s.AddItem(ctx, "u1", productA, 1, 1); err == nil {
		t.Fatal("expected error when the store is unavailable")
	}
}
