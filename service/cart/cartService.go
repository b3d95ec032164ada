package cartsvc

import (
	"context"
	"errors"
	"time"

	"github.com/Uday-Kumarr/clickncut-main/model"
)

var ErrEmptyCart = errors.New("cart is empty")

// Notice is the user-facing message a mutation produces, the toast of
// the original storefront. A zero Notice means nothing to show.
type Notice struct {
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
}

// Cart is a line-item collection plus its derived totals. TotalPrice is
// price x quantity; rental days stay a display concern (see the catalog
// quote).
type Cart struct {
	Items      []model.CartItem `json:"items"`
	TotalPrice float64          `json:"total_price"`
	ItemCount  int              `json:"item_count"`
}

// Order is the summary returned by checkout.
type Order struct {
	TotalPrice float64   `json:"total_price"`
	ItemCount  int       `json:"item_count"`
	PlacedAt   time.Time `json:"placed_at"`
}

type Repo interface {
	Load(ctx context.Context, ownerID string) ([]model.CartItem, error)
	Save(ctx context.Context, ownerID string, items []model.CartItem) error
	Drop(ctx context.Context, ownerID string) error
}

type Service interface {
	Get(ctx context.Context, ownerID string) (*Cart, error)
	AddItem(ctx context.Context, ownerID string, p model.Product, quantity, rentalDays int) (*Cart, Notice, error)
	RemoveItem(ctx context.Context, ownerID, productID string) (*Cart, Notice, error)
	SetQuantity(ctx context.Context, ownerID, productID string, quantity int) (*Cart, Notice, error)
	SetRentalDays(ctx context.Context, ownerID, productID string, days int) (*Cart, error)
	Clear(ctx context.Context, ownerID string) (*Cart, Notice, error)
	Checkout(ctx context.Context, ownerID string) (*Order, Notice, error)
}

type service struct {
	r     Repo
	delay time.Duration
}

// New builds the cart store. delay is the simulated order-processing
// time applied during checkout.
func New(r Repo, delay time.Duration) Service {
	return &service{r: r, delay: delay}
}

func (s *service) Get(ctx context.Context, ownerID string) (*Cart, error) {
	items, err := s.r.Load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return summarize(items), nil
}

// AddItem merges into an existing line item for the same product id,
// leaving its rental days untouched, or appends a new one. Stock is the
// caller's concern.
func (s *service) AddItem(ctx context.Context, ownerID string, p model.Product, quantity, rentalDays int) (*Cart, Notice, error) {
	items, err := s.r.Load(ctx, ownerID)
	if err != nil {
		return nil, Notice{}, err
	}

	var n Notice
	merged := false
	for i := range items {
		if items[i].ID == p.ID {
			items[i].Quantity += quantity
			merged = true
			n = Notice{Title: "Cart updated", Message: p.Name + " quantity updated in cart"}
			break
		}
	}
	if !merged {
		if rentalDays < 1 {
			rentalDays = 1
		}
		items = append(items, model.CartItem{
			ID:         p.ID,
			Name:       p.Name,
			Price:      p.Price,
			Image:      p.Image,
			Quantity:   quantity,
			RentalDays: rentalDays,
		})
		n = Notice{Title: "Added to cart", Message: p.Name + " added to cart"}
	}

	if err := s.r.Save(ctx, ownerID, items); err != nil {
		return nil, Notice{}, err
	}
	return summarize(items), n, nil
}

// RemoveItem deletes the line item if present. Removing an absent id is
// a no-op, not an error.
func (s *service) RemoveItem(ctx context.Context, ownerID, productID string) (*Cart, Notice, error) {
	items, err := s.r.Load(ctx, ownerID)
	if err != nil {
		return nil, Notice{}, err
	}

	var n Notice
	kept := items[:0]
	for _, it := range items {
		if it.ID == productID {
			n = Notice{Title: "Item removed", Message: it.Name + " removed from cart"}
			continue
		}
		kept = append(kept, it)
	}
	if n == (Notice{}) {
		return summarize(kept), n, nil
	}

	if err := s.r.Save(ctx, ownerID, kept); err != nil {
		return nil, Notice{}, err
	}
	return summarize(kept), n, nil
}

// SetQuantity overwrites the quantity in place. A non-positive quantity
// removes the item. An unknown product id is a silent no-op.
func (s *service) SetQuantity(ctx context.Context, ownerID, productID string, quantity int) (*Cart, Notice, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, ownerID, productID)
	}

	items, err := s.r.Load(ctx, ownerID)
	if err != nil {
		return nil, Notice{}, err
	}
	changed := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
			changed = true
			break
		}
	}
	if !changed {
		return summarize(items), Notice{}, nil
	}

	if err := s.r.Save(ctx, ownerID, items); err != nil {
		return nil, Notice{}, err
	}
	return summarize(items), Notice{}, nil
}

// SetRentalDays overwrites the rental-day count. Non-positive values
// and unknown ids are silent no-ops.
func (s *service) SetRentalDays(ctx context.Context, ownerID, productID string, days int) (*Cart, error) {
	items, err := s.r.Load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		return summarize(items), nil
	}
	changed := false
	for i := range items {
		if items[i].ID == productID {
			items[i].RentalDays = days
			changed = true
			break
		}
	}
	if !changed {
		return summarize(items), nil
	}

	if err := s.r.Save(ctx, ownerID, items); err != nil {
		return nil, err
	}
	return summarize(items), nil
}

func (s *service) Clear(ctx context.Context, ownerID string) (*Cart, Notice, error) {
	if err := s.r.Drop(ctx, ownerID); err != nil {
		return nil, Notice{}, err
	}
	n := Notice{Title: "Cart cleared", Message: "All items have been removed from your cart"}
	return summarize(nil), n, nil
}

// Checkout simulates order placement: a processing delay, then the cart
// is destroyed and a summary returned.
func (s *service) Checkout(ctx context.Context, ownerID string) (*Order, Notice, error) {
	items, err := s.r.Load(ctx, ownerID)
	if err != nil {
		return nil, Notice{}, err
	}
	if len(items) == 0 {
		return nil, Notice{}, ErrEmptyCart
	}

	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return nil, Notice{}, ctx.Err()
		}
	}

	c := summarize(items)
	if err := s.r.Drop(ctx, ownerID); err != nil {
		return nil, Notice{}, err
	}

	o := &Order{TotalPrice: c.TotalPrice, ItemCount: c.ItemCount, PlacedAt: time.Now()}
	n := Notice{
		Title:   "Order placed successfully!",
		Message: "Thank you for your purchase. We'll process your order soon.",
	}
	return o, n, nil
}

func summarize(items []model.CartItem) *Cart {
	c := &Cart{Items: items}
	if c.Items == nil {
		c.Items = []model.CartItem{}
	}
	for _, it := range c.Items {
		c.ItemCount += it.Quantity
		c.TotalPrice += it.Price * float64(it.Quantity)
	}
	return c
}
