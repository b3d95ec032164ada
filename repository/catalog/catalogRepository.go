package catalogrepo

import "github.com/Uday-Kumarr/clickncut-main/model"

type Repo interface {
	List() []model.Product
	ByID(id string) (*model.Product, bool)
	PriceBounds() (min, max float64)
}

type repo struct {
	items []model.Product
	byID  map[string]int
}

func New() Repo {
	r := &repo{
		items: products,
		byID:  make(map[string]int, len(products)),
	}
	for i, p := range products {
		r.byID[p.ID] = i
	}
	return r
}

func (r *repo) List() []model.Product {
	out := make([]model.Product, len(r.items))
	copy(out, r.items)
	return out
}

func (r *repo) ByID(id string) (*model.Product, bool) {
	i, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	p := r.items[i]
	return &p, true
}

func (r *repo) PriceBounds() (float64, float64) {
	if len(r.items) == 0 {
		return 0, 0
	}
	min, max := r.items[0].Price, r.items[0].Price
	for _, p := range r.items[1:] {
		if p.Price < min {
			min = p.Price
		}
		if p.Price > max {
			max = p.Price
		}
	}
	return min, max
}
