package catalogsvc

import (
	"strings"

	"github.com/Uday-Kumarr/clickncut-main/model"
)

// Filter is the full filter state applied to the catalog. Predicates
// are AND-combined and independent of each other.
type Filter struct {
	Category model.Category
	Search   string
	MinPrice float64
	MaxPrice float64
}

type Repo interface {
	List() []model.Product
	ByID(id string) (*model.Product, bool)
	PriceBounds() (min, max float64)
}

type Service interface {
	List(f Filter) []model.Product
	Detail(id string) (*model.Product, bool)
	PriceBounds() (min, max float64)

	// Quote is the product-detail figure: price x quantity x days.
	// The cart total deliberately stays price x quantity.
	Quote(id string, quantity, days int) (float64, bool)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(f Filter) []model.Product {
	term := strings.ToLower(f.Search)

	out := []model.Product{}
	for _, p := range s.r.List() {
		if f.Category != model.CategoryAll && p.Category != f.Category {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if p.Price < f.MinPrice || p.Price > f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s *service) Detail(id string) (*model.Product, bool) { return s.r.ByID(id) }

func (s *service) PriceBounds() (float64, float64) { return s.r.PriceBounds() }

func (s *service) Quote(id string, quantity, days int) (float64, bool) {
	p, ok := s.r.ByID(id)
	if !ok {
		return 0, false
	}
	if quantity < 1 {
		quantity = 1
	}
	if days < 1 {
		days = 1
	}
	return p.Price * float64(quantity) * float64(days), true
}
