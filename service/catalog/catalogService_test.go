package catalogsvc_test

import (
	"testing"

	"github.com/Uday-Kumarr/clickncut-main/model"
	catalogrepo "github.com/Uday-Kumarr/clickncut-main/repository/catalog"
	catalogsvc "github.com/Uday-Kumarr/clickncut-main/service/catalog"

	"github.com/stretchr/testify/require"
)

func newSvc() catalogsvc.Service {
	return catalogsvc.New(catalogrepo.New())
}

func fullBounds(t *testing.T, s catalogsvc.Service) (float64, float64) {
	t.Helper()
	lo, hi := s.PriceBounds()
	require.Less(t, lo, hi)
	return lo, hi
}

func TestFilter_LensWithinPriceRange(t *testing.T) {
	s := newSvc()

	rows := s.List(catalogsvc.Filter{
		Category: model.CategoryLens,
		MinPrice: 0,
		MaxPrice: 6000,
	})
	require.NotEmpty(t, rows)
	for _, p := range rows {
		require.Equal(t, model.CategoryLens, p.Category)
		require.LessOrEqual(t, p.Price, 6000.0)
	}
	// 5200, 4500 and 3800 day-rates; the 6200 telephoto is excluded.
	require.Len(t, rows, 3)
}

func TestFilter_CategoryAllKeepsEverything(t *testing.T) {
	s := newSvc()
	lo, hi := fullBounds(t, s)

	rows := s.List(catalogsvc.Filter{Category: model.CategoryAll, MinPrice: lo, MaxPrice: hi})
	require.Len(t, rows, 24)
}

func TestFilter_SearchCaseInsensitive(t *testing.T) {
	s := newSvc()
	lo, hi := fullBounds(t, s)

	upper := s.List(catalogsvc.Filter{Category: model.CategoryAll, Search: "CANON", MinPrice: lo, MaxPrice: hi})
	lower := s.List(catalogsvc.Filter{Category: model.CategoryAll, Search: "canon", MinPrice: lo, MaxPrice: hi})
	require.Equal(t, lower, upper)
	require.NotEmpty(t, lower)
	for _, p := range lower {
		require.Contains(t, p.Name+" "+p.Description, "Canon")
	}
}

func TestFilter_SearchMatchesDescription(t *testing.T) {
	s := newSvc()
	lo, hi := fullBounds(t, s)

	rows := s.List(catalogsvc.Filter{Category: model.CategoryAll, Search: "waterproof", MinPrice: lo, MaxPrice: hi})
	require.NotEmpty(t, rows)
}

func TestFilter_PredicateOrderIndependent(t *testing.T) {
	s := newSvc()
	lo, hi := fullBounds(t, s)

	combined := s.List(catalogsvc.Filter{Category: model.CategoryDrone, MinPrice: 0, MaxPrice: 13000})

	byCategory := s.List(catalogsvc.Filter{Category: model.CategoryDrone, MinPrice: lo, MaxPrice: hi})
	intersect := []model.Product{}
	for _, p := range byCategory {
		if p.Price >= 0 && p.Price <= 13000 {
			intersect = append(intersect, p)
		}
	}
	require.Equal(t, intersect, combined)
}

func TestFilter_NoMatches(t *testing.T) {
	s := newSvc()

	rows := s.List(catalogsvc.Filter{
		Category: model.CategoryDrone,
		Search:   "hasselblad",
		MinPrice: 0,
		MaxPrice: 100,
	})
	require.NotNil(t, rows)
	require.Empty(t, rows)
}

func TestFilter_BoundsInclusive(t *testing.T) {
	s := newSvc()

	// Exactly on both bounds: the 18500 drone and the 1200 ring light.
	rows := s.List(catalogsvc.Filter{Category: model.CategoryAll, MinPrice: 18500, MaxPrice: 18500})
	require.Len(t, rows, 1)
	require.Equal(t, "DJI Mavic 3 Pro", rows[0].Name)

	rows = s.List(catalogsvc.Filter{Category: model.CategoryAll, MinPrice: 1200, MaxPrice: 1200})
	require.Len(t, rows, 1)
	require.Equal(t, "Neewer LED Ring Light", rows[0].Name)
}

func TestPriceBounds(t *testing.T) {
	s := newSvc()
	lo, hi := s.PriceBounds()
	require.Equal(t, 1200.0, lo)
	require.Equal(t, 18500.0, hi)
}

func TestQuote(t *testing.T) {
	s := newSvc()

	total, ok := s.Quote("1", 2, 3)
	require.True(t, ok)
	require.Equal(t, 75000.0, total) // 12500 x 2 x 3

	_, ok = s.Quote("999", 1, 1)
	require.False(t, ok)

	// Non-positive inputs clamp to 1.
	total, ok = s.Quote("1", 0, 0)
	require.True(t, ok)
	require.Equal(t, 12500.0, total)
}

func TestDetail(t *testing.T) {
	s := newSvc()

	p, ok := s.Detail("11")
	require.True(t, ok)
	require.Equal(t, "DJI Mavic 3 Pro", p.Name)
	require.Equal(t, model.CategoryDrone, p.Category)

	_, ok = s.Detail("does-not-exist")
	require.False(t, ok)
}
