package catalog

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Uday-Kumarr/clickncut-main/model"
	catalogsvc "github.com/Uday-Kumarr/clickncut-main/service/catalog"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc catalogsvc.Service
	Log *slog.Logger
}

// List
// @Summary      List products
// @Description  Catalog projected through category, search and price filters
// @Tags         products
// @Produce      json
// @Param        category   query  string  false  "camera|lens|accessory|editing|lighting|drone|all"
// @Param        q          query  string  false  "case-insensitive match on name and description"
// @Param        min_price  query  number  false  "inclusive lower bound"
// @Param        max_price  query  number  false  "inclusive upper bound"
// @Success      200  {object}  map[string]any
// @Router       /v1/products [get]
func (h *Controller) List(c echo.Context) error {
	lo, hi := h.Svc.PriceBounds()

	// Unrecognized category values fall back to "all".
	cat, _ := model.ParseCategory(c.QueryParam("category"))

	f := catalogsvc.Filter{
		Category: cat,
		Search:   c.QueryParam("q"),
		MinPrice: lo,
		MaxPrice: hi,
	}
	if v := c.QueryParam("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid min_price"})
		}
		f.MinPrice = p
	}
	if v := c.QueryParam("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid max_price"})
		}
		f.MaxPrice = p
	}

	rows := h.Svc.List(f)
	return c.JSON(http.StatusOK, ListResp{
		Data:        rows,
		Count:       len(rows),
		PriceBounds: PriceBounds{Min: lo, Max: hi},
	})
}

// Detail
// @Summary      Product detail
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "product id"
// @Success      200  {object}  model.Product
// @Failure      404  {object}  map[string]any
// @Router       /v1/products/{id} [get]
func (h *Controller) Detail(c echo.Context) error {
	row, ok := h.Svc.Detail(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	}
	return c.JSON(http.StatusOK, row)
}

// Quote
// @Summary      Rental quote
// @Description  Display-context figure: price x quantity x days
// @Tags         products
// @Produce      json
// @Param        id        path   string  true   "product id"
// @Param        quantity  query  int     false  "defaults to 1"
// @Param        days      query  int     false  "defaults to 1"
// @Success      200  {object}  QuoteResp
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /v1/products/{id}/quote [get]
func (h *Controller) Quote(c echo.Context) error {
	quantity, err := intParam(c.QueryParam("quantity"), 1)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid quantity"})
	}
	days, err := intParam(c.QueryParam("days"), 1)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid days"})
	}

	total, ok := h.Svc.Quote(c.Param("id"), quantity, days)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
	}
	return c.JSON(http.StatusOK, QuoteResp{
		ProductID:  c.Param("id"),
		Quantity:   quantity,
		RentalDays: days,
		Total:      total,
	})
}

func intParam(v string, def int) (int, error) {
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, errInvalidParam
	}
	return n, nil
}

var errInvalidParam = errors.New("invalid parameter")
