package cart

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Uday-Kumarr/clickncut-main/app/echoServer/jwtx"
	"github.com/Uday-Kumarr/clickncut-main/model"
	cartsvc "github.com/Uday-Kumarr/clickncut-main/service/cart"
	catalogsvc "github.com/Uday-Kumarr/clickncut-main/service/catalog"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc     cartsvc.Service
	Catalog catalogsvc.Service
	V       *validator.Validate
	Log     *slog.Logger
}

// GET /v1/cart
// @Summary      Current cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  cartsvc.Cart
// @Failure      401  {object}  map[string]any
// @Router       /v1/cart [get]
// @Security     BearerAuth
func (h *Controller) Get(c echo.Context) error {
	owner, err := jwtx.SubjectFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	cart, err := h.Svc.Get(c.Request().Context(), owner)
	if err != nil {
		h.logErr(c, "cart load failed", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, cart)
}

// AddItem validates the product reference and stock here, before the
// store operation; the cart service itself does not re-check stock.
// @Summary      Add to cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        payload  body  model.AddItemReq  true  "Add payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Failure      404  {object}  map[string]any "unknown product"
// @Failure      422  {object}  map[string]any "quantity exceeds stock"
// @Router       /v1/cart/items [post]
// @Security     BearerAuth
func (h *Controller) AddItem(c echo.Context) error {
	owner, err := jwtx.SubjectFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	var req model.AddItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"product_id": "required", "quantity": "gt 0"},
		})
	}

	p, ok := h.Catalog.Detail(req.ProductID)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "unknown product"})
	}
	if req.Quantity > p.Stock {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "quantity exceeds stock"})
	}

	cart, notice, err := h.Svc.AddItem(c.Request().Context(), owner, *p, req.Quantity, req.RentalDays)
	if err != nil {
		h.logErr(c, "cart add failed", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"cart": cart, "notice": notice})
}

// PUT /v1/cart/items/:id
// @Summary      Update a line item
// @Description  Overwrites quantity (<=0 removes) and/or rental days (<=0 ignored)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id       path  string              true  "product id"
// @Param        payload  body  model.UpdateItemReq  true  "Update payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any
// @Router       /v1/cart/items/{id} [put]
// @Security     BearerAuth
func (h *Controller) UpdateItem(c echo.Context) error {
	owner, err := jwtx.SubjectFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	var req model.UpdateItemReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if req.Quantity == nil && req.RentalDays == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "nothing to update"})
	}

	ctx := c.Request().Context()
	id := c.Param("id")

	var (
		cart   *cartsvc.Cart
		notice cartsvc.Notice
	)
	if req.RentalDays != nil {
		cart, err = h.Svc.SetRentalDays(ctx, owner, id, *req.RentalDays)
		if err != nil {
			h.logErr(c, "cart update failed", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}
	if req.Quantity != nil {
		cart, notice, err = h.Svc.SetQuantity(ctx, owner, id, *req.Quantity)
		if err != nil {
			h.logErr(c, "cart update failed", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"cart": cart, "notice": notice})
}

// DELETE /v1/cart/items/:id
// @Summary      Remove a line item
// @Description  Idempotent; removing an absent id is a no-op
// @Tags         cart
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /v1/cart/items/{id} [delete]
// @Security     BearerAuth
func (h *Controller) RemoveItem(c echo.Context) error {
	owner, err := jwtx.SubjectFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	cart, notice, err := h.Svc.RemoveItem(c.Request().Context(), owner, c.Param("id"))
	if err != nil {
		h.logErr(c, "cart remove failed", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"cart": cart, "notice": notice})
}

// DELETE /v1/cart
// @Summary      Clear the cart
// @Tags         cart
// @Produce      json
// @Success      200  {object}  map[string]any
// @Router       /v1/cart [delete]
// @Security     BearerAuth
func (h *Controller) Clear(c echo.Context) error {
	owner, err := jwtx.SubjectFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	cart, notice, err := h.Svc.Clear(c.Request().Context(), owner)
	if err != nil {
		h.logErr(c, "cart clear failed", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"cart": cart, "notice": notice})
}

// POST /v1/cart/checkout
// @Summary      Checkout
// @Description  Simulated order placement; the cart is destroyed on success
// @Tags         cart
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      409  {object}  map[string]any "cart is empty"
// @Router       /v1/cart/checkout [post]
// @Security     BearerAuth
func (h *Controller) Checkout(c echo.Context) error {
	owner, err := jwtx.SubjectFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	order, notice, err := h.Svc.Checkout(c.Request().Context(), owner)
	if err != nil {
		if errors.Is(err, cartsvc.ErrEmptyCart) {
			return c.JSON(http.StatusConflict, echo.Map{"message": "cart is empty"})
		}
		h.logErr(c, "checkout failed", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return c.JSON(http.StatusOK, echo.Map{"order": order, "notice": notice})
}

func (h *Controller) logErr(c echo.Context, msg string, err error) {
	if h.Log == nil {
		return
	}
	rid := c.Response().Header().Get(echo.HeaderXRequestID)
	h.Log.Error(msg, "err", err, "req_id", rid, "path", c.Path())
}
