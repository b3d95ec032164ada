package model

// CartItem is one cart line. Name, price and image are captured at
// add-time and are not re-synced if the catalog changes. RentalDays is
// always >= 1 while the item exists.
type CartItem struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Image      string  `json:"image"`
	Quantity   int     `json:"quantity"`
	RentalDays int     `json:"rental_days"`
}

// AddItemReq is the add-to-cart payload.
// swagger:model AddItemReq
type AddItemReq struct {
	ProductID  string `json:"product_id" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,gt=0"`
	RentalDays int    `json:"rental_days" validate:"gte=0"`
}

// UpdateItemReq carries the fields to overwrite on a line item. Absent
// fields are left untouched.
// swagger:model UpdateItemReq
type UpdateItemReq struct {
	Quantity   *int `json:"quantity"`
	RentalDays *int `json:"rental_days"`
}
