package catalog

import "github.com/Uday-Kumarr/clickncut-main/model"

type PriceBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type ListResp struct {
	Data        []model.Product `json:"data"`
	Count       int             `json:"count"`
	PriceBounds PriceBounds     `json:"price_bounds"`
}

type QuoteResp struct {
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	RentalDays int     `json:"rental_days"`
	Total      float64 `json:"total"`
}
