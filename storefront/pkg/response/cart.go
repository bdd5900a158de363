package response

import (
	"github.com/shopspring/decimal"
)

type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type Cart struct {
	Lines     []CartLine      `json:"lines"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	ItemCount int             `json:"item_count"`
	IsOpen    bool            `json:"is_open"`
}

type CartSummary struct {
	Currency    string          `json:"currency"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}
