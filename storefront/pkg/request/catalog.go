package request

import (
	"github.com/shopspring/decimal"
)

// FindProducts carries the catalog page filters. Zero values mean the
// filter is not applied.
type FindProducts struct {
	Search      string           `json:"search"`
	Category    string           `json:"category"`
	MinPrice    *decimal.Decimal `validate:"omitempty" json:"min_price"`
	MaxPrice    *decimal.Decimal `validate:"omitempty" json:"max_price"`
	InStockOnly bool             `json:"in_stock_only"`
	MinRating   float64          `validate:"omitempty,gte=0,lte=5" json:"min_rating"`
	SortBy      string           `validate:"omitempty,oneof=name price-low price-high rating" json:"sort_by"`
}
