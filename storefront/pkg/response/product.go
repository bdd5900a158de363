package response

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Category      string          `json:"category"`
	Image         string          `json:"image"`
	Rating        float64         `json:"rating"`
	Reviews       int             `json:"reviews"`
	InStock       bool            `json:"in_stock"`
	Featured      bool            `json:"featured"`
}

type Category struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Icon  string    `json:"icon"`
	Count int       `json:"count"`
}

type Store struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	City    string    `json:"city"`
	Phone   string    `json:"phone"`
	Hours   string    `json:"hours"`
}

type Bundle struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Grade         string          `json:"grade"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Items         []string        `json:"items"`
}
