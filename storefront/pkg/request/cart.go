package request

import (
	"github.com/google/uuid"
)

type AddCartItem struct {
	ProductId uuid.UUID `validate:"required"       json:"product_id"`
	Quantity  int       `validate:"omitempty,gt=0" json:"quantity"`
}

type UpdateCartItem struct {
	Quantity int `json:"quantity"`
}
