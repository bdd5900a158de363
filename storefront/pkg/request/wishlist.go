package request

import (
	"github.com/google/uuid"
)

type ToggleWishlist struct {
	ProductId uuid.UUID `validate:"required" json:"product_id"`
}
