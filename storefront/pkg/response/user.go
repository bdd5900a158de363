package response

import (
	"github.com/google/uuid"
)

type User struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar"`
}

type LoginResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}
