package request

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

type LoginRequest struct {
	Email    string `validate:"required,email" json:"email"`
	Password string `validate:"required"       json:"password"`
}

func (l LoginRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("email", l.Email).Str("password", "***")
}

func (l LoginRequest) MarshalJSON() ([]byte, error) {
	l.Password = "***"
	type L LoginRequest
	return json.Marshal(L(l))
}

type RegisterRequest struct {
	Name            string `validate:"required"                json:"name"`
	Email           string `validate:"required,email"          json:"email"`
	Password        string `validate:"required"                json:"password"`
	ConfirmPassword string `validate:"required,eqfield=Password" json:"confirm_password"`
}

func (r RegisterRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", r.Name).Str("email", r.Email).Str("password", "***")
}

func (r RegisterRequest) MarshalJSON() ([]byte, error) {
	r.Password = "***"
	r.ConfirmPassword = "***"
	type R RegisterRequest
	return json.Marshal(R(r))
}
