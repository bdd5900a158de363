package errors

import (
	"errors"
)

var (
	ErrEmptyAuth       = errors.New("missing authorization")
	ErrTokenInvalid    = errors.New("invalid token")
	ErrNotLoggedIn     = errors.New("no user is logged in")
	ErrProductNotFound = errors.New("product not found")
	ErrLoginCancelled  = errors.New("login was cancelled")
)
