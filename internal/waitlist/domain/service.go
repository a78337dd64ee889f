package domain

import (
	"context"
	"errors"
)

type SignupRequest struct {
	Email string `json:"email"`
	Plan  string `json:"plan"`
}

type Service interface {
	// Signup records interest. Signing up twice with the same email is
	// not an error; the existing entry is returned.
	Signup(ctx context.Context, req SignupRequest) (*Entry, error)
	List(ctx context.Context) ([]Entry, error)
}

var ErrInvalidEmail = errors.New("invalid_waitlist_email")
