package domain

import (
	"context"
	"errors"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/pkg/db/pagination"
)

type CreateRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type UpdateRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	City    *string `json:"city"`
}

type ListRequest struct {
	PageToken string `form:"page_token"`
	PageSize  int32  `form:"page_size"`
	Email     string `form:"email"`
	City      string `form:"city"`
}

type ListFilter struct {
	Email string
	City  string
}

type ListResponse struct {
	pagination.PageInfo
	Customers []Customer `json:"customers"`
}

type Service interface {
	// Create registers a new customer, or returns the existing record
	// when the email is already known. Checkout calls this so repeat
	// buyers do not need an account step.
	Create(ctx context.Context, req CreateRequest) (*Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context, req ListRequest) (ListResponse, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Customer, error)
}

var (
	ErrInvalidCustomer   = errors.New("invalid_customer")
	ErrInvalidEmail      = errors.New("invalid_email")
	ErrInvalidCustomerID = errors.New("invalid_customer_id")
	ErrCustomerNotFound  = errors.New("customer_not_found")
)
