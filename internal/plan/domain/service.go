package domain

import (
	"context"
	"errors"
)

type CreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
}

type UpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}

type ListRequest struct {
	Active *bool `form:"active"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Plan, error)
	Get(ctx context.Context, id string) (*Plan, error)
	List(ctx context.Context, req ListRequest) ([]Plan, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Plan, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidName   = errors.New("invalid_plan_name")
	ErrInvalidPlanID = errors.New("invalid_plan_id")
	ErrPlanNotFound  = errors.New("plan_not_found")
	ErrPlanExists    = errors.New("plan_already_exists")
)
