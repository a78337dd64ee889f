// Package domain defines the back-office surface for meal base prices.
// The rows it manages are the read model the pricing engine consumes.
package domain

import (
	"context"
	"errors"

	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
)

type CreateRequest struct {
	PlanID       string  `json:"plan_id"`
	MealType     string  `json:"meal_type"`
	BasePriceMAD float64 `json:"base_price_mad"`
	Active       *bool   `json:"active"`
}

type UpdateRequest struct {
	BasePriceMAD *float64 `json:"base_price_mad"`
	Active       *bool    `json:"active"`
}

type ListRequest struct {
	PlanID string `form:"plan_id"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*pricingdomain.MealPrice, error)
	Get(ctx context.Context, id string) (*pricingdomain.MealPrice, error)
	List(ctx context.Context, req ListRequest) ([]pricingdomain.MealPrice, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*pricingdomain.MealPrice, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidMealPrice   = errors.New("invalid_meal_price")
	ErrInvalidBasePrice   = errors.New("base_price_must_be_positive")
	ErrMealPriceNotFound  = errors.New("meal_price_not_found")
	ErrMealPriceExists    = errors.New("meal_price_already_exists")
	ErrInvalidMealPriceID = errors.New("invalid_meal_price_id")
)
