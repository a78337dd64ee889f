package domain

import (
	"context"
	"errors"
)

type CreateRequest struct {
	PlanID      string `json:"plan_id"`
	Name        string `json:"name"`
	MealType    string `json:"meal_type"`
	Description string `json:"description"`
	Calories    int    `json:"calories"`
	ImageURL    string `json:"image_url"`
	Active      *bool  `json:"active"`
}

type UpdateRequest struct {
	Name        *string `json:"name"`
	MealType    *string `json:"meal_type"`
	Description *string `json:"description"`
	Calories    *int    `json:"calories"`
	ImageURL    *string `json:"image_url"`
	Active      *bool   `json:"active"`
}

type ListRequest struct {
	PlanID   string `form:"plan_id"`
	MealType string `form:"meal_type"`
	Active   *bool  `form:"active"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Meal, error)
	Get(ctx context.Context, id string) (*Meal, error)
	List(ctx context.Context, req ListRequest) ([]Meal, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Meal, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidMeal   = errors.New("invalid_meal")
	ErrInvalidMealID = errors.New("invalid_meal_id")
	ErrMealNotFound  = errors.New("meal_not_found")
)
