package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, meal *Meal) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Meal, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Meal, error)
	Update(ctx context.Context, db *gorm.DB, meal *Meal) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type ListFilter struct {
	PlanID   snowflake.ID
	MealType string
	Active   *bool
}
