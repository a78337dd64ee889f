package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, order *Order) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Order, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Order, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, order *Order) error
}

type ListFilter struct {
	CustomerID snowflake.ID
	Status     Status
}
