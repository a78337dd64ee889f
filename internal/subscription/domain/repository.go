package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, sub *Subscription) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Subscription, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Subscription, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, sub *Subscription) error
}

type ListFilter struct {
	CustomerID snowflake.ID
	Status     Status
}
