package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, entry *Entry) error
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*Entry, error)
	List(ctx context.Context, db *gorm.DB) ([]Entry, error)
}
