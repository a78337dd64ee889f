package repository

import (
	"context"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/waitlist/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, entry *domain.Entry) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO waitlist_entries (id, email, plan, created_at)
		 VALUES (?, ?, ?, ?)`,
		entry.ID,
		entry.Email,
		entry.Plan,
		entry.CreatedAt,
	).Error
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Entry, error) {
	var e domain.Entry
	err := db.WithContext(ctx).Raw(
		`SELECT id, email, plan, created_at FROM waitlist_entries WHERE email = ?`,
		email,
	).Scan(&e).Error
	if err != nil {
		return nil, err
	}
	if e.ID == 0 {
		return nil, nil
	}
	return &e, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Entry, error) {
	var items []domain.Entry
	err := db.WithContext(ctx).Raw(
		`SELECT id, email, plan, created_at FROM waitlist_entries ORDER BY created_at ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
