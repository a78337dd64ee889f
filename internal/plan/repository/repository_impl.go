package repository

import (
	"context"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, plan *domain.Plan) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO plans (id, name, slug, description, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		plan.ID,
		plan.Name,
		plan.Slug,
		plan.Description,
		plan.Active,
		plan.CreatedAt,
		plan.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Plan, error) {
	var p domain.Plan
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, slug, description, active, created_at, updated_at
		 FROM plans WHERE id = ?`,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) FindByName(ctx context.Context, db *gorm.DB, name string) (*domain.Plan, error) {
	var p domain.Plan
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, slug, description, active, created_at, updated_at
		 FROM plans WHERE name = ?`,
		name,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListRequest) ([]domain.Plan, error) {
	var items []domain.Plan
	stmt := db.WithContext(ctx).Model(&domain.Plan{})
	if filter.Active != nil {
		stmt = stmt.Where("active = ?", *filter.Active)
	}
	err := stmt.Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, plan *domain.Plan) error {
	return db.WithContext(ctx).Exec(
		`UPDATE plans SET name = ?, slug = ?, description = ?, active = ?, updated_at = ?
		 WHERE id = ?`,
		plan.Name,
		plan.Slug,
		plan.Description,
		plan.Active,
		plan.UpdatedAt,
		plan.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(`DELETE FROM plans WHERE id = ?`, id).Error
}
