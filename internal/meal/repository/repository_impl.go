package repository

import (
	"context"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/meal/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, meal *domain.Meal) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO meals (id, plan_id, name, meal_type, description, calories, image_url, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		meal.ID,
		meal.PlanID,
		meal.Name,
		meal.MealType,
		meal.Description,
		meal.Calories,
		meal.ImageURL,
		meal.Active,
		meal.CreatedAt,
		meal.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Meal, error) {
	var m domain.Meal
	err := db.WithContext(ctx).Raw(
		`SELECT id, plan_id, name, meal_type, description, calories, image_url, active, created_at, updated_at
		 FROM meals WHERE id = ?`,
		id,
	).Scan(&m).Error
	if err != nil {
		return nil, err
	}
	if m.ID == 0 {
		return nil, nil
	}
	return &m, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Meal, error) {
	var items []domain.Meal
	stmt := db.WithContext(ctx).Model(&domain.Meal{})
	if filter.PlanID != 0 {
		stmt = stmt.Where("plan_id = ?", filter.PlanID)
	}
	if filter.MealType != "" {
		stmt = stmt.Where("meal_type = ?", filter.MealType)
	}
	if filter.Active != nil {
		stmt = stmt.Where("active = ?", *filter.Active)
	}
	err := stmt.Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, meal *domain.Meal) error {
	return db.WithContext(ctx).Exec(
		`UPDATE meals SET name = ?, meal_type = ?, description = ?, calories = ?, image_url = ?, active = ?, updated_at = ?
		 WHERE id = ?`,
		meal.Name,
		meal.MealType,
		meal.Description,
		meal.Calories,
		meal.ImageURL,
		meal.Active,
		meal.UpdatedAt,
		meal.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(`DELETE FROM meals WHERE id = ?`, id).Error
}
