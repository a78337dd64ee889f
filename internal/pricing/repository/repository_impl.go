package repository

import (
	"context"
	"time"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ActiveMealPrices(ctx context.Context, db *gorm.DB, planID snowflake.ID, mealTypes []string) ([]domain.MealPrice, error) {
	var items []domain.MealPrice
	err := db.WithContext(ctx).Raw(
		`SELECT id, plan_id, meal_type, base_price_mad, active, created_at, updated_at
		 FROM meal_prices
		 WHERE plan_id = ? AND meal_type IN ? AND active = ?`,
		planID,
		mealTypes,
		true,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ActiveDiscountRules(ctx context.Context, db *gorm.DB, at time.Time) ([]domain.DiscountRule, error) {
	var items []domain.DiscountRule
	err := db.WithContext(ctx).Raw(
		`SELECT id, discount_type, condition_value, discount_percentage, stackable, active, valid_from, valid_to, created_at, updated_at
		 FROM discount_rules
		 WHERE active = ?
		   AND (valid_from IS NULL OR valid_from <= ?)
		   AND (valid_to IS NULL OR valid_to >= ?)
		 ORDER BY created_at ASC`,
		true,
		at,
		at,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
