package repository

import (
	"context"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/mealprice/domain"
	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, price *pricingdomain.MealPrice) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO meal_prices (id, plan_id, meal_type, base_price_mad, active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		price.ID,
		price.PlanID,
		price.MealType,
		price.BasePriceMAD,
		price.Active,
		price.CreatedAt,
		price.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*pricingdomain.MealPrice, error) {
	var p pricingdomain.MealPrice
	err := db.WithContext(ctx).Raw(
		`SELECT id, plan_id, meal_type, base_price_mad, active, created_at, updated_at
		 FROM meal_prices WHERE id = ?`,
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

func (r *repo) FindByPlanAndType(ctx context.Context, db *gorm.DB, planID snowflake.ID, mealType string) (*pricingdomain.MealPrice, error) {
	var p pricingdomain.MealPrice
	err := db.WithContext(ctx).Raw(
		`SELECT id, plan_id, meal_type, base_price_mad, active, created_at, updated_at
		 FROM meal_prices WHERE plan_id = ? AND meal_type = ?`,
		planID,
		mealType,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, planID snowflake.ID) ([]pricingdomain.MealPrice, error) {
	var items []pricingdomain.MealPrice
	stmt := db.WithContext(ctx).Model(&pricingdomain.MealPrice{})
	if planID != 0 {
		stmt = stmt.Where("plan_id = ?", planID)
	}
	err := stmt.Order("created_at ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, price *pricingdomain.MealPrice) error {
	return db.WithContext(ctx).Exec(
		`UPDATE meal_prices SET base_price_mad = ?, active = ?, updated_at = ?
		 WHERE id = ?`,
		price.BasePriceMAD,
		price.Active,
		price.UpdatedAt,
		price.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(`DELETE FROM meal_prices WHERE id = ?`, id).Error
}
