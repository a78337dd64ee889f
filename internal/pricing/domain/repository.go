package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	ActiveMealPrices(ctx context.Context, db *gorm.DB, planID snowflake.ID, mealTypes []string) ([]MealPrice, error)
	ActiveDiscountRules(ctx context.Context, db *gorm.DB, at time.Time) ([]DiscountRule, error)
}
