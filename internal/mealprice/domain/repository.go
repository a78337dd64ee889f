package domain

import (
	"context"

	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, price *pricingdomain.MealPrice) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*pricingdomain.MealPrice, error)
	FindByPlanAndType(ctx context.Context, db *gorm.DB, planID snowflake.ID, mealType string) (*pricingdomain.MealPrice, error)
	List(ctx context.Context, db *gorm.DB, planID snowflake.ID) ([]pricingdomain.MealPrice, error)
	Update(ctx context.Context, db *gorm.DB, price *pricingdomain.MealPrice) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
