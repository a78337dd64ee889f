package domain

import (
	"context"

	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, rule *pricingdomain.DiscountRule) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*pricingdomain.DiscountRule, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]pricingdomain.DiscountRule, error)
	Update(ctx context.Context, db *gorm.DB, rule *pricingdomain.DiscountRule) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}

type ListFilter struct {
	DiscountType pricingdomain.DiscountType
	Active       *bool
}
