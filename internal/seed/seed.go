// Package seed provisions a demo catalog so a fresh install can quote
// and check out without any back-office setup.
package seed

import (
	"context"
	"errors"
	"time"

	plandomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/plan/domain"
	pricingdomain "github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/pricing/domain"
	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type planSeed struct {
	name        string
	description string
	prices      map[string]float64
}

var defaultPlans = []planSeed{
	{
		name:        "Weight Loss",
		description: "Calorie-controlled meals for steady weight loss.",
		prices:      map[string]float64{"Breakfast": 45, "Lunch": 55, "Dinner": 50},
	},
	{
		name:        "Muscle Gain",
		description: "High-protein meals for training days.",
		prices:      map[string]float64{"Breakfast": 50, "Lunch": 65, "Dinner": 60},
	},
	{
		name:        "Balanced",
		description: "Everyday balanced Moroccan cooking.",
		prices:      map[string]float64{"Breakfast": 40, "Lunch": 50, "Dinner": 45},
	},
}

type ruleSeed struct {
	discountType pricingdomain.DiscountType
	condition    int
	percentage   float64
}

var defaultRules = []ruleSeed{
	{pricingdomain.DiscountDaysPerWeek, 5, 0.03},
	{pricingdomain.DiscountDaysPerWeek, 6, 0.05},
	{pricingdomain.DiscountDaysPerWeek, 7, 0.07},
	{pricingdomain.DiscountDurationWeeks, 4, 0.10},
	{pricingdomain.DiscountDurationWeeks, 8, 0.15},
	{pricingdomain.DiscountDurationWeeks, 12, 0.20},
}

// EnsureDemoCatalog inserts the default plans, meal prices, and discount
// tiers. It is idempotent: existing rows are left alone.
func EnsureDemoCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range defaultPlans {
			if err := ensurePlan(ctx, tx, node, p); err != nil {
				return err
			}
		}
		return ensureDiscountRules(ctx, tx, node)
	})
}

func ensurePlan(ctx context.Context, tx *gorm.DB, node *snowflake.Node, p planSeed) error {
	var plan plandomain.Plan
	if err := tx.WithContext(ctx).Where("name = ?", p.name).Limit(1).Find(&plan).Error; err != nil {
		return err
	}

	now := time.Now().UTC()
	if plan.ID == 0 {
		plan = plandomain.Plan{
			ID:          node.Generate(),
			Name:        p.name,
			Slug:        slug.Make(p.name),
			Description: p.description,
			Active:      true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := tx.WithContext(ctx).Create(&plan).Error; err != nil {
			return err
		}
	}

	for mealType, price := range p.prices {
		var count int64
		err := tx.WithContext(ctx).
			Model(&pricingdomain.MealPrice{}).
			Where("plan_id = ? AND meal_type = ?", plan.ID, mealType).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		row := pricingdomain.MealPrice{
			ID:           node.Generate(),
			PlanID:       plan.ID,
			MealType:     mealType,
			BasePriceMAD: decimal.NewFromFloat(price),
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := tx.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureDiscountRules(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	now := time.Now().UTC()
	for _, r := range defaultRules {
		var count int64
		err := tx.WithContext(ctx).
			Model(&pricingdomain.DiscountRule{}).
			Where("discount_type = ? AND condition_value = ?", r.discountType, r.condition).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		rule := pricingdomain.DiscountRule{
			ID:                 node.Generate(),
			DiscountType:       r.discountType,
			ConditionValue:     r.condition,
			DiscountPercentage: decimal.NewFromFloat(r.percentage),
			Active:             true,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		if err := tx.WithContext(ctx).Create(&rule).Error; err != nil {
			return err
		}
	}
	return nil
}
