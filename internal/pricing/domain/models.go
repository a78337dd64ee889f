// Package domain contains the pricing read model: per-plan meal base
// prices and the discount rule tiers configured by the back office.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountDaysPerWeek   DiscountType = "days_per_week"
	DiscountDurationWeeks DiscountType = "duration_weeks"
	DiscountVolume        DiscountType = "volume"
	DiscountSeasonal      DiscountType = "seasonal"
)

// ValidDiscountType reports whether the value is a known rule category.
// volume and seasonal are accepted for forward compatibility even though
// the calculator does not match them yet.
func ValidDiscountType(value DiscountType) bool {
	switch value {
	case DiscountDaysPerWeek, DiscountDurationWeeks, DiscountVolume, DiscountSeasonal:
		return true
	default:
		return false
	}
}

// MealPrice is the fixed daily cost of serving one meal type under a plan.
type MealPrice struct {
	ID           snowflake.ID    `gorm:"primaryKey" json:"id"`
	PlanID       snowflake.ID    `gorm:"not null;index" json:"plan_id"`
	MealType     string          `gorm:"type:text;not null;index" json:"meal_type"`
	BasePriceMAD decimal.Decimal `gorm:"column:base_price_mad;type:numeric(10,2);not null" json:"base_price_mad"`
	Active       bool            `gorm:"not null;default:true" json:"active"`
	CreatedAt    time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (MealPrice) TableName() string { return "meal_prices" }

// DiscountRule is one discount tier. Stackable is carried through the
// model but the calculator applies at most one rule per category.
type DiscountRule struct {
	ID                 snowflake.ID    `gorm:"primaryKey" json:"id"`
	DiscountType       DiscountType    `gorm:"type:text;not null;index" json:"discount_type"`
	ConditionValue     int             `gorm:"not null" json:"condition_value"`
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(6,4);not null" json:"discount_percentage"`
	Stackable          bool            `gorm:"not null;default:false" json:"stackable"`
	Active             bool            `gorm:"not null;default:true" json:"active"`
	ValidFrom          *time.Time      `json:"valid_from,omitempty"`
	ValidTo            *time.Time      `json:"valid_to,omitempty"`
	CreatedAt          time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (DiscountRule) TableName() string { return "discount_rules" }
