// Package domain defines subscriptions: a priced meal selection a
// customer committed to at checkout.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

// Subscription snapshots the selection and the engine's weekly/total
// price at checkout time. Later rule edits never reprice an existing
// subscription.
type Subscription struct {
	ID             snowflake.ID    `gorm:"primaryKey" json:"id"`
	CustomerID     snowflake.ID    `gorm:"not null;index" json:"customer_id"`
	PlanID         snowflake.ID    `gorm:"not null;index" json:"plan_id"`
	Meals          datatypes.JSON  `gorm:"not null" json:"meals"`
	DaysPerWeek    int             `gorm:"not null" json:"days_per_week"`
	DurationWeeks  int             `gorm:"not null" json:"duration_weeks"`
	WeeklyPriceMAD decimal.Decimal `gorm:"column:weekly_price_mad;type:numeric(10,2);not null" json:"weekly_price_mad"`
	TotalPriceMAD  decimal.Decimal `gorm:"column:total_price_mad;type:numeric(10,2);not null" json:"total_price_mad"`
	Status         Status          `gorm:"type:text;not null;index" json:"status"`
	StartDate      time.Time       `gorm:"not null" json:"start_date"`
	CreatedAt      time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Subscription) TableName() string { return "subscriptions" }
