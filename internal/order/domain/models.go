// Package domain defines checkout orders. An order freezes the amount
// the customer was quoted; the calculation snapshot makes the charge
// reproducible for audit.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

type Order struct {
	ID             snowflake.ID    `gorm:"primaryKey" json:"id"`
	SubscriptionID snowflake.ID    `gorm:"not null;index" json:"subscription_id"`
	CustomerID     snowflake.ID    `gorm:"not null;index" json:"customer_id"`
	Currency       string          `gorm:"type:text;not null" json:"currency"`
	TotalMAD       decimal.Decimal `gorm:"column:total_mad;type:numeric(12,2);not null" json:"total_mad"`
	Status         Status          `gorm:"type:text;not null;index" json:"status"`
	Calculation    datatypes.JSON  `gorm:"not null" json:"calculation"`
	CreatedAt      time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }
