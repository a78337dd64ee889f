// Package domain defines delivery days, one row per day a box goes out
// under a subscription.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusDelivered Status = "delivered"
	StatusSkipped   Status = "skipped"
)

type Delivery struct {
	ID             snowflake.ID `gorm:"primaryKey" json:"id"`
	SubscriptionID snowflake.ID `gorm:"not null;index" json:"subscription_id"`
	DeliveryDate   time.Time    `gorm:"not null;index" json:"delivery_date"`
	Status         Status       `gorm:"type:text;not null;index" json:"status"`
	CreatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Delivery) TableName() string { return "deliveries" }

// BuildSchedule expands a subscription into its delivery dates: for each
// week of the duration, daysPerWeek consecutive days starting from the
// week's first day. Dates are normalized to midnight UTC.
func BuildSchedule(start time.Time, daysPerWeek, durationWeeks int) []time.Time {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, 0, daysPerWeek*durationWeeks)
	for week := 0; week < durationWeeks; week++ {
		weekStart := day.AddDate(0, 0, week*7)
		for d := 0; d < daysPerWeek; d++ {
			dates = append(dates, weekStart.AddDate(0, 0, d))
		}
	}
	return dates
}
