// Package domain defines meal plans, the catalog entries a subscription
// is built on.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Plan is a named meal program, e.g. "Weight Loss" or "Muscle Gain".
// Meal prices reference a plan by ID; the storefront references it by name.
type Plan struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Slug        string       `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Description string       `gorm:"type:text" json:"description"`
	Active      bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Plan) TableName() string { return "plans" }
