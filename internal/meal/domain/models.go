// Package domain defines the meal catalog: the dishes served under each
// plan, grouped by meal type.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Meal struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	PlanID      snowflake.ID `gorm:"not null;index" json:"plan_id"`
	Name        string       `gorm:"type:text;not null" json:"name"`
	MealType    string       `gorm:"type:text;not null;index" json:"meal_type"`
	Description string       `gorm:"type:text" json:"description"`
	Calories    int          `gorm:"not null;default:0" json:"calories"`
	ImageURL    string       `gorm:"type:text" json:"image_url"`
	Active      bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Meal) TableName() string { return "meals" }
