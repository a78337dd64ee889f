// Package domain defines the launch waitlist.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Entry struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Email     string       `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Plan      string       `gorm:"type:text" json:"plan"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Entry) TableName() string { return "waitlist_entries" }
