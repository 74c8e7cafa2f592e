package models

import (
	"time"
)

// Portfolio represents a unit of displayable work.
//
// Images is serialized as a JSON column so ordering survives the round trip.
// UpdatedAt is set at creation and deliberately not refreshed by the update
// path; see PortfolioRepository.Update.
type Portfolio struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Images      []string  `gorm:"serializer:json;not null" json:"images"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
