// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User represents a registered account. Accounts are created only through
// signup; no exposed operation updates or deletes them, and IsAdmin can only
// be flipped out of band (direct store edit).
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"unique;not null" json:"username"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	Age       int       `gorm:"not null" json:"age"`
	Gender    string    `gorm:"not null" json:"gender"`
	Email     string    `gorm:"not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	IsAdmin   bool      `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
