// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User is a client account. Created on registration or on first project
// submission through the hire flow (upsert-by-email).
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FullName  string    `gorm:"not null" json:"full_name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Projects  []Project `gorm:"foreignKey:UserID" json:"projects,omitempty"`
}
