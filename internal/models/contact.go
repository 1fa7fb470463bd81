package models

import "time"

// ContactForm is an append-only contact message. UserID is set when the
// submitting session is authenticated, otherwise the message is anonymous.
type ContactForm struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Subject   string    `gorm:"not null" json:"subject"`
	Message   string    `gorm:"not null" json:"message"`
	UserID    *uint     `gorm:"index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SiteStats are the admin dashboard aggregates. Revenue sums price over
// completed projects only.
type SiteStats struct {
	Users    int64   `json:"users"`
	Projects int64   `json:"projects"`
	Contacts int64   `json:"contacts"`
	Revenue  float64 `json:"revenue"`
}
