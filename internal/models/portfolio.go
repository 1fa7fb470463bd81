package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Portfolio project statuses.
const (
	PortfolioStatusActive   = "active"
	PortfolioStatusInactive = "inactive"
	PortfolioStatusDraft    = "draft"
)

// ValidPortfolioStatus reports whether s is a known portfolio status.
func ValidPortfolioStatus(s string) bool {
	switch s {
	case PortfolioStatusActive, PortfolioStatusInactive, PortfolioStatusDraft:
		return true
	}
	return false
}

// StringList is an ordered list of strings stored as a JSON column.
// Order is preserved across write/read round trips.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value any) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}

	if len(data) == 0 {
		*l = StringList{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*l = StringList(out)
	return nil
}

// PortfolioProject is a public showcase entry, independent of client
// projects. Admin-managed; public reads only ever see active entries.
type PortfolioProject struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Title        string     `gorm:"not null" json:"title"`
	Category     string     `gorm:"not null;index" json:"category"`
	Image        string     `gorm:"not null" json:"image"`
	Description  string     `gorm:"not null" json:"description"`
	Technologies StringList `gorm:"type:text;not null" json:"technologies"`
	LiveURL      string     `gorm:"not null" json:"live_url"`
	GithubURL    *string    `json:"github_url"`
	Featured     bool       `gorm:"not null;default:false;index" json:"featured"`
	Status       string     `gorm:"not null;default:active;index" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PortfolioStats are point-in-time aggregate counts over portfolio projects.
type PortfolioStats struct {
	Total      int64            `json:"total"`
	Active     int64            `json:"active"`
	Featured   int64            `json:"featured"`
	ByCategory map[string]int64 `json:"byCategory"`
}
