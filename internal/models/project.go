package models

import (
	"time"
)

// Project categories. The category value decides which one of the five
// detail records may exist for a project.
const (
	CategoryWebDevelopment    = "web-development"
	CategorySeo               = "seo"
	CategoryDigitalMarketing  = "digital-marketing"
	CategoryContentGeneration = "content-generation"
	CategoryAppDevelopment    = "app-development"
)

// Project statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// ValidCategory reports whether c is one of the five known categories.
func ValidCategory(c string) bool {
	switch c {
	case CategoryWebDevelopment, CategorySeo, CategoryDigitalMarketing,
		CategoryContentGeneration, CategoryAppDevelopment:
		return true
	}
	return false
}

// ValidStatus reports whether s is a known project status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Project is a client project request. Username/email/password are a
// denormalized snapshot of the owning user's identity at submission time.
type Project struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"not null" json:"username"`
	Email        string     `gorm:"not null" json:"email"`
	Password     string     `gorm:"not null" json:"-"`
	ProjectName  string     `gorm:"not null" json:"project_name"`
	ProjectTitle string     `gorm:"not null" json:"project_title"`
	Category     string     `gorm:"not null;index" json:"category"`
	Price        float64    `gorm:"not null;default:0" json:"price"`
	Deadline     *time.Time `json:"deadline"`
	Details      *string    `json:"details"`
	UserID       uint       `gorm:"not null;index" json:"user_id"`
	Status       string     `gorm:"not null;default:pending;index" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	// At most one of these is non-nil, selected by Category.
	WebDevelopment    *WebDevelopmentDetail    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"web_development,omitempty"`
	Seo               *SeoDetail               `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"seo,omitempty"`
	DigitalMarketing  *DigitalMarketingDetail  `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"digital_marketing,omitempty"`
	ContentGeneration *ContentGenerationDetail `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"content_generation,omitempty"`
	AppDevelopment    *AppDevelopmentDetail    `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"app_development,omitempty"`

	StatusHistory []ProjectStatusHistory `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"status_history,omitempty"`
}

// Detail returns the category detail record matching the project's category,
// or nil when none is attached.
func (p *Project) Detail() any {
	switch p.Category {
	case CategoryWebDevelopment:
		if p.WebDevelopment != nil {
			return p.WebDevelopment
		}
	case CategorySeo:
		if p.Seo != nil {
			return p.Seo
		}
	case CategoryDigitalMarketing:
		if p.DigitalMarketing != nil {
			return p.DigitalMarketing
		}
	case CategoryContentGeneration:
		if p.ContentGeneration != nil {
			return p.ContentGeneration
		}
	case CategoryAppDevelopment:
		if p.AppDevelopment != nil {
			return p.AppDevelopment
		}
	}
	return nil
}

// WebDevelopmentDetail holds web project attributes.
type WebDevelopmentDetail struct {
	ID        uint                    `gorm:"primaryKey" json:"id"`
	ProjectID uint                    `gorm:"not null;uniqueIndex" json:"project_id"`
	Tech      string                  `json:"tech"`
	WebPages  int                     `json:"web_pages"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
	Features  []WebDevelopmentFeature `gorm:"foreignKey:DetailID;constraint:OnDelete:CASCADE" json:"features"`
}

// WebDevelopmentFeature is one selected web feature. Price is the pricing
// table value snapshotted at insert time, never re-derived on read.
type WebDevelopmentFeature struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DetailID  uint      `gorm:"not null;index" json:"detail_id"`
	Feature   string    `gorm:"not null" json:"feature"`
	Price     int       `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SeoDetail carries no fields of its own; it anchors the seo type rows.
type SeoDetail struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;uniqueIndex" json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Types     []SeoType `gorm:"foreignKey:DetailID;constraint:OnDelete:CASCADE" json:"types"`
}

type SeoType struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DetailID  uint      `gorm:"not null;index" json:"detail_id"`
	SeoType   string    `gorm:"not null" json:"seo_type"`
	Price     int       `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DigitalMarketingDetail struct {
	ID              uint                      `gorm:"primaryKey" json:"id"`
	ProjectID       uint                      `gorm:"not null;uniqueIndex" json:"project_id"`
	TargetAudience  *string                   `json:"target_audience"`
	MarketingBudget *float64                  `json:"marketing_budget"`
	Duration        *string                   `json:"duration"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
	Services        []DigitalMarketingService `gorm:"foreignKey:DetailID;constraint:OnDelete:CASCADE" json:"services"`
	Platforms       []SocialPlatform          `gorm:"foreignKey:DetailID;constraint:OnDelete:CASCADE" json:"platforms"`
}

type DigitalMarketingService struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DetailID  uint      `gorm:"not null;index" json:"detail_id"`
	Service   string    `gorm:"not null" json:"service"`
	Price     int       `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SocialPlatform struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DetailID  uint      `gorm:"not null;index" json:"detail_id"`
	Platform  string    `gorm:"not null" json:"platform"`
	Price     int       `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContentGenerationDetail struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	ProjectID      uint              `gorm:"not null;uniqueIndex" json:"project_id"`
	Volume         *string           `json:"volume"`
	ContentTone    *string           `json:"content_tone"`
	TargetKeywords *string           `json:"target_keywords"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	Types          []ContentType     `gorm:"foreignKey:DetailID;constraint:OnDelete:CASCADE" json:"types"`
	Languages      []ContentLanguage `gorm:"foreignKey:DetailID;constraint:OnDelete:CASCADE" json:"languages"`
}

type ContentType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DetailID    uint      `gorm:"not null;index" json:"detail_id"`
	ContentType string    `gorm:"not null" json:"content_type"`
	Price       int       `gorm:"not null" json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ContentLanguage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DetailID  uint      `gorm:"not null;index" json:"detail_id"`
	Language  string    `gorm:"not null" json:"language"`
	Price     int       `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AppDevelopmentDetail struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	ProjectID       uint         `gorm:"not null;uniqueIndex" json:"project_id"`
	AppType         *string      `json:"app_type"`
	Complexity      *string      `json:"complexity"`
	TargetPlatforms *string      `json:"target_platforms"`
	ExpectedUsers   *int         `json:"expected_users"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	Features        []AppFeature `gorm:"foreignKey:DetailID;constraint:OnDelete:CASCADE" json:"features"`
}

type AppFeature struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	DetailID  uint      `gorm:"not null;index" json:"detail_id"`
	Feature   string    `gorm:"not null" json:"feature"`
	Price     int       `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectStatusHistory is an append-only audit log of status transitions,
// written only as a side effect of an admin status change.
type ProjectStatusHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;index" json:"project_id"`
	OldStatus string    `gorm:"not null" json:"old_status"`
	NewStatus string    `gorm:"not null" json:"new_status"`
	ChangedBy string    `gorm:"not null" json:"changed_by"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
