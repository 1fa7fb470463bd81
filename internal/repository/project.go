package repository

import (
	"context"
	"errors"
	"fmt"

	"hireflow/internal/models"

	"gorm.io/gorm"
)

// ProjectRepository defines persistence operations for client projects and
// their category detail subtrees.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	ListAll(ctx context.Context) ([]models.Project, error)
	ListByUser(ctx context.Context, userID uint) ([]models.Project, error)
	UpdateStatus(ctx context.Context, id uint, newStatus, changedBy string) (*models.Project, error)
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*models.SiteStats, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository returns a new ProjectRepository implementation.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// detailPreloads lists every association loaded with a project.
var detailPreloads = []string{
	"WebDevelopment", "WebDevelopment.Features",
	"Seo", "Seo.Types",
	"DigitalMarketing", "DigitalMarketing.Services", "DigitalMarketing.Platforms",
	"ContentGeneration", "ContentGeneration.Types", "ContentGeneration.Languages",
	"AppDevelopment", "AppDevelopment.Features",
}

func withDetails(db *gorm.DB) *gorm.DB {
	for _, p := range detailPreloads {
		db = db.Preload(p)
	}
	return db
}

// Create inserts the project row, its single category detail record, and all
// child feature rows in one transaction. Any failure rolls everything back:
// a project row never exists without its matching detail record.
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(project).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *projectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := withDetails(r.db.WithContext(ctx)).
		Preload("User").
		First(&project, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Project")
		}
		return nil, models.NewInternalError(err)
	}
	return &project, nil
}

func (r *projectRepository) ListAll(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	err := withDetails(r.db.WithContext(ctx)).
		Preload("User").
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return projects, nil
}

func (r *projectRepository) ListByUser(ctx context.Context, userID uint) ([]models.Project, error) {
	var projects []models.Project
	err := withDetails(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return projects, nil
}

// UpdateStatus validates the transition target, updates the project row, and
// appends the audit history row. Both writes commit or roll back together.
func (r *projectRepository) UpdateStatus(ctx context.Context, id uint, newStatus, changedBy string) (*models.Project, error) {
	if !models.ValidStatus(newStatus) {
		return nil, models.NewValidationError("Invalid status value")
	}

	var project models.Project
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Project")
			}
			return models.NewInternalError(err)
		}

		oldStatus := project.Status
		if err := tx.Model(&project).Update("status", newStatus).Error; err != nil {
			return models.NewInternalError(err)
		}

		history := models.ProjectStatusHistory{
			ProjectID: project.ID,
			OldStatus: oldStatus,
			NewStatus: newStatus,
			ChangedBy: changedBy,
			Notes:     fmt.Sprintf("Status changed from %s to %s", oldStatus, newStatus),
		}
		if err := tx.Create(&history).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Delete removes the project row. Detail, feature and history rows go with
// it through the schema's ON DELETE CASCADE constraints, not application
// fan-out deletes.
func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	var project models.Project
	if err := r.db.WithContext(ctx).Select("id").First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Project")
		}
		return models.NewInternalError(err)
	}

	if err := r.db.WithContext(ctx).Delete(&models.Project{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Stats recomputes the dashboard aggregates on every call. Revenue counts
// completed projects only.
func (r *projectRepository) Stats(ctx context.Context) (*models.SiteStats, error) {
	db := r.db.WithContext(ctx)
	stats := &models.SiteStats{}

	if err := db.Model(&models.User{}).Count(&stats.Users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := db.Model(&models.Project{}).Count(&stats.Projects).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := db.Model(&models.ContactForm{}).Count(&stats.Contacts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	var revenue *float64
	err := db.Model(&models.Project{}).
		Where("status = ?", models.StatusCompleted).
		Select("SUM(price)").
		Scan(&revenue).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	if revenue != nil {
		stats.Revenue = *revenue
	}

	return stats, nil
}
