package repository

import (
	"context"
	"errors"

	"hireflow/internal/models"

	"gorm.io/gorm"
)

// PortfolioFilter narrows public portfolio listings. The zero value lists
// everything visible for the caller's scope.
type PortfolioFilter struct {
	Category     string
	FeaturedOnly bool
	// IncludeAll lifts the active-only restriction for admin listings.
	IncludeAll bool
}

// PortfolioRepository defines persistence operations for showcase projects.
type PortfolioRepository interface {
	List(ctx context.Context, filter PortfolioFilter) ([]models.PortfolioProject, error)
	GetByID(ctx context.Context, id uint) (*models.PortfolioProject, error)
	Create(ctx context.Context, project *models.PortfolioProject) error
	Update(ctx context.Context, project *models.PortfolioProject) error
	Delete(ctx context.Context, id uint) error
	Stats(ctx context.Context) (*models.PortfolioStats, error)
}

type portfolioRepository struct {
	db *gorm.DB
}

// NewPortfolioRepository returns a new PortfolioRepository implementation.
func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) List(ctx context.Context, filter PortfolioFilter) ([]models.PortfolioProject, error) {
	db := r.db.WithContext(ctx).Model(&models.PortfolioProject{})
	if !filter.IncludeAll {
		db = db.Where("status = ?", models.PortfolioStatusActive)
	}
	if filter.Category != "" {
		db = db.Where("category = ?", filter.Category)
	}
	if filter.FeaturedOnly {
		db = db.Where("featured = ?", true)
	}

	var projects []models.PortfolioProject
	if err := db.Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return projects, nil
}

func (r *portfolioRepository) GetByID(ctx context.Context, id uint) (*models.PortfolioProject, error) {
	var project models.PortfolioProject
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Portfolio project")
		}
		return nil, models.NewInternalError(err)
	}
	return &project, nil
}

func (r *portfolioRepository) Create(ctx context.Context, project *models.PortfolioProject) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Update saves the full record; callers load, mutate, then pass it back.
func (r *portfolioRepository) Update(ctx context.Context, project *models.PortfolioProject) error {
	if err := r.db.WithContext(ctx).Save(project).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *portfolioRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.PortfolioProject{}, id)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Portfolio project")
	}
	return nil
}

func (r *portfolioRepository) Stats(ctx context.Context) (*models.PortfolioStats, error) {
	db := r.db.WithContext(ctx)
	stats := &models.PortfolioStats{ByCategory: map[string]int64{}}

	if err := db.Model(&models.PortfolioProject{}).Count(&stats.Total).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := db.Model(&models.PortfolioProject{}).
		Where("status = ?", models.PortfolioStatusActive).
		Count(&stats.Active).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := db.Model(&models.PortfolioProject{}).
		Where("featured = ?", true).
		Count(&stats.Featured).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	type categoryCount struct {
		Category string
		Count    int64
	}
	var rows []categoryCount
	err := db.Model(&models.PortfolioProject{}).
		Select("category, COUNT(*) as count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, row := range rows {
		stats.ByCategory[row.Category] = row.Count
	}

	return stats, nil
}
