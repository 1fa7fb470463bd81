package repository

import (
	"context"

	"hireflow/internal/models"

	"gorm.io/gorm"
)

// ContactRepository stores contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, form *models.ContactForm) error
	Count(ctx context.Context) (int64, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository returns a new ContactRepository implementation.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, form *models.ContactForm) error {
	if err := r.db.WithContext(ctx).Create(form).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *contactRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ContactForm{}).Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
