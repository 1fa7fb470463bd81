package database

import "hireflow/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
// Parent entities precede children so foreign keys resolve during migration.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Admin{},
		&models.Project{},
		&models.WebDevelopmentDetail{},
		&models.WebDevelopmentFeature{},
		&models.SeoDetail{},
		&models.SeoType{},
		&models.DigitalMarketingDetail{},
		&models.DigitalMarketingService{},
		&models.SocialPlatform{},
		&models.ContentGenerationDetail{},
		&models.ContentType{},
		&models.ContentLanguage{},
		&models.AppDevelopmentDetail{},
		&models.AppFeature{},
		&models.ProjectStatusHistory{},
		&models.PortfolioProject{},
		&models.ContactForm{},
	}
}
