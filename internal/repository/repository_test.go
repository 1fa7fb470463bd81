package repository

import (
	"context"
	"testing"

	"hireflow/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// SQLite ignores FK constraints unless asked; the cascade behavior
	// under test depends on them.
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
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
	))

	return db
}

func createTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{
		FullName: gofakeit.Name(),
		Email:    gofakeit.Email(),
		Password: "$2a$10$fakehashfakehashfakehashfakehash",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seoProject(user *models.User) *models.Project {
	return &models.Project{
		Username:     user.FullName,
		Email:        user.Email,
		Password:     user.Password,
		ProjectName:  "Acme Search Push",
		ProjectTitle: "SEO overhaul",
		Category:     models.CategorySeo,
		Price:        130,
		UserID:       user.ID,
		Status:       models.StatusPending,
		Seo: &models.SeoDetail{
			Types: []models.SeoType{
				{SeoType: "on-page", Price: 60},
				{SeoType: "off-page", Price: 70},
			},
		},
	}
}

func TestProjectRepository_CreateSeoGraph(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	user := createTestUser(t, db)

	require.NoError(t, repo.Create(context.Background(), seoProject(user)))

	var projectCount, detailCount, typeCount int64
	require.NoError(t, db.Model(&models.Project{}).Count(&projectCount).Error)
	require.NoError(t, db.Model(&models.SeoDetail{}).Count(&detailCount).Error)
	require.NoError(t, db.Model(&models.SeoType{}).Count(&typeCount).Error)
	require.EqualValues(t, 1, projectCount)
	require.EqualValues(t, 1, detailCount)
	require.EqualValues(t, 2, typeCount)

	// No detail rows leak into the other category tables.
	var webCount, marketingCount, contentCount, appCount int64
	require.NoError(t, db.Model(&models.WebDevelopmentDetail{}).Count(&webCount).Error)
	require.NoError(t, db.Model(&models.DigitalMarketingDetail{}).Count(&marketingCount).Error)
	require.NoError(t, db.Model(&models.ContentGenerationDetail{}).Count(&contentCount).Error)
	require.NoError(t, db.Model(&models.AppDevelopmentDetail{}).Count(&appCount).Error)
	require.Zero(t, webCount)
	require.Zero(t, marketingCount)
	require.Zero(t, contentCount)
	require.Zero(t, appCount)

	var types []models.SeoType
	require.NoError(t, db.Order("id").Find(&types).Error)
	require.Equal(t, 60, types[0].Price)
	require.Equal(t, 70, types[1].Price)
}

func TestProjectRepository_CreateRollsBackOnDetailFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	user := createTestUser(t, db)

	err := db.Callback().Create().Before("gorm:create").
		Register("test_fail_seo_detail", func(tx *gorm.DB) {
			if tx.Statement.Table == "seo_details" {
				_ = tx.AddError(gorm.ErrInvalidData)
			}
		})
	require.NoError(t, err)
	defer db.Callback().Create().Remove("test_fail_seo_detail")

	err = repo.Create(context.Background(), seoProject(user))
	require.Error(t, err)

	var projectCount, detailCount, typeCount int64
	require.NoError(t, db.Model(&models.Project{}).Count(&projectCount).Error)
	require.NoError(t, db.Model(&models.SeoDetail{}).Count(&detailCount).Error)
	require.NoError(t, db.Model(&models.SeoType{}).Count(&typeCount).Error)
	require.Zero(t, projectCount)
	require.Zero(t, detailCount)
	require.Zero(t, typeCount)
}

func TestProjectRepository_GetByIDPreloadsDetail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	user := createTestUser(t, db)

	created := seoProject(user)
	require.NoError(t, repo.Create(context.Background(), created))

	got, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Seo)
	require.Len(t, got.Seo.Types, 2)
	require.NotNil(t, got.User)
	require.Equal(t, user.Email, got.User.Email)

	detail, ok := got.Detail().(*models.SeoDetail)
	require.True(t, ok)
	require.Equal(t, got.ID, detail.ProjectID)
}

func TestProjectRepository_GetByIDNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.GetByID(context.Background(), 9999)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 404, appErr.Status)
}

func TestProjectRepository_ListByUserScoped(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	owner := createTestUser(t, db)
	other := createTestUser(t, db)

	require.NoError(t, repo.Create(context.Background(), seoProject(owner)))
	require.NoError(t, repo.Create(context.Background(), seoProject(other)))

	mine, err := repo.ListByUser(context.Background(), owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, owner.ID, mine[0].UserID)

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestProjectRepository_UpdateStatusAppendsHistory(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	user := createTestUser(t, db)

	project := seoProject(user)
	require.NoError(t, repo.Create(context.Background(), project))

	updated, err := repo.UpdateStatus(context.Background(), project.ID, models.StatusInProgress, "admin@example.com")
	require.NoError(t, err)
	require.Equal(t, models.StatusInProgress, updated.Status)

	var history []models.ProjectStatusHistory
	require.NoError(t, db.Where("project_id = ?", project.ID).Find(&history).Error)
	require.Len(t, history, 1)
	require.Equal(t, models.StatusPending, history[0].OldStatus)
	require.Equal(t, models.StatusInProgress, history[0].NewStatus)
	require.Equal(t, "admin@example.com", history[0].ChangedBy)
	require.Equal(t, "Status changed from pending to in-progress", history[0].Notes)
}

func TestProjectRepository_UpdateStatusRejectsUnknownValue(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	user := createTestUser(t, db)

	project := seoProject(user)
	require.NoError(t, repo.Create(context.Background(), project))

	_, err := repo.UpdateStatus(context.Background(), project.ID, "archived", "admin@example.com")
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 400, appErr.Status)

	var history int64
	require.NoError(t, db.Model(&models.ProjectStatusHistory{}).Count(&history).Error)
	require.Zero(t, history)
}

func TestProjectRepository_DeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	user := createTestUser(t, db)

	project := seoProject(user)
	require.NoError(t, repo.Create(context.Background(), project))
	_, err := repo.UpdateStatus(context.Background(), project.ID, models.StatusCompleted, "admin@example.com")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(context.Background(), project.ID))

	var projectCount, detailCount, typeCount, historyCount int64
	require.NoError(t, db.Model(&models.Project{}).Count(&projectCount).Error)
	require.NoError(t, db.Model(&models.SeoDetail{}).Count(&detailCount).Error)
	require.NoError(t, db.Model(&models.SeoType{}).Count(&typeCount).Error)
	require.NoError(t, db.Model(&models.ProjectStatusHistory{}).Count(&historyCount).Error)
	require.Zero(t, projectCount)
	require.Zero(t, detailCount)
	require.Zero(t, typeCount)
	require.Zero(t, historyCount)

	// The owning user is untouched.
	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.EqualValues(t, 1, userCount)
}

func TestProjectRepository_DeleteNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	err := repo.Delete(context.Background(), 42)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 404, appErr.Status)
}

func TestProjectRepository_StatsRevenueCountsCompletedOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)
	user := createTestUser(t, db)

	completed := seoProject(user)
	completed.Price = 500
	require.NoError(t, repo.Create(context.Background(), completed))
	_, err := repo.UpdateStatus(context.Background(), completed.ID, models.StatusCompleted, "admin@example.com")
	require.NoError(t, err)

	pending := seoProject(user)
	pending.Price = 9000
	require.NoError(t, repo.Create(context.Background(), pending))

	require.NoError(t, db.Create(&models.ContactForm{
		Name:    gofakeit.Name(),
		Email:   gofakeit.Email(),
		Subject: "Hello",
		Message: "Interested in a site",
	}).Error)

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.Users)
	require.EqualValues(t, 2, stats.Projects)
	require.EqualValues(t, 1, stats.Contacts)
	require.Equal(t, 500.0, stats.Revenue)
}

func TestProjectRepository_StatsEmptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	repo := NewProjectRepository(db)

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	require.Zero(t, stats.Users)
	require.Zero(t, stats.Projects)
	require.Zero(t, stats.Contacts)
	require.Zero(t, stats.Revenue)
}
