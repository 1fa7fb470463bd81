package service

import (
	"context"
	"testing"

	"hireflow/internal/models"
	"hireflow/internal/pricing"
	"hireflow/internal/repository"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupService(t *testing.T) (*ProjectService, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
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
	))

	svc := NewProjectService(
		repository.NewUserRepository(db),
		repository.NewProjectRepository(db),
		pricing.DefaultTable(),
		pricing.DefaultCatalog(),
	)
	return svc, db
}

func webHireInput() HireInput {
	return HireInput{
		FullName: "Jordan Blake",
		Email:    "jordan@example.com",
		Password: "supersecret1",
		ProjectInput: ProjectInput{
			ProjectName:  "Company site",
			ProjectTitle: "Marketing site rebuild",
			Category:     models.CategoryWebDevelopment,
			Price:        1, // client estimate, must be ignored
			Selections: pricing.Selections{
				Tech:        "fullstack",
				WebPages:    5,
				WebFeatures: []string{"responsive-design", "admin-panel"},
			},
		},
	}
}

func TestCreateFromHire_NewUserAndAuthoritativePrice(t *testing.T) {
	svc, db := setupService(t)

	project, user, err := svc.CreateFromHire(context.Background(), webHireInput())
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	require.Equal(t, user.ID, project.UserID)

	// fullstack 250 + 5 pages * 10 + responsive-design 30 + admin-panel 100
	require.Equal(t, 430.0, project.Price)
	require.Equal(t, models.StatusPending, project.Status)

	// Stored password is a bcrypt hash, not the plaintext.
	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	require.NotEqual(t, "supersecret1", stored.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("supersecret1")))

	require.NotNil(t, project.WebDevelopment)
	require.Len(t, project.WebDevelopment.Features, 2)
	for _, f := range project.WebDevelopment.Features {
		switch f.Feature {
		case "responsive-design":
			require.Equal(t, 30, f.Price)
		case "admin-panel":
			require.Equal(t, 100, f.Price)
		default:
			t.Fatalf("unexpected feature %q", f.Feature)
		}
	}
}

func TestCreateFromHire_ExistingEmailWrongPassword(t *testing.T) {
	svc, _ := setupService(t)

	_, _, err := svc.CreateFromHire(context.Background(), webHireInput())
	require.NoError(t, err)

	in := webHireInput()
	in.Password = "differentpass"
	_, _, err = svc.CreateFromHire(context.Background(), in)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 400, appErr.Status)
	require.Equal(t, "An account with this email already exists", appErr.Message)
}

func TestCreateFromHire_ExistingEmailMatchingPasswordAttaches(t *testing.T) {
	svc, db := setupService(t)

	_, first, err := svc.CreateFromHire(context.Background(), webHireInput())
	require.NoError(t, err)

	second, user, err := svc.CreateFromHire(context.Background(), webHireInput())
	require.NoError(t, err)
	require.Equal(t, first.ID, user.ID)
	require.Equal(t, first.ID, second.UserID)

	var userCount int64
	require.NoError(t, db.Model(&models.User{}).Count(&userCount).Error)
	require.EqualValues(t, 1, userCount)
}

func TestCreateFromHire_ValidationFailures(t *testing.T) {
	svc, _ := setupService(t)

	cases := map[string]func(*HireInput){
		"bad email":        func(in *HireInput) { in.Email = "not-an-email" },
		"short password":   func(in *HireInput) { in.Password = "short" },
		"short name":       func(in *HireInput) { in.FullName = "J" },
		"missing name":     func(in *HireInput) { in.ProjectName = "" },
		"missing title":    func(in *HireInput) { in.ProjectTitle = "" },
		"unknown category": func(in *HireInput) { in.Category = "consulting" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := webHireInput()
			mutate(&in)
			_, _, err := svc.CreateFromHire(context.Background(), in)
			var appErr *models.AppError
			require.ErrorAs(t, err, &appErr)
			require.Equal(t, 400, appErr.Status)
		})
	}
}

func TestCreateForUser_UsesStoredIdentity(t *testing.T) {
	svc, db := setupService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("memberpass1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{FullName: "Member", Email: "member@example.com", Password: string(hash)}
	require.NoError(t, db.Create(user).Error)

	in := ProjectInput{
		ProjectName:  "Keyword push",
		ProjectTitle: "Quarterly SEO",
		Category:     models.CategorySeo,
		Selections: pricing.Selections{
			SeoTypes: []string{"on-page", "off-page"},
		},
	}
	project, err := svc.CreateForUser(context.Background(), user.ID, in)
	require.NoError(t, err)
	require.Equal(t, user.ID, project.UserID)
	require.Equal(t, "member@example.com", project.Email)
	require.Equal(t, string(hash), project.Password)
	require.Equal(t, 130.0, project.Price)
	require.NotNil(t, project.Seo)
	require.Len(t, project.Seo.Types, 2)
}

func TestCreateForUser_AppPricingWithComplexity(t *testing.T) {
	svc, db := setupService(t)

	user := &models.User{FullName: "Member", Email: "app@example.com", Password: "hash"}
	require.NoError(t, db.Create(user).Error)

	in := ProjectInput{
		ProjectName:  "Field app",
		ProjectTitle: "Crew scheduling",
		Category:     models.CategoryAppDevelopment,
		Selections: pricing.Selections{
			AppType:       "cross-platform",
			AppFeatures:   []string{"push-notifications", "offline-functionality"},
			AppComplexity: "complex",
		},
	}
	project, err := svc.CreateForUser(context.Background(), user.ID, in)
	require.NoError(t, err)

	// (600 + 60 + 100) * 2
	require.Equal(t, 1520.0, project.Price)
	require.NotNil(t, project.AppDevelopment)
	require.NotNil(t, project.AppDevelopment.AppType)
	require.Equal(t, "cross-platform", *project.AppDevelopment.AppType)
	require.NotNil(t, project.AppDevelopment.Complexity)
	require.Equal(t, "complex", *project.AppDevelopment.Complexity)
}
