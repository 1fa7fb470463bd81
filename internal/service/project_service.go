package service

import (
	"context"
	"time"

	"hireflow/internal/middleware"
	"hireflow/internal/models"
	"hireflow/internal/pricing"
	"hireflow/internal/repository"
	"hireflow/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// ProjectInput is a project request as submitted by a client. Selections
// carry the priced choices; the remaining fields are stored verbatim on the
// category detail record.
type ProjectInput struct {
	ProjectName  string     `json:"project_name"`
	ProjectTitle string     `json:"project_title"`
	Category     string     `json:"category"`
	Deadline     *time.Time `json:"deadline"`
	Details      *string    `json:"details"`
	// Price is the client's own estimate. It is accepted but never trusted:
	// the server recomputes and stores its own figure.
	Price float64 `json:"price"`

	Selections pricing.Selections `json:"selections"`

	TargetAudience  *string `json:"target_audience"`
	ContentTone     *string `json:"content_tone"`
	TargetKeywords  *string `json:"target_keywords"`
	TargetPlatforms *string `json:"target_platforms"`
	ExpectedUsers   *int    `json:"expected_users"`
}

// HireInput is the anonymous hire form: identity fields plus the project.
type HireInput struct {
	ProjectInput
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProjectService owns project submission: input validation, user
// resolution, authoritative pricing, and handing the built graph to the
// repository.
type ProjectService struct {
	users    repository.UserRepository
	projects repository.ProjectRepository
	calc     *pricing.Calculator
	table    *pricing.Table
}

// NewProjectService wires a ProjectService over the given repositories and
// pricing table.
func NewProjectService(users repository.UserRepository, projects repository.ProjectRepository, table *pricing.Table, catalog *pricing.Catalog) *ProjectService {
	return &ProjectService{
		users:    users,
		projects: projects,
		calc:     pricing.NewCalculator(table, catalog),
		table:    table,
	}
}

// CreateFromHire handles the anonymous hire form. The email either creates a
// new account or, when it already exists, must authenticate against the
// stored hash before the project is attached to that account.
func (s *ProjectService) CreateFromHire(ctx context.Context, in HireInput) (*models.Project, *models.User, error) {
	if err := validation.ValidateName(in.FullName); err != nil {
		return nil, nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, nil, models.NewValidationError(err.Error())
	}
	if err := validateProjectInput(in.ProjectInput); err != nil {
		return nil, nil, err
	}

	user, err := s.resolveUser(ctx, in.FullName, in.Email, in.Password)
	if err != nil {
		return nil, nil, err
	}

	project := s.buildProject(user, in.ProjectInput)
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, nil, err
	}
	middleware.ProjectsCreated.WithLabelValues(project.Category).Inc()
	return project, user, nil
}

// CreateForUser handles submissions from an authenticated session. Identity
// comes from the session user, never from the request body.
func (s *ProjectService) CreateForUser(ctx context.Context, userID uint, in ProjectInput) (*models.Project, error) {
	if err := validateProjectInput(in); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	project := s.buildProject(user, in)
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	middleware.ProjectsCreated.WithLabelValues(project.Category).Inc()
	return project, nil
}

func validateProjectInput(in ProjectInput) error {
	if in.ProjectName == "" {
		return models.NewValidationError("Project name is required")
	}
	if in.ProjectTitle == "" {
		return models.NewValidationError("Project title is required")
	}
	if !models.ValidCategory(in.Category) {
		return models.NewValidationError("Invalid project category")
	}
	return nil
}

// resolveUser finds or creates the account for a hire submission. An
// existing email with a non-matching password is a conflict, not a silent
// takeover.
func (s *ProjectService) resolveUser(ctx context.Context, name, email, password string) (*models.User, error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if bcrypt.CompareHashAndPassword([]byte(existing.Password), []byte(password)) != nil {
			return nil, models.NewConflictError("An account with this email already exists")
		}
		return existing, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	user := &models.User{
		FullName: name,
		Email:    email,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// buildProject assembles the project row and its category detail subtree.
// Every child row's price is stamped from the pricing table at build time so
// stored records survive later table changes.
func (s *ProjectService) buildProject(user *models.User, in ProjectInput) *models.Project {
	project := &models.Project{
		Username:     user.FullName,
		Email:        user.Email,
		Password:     user.Password,
		ProjectName:  in.ProjectName,
		ProjectTitle: in.ProjectTitle,
		Category:     in.Category,
		Price:        s.calc.Price(in.Category, in.Selections),
		Deadline:     in.Deadline,
		Details:      in.Details,
		UserID:       user.ID,
		Status:       models.StatusPending,
	}

	sel := in.Selections
	switch in.Category {
	case models.CategoryWebDevelopment:
		detail := &models.WebDevelopmentDetail{
			Tech:     sel.Tech,
			WebPages: sel.WebPages,
		}
		for _, f := range sel.WebFeatures {
			detail.Features = append(detail.Features, models.WebDevelopmentFeature{
				Feature: f,
				Price:   s.table.PriceOf(f, pricing.DomainWeb),
			})
		}
		project.WebDevelopment = detail

	case models.CategorySeo:
		detail := &models.SeoDetail{}
		for _, t := range sel.SeoTypes {
			detail.Types = append(detail.Types, models.SeoType{
				SeoType: t,
				Price:   s.table.PriceOf(t, pricing.DomainSeo),
			})
		}
		project.Seo = detail

	case models.CategoryDigitalMarketing:
		detail := &models.DigitalMarketingDetail{
			TargetAudience: in.TargetAudience,
		}
		if sel.MarketingDuration != "" {
			duration := sel.MarketingDuration
			detail.Duration = &duration
		}
		if sel.MarketingBudget > 0 {
			budget := sel.MarketingBudget
			detail.MarketingBudget = &budget
		}
		for _, svc := range sel.MarketingServices {
			detail.Services = append(detail.Services, models.DigitalMarketingService{
				Service: svc,
				Price:   s.table.PriceOf(svc, pricing.DomainMarketing),
			})
		}
		for _, p := range sel.SocialPlatforms {
			detail.Platforms = append(detail.Platforms, models.SocialPlatform{
				Platform: p,
				Price:    s.table.PriceOf(p, pricing.DomainSocialPlatform),
			})
		}
		project.DigitalMarketing = detail

	case models.CategoryContentGeneration:
		detail := &models.ContentGenerationDetail{
			ContentTone:    in.ContentTone,
			TargetKeywords: in.TargetKeywords,
		}
		if sel.ContentVolume != "" {
			volume := sel.ContentVolume
			detail.Volume = &volume
		}
		for _, t := range sel.ContentTypes {
			detail.Types = append(detail.Types, models.ContentType{
				ContentType: t,
				Price:       s.table.PriceOf(t, pricing.DomainContentType),
			})
		}
		for _, l := range sel.ContentLanguages {
			detail.Languages = append(detail.Languages, models.ContentLanguage{
				Language: l,
				Price:    s.table.PriceOf(l, pricing.DomainContentLanguage),
			})
		}
		project.ContentGeneration = detail

	case models.CategoryAppDevelopment:
		detail := &models.AppDevelopmentDetail{
			TargetPlatforms: in.TargetPlatforms,
			ExpectedUsers:   in.ExpectedUsers,
		}
		if sel.AppType != "" {
			appType := sel.AppType
			detail.AppType = &appType
		}
		if sel.AppComplexity != "" {
			complexity := sel.AppComplexity
			detail.Complexity = &complexity
		}
		for _, f := range sel.AppFeatures {
			detail.Features = append(detail.Features, models.AppFeature{
				Feature: f,
				Price:   s.table.PriceOf(f, pricing.DomainAppFeature),
			})
		}
		project.AppDevelopment = detail
	}

	return project
}
