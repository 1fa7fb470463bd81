package server

import (
	"hireflow/internal/middleware"
	"hireflow/internal/models"
	"hireflow/internal/repository"

	"github.com/gofiber/fiber/v2"
)

func repositoryFilterFromQuery(c *fiber.Ctx) repository.PortfolioFilter {
	return repository.PortfolioFilter{
		Category:     c.Query("category"),
		FeaturedOnly: c.Query("featured") == "true",
	}
}

// GetPortfolioProjects handles GET /portfolio-projects. Only active entries
// are visible, narrowed further by ?category= and ?featured=true.
func (s *Server) GetPortfolioProjects(c *fiber.Ctx) error {
	filter := repositoryFilterFromQuery(c)
	projects, err := s.portfolioRepo.List(c.Context(), filter)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"projects": projects,
	})
}

// GetPortfolioProject handles GET /portfolio-projects/:id. Inactive entries
// stay invisible on the public route.
func (s *Server) GetPortfolioProject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid portfolio project ID"))
	}

	project, err := s.portfolioRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if project.Status != models.PortfolioStatusActive {
		return models.RespondWithError(c, models.NewNotFoundError("Portfolio project"))
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"project": project,
	})
}

// AdminListPortfolioProjects handles GET /admin/portfolio-projects: all
// entries regardless of status.
func (s *Server) AdminListPortfolioProjects(c *fiber.Ctx) error {
	filter := repositoryFilterFromQuery(c)
	filter.IncludeAll = true

	projects, err := s.portfolioRepo.List(c.Context(), filter)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"projects": projects,
	})
}

type portfolioRequest struct {
	Title        string            `json:"title"`
	Category     string            `json:"category"`
	Image        string            `json:"image"`
	Description  string            `json:"description"`
	Technologies models.StringList `json:"technologies"`
	LiveURL      string            `json:"live_url"`
	GithubURL    *string           `json:"github_url"`
	Featured     *bool             `json:"featured"`
	Status       *string           `json:"status"`
}

// AdminCreatePortfolioProject handles POST /admin/portfolio-projects.
func (s *Server) AdminCreatePortfolioProject(c *fiber.Ctx) error {
	var req portfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Title == "" || req.Category == "" || req.Description == "" || req.Image == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Title, category, image and description are required"))
	}

	project := &models.PortfolioProject{
		Title:        req.Title,
		Category:     req.Category,
		Image:        req.Image,
		Description:  req.Description,
		Technologies: req.Technologies,
		LiveURL:      req.LiveURL,
		GithubURL:    req.GithubURL,
		Status:       models.PortfolioStatusActive,
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.Status != nil {
		if !models.ValidPortfolioStatus(*req.Status) {
			return models.RespondWithError(c, models.NewValidationError("Invalid portfolio status"))
		}
		project.Status = *req.Status
	}

	if err := s.portfolioRepo.Create(c.Context(), project); err != nil {
		return models.RespondWithError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "portfolio project created", "portfolio_id", project.ID)

	return ok(c, fiber.StatusCreated, fiber.Map{
		"message": "Portfolio project created",
		"project": project,
	})
}

// AdminUpdatePortfolioProject handles PUT /admin/portfolio-projects/:id.
// Absent fields keep their stored values.
func (s *Server) AdminUpdatePortfolioProject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid portfolio project ID"))
	}

	project, err := s.portfolioRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req portfolioRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Title != "" {
		project.Title = req.Title
	}
	if req.Category != "" {
		project.Category = req.Category
	}
	if req.Image != "" {
		project.Image = req.Image
	}
	if req.Description != "" {
		project.Description = req.Description
	}
	if req.Technologies != nil {
		project.Technologies = req.Technologies
	}
	if req.LiveURL != "" {
		project.LiveURL = req.LiveURL
	}
	if req.GithubURL != nil {
		project.GithubURL = req.GithubURL
	}
	if req.Featured != nil {
		project.Featured = *req.Featured
	}
	if req.Status != nil {
		if !models.ValidPortfolioStatus(*req.Status) {
			return models.RespondWithError(c, models.NewValidationError("Invalid portfolio status"))
		}
		project.Status = *req.Status
	}

	if err := s.portfolioRepo.Update(c.Context(), project); err != nil {
		return models.RespondWithError(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Portfolio project updated",
		"project": project,
	})
}

// AdminDeletePortfolioProject handles DELETE /admin/portfolio-projects/:id.
func (s *Server) AdminDeletePortfolioProject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid portfolio project ID"))
	}

	if err := s.portfolioRepo.Delete(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "portfolio project deleted", "portfolio_id", id)

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Portfolio project deleted",
	})
}
