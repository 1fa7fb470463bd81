package server

import (
	"hireflow/internal/middleware"
	"hireflow/internal/models"
	"hireflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AdminListProjects handles GET /admin/projects: every project across all
// users, with detail subtrees, newest first.
func (s *Server) AdminListProjects(c *fiber.Ctx) error {
	projects, err := s.projectRepo.ListAll(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"projects": projects,
	})
}

// AdminGetProject handles GET /admin/projects/:id.
func (s *Server) AdminGetProject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid project ID"))
	}

	project, err := s.projectRepo.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"project": project,
	})
}

// AdminCreateProject handles POST /admin/projects: an admin files a project
// on behalf of a client. Same upsert-by-email rules as the hire form — a new
// email creates the account, an existing one must pass its password check.
func (s *Server) AdminCreateProject(c *fiber.Ctx) error {
	var req service.HireInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	project, user, err := s.projectSvc.CreateFromHire(c.Context(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "project created by admin",
		"project_id", project.ID, "user_id", user.ID)

	return ok(c, fiber.StatusCreated, fiber.Map{
		"message": "Project created",
		"project": project,
	})
}

// AdminUpdateProjectStatus handles PUT /admin/projects/:id/status. The
// status change and its history entry land together.
func (s *Server) AdminUpdateProjectStatus(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid project ID"))
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	changedBy := "admin"
	if ident := adminIdentity(c); ident != nil {
		changedBy = ident.Email
	}

	project, err := s.projectRepo.UpdateStatus(c.Context(), id, req.Status, changedBy)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "project status updated",
		"project_id", project.ID, "status", project.Status)

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Status updated",
		"project": project,
	})
}

// AdminDeleteProject handles DELETE /admin/projects/:id. Details, feature
// rows and history go with the project.
func (s *Server) AdminDeleteProject(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid project ID"))
	}

	if err := s.projectRepo.Delete(c.Context(), id); err != nil {
		return models.RespondWithError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "project deleted", "project_id", id)

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Project deleted",
	})
}

// AdminStats handles GET /admin/stats: dashboard aggregates, recomputed on
// every call.
func (s *Server) AdminStats(c *fiber.Ctx) error {
	stats, err := s.projectRepo.Stats(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"stats": stats,
	})
}

// AdminPortfolioStats handles GET /admin/portfolio-stats.
func (s *Server) AdminPortfolioStats(c *fiber.Ctx) error {
	stats, err := s.portfolioRepo.Stats(c.Context())
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"stats": stats,
	})
}
