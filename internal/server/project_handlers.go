package server

import (
	"hireflow/internal/middleware"
	"hireflow/internal/models"
	"hireflow/internal/service"
	"hireflow/internal/session"

	"github.com/gofiber/fiber/v2"
)

// Hire handles POST /hire, the anonymous project request form. It creates
// (or re-authenticates) the account, persists the project graph, and starts
// a client session in one round trip.
func (s *Server) Hire(c *fiber.Ctx) error {
	var req service.HireInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	project, user, err := s.projectSvc.CreateFromHire(c.Context(), req)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	sessionID, err := s.sessions.Create(c.Context(), session.DomainClient, session.Identity{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.FullName,
	})
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}
	setSessionCookie(c, session.ClientCookie, sessionID)

	middleware.Logger.InfoContext(c.UserContext(), "hire request created",
		"project_id", project.ID, "category", project.Category, "price", project.Price)

	return ok(c, fiber.StatusCreated, fiber.Map{
		"message": "Project request submitted",
		"project": project,
		"user":    user,
	})
}

// AddProject handles POST /add-project for an authenticated client. Identity
// fields in the body are ignored; the session decides who owns the project.
func (s *Server) AddProject(c *fiber.Ctx) error {
	var req service.ProjectInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	userID, _ := c.Locals("userID").(uint)
	project, err := s.projectSvc.CreateForUser(c.Context(), userID, req)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "project added",
		"project_id", project.ID, "category", project.Category, "price", project.Price)

	return ok(c, fiber.StatusCreated, fiber.Map{
		"message": "Project added",
		"project": project,
	})
}

// GetPricingSchema handles GET /pricing/:category. The client form renders
// its options from this, but the prices it shows are advisory; the server
// recomputes on submission.
func (s *Server) GetPricingSchema(c *fiber.Ctx) error {
	category := c.Params("category")
	if !models.ValidCategory(category) {
		return models.RespondWithError(c, models.NewValidationError("Invalid project category"))
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"category": category,
		"schema":   s.catalog.SchemaFor(category),
	})
}

// GetUserProjects handles GET /user-projects: the session user's own
// projects, newest first.
func (s *Server) GetUserProjects(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(uint)
	projects, err := s.projectRepo.ListByUser(c.Context(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"projects": projects,
	})
}
