package server

import (
	"hireflow/internal/middleware"
	"hireflow/internal/models"
	"hireflow/internal/session"
	"hireflow/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// AdminRegister handles POST /admin/register.
func (s *Server) AdminRegister(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateName(req.Name); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	existing, err := s.adminRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if existing != nil {
		return models.RespondWithError(c, models.NewConflictError("An admin with this email already exists"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	admin := &models.Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     "admin",
	}
	if err := s.adminRepo.Create(c.Context(), admin); err != nil {
		return models.RespondWithError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "admin registered", "admin_id", admin.ID)

	return ok(c, fiber.StatusCreated, fiber.Map{
		"message": "Admin registration successful",
		"admin": fiber.Map{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}

// AdminLogin handles POST /admin/login. The admin session lives in its own
// domain and cookie; it grants nothing on client routes.
func (s *Server) AdminLogin(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	admin, err := s.adminRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if admin == nil {
		return models.RespondWithError(c, models.NewAuthenticationError())
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return models.RespondWithError(c, models.NewAuthenticationError())
	}

	sessionID, err := s.sessions.Create(c.Context(), session.DomainAdmin, session.Identity{
		ID:    admin.ID,
		Email: admin.Email,
		Name:  admin.Name,
		Role:  admin.Role,
	})
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}
	setSessionCookie(c, session.AdminCookie, sessionID)

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Login successful",
		"admin": fiber.Map{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
			"role":  admin.Role,
		},
	})
}

// AdminLogout handles POST /admin/logout.
func (s *Server) AdminLogout(c *fiber.Ctx) error {
	if id := c.Cookies(session.AdminCookie); id != "" {
		if err := s.sessions.Destroy(c.Context(), session.DomainAdmin, id); err != nil {
			middleware.Logger.WarnContext(c.UserContext(), "admin session destroy failed", "error", err)
		}
	}
	clearSessionCookie(c, session.AdminCookie)

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Logged out successfully",
	})
}

// AdminCheckSession handles GET /admin/check-session.
func (s *Server) AdminCheckSession(c *fiber.Ctx) error {
	ident, err := s.sessions.Get(c.Context(), session.DomainAdmin, c.Cookies(session.AdminCookie))
	if err != nil {
		return ok(c, fiber.StatusOK, fiber.Map{
			"isAuthenticated": false,
		})
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"isAuthenticated": true,
		"admin": fiber.Map{
			"id":    ident.ID,
			"email": ident.Email,
			"name":  ident.Name,
			"role":  ident.Role,
		},
	})
}
