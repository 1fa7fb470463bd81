package server

import (
	"hireflow/internal/middleware"
	"hireflow/internal/models"
	"hireflow/internal/session"
	"hireflow/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Contact handles POST /contact. Submissions are anonymous, but when a live
// client session rides along, the message is linked to that account.
func (s *Server) Contact(c *fiber.Ctx) error {
	var req struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Subject string `json:"subject"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.Subject == "" || req.Message == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Name, subject and message are required"))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	form := &models.ContactForm{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if ident, err := s.sessions.Get(c.Context(), session.DomainClient, c.Cookies(session.ClientCookie)); err == nil {
		id := ident.ID
		form.UserID = &id
	}

	if err := s.contactRepo.Create(c.Context(), form); err != nil {
		return models.RespondWithError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "contact form received", "contact_id", form.ID)

	return ok(c, fiber.StatusCreated, fiber.Map{
		"message": "Message received",
	})
}
