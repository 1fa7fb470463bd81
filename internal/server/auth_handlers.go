package server

import (
	"hireflow/internal/middleware"
	"hireflow/internal/models"
	"hireflow/internal/session"
	"hireflow/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register handles POST /register. A successful registration also logs the
// user in: the session cookie is set in the same response.
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	if err := validation.ValidateName(req.FullName); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	existing, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if existing != nil {
		return models.RespondWithError(c, models.NewConflictError("An account with this email already exists"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(c.Context(), user); err != nil {
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

	middleware.Logger.InfoContext(c.UserContext(), "user registered", "user_id", user.ID)

	return ok(c, fiber.StatusCreated, fiber.Map{
		"message": "Registration successful",
		"user":    user,
	})
}

// Login handles POST /login. Unknown email and wrong password produce the
// same response so the endpoint cannot be used to probe for accounts.
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, models.NewAuthenticationError())
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.RespondWithError(c, models.NewAuthenticationError())
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

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Login successful",
		"user":    user,
	})
}

// Logout handles POST /logout. It destroys the server-side session and
// clears the cookie; an absent session is not an error.
func (s *Server) Logout(c *fiber.Ctx) error {
	if id := c.Cookies(session.ClientCookie); id != "" {
		if err := s.sessions.Destroy(c.Context(), session.DomainClient, id); err != nil {
			middleware.Logger.WarnContext(c.UserContext(), "session destroy failed", "error", err)
		}
	}
	clearSessionCookie(c, session.ClientCookie)

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Logged out successfully",
	})
}

// CheckSession handles GET /check-session. It always answers 200; the body
// says whether a live client session exists.
func (s *Server) CheckSession(c *fiber.Ctx) error {
	ident, err := s.sessions.Get(c.Context(), session.DomainClient, c.Cookies(session.ClientCookie))
	if err != nil {
		return ok(c, fiber.StatusOK, fiber.Map{
			"isAuthenticated": false,
		})
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"isAuthenticated": true,
		"user": fiber.Map{
			"id":        ident.ID,
			"email":     ident.Email,
			"full_name": ident.Name,
		},
	})
}

// ForgotPassword handles POST /forgot-password. The response never reveals
// whether the email has an account; a token is issued only when it does.
func (s *Server) ForgotPassword(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	body := fiber.Map{
		"message": "If an account exists for this email, a reset token has been issued",
	}

	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user != nil {
		token, err := s.sessions.IssueResetToken(c.Context(), user.Email)
		if err != nil {
			return models.RespondWithError(c, models.NewInternalError(err))
		}
		// Email delivery is out of scope; the token rides in the response
		// for the frontend reset flow.
		body["reset_token"] = token
	}

	return ok(c, fiber.StatusOK, body)
}

// ResetPassword handles POST /reset-password. The token is single-use and
// bound to the email it was issued for.
func (s *Server) ResetPassword(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Token    string `json:"token"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	if err := s.sessions.ConsumeResetToken(c.Context(), req.Token, req.Email); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid or expired reset token"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}
	if err := s.userRepo.UpdatePasswordByEmail(c.Context(), req.Email, string(hashedPassword)); err != nil {
		return models.RespondWithError(c, err)
	}

	return ok(c, fiber.StatusOK, fiber.Map{
		"message": "Password has been reset",
	})
}
