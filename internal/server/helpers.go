package server

import (
	"strconv"
	"time"

	"hireflow/internal/session"

	"github.com/gofiber/fiber/v2"
)

// setSessionCookie writes the session cookie for a domain. SameSite=None is
// required because the frontend is served from a different origin.
func setSessionCookie(c *fiber.Ctx, name, sessionID string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    sessionID,
		Expires:  time.Now().Add(session.DefaultTTL),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})
}

// clearSessionCookie expires a session cookie immediately.
func clearSessionCookie(c *fiber.Ctx, name string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})
}

// ok writes the standard success envelope, merging extra fields in.
func ok(c *fiber.Ctx, status int, extra fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// paramID parses the :id route parameter.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// clientIdentity returns the identity stored by UserRequired.
func clientIdentity(c *fiber.Ctx) *session.Identity {
	ident, _ := c.Locals("userIdentity").(*session.Identity)
	return ident
}

// adminIdentity returns the identity stored by AdminRequired.
func adminIdentity(c *fiber.Ctx) *session.Identity {
	ident, _ := c.Locals("adminIdentity").(*session.Identity)
	return ident
}
