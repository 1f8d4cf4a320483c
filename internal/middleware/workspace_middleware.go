package middleware

import (
	"time"

	"hrms-console/internal/console"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const WorkspaceCookie = "hrms_ws"

// Workspace resolves the browser's workspace from its cookie, issuing a new id when the
// cookie is missing or malformed, and stores it in c.Locals for the console handlers.
func Workspace(store *console.Store, idle time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Read the id, or mint one
		id := c.Cookies(WorkspaceCookie)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		// 2. Refresh the cookie so it lives as long as the workspace
		c.Cookie(&fiber.Cookie{
			Name:     WorkspaceCookie,
			Value:    id,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			Expires:  time.Now().Add(idle),
		})

		// 3. Hand the workspace to the handlers
		c.Locals(console.LocalsKey, store.Get(id))
		return c.Next()
	}
}
