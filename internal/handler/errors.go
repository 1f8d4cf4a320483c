package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// detail writes the {"detail": "..."} failure body the console expects.
func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

func internalError(c *fiber.Ctx, msg string, err error) error {
	log.Errorw(msg, "path", c.Path(), "err", err)
	return detail(c, fiber.StatusInternalServerError, msg)
}
