package handler

import (
	"hrms-console/internal/model"
	"hrms-console/internal/repository"
	"time"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo, now: time.Now}
}

// GetStats summarizes the day given by ?date=, today by default.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	date := c.Query("date", model.Today(h.now()))
	if !model.IsDate(date) {
		return detail(c, fiber.StatusBadRequest, "date must be in YYYY-MM-DD format")
	}

	stats, err := h.repo.GetDashboardStats(date)
	if err != nil {
		return internalError(c, "Failed to fetch dashboard", err)
	}
	return c.JSON(stats)
}
