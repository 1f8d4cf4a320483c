package routes

import (
	"hrms-console/internal/handler"
	"hrms-console/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDashboardRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewDashboardRepository(db)
	hdl := handler.NewDashboardHandler(repo)

	app.Get("/api/v1/dashboard", hdl.GetStats) // ?date=YYYY-MM-DD
}
