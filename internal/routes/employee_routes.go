package routes

import (
	"hrms-console/internal/handler"
	"hrms-console/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupEmployeeRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewEmployeeRepository(db)
	hdl := handler.NewEmployeeHandler(repo)

	api := app.Group("/api/v1/employees")
	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.GetByID)
	api.Delete("/:id", hdl.Delete) // cascades attendance
}
