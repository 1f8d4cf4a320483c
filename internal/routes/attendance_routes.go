package routes

import (
	"hrms-console/internal/handler"
	"hrms-console/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewAttendanceRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	hdl := handler.NewAttendanceHandler(repo, empRepo)

	api := app.Group("/api/v1/attendance")
	api.Get("/", hdl.GetAll) // ?attendance_date=YYYY-MM-DD
	api.Post("/", hdl.Mark)
	api.Get("/employee/:employee_id", hdl.GetByEmployee)
}
