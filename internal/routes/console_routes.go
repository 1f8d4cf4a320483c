package routes

import (
	"time"

	"hrms-console/internal/console"
	"hrms-console/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupConsoleRoutes(app *fiber.App, hdl *console.Handler, store *console.Store, idle time.Duration) {
	web := app.Group("/", middleware.Workspace(store, idle))

	web.Get("/", hdl.Dashboard)
	web.Post("/dashboard/refresh", hdl.RefreshDashboard)

	web.Get("/employees", hdl.Employees)
	web.Post("/employees", hdl.CreateEmployee)
	web.Post("/employees/refresh", hdl.RefreshEmployees)
	web.Post("/employees/form", hdl.ToggleEmployeeForm)
	web.Post("/employees/delete/confirm", hdl.ConfirmDelete)
	web.Post("/employees/delete/cancel", hdl.CancelDelete)
	web.Post("/employees/:id/delete", hdl.StageDelete)
	web.Get("/employees/:id", hdl.EmployeeDetail)

	web.Get("/attendance", hdl.Attendance)
	web.Post("/attendance", hdl.MarkAttendance)
	web.Post("/attendance/refresh", hdl.RefreshAttendance)
	web.Post("/attendance/filter", hdl.FilterAttendance)
	web.Get("/attendance/export", hdl.ExportAttendance) // no workspace state involved

	web.Post("/banner/dismiss", hdl.DismissBanner)
}
