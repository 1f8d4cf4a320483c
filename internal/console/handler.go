package console

import (
	"errors"
	"net/url"

	"hrms-console/internal/client"
	"hrms-console/internal/form"
	"hrms-console/internal/model"
	"hrms-console/internal/page"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

const layout = "layout"

// Handler serves the console pages. Every page handler works against the workspace the
// middleware resolved for the request.
type Handler struct {
	employees  client.EmployeeAPI
	attendance client.AttendanceAPI
	opts       page.Options
}

func NewHandler(employees client.EmployeeAPI, attendance client.AttendanceAPI, opts page.Options) *Handler {
	return &Handler{employees: employees, attendance: attendance, opts: opts}
}

// activeOr returns the workspace's controller of type T, mounting a fresh one from mk when
// the workspace shows something else. mounted reports whether mk was used.
func activeOr[T page.Page](ws *Workspace, mk func() T) (p T, mounted bool) {
	if p, ok := Active[T](ws); ok {
		return p, false
	}
	p = mk()
	ws.Mount(p)
	return p, true
}

func (h *Handler) newDashboard() *page.Dashboard {
	return page.NewDashboard(h.employees, h.attendance, h.opts)
}

func (h *Handler) newEmployees() *page.Employees {
	return page.NewEmployees(h.employees, h.opts)
}

func (h *Handler) newAttendance() *page.Attendance {
	return page.NewAttendance(h.attendance, h.employees, h.opts)
}

// statusFor maps an action's outcome to the response code of the re-rendered page.
func statusFor(err error) int {
	var fe form.FieldErrors
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &fe):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, page.ErrNotDisplayed):
		return fiber.StatusNotFound
	case errors.Is(err, page.ErrBadDate):
		return fiber.StatusBadRequest
	case errors.Is(err, page.ErrDeletePending), errors.Is(err, page.ErrBusy),
		errors.Is(err, page.ErrNothingStaged), errors.Is(err, form.ErrNoEmployees),
		errors.Is(err, form.ErrSubmitting):
		return fiber.StatusConflict
	}
	// Transport failures are shown inside the page.
	return fiber.StatusOK
}

func logAction(c *fiber.Ctx, err error) {
	if err != nil {
		log.Debugw("console action failed", "path", c.Path(), "err", err)
	}
}

// Dashboard

func (h *Handler) Dashboard(c *fiber.Ctx) error {
	p := h.newDashboard()
	Current(c).Mount(p)
	return h.renderDashboard(c, p)
}

func (h *Handler) RefreshDashboard(c *fiber.Ctx) error {
	p, mounted := activeOr(Current(c), h.newDashboard)
	if !mounted {
		p.Refresh()
	}
	return h.renderDashboard(c, p)
}

func (h *Handler) renderDashboard(c *fiber.Ctx, p *page.Dashboard) error {
	v := p.View()
	return c.Render("dashboard", fiber.Map{
		"Title":       "Dashboard",
		"CurrentPage": "dashboard",
		"View":        v,
		"Loading":     v.Status == page.Loading,
		"Failed":      v.Status == page.Failed,
		"GetStarted":  v.Status == page.Success && v.Stats.TotalEmployees == 0,
	}, layout)
}

// Employees

func (h *Handler) Employees(c *fiber.Ctx) error {
	p := h.newEmployees()
	Current(c).Mount(p)
	return h.renderEmployees(c, p, nil)
}

func (h *Handler) RefreshEmployees(c *fiber.Ctx) error {
	p, mounted := activeOr(Current(c), h.newEmployees)
	if !mounted {
		p.Refresh()
	}
	return h.renderEmployees(c, p, nil)
}

func (h *Handler) ToggleEmployeeForm(c *fiber.Ctx) error {
	p, _ := activeOr(Current(c), h.newEmployees)
	p.SetFormVisible(c.FormValue("show") == "1")
	return h.renderEmployees(c, p, nil)
}

func (h *Handler) CreateEmployee(c *fiber.Ctx) error {
	p, _ := activeOr(Current(c), h.newEmployees)
	err := p.SubmitEmployee(form.EmployeeValues{
		FullName:         c.FormValue("full_name"),
		Email:            c.FormValue("email"),
		Department:       c.FormValue("department"),
		CustomDepartment: c.FormValue("custom_department"),
	})
	logAction(c, err)
	return h.renderEmployees(c, p, err)
}

func (h *Handler) StageDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	p, _ := activeOr(Current(c), h.newEmployees)
	err = p.StageDelete(uint(id))
	logAction(c, err)
	return h.renderEmployees(c, p, err)
}

func (h *Handler) ConfirmDelete(c *fiber.Ctx) error {
	p, _ := activeOr(Current(c), h.newEmployees)
	err := p.ConfirmDelete()
	logAction(c, err)
	return h.renderEmployees(c, p, err)
}

func (h *Handler) CancelDelete(c *fiber.Ctx) error {
	p, _ := activeOr(Current(c), h.newEmployees)
	p.CancelDelete()
	return h.renderEmployees(c, p, nil)
}

func (h *Handler) renderEmployees(c *fiber.Ctx, p *page.Employees, actionErr error) error {
	v := p.View()
	return c.Status(statusFor(actionErr)).Render("employees", fiber.Map{
		"Title":       "Employees",
		"CurrentPage": "employees",
		"View":        v,
		"Loading":     v.Status == page.Loading,
		"Failed":      v.Status == page.Failed,
		"Empty":       v.Status == page.Success && len(v.Employees) == 0,
		"Custom":      form.CustomDepartment,
	}, layout)
}

func (h *Handler) EmployeeDetail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.ErrNotFound
	}
	p := page.NewEmployeeDetail(uint(id), h.employees, h.attendance)
	Current(c).Mount(p)

	v := p.View()
	return c.Render("employee", fiber.Map{
		"Title":       "Employee",
		"CurrentPage": "employees",
		"View":        v,
		"Failed":      v.Status == page.Failed,
	}, layout)
}

// Attendance

func (h *Handler) Attendance(c *fiber.Ctx) error {
	p := h.newAttendance()
	filterErr := p.SetDateFilter(c.Query("date"))
	Current(c).Mount(p)
	return h.renderAttendance(c, p, filterErr)
}

func (h *Handler) RefreshAttendance(c *fiber.Ctx) error {
	p, mounted := activeOr(Current(c), h.newAttendance)
	if !mounted {
		p.Refresh()
	}
	return h.renderAttendance(c, p, nil)
}

func (h *Handler) FilterAttendance(c *fiber.Ctx) error {
	p, _ := activeOr(Current(c), h.newAttendance)
	err := p.SetDateFilter(c.FormValue("date"))
	return h.renderAttendance(c, p, err)
}

func (h *Handler) MarkAttendance(c *fiber.Ctx) error {
	p, _ := activeOr(Current(c), h.newAttendance)
	err := p.SubmitAttendance(form.AttendanceValues{
		EmployeeID: c.FormValue("employee_id"),
		Date:       c.FormValue("date"),
		Status:     model.AttendanceStatus(c.FormValue("status")),
	})
	logAction(c, err)
	return h.renderAttendance(c, p, err)
}

func (h *Handler) renderAttendance(c *fiber.Ctx, p *page.Attendance, actionErr error) error {
	v := p.View()
	data := fiber.Map{
		"Title":       "Attendance",
		"CurrentPage": "attendance",
		"View":        v,
		"Loading":     v.Status == page.Loading,
		"Failed":      v.Status == page.Failed,
		"Empty":       v.Status == page.Success && len(v.Records) == 0,
		"ExportURL":   "/attendance/export",
	}
	if v.DateFilter != "" {
		data["ExportURL"] = "/attendance/export?date=" + url.QueryEscape(v.DateFilter)
	}
	if errors.Is(actionErr, page.ErrBadDate) {
		data["FilterError"] = "Invalid date"
	}
	return c.Status(statusFor(actionErr)).Render("attendance", data, layout)
}

// DismissBanner clears the success banner of whatever page the workspace shows.
func (h *Handler) DismissBanner(c *fiber.Ctx) error {
	ws := Current(c)
	switch p := ws.Active().(type) {
	case *page.Employees:
		p.DismissBanner()
		return h.renderEmployees(c, p, nil)
	case *page.Attendance:
		p.DismissBanner()
		return h.renderAttendance(c, p, nil)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
