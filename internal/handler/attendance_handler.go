package handler

import (
	"errors"
	"hrms-console/internal/model"
	"hrms-console/internal/repository"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type AttendanceHandler struct {
	repo    repository.AttendanceRepository
	empRepo repository.EmployeeRepository
	now     func() time.Time
}

func NewAttendanceHandler(repo repository.AttendanceRepository, empRepo repository.EmployeeRepository) *AttendanceHandler {
	return &AttendanceHandler{repo: repo, empRepo: empRepo, now: time.Now}
}

func (h *AttendanceHandler) Mark(c *fiber.Ctx) error {
	var req model.AttendanceInput
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.EmployeeID = strings.TrimSpace(req.EmployeeID)

	if req.EmployeeID == "" {
		return detail(c, fiber.StatusBadRequest, "employee_id is required")
	}
	if !model.IsDate(req.Date) {
		return detail(c, fiber.StatusBadRequest, "date must be in YYYY-MM-DD format")
	}
	if req.Date > model.Today(h.now()) {
		return detail(c, fiber.StatusBadRequest, "Cannot mark attendance for a future date")
	}
	if !req.Status.Valid() {
		return detail(c, fiber.StatusBadRequest, "status must be one of Present, Absent, On Leave, Half Day")
	}

	emp, err := h.empRepo.FindByCode(req.EmployeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return detail(c, fiber.StatusNotFound, "Employee not found")
		}
		return internalError(c, "Failed to fetch employee", err)
	}

	rec := model.Attendance{
		EmployeeID:   emp.EmployeeID,
		Date:         req.Date,
		Status:       req.Status,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		Notes:        req.Notes,
	}
	if err := h.repo.Create(&rec); err != nil {
		if errors.Is(err, repository.ErrDuplicateDay) {
			return detail(c, fiber.StatusBadRequest, "Attendance already marked for this employee on this date")
		}
		return internalError(c, "Failed to mark attendance", err)
	}
	rec.EmployeeName = emp.FullName
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// GetAll lists every record, or one day's records when attendance_date is given.
func (h *AttendanceHandler) GetAll(c *fiber.Ctx) error {
	var (
		list []model.Attendance
		err  error
	)
	if date := c.Query("attendance_date"); date != "" {
		if !model.IsDate(date) {
			return detail(c, fiber.StatusBadRequest, "attendance_date must be in YYYY-MM-DD format")
		}
		list, err = h.repo.GetByDate(date)
	} else {
		list, err = h.repo.GetAll()
	}
	if err != nil {
		return internalError(c, "Failed to fetch attendance", err)
	}
	return c.JSON(nonNil(list))
}

func (h *AttendanceHandler) GetByEmployee(c *fiber.Ctx) error {
	code := c.Params("employee_id")
	if _, err := h.empRepo.FindByCode(code); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return detail(c, fiber.StatusNotFound, "Employee not found")
		}
		return internalError(c, "Failed to fetch employee", err)
	}

	list, err := h.repo.GetByEmployee(code)
	if err != nil {
		return internalError(c, "Failed to fetch attendance", err)
	}
	return c.JSON(nonNil(list))
}

func nonNil(list []model.Attendance) []model.Attendance {
	if list == nil {
		return []model.Attendance{}
	}
	return list
}
