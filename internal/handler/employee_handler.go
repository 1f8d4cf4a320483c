package handler

import (
	"errors"
	"hrms-console/internal/form"
	"hrms-console/internal/model"
	"hrms-console/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type EmployeeHandler struct {
	repo repository.EmployeeRepository
}

func NewEmployeeHandler(repo repository.EmployeeRepository) *EmployeeHandler {
	return &EmployeeHandler{repo: repo}
}

func (h *EmployeeHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return internalError(c, "Failed to fetch employees", err)
	}
	if list == nil {
		list = []model.Employee{}
	}
	return c.JSON(list)
}

func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var req model.EmployeeInput
	if err := c.BodyParser(&req); err != nil {
		return detail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	// Same rules as the console form, so both sides reject the same input.
	values := form.EmployeeValues{FullName: req.FullName, Email: req.Email, Department: req.Department}
	if errs := values.Validate(); len(errs) > 0 {
		for _, field := range []string{"full_name", "email", "department"} {
			if msg, ok := errs[field]; ok {
				return detail(c, fiber.StatusBadRequest, msg)
			}
		}
	}

	in := values.Input()
	emp := model.Employee{FullName: in.FullName, Email: in.Email, Department: in.Department}
	if err := h.repo.Create(&emp); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return detail(c, fiber.StatusBadRequest, "Employee with this email already exists")
		}
		return internalError(c, "Failed to create employee", err)
	}
	return c.Status(fiber.StatusCreated).JSON(emp)
}

func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return detail(c, fiber.StatusBadRequest, "Invalid employee id")
	}

	emp, err := h.repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return detail(c, fiber.StatusNotFound, "Employee not found")
		}
		return internalError(c, "Failed to fetch employee", err)
	}
	return c.JSON(emp)
}

// Delete removes the employee together with their attendance records.
func (h *EmployeeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return detail(c, fiber.StatusBadRequest, "Invalid employee id")
	}

	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return detail(c, fiber.StatusNotFound, "Employee not found")
		}
		return internalError(c, "Failed to delete employee", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
