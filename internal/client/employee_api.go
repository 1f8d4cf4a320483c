package client

import (
	"fmt"
	"net/url"

	"hrms-console/internal/model"

	"github.com/gofiber/fiber/v2"
)

type EmployeeAPI interface {
	List() ([]model.Employee, error)
	Create(input model.EmployeeInput) (*model.Employee, error)
	Get(id uint) (*model.Employee, error)
	Delete(id uint) error
}

type employeeAPI struct {
	c *Client
}

func NewEmployeeAPI(c *Client) EmployeeAPI {
	return &employeeAPI{c}
}

const employeesPath = "/api/v1/employees"

func (a *employeeAPI) List() ([]model.Employee, error) {
	var list []model.Employee
	if err := a.c.Do(fiber.MethodGet, employeesPath, nil, nil, &list); err != nil {
		return nil, err
	}
	if err := checkAll(list...); err != nil {
		return nil, err
	}
	return list, nil
}

func (a *employeeAPI) Create(input model.EmployeeInput) (*model.Employee, error) {
	var created model.Employee
	if err := a.c.Do(fiber.MethodPost, employeesPath, nil, input, &created); err != nil {
		return nil, err
	}
	if err := checkAll(created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *employeeAPI) Get(id uint) (*model.Employee, error) {
	var emp model.Employee
	if err := a.c.Do(fiber.MethodGet, employeePath(id), nil, nil, &emp); err != nil {
		return nil, err
	}
	if err := checkAll(emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (a *employeeAPI) Delete(id uint) error {
	return a.c.Do(fiber.MethodDelete, employeePath(id), nil, nil, nil)
}

func employeePath(id uint) string {
	return fmt.Sprintf("%s/%d", employeesPath, id)
}

// escape keeps path segments built from user data inside their segment.
func escape(seg string) string {
	return url.PathEscape(seg)
}
