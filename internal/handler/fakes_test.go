package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"hrms-console/internal/model"
	"hrms-console/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type memEmployees struct {
	list []model.Employee
}

func (m *memEmployees) GetAll() ([]model.Employee, error) { return m.list, nil }

func (m *memEmployees) FindByID(id uint) (*model.Employee, error) {
	for _, e := range m.list {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memEmployees) FindByCode(code string) (*model.Employee, error) {
	for _, e := range m.list {
		if e.EmployeeID == code {
			return &e, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memEmployees) Create(emp *model.Employee) error {
	for _, e := range m.list {
		if e.Email == emp.Email {
			return repository.ErrDuplicateEmail
		}
	}
	emp.ID = uint(len(m.list) + 1)
	emp.EmployeeID = fmt.Sprintf("EMP%03d", emp.ID)
	m.list = append(m.list, *emp)
	return nil
}

func (m *memEmployees) Delete(id uint) error {
	for i, e := range m.list {
		if e.ID == id {
			m.list = append(m.list[:i], m.list[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memAttendance struct {
	list []model.Attendance
}

func (m *memAttendance) Create(rec *model.Attendance) error {
	for _, r := range m.list {
		if r.EmployeeID == rec.EmployeeID && r.Date == rec.Date {
			return repository.ErrDuplicateDay
		}
	}
	rec.ID = uint(len(m.list) + 1)
	m.list = append(m.list, *rec)
	return nil
}

func (m *memAttendance) GetAll() ([]model.Attendance, error) { return m.list, nil }

func (m *memAttendance) GetByDate(date string) ([]model.Attendance, error) {
	var out []model.Attendance
	for _, r := range m.list {
		if r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memAttendance) GetByEmployee(code string) ([]model.Attendance, error) {
	var out []model.Attendance
	for _, r := range m.list {
		if r.EmployeeID == code {
			out = append(out, r)
		}
	}
	return out, nil
}

// call sends one request through app.Test and decodes the JSON body into out (if non-nil).
func call(t *testing.T, app *fiber.App, method, target, body string, out any) int {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, target, err)
		}
	}
	return resp.StatusCode
}

type memDashboard struct {
	asked []string
}

func (m *memDashboard) GetDashboardStats(date string) (*repository.DashboardStats, error) {
	m.asked = append(m.asked, date)
	return &repository.DashboardStats{
		Date:           date,
		TotalEmployees: 2,
		ByStatus:       map[model.AttendanceStatus]int64{model.StatusPresent: 1},
	}, nil
}
