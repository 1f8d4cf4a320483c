package console

import (
	"fmt"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"hrms-console/internal/client"
	"hrms-console/internal/model"
	"hrms-console/internal/page"

	"github.com/PuerkitoBio/goquery"
	"github.com/gofiber/fiber/v2"
)

var errNetwork = &client.Error{Kind: client.KindNetwork, Message: client.MsgNetwork}

func fixedNow() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.Local) }

// backend is an in-memory stand-in for both REST resources.
type backend struct {
	mu          sync.Mutex
	employees   []model.Employee
	records     []model.Attendance
	failList    bool
	failDelete  bool
	empLists    int
	attLists    int
	createCalls int
}

func (b *backend) List() ([]model.Employee, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.empLists++
	if b.failList {
		return nil, errNetwork
	}
	return append([]model.Employee(nil), b.employees...), nil
}

func (b *backend) Create(in model.EmployeeInput) (*model.Employee, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.createCalls++
	id := uint(len(b.employees) + 1)
	emp := model.Employee{ID: id, EmployeeID: fmt.Sprintf("EMP%03d", id), FullName: in.FullName, Email: in.Email, Department: in.Department}
	b.employees = append(b.employees, emp)
	return &emp, nil
}

func (b *backend) Get(id uint) (*model.Employee, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, e := range b.employees {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, &client.Error{Kind: client.KindServer, Status: 404, Message: "Employee not found"}
}

func (b *backend) Delete(id uint) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failDelete {
		return &client.Error{Kind: client.KindServer, Status: 500, Message: "Failed to delete employee"}
	}
	for i, e := range b.employees {
		if e.ID == id {
			b.employees = append(b.employees[:i], b.employees[i+1:]...)
			return nil
		}
	}
	return &client.Error{Kind: client.KindServer, Status: 404, Message: "Employee not found"}
}

// attendance exposes the same backend through the AttendanceAPI method set.
type attendanceFake struct{ *backend }

func (a attendanceFake) Mark(in model.AttendanceInput) (*model.Attendance, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	rec := model.Attendance{ID: uint(len(a.records) + 1), EmployeeID: in.EmployeeID, Date: in.Date, Status: in.Status}
	a.records = append(a.records, rec)
	return &rec, nil
}

func (a attendanceFake) List() ([]model.Attendance, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.attLists++
	if a.failList {
		return nil, errNetwork
	}
	return append([]model.Attendance(nil), a.records...), nil
}

func (a attendanceFake) ListByEmployee(code string) ([]model.Attendance, error) {
	return a.filter(func(r model.Attendance) bool { return r.EmployeeID == code })
}

func (a attendanceFake) ListByDate(date string) ([]model.Attendance, error) {
	return a.filter(func(r model.Attendance) bool { return r.Date == date })
}

func (a attendanceFake) filter(keep func(model.Attendance) bool) ([]model.Attendance, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.failList {
		return nil, errNetwork
	}
	var out []model.Attendance
	for _, r := range a.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func seeded() *backend {
	return &backend{
		employees: []model.Employee{
			{ID: 1, EmployeeID: "EMP001", FullName: "Ada Lovelace", Email: "ada@x.co", Department: "Engineering"},
			{ID: 2, EmployeeID: "EMP002", FullName: "Alan Turing", Email: "alan@x.co", Department: "Finance"},
			{ID: 3, EmployeeID: "EMP003", FullName: "Grace Hopper", Email: "grace@x.co", Department: "Operations"},
		},
		records: []model.Attendance{
			{ID: 1, EmployeeID: "EMP001", EmployeeName: "Ada Lovelace", Date: "2026-10-17", Status: model.StatusPresent, CreatedAt: time.Date(2026, 10, 17, 8, 5, 0, 0, time.Local)},
			{ID: 2, EmployeeID: "EMP002", EmployeeName: "Alan Turing", Date: "2026-10-17", Status: model.StatusAbsent},
			{ID: 3, EmployeeID: "EMP001", EmployeeName: "Ada Lovelace", Date: "2026-10-16", Status: model.StatusPresent},
		},
	}
}

// newConsole wires every console route against b with a single shared workspace.
func newConsole(b *backend) (*fiber.App, *Workspace) {
	ws := &Workspace{}
	h := NewHandler(b, attendanceFake{b}, page.Options{BannerTTL: time.Minute, Now: fixedNow})

	app := fiber.New(fiber.Config{
		Views:        NewEngine(),
		ViewsLayout:  layout,
		ErrorHandler: ErrorHandler,
	})
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(LocalsKey, ws)
		return c.Next()
	})
	app.Get("/", h.Dashboard)
	app.Post("/dashboard/refresh", h.RefreshDashboard)
	app.Get("/employees", h.Employees)
	app.Post("/employees", h.CreateEmployee)
	app.Post("/employees/refresh", h.RefreshEmployees)
	app.Post("/employees/form", h.ToggleEmployeeForm)
	app.Post("/employees/delete/confirm", h.ConfirmDelete)
	app.Post("/employees/delete/cancel", h.CancelDelete)
	app.Post("/employees/:id/delete", h.StageDelete)
	app.Get("/employees/:id", h.EmployeeDetail)
	app.Get("/attendance", h.Attendance)
	app.Post("/attendance", h.MarkAttendance)
	app.Post("/attendance/refresh", h.RefreshAttendance)
	app.Post("/attendance/filter", h.FilterAttendance)
	app.Get("/attendance/export", h.ExportAttendance)
	app.Post("/banner/dismiss", h.DismissBanner)
	return app, ws
}

// visit performs one request (a form POST when form is non-nil) and parses the page.
func visit(t *testing.T, app *fiber.App, method, target string, form url.Values) (int, *goquery.Document) {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		t.Fatalf("%s %s: parse: %v", method, target, err)
	}
	return resp.StatusCode, doc
}

func text(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().Text())
}
