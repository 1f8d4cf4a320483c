package page

import (
	"sync"

	"hrms-console/internal/client"
	"hrms-console/internal/model"
)

type EmployeeDetailView struct {
	Status   Status
	Error    string
	Employee *model.Employee
	History  []model.Attendance
}

// EmployeeDetail shows one employee and their attendance history.
type EmployeeDetail struct {
	id         uint
	employees  client.EmployeeAPI
	attendance client.AttendanceAPI

	mu       sync.Mutex
	fetch    fetchState
	employee *model.Employee
	history  []model.Attendance
}

func NewEmployeeDetail(id uint, employees client.EmployeeAPI, attendance client.AttendanceAPI) *EmployeeDetail {
	return &EmployeeDetail{id: id, employees: employees, attendance: attendance}
}

func (p *EmployeeDetail) Mount() { p.load(true) }

func (p *EmployeeDetail) Refresh() { p.load(false) }

// load needs the employee's code before the history can be asked for, so the two calls
// run in sequence; either failing fails the load.
func (p *EmployeeDetail) load(initial bool) {
	p.mu.Lock()
	token := p.fetch.begin()
	if initial {
		p.employee, p.history = nil, nil
	}
	p.mu.Unlock()

	emp, err := p.employees.Get(p.id)
	var history []model.Attendance
	if err == nil {
		history, err = p.attendance.ListByEmployee(emp.EmployeeID)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fetch.settle(token, err) && err == nil {
		p.employee, p.history = emp, history
	}
}

func (p *EmployeeDetail) View() EmployeeDetailView {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := EmployeeDetailView{
		Status:  p.fetch.status,
		Error:   p.fetch.err,
		History: append([]model.Attendance(nil), p.history...),
	}
	if p.employee != nil {
		emp := *p.employee
		v.Employee = &emp
	}
	return v
}

func (p *EmployeeDetail) Close() {
	p.mu.Lock()
	p.fetch.closed = true
	p.mu.Unlock()
}
