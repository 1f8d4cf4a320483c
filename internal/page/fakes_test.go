package page

import (
	"errors"
	"sync"
	"time"

	"hrms-console/internal/client"
	"hrms-console/internal/model"
)

var (
	errNetwork = &client.Error{Kind: client.KindNetwork, Message: client.MsgNetwork}
	errServer  = &client.Error{Kind: client.KindServer, Status: 500, Message: "Database unavailable"}
)

func fixedClock() func() time.Time {
	return func() time.Time { return time.Date(2026, 10, 17, 10, 30, 0, 0, time.Local) }
}

type fakeEmployees struct {
	mu        sync.Mutex
	listFn    func(call int) ([]model.Employee, error)
	listCalls int
	created   []model.EmployeeInput
	deleted   []uint
	deleteErr error
	getCalls  int
	byID      map[uint]model.Employee
}

func (f *fakeEmployees) List() ([]model.Employee, error) {
	f.mu.Lock()
	f.listCalls++
	call := f.listCalls
	fn := f.listFn
	f.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(call)
}

func (f *fakeEmployees) Create(in model.EmployeeInput) (*model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, in)
	return &model.Employee{ID: 99, EmployeeID: "EMP099", FullName: in.FullName, Email: in.Email, Department: in.Department}, nil
}

func (f *fakeEmployees) Get(id uint) (*model.Employee, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	emp, ok := f.byID[id]
	if !ok {
		return nil, &client.Error{Kind: client.KindServer, Status: 404, Message: "Employee not found"}
	}
	return &emp, nil
}

func (f *fakeEmployees) Delete(id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeEmployees) calls() (list, created, deleted int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls, len(f.created), len(f.deleted)
}

type fakeAttendance struct {
	mu         sync.Mutex
	listFn     func(call int) ([]model.Attendance, error)
	listCalls  int
	marked     []model.AttendanceInput
	byEmployee map[string][]model.Attendance
	byEmpCalls []string
}

func (f *fakeAttendance) Mark(in model.AttendanceInput) (*model.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.marked = append(f.marked, in)
	return &model.Attendance{ID: 7, EmployeeID: in.EmployeeID, Date: in.Date, Status: in.Status}, nil
}

func (f *fakeAttendance) List() ([]model.Attendance, error) {
	f.mu.Lock()
	f.listCalls++
	call := f.listCalls
	fn := f.listFn
	f.mu.Unlock()
	if fn == nil {
		return nil, nil
	}
	return fn(call)
}

func (f *fakeAttendance) ListByEmployee(code string) ([]model.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byEmpCalls = append(f.byEmpCalls, code)
	return f.byEmployee[code], nil
}

func (f *fakeAttendance) ListByDate(string) ([]model.Attendance, error) {
	return nil, errors.New("not used by pages")
}

func employeesFixture() []model.Employee {
	return []model.Employee{
		{ID: 1, EmployeeID: "EMP001", FullName: "Ada Lovelace", Email: "ada@x.co", Department: "Engineering"},
		{ID: 2, EmployeeID: "EMP002", FullName: "Alan Turing", Email: "alan@x.co", Department: "Finance"},
		{ID: 3, EmployeeID: "EMP003", FullName: "Grace Hopper", Email: "grace@x.co", Department: "Operations"},
	}
}

func staticEmployees(list []model.Employee) func(int) ([]model.Employee, error) {
	return func(int) ([]model.Employee, error) { return list, nil }
}

// waitFor polls cond until it holds or the deadline passes.
func waitFor(d time.Duration, cond func() bool) bool {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}
