package form

import (
	"errors"

	"hrms-console/internal/client"
	"hrms-console/internal/model"
)

type fakeEmployees struct {
	list      []model.Employee
	listErr   error
	createErr error
	created   []model.EmployeeInput
	calls     int
}

func (f *fakeEmployees) List() ([]model.Employee, error) {
	f.calls++
	return f.list, f.listErr
}

func (f *fakeEmployees) Create(in model.EmployeeInput) (*model.Employee, error) {
	f.calls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, in)
	return &model.Employee{ID: uint(len(f.created)), EmployeeID: "EMP00X", FullName: in.FullName, Email: in.Email, Department: in.Department}, nil
}

func (f *fakeEmployees) Get(id uint) (*model.Employee, error) {
	f.calls++
	return nil, errors.New("not used")
}

func (f *fakeEmployees) Delete(id uint) error {
	f.calls++
	return nil
}

type fakeAttendance struct {
	markErr error
	marked  []model.AttendanceInput
	calls   int
}

func (f *fakeAttendance) Mark(in model.AttendanceInput) (*model.Attendance, error) {
	f.calls++
	if f.markErr != nil {
		return nil, f.markErr
	}
	f.marked = append(f.marked, in)
	return &model.Attendance{ID: 1, EmployeeID: in.EmployeeID, Date: in.Date, Status: in.Status}, nil
}

func (f *fakeAttendance) List() ([]model.Attendance, error) { f.calls++; return nil, nil }

func (f *fakeAttendance) ListByEmployee(string) ([]model.Attendance, error) {
	f.calls++
	return nil, nil
}

func (f *fakeAttendance) ListByDate(string) ([]model.Attendance, error) { f.calls++; return nil, nil }

var serverErr = &client.Error{Kind: client.KindServer, Status: 400, Message: "Email already registered"}
