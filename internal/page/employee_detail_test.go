package page

import (
	"testing"

	"hrms-console/internal/model"
)

func TestEmployeeDetailLoadsHistoryByCode(t *testing.T) {
	emps := &fakeEmployees{byID: map[uint]model.Employee{2: employeesFixture()[1]}}
	att := &fakeAttendance{byEmployee: map[string][]model.Attendance{
		"EMP002": {{ID: 5, EmployeeID: "EMP002", Date: "2026-10-17", Status: model.StatusAbsent}},
	}}

	p := NewEmployeeDetail(2, emps, att)
	defer p.Close()
	p.Mount()

	v := p.View()
	if v.Status != Success || v.Employee == nil || v.Employee.FullName != "Alan Turing" || len(v.History) != 1 {
		t.Fatalf("view = %+v", v)
	}
	if len(att.byEmpCalls) != 1 || att.byEmpCalls[0] != "EMP002" {
		t.Errorf("history requested for %v", att.byEmpCalls)
	}
}

func TestEmployeeDetailNotFound(t *testing.T) {
	att := &fakeAttendance{}
	p := NewEmployeeDetail(9, &fakeEmployees{}, att)
	defer p.Close()
	p.Mount()

	v := p.View()
	if v.Status != Failed || v.Error != "Employee not found" || v.Employee != nil {
		t.Fatalf("view = %+v", v)
	}
	if len(att.byEmpCalls) != 0 {
		t.Error("history requested after Get failed")
	}
}
