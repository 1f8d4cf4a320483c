package form

import (
	"strings"
	"sync"
	"time"

	"hrms-console/internal/client"
	"hrms-console/internal/model"
)

// MsgEmployeesUnavailable is shown when the employee list for the selector cannot be loaded.
const MsgEmployeesUnavailable = "Failed to load employees"

// Statuses offered by the form; the backend may still return the wider enumeration.
var Statuses = []model.AttendanceStatus{model.StatusPresent, model.StatusAbsent}

type AttendanceValues struct {
	EmployeeID string
	Date       string
	Status     model.AttendanceStatus
}

type AttendanceFormView struct {
	Values     AttendanceValues
	Errors     FieldErrors
	Error      string
	Submitting bool
	Employees  []model.Employee
	Loading    bool
	CanSubmit  bool
	MaxDate    string
	Statuses   []model.AttendanceStatus
}

type AttendanceForm struct {
	api       client.AttendanceAPI
	employees client.EmployeeAPI
	now       func() time.Time

	mu         sync.Mutex
	list       []model.Employee
	loading    bool
	values     AttendanceValues
	errors     FieldErrors
	err        string
	submitting bool
}

func NewAttendanceForm(api client.AttendanceAPI, employees client.EmployeeAPI, now func() time.Time) *AttendanceForm {
	if now == nil {
		now = time.Now
	}
	f := &AttendanceForm{api: api, employees: employees, now: now, loading: true}
	f.values = f.defaults()
	return f
}

func (f *AttendanceForm) defaults() AttendanceValues {
	return AttendanceValues{Date: model.Today(f.now())}
}

// LoadEmployees fetches the selector's employee list. On failure the list is empty and
// submission stays disabled.
func (f *AttendanceForm) LoadEmployees() error {
	list, err := f.employees.List()

	f.mu.Lock()
	defer f.mu.Unlock()
	f.loading = false
	if err != nil {
		f.list = nil
		f.err = MsgEmployeesUnavailable
		return err
	}
	f.list = list
	if f.err == MsgEmployeesUnavailable {
		f.err = ""
	}
	return nil
}

func validateAttendance(v AttendanceValues, list []model.Employee, today string) FieldErrors {
	errs := FieldErrors{}

	code := strings.TrimSpace(v.EmployeeID)
	if code == "" || !hasEmployee(list, code) {
		errs["employee_id"] = "Please select an employee"
	}

	switch {
	case strings.TrimSpace(v.Date) == "":
		errs["date"] = "Date is required"
	case !model.IsDate(v.Date):
		errs["date"] = "Invalid date"
	case v.Date > today:
		// same-width ISO dates compare lexically
		errs["date"] = "Date cannot be in the future"
	}

	if v.Status == "" {
		errs["status"] = "Please select a status"
	} else if !offered(v.Status) {
		errs["status"] = "Status must be Present or Absent"
	}
	return errs
}

func hasEmployee(list []model.Employee, code string) bool {
	for _, e := range list {
		if e.EmployeeID == code {
			return true
		}
	}
	return false
}

func offered(s model.AttendanceStatus) bool {
	for _, o := range Statuses {
		if o == s {
			return true
		}
	}
	return false
}

// Submit validates v and marks attendance. Without any loaded employee it refuses outright.
func (f *AttendanceForm) Submit(v AttendanceValues) (*model.Attendance, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, ErrSubmitting
	}
	if len(f.list) == 0 {
		f.mu.Unlock()
		return nil, ErrNoEmployees
	}
	f.values = v
	if f.err != MsgEmployeesUnavailable {
		f.err = ""
	}
	f.errors = validateAttendance(v, f.list, model.Today(f.now()))
	if len(f.errors) > 0 {
		errs := f.errors
		f.mu.Unlock()
		return nil, errs
	}
	f.submitting = true
	f.mu.Unlock()

	rec, err := f.api.Mark(model.AttendanceInput{
		EmployeeID: strings.TrimSpace(v.EmployeeID),
		Date:       v.Date,
		Status:     v.Status,
	})

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.err = errorMessage(err)
		return nil, err
	}
	f.values = f.defaults()
	return rec, nil
}

func (f *AttendanceForm) View() AttendanceFormView {
	f.mu.Lock()
	defer f.mu.Unlock()
	errs := make(FieldErrors, len(f.errors))
	for k, v := range f.errors {
		errs[k] = v
	}
	return AttendanceFormView{
		Values:     f.values,
		Errors:     errs,
		Error:      f.err,
		Submitting: f.submitting,
		Employees:  append([]model.Employee(nil), f.list...),
		Loading:    f.loading,
		CanSubmit:  !f.loading && len(f.list) > 0 && !f.submitting,
		MaxDate:    model.Today(f.now()),
		Statuses:   Statuses,
	}
}
