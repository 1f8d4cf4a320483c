package form

import (
	"regexp"
	"strings"
	"sync"

	"hrms-console/internal/client"
	"hrms-console/internal/model"
)

// CustomDepartment is the selection that reveals the free-text department field.
const CustomDepartment = "custom"

var Departments = []string{
	"Engineering",
	"Human Resources",
	"Finance",
	"Marketing",
	"Sales",
	"Operations",
	"Customer Support",
}

var emailPattern = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)

type EmployeeValues struct {
	FullName         string
	Email            string
	Department       string // one of Departments, or CustomDepartment
	CustomDepartment string
}

func (v EmployeeValues) custom() bool {
	return v.Department == CustomDepartment
}

// Validate runs the client-side checks. The map is empty when v may be submitted.
func (v EmployeeValues) Validate() FieldErrors {
	errs := FieldErrors{}

	name := strings.TrimSpace(v.FullName)
	switch {
	case name == "":
		errs["full_name"] = "Full name is required"
	case tooShort(name, 2):
		errs["full_name"] = "Name must be at least 2 characters"
	}

	email := strings.TrimSpace(v.Email)
	switch {
	case email == "":
		errs["email"] = "Email is required"
	case !emailPattern.MatchString(email):
		errs["email"] = "Invalid email address"
	}

	if v.custom() {
		dept := strings.TrimSpace(v.CustomDepartment)
		switch {
		case dept == "":
			errs["department"] = "Department name is required"
		case tooShort(dept, 2):
			errs["department"] = "Department name must be at least 2 characters"
		}
	} else if strings.TrimSpace(v.Department) == "" {
		errs["department"] = "Department is required"
	}
	return errs
}

// Input builds the create payload; a custom department replaces the selection.
func (v EmployeeValues) Input() model.EmployeeInput {
	dept := strings.TrimSpace(v.Department)
	if v.custom() {
		dept = strings.TrimSpace(v.CustomDepartment)
	}
	return model.EmployeeInput{
		FullName:   strings.TrimSpace(v.FullName),
		Email:      strings.TrimSpace(v.Email),
		Department: dept,
	}
}

type EmployeeFormView struct {
	Values      EmployeeValues
	Errors      FieldErrors
	Error       string
	Submitting  bool
	Custom      bool
	Departments []string
}

type EmployeeForm struct {
	api client.EmployeeAPI

	mu         sync.Mutex
	values     EmployeeValues
	errors     FieldErrors
	err        string
	submitting bool
}

func NewEmployeeForm(api client.EmployeeAPI) *EmployeeForm {
	return &EmployeeForm{api: api}
}

// Submit validates v and, if valid, creates the employee. On success the form resets.
// On failure the values stay for correction and the error is kept for display.
func (f *EmployeeForm) Submit(v EmployeeValues) (*model.Employee, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return nil, ErrSubmitting
	}
	f.values = v
	f.err = ""
	f.errors = v.Validate()
	if len(f.errors) > 0 {
		errs := f.errors
		f.mu.Unlock()
		return nil, errs
	}
	f.submitting = true
	f.mu.Unlock()

	emp, err := f.api.Create(v.Input())

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		f.err = errorMessage(err)
		return nil, err
	}
	f.values = EmployeeValues{}
	return emp, nil
}

// Reset clears values and messages, e.g. when the form is hidden.
func (f *EmployeeForm) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = EmployeeValues{}
	f.errors = nil
	f.err = ""
}

func (f *EmployeeForm) View() EmployeeFormView {
	f.mu.Lock()
	defer f.mu.Unlock()
	errs := make(FieldErrors, len(f.errors))
	for k, v := range f.errors {
		errs[k] = v
	}
	return EmployeeFormView{
		Values:      f.values,
		Errors:      errs,
		Error:       f.err,
		Submitting:  f.submitting,
		Custom:      f.values.custom(),
		Departments: Departments,
	}
}
