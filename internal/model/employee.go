package model

import "strings"

// Employee as served by the HR backend. EmployeeID ("EMP001") is assigned by the backend.
type Employee struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	EmployeeID string `json:"employee_id" gorm:"column:employee_id;size:36;uniqueIndex;not null"`
	FullName   string `json:"full_name" gorm:"size:120;not null"`
	Email      string `json:"email" gorm:"size:190;uniqueIndex;not null"`
	Department string `json:"department" gorm:"size:80;not null"`
}

// EmployeeInput is the create payload; the backend fills in the ids.
type EmployeeInput struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// Validate checks a payload received from the backend.
func (e Employee) Validate() error {
	if strings.TrimSpace(e.EmployeeID) == "" {
		return &SchemaError{Entity: "employee", Field: "employee_id", Reason: "missing"}
	}
	return nil
}
