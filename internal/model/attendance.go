package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO 8601 calendar-day format used on the wire.
const DateLayout = "2006-01-02"

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
	StatusOnLeave AttendanceStatus = "On Leave"
	StatusHalfDay AttendanceStatus = "Half Day"
)

// Valid reports whether s is one of the statuses the backend may return.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusOnLeave, StatusHalfDay:
		return true
	}
	return false
}

// Attendance is one record per (employee_id, date); uniqueness is the backend's job.
type Attendance struct {
	ID           uint             `json:"id" gorm:"primaryKey"`
	EmployeeID   string           `json:"employee_id" gorm:"column:employee_id;size:36;not null;uniqueIndex:idx_attendance_employee_date"`
	EmployeeName string           `json:"employee_name,omitempty" gorm:"-"`
	Date         string           `json:"date" gorm:"size:10;not null;uniqueIndex:idx_attendance_employee_date;index"`
	Status       AttendanceStatus `json:"status" gorm:"size:16;not null"`
	CheckInTime  *string          `json:"check_in_time,omitempty"`
	CheckOutTime *string          `json:"check_out_time,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
}

// timestampLayouts are tried in order for created_at. Backends commonly omit the zone;
// such values are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp reads a created_at value. An empty string is the zero time.
func ParseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("created_at %q is not a timestamp", s)
}

// UnmarshalJSON accepts created_at with or without a zone, and null.
func (a *Attendance) UnmarshalJSON(data []byte) error {
	type plain Attendance
	aux := struct {
		*plain
		CreatedAt *string `json:"created_at"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	a.CreatedAt = time.Time{}
	if aux.CreatedAt != nil {
		t, err := ParseTimestamp(*aux.CreatedAt)
		if err != nil {
			return err
		}
		a.CreatedAt = t
	}
	return nil
}

// MarkedAt formats CreatedAt for display, "" when unknown.
func (a Attendance) MarkedAt() string {
	if a.CreatedAt.IsZero() {
		return ""
	}
	return a.CreatedAt.Local().Format("2006-01-02 15:04")
}

// AttendanceInput is the mark-attendance payload.
type AttendanceInput struct {
	EmployeeID   string           `json:"employee_id"`
	Date         string           `json:"date"`
	Status       AttendanceStatus `json:"status"`
	CheckInTime  *string          `json:"check_in_time,omitempty"`
	CheckOutTime *string          `json:"check_out_time,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

// Validate checks a payload received from the backend.
func (a Attendance) Validate() error {
	if strings.TrimSpace(a.EmployeeID) == "" {
		return &SchemaError{Entity: "attendance", Field: "employee_id", Reason: "missing"}
	}
	if !IsDate(a.Date) {
		return &SchemaError{Entity: "attendance", Field: "date", Reason: "not YYYY-MM-DD: " + a.Date}
	}
	if !a.Status.Valid() {
		return &SchemaError{Entity: "attendance", Field: "status", Reason: "unknown value " + string(a.Status)}
	}
	return nil
}

// IsDate reports whether s is a calendar day in YYYY-MM-DD form.
func IsDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// Today returns the local calendar date of t.
func Today(t time.Time) string {
	return t.Local().Format(DateLayout)
}
