package repository

import (
	"testing"

	"hrms-console/config"
	"hrms-console/internal/model"

	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with the dev backend's tables.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.ConnectDB(config.DBConfig{Driver: "sqlite", DSN: ":memory:"})
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func mustCreateEmployee(t *testing.T, repo EmployeeRepository, name, email string) model.Employee {
	t.Helper()
	emp := model.Employee{FullName: name, Email: email, Department: "Engineering"}
	if err := repo.Create(&emp); err != nil {
		t.Fatalf("create %s: %v", email, err)
	}
	return emp
}

func mustMark(t *testing.T, repo AttendanceRepository, code, date string, status model.AttendanceStatus) model.Attendance {
	t.Helper()
	rec := model.Attendance{EmployeeID: code, Date: date, Status: status}
	if err := repo.Create(&rec); err != nil {
		t.Fatalf("mark %s %s: %v", code, date, err)
	}
	return rec
}
