package database

import (
	"errors"
	"fmt"
	"hrms-console/internal/model"
	"hrms-console/internal/repository"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

var sampleEmployees = []model.Employee{
	{FullName: "Ayu Lestari", Email: "ayu.lestari@example.com", Department: "Engineering"},
	{FullName: "Budi Santoso", Email: "budi.santoso@example.com", Department: "Human Resources"},
	{FullName: "Citra Dewi", Email: "citra.dewi@example.com", Department: "Finance"},
	{FullName: "Dimas Pratama", Email: "dimas.pratama@example.com", Department: "Sales"},
	{FullName: "Eka Putri", Email: "eka.putri@example.com", Department: "Customer Support"},
}

// SeedAll inserts a handful of employees and a week of attendance for them.
// Running it twice is harmless: existing emails and already marked days are skipped.
func SeedAll(db *gorm.DB, now time.Time) error {
	empRepo := repository.NewEmployeeRepository(db)
	attRepo := repository.NewAttendanceRepository(db)

	// 1. Employees
	var seeded []model.Employee
	for _, e := range sampleEmployees {
		emp := e
		err := empRepo.Create(&emp)
		if errors.Is(err, repository.ErrDuplicateEmail) {
			continue
		}
		if err != nil {
			return fmt.Errorf("seed employee %s: %w", e.Email, err)
		}
		log.Infof("seeded %s (%s)", emp.EmployeeID, emp.FullName)
		seeded = append(seeded, emp)
	}

	// 2. Attendance for the last 7 days, every fourth entry absent
	n := 0
	for day := 6; day >= 0; day-- {
		date := model.Today(now.AddDate(0, 0, -day))
		for _, emp := range seeded {
			status := model.StatusPresent
			if n%4 == 3 {
				status = model.StatusAbsent
			}
			n++

			rec := model.Attendance{EmployeeID: emp.EmployeeID, Date: date, Status: status}
			err := attRepo.Create(&rec)
			if err != nil && !errors.Is(err, repository.ErrDuplicateDay) {
				return fmt.Errorf("seed attendance %s %s: %w", emp.EmployeeID, date, err)
			}
		}
	}
	log.Infof("seeded %d employees, %d attendance rows", len(seeded), n)
	return nil
}
