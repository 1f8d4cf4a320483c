package repository

import (
	"hrms-console/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(rec *model.Attendance) error
	GetAll() ([]model.Attendance, error)
	GetByDate(date string) ([]model.Attendance, error)
	GetByEmployee(code string) ([]model.Attendance, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(rec *model.Attendance) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Attendance{}).Where("employee_id = ? AND date = ?", rec.EmployeeID, rec.Date).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateDay
		}
		return tx.Create(rec).Error
	})
}

func (r *attendanceRepository) GetAll() ([]model.Attendance, error) {
	return r.find(r.db)
}

func (r *attendanceRepository) GetByDate(date string) ([]model.Attendance, error) {
	return r.find(r.db.Where("attendances.date = ?", date))
}

func (r *attendanceRepository) GetByEmployee(code string) ([]model.Attendance, error) {
	return r.find(r.db.Where("attendances.employee_id = ?", code))
}

// find lists newest first and fills EmployeeName from the employees table.
func (r *attendanceRepository) find(q *gorm.DB) ([]model.Attendance, error) {
	var rows []struct {
		model.Attendance
		FullName string
	}
	err := q.Model(&model.Attendance{}).
		Select("attendances.*, employees.full_name").
		Joins("LEFT JOIN employees ON employees.employee_id = attendances.employee_id").
		Order("attendances.date desc, attendances.id desc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	list := make([]model.Attendance, 0, len(rows))
	for _, row := range rows {
		rec := row.Attendance
		rec.EmployeeName = row.FullName
		list = append(list, rec)
	}
	return list, nil
}
