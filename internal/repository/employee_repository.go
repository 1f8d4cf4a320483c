package repository

import (
	"errors"
	"fmt"
	"hrms-console/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("record not found")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicateDay   = errors.New("attendance already marked for this date")
)

type EmployeeRepository interface {
	GetAll() ([]model.Employee, error)
	FindByID(id uint) (*model.Employee, error)
	FindByCode(code string) (*model.Employee, error)
	Create(emp *model.Employee) error
	Delete(id uint) error
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) GetAll() ([]model.Employee, error) {
	var list []model.Employee
	err := r.db.Order("id asc").Find(&list).Error
	return list, err
}

func (r *employeeRepository) FindByID(id uint) (*model.Employee, error) {
	var emp model.Employee
	if err := r.db.First(&emp, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &emp, nil
}

func (r *employeeRepository) FindByCode(code string) (*model.Employee, error) {
	var emp model.Employee
	if err := r.db.Where("employee_id = ?", code).First(&emp).Error; err != nil {
		return nil, notFound(err)
	}
	return &emp, nil
}

// Create inserts emp and assigns its code from the generated primary key (EMP001, EMP002, ...).
// The row is first written with a random placeholder so the unique index holds throughout.
func (r *employeeRepository) Create(emp *model.Employee) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&model.Employee{}).Where("email = ?", emp.Email).Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return ErrDuplicateEmail
		}

		emp.EmployeeID = uuid.NewString()
		if err := tx.Create(emp).Error; err != nil {
			return err
		}
		emp.EmployeeID = fmt.Sprintf("EMP%03d", emp.ID)
		return tx.Model(emp).Update("employee_id", emp.EmployeeID).Error
	})
}

// Delete removes the employee and, in the same transaction, their attendance records.
func (r *employeeRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var emp model.Employee
		if err := tx.First(&emp, id).Error; err != nil {
			return notFound(err)
		}
		if err := tx.Where("employee_id = ?", emp.EmployeeID).Delete(&model.Attendance{}).Error; err != nil {
			return err
		}
		return tx.Delete(&emp).Error
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
