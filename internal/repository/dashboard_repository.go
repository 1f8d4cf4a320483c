package repository

import (
	"hrms-console/internal/model"

	"gorm.io/gorm"
)

// DashboardStats is the backend-side summary for one day.
type DashboardStats struct {
	Date            string                           `json:"date"`
	TotalEmployees  int64                            `json:"total_employees"`
	TotalAttendance int64                            `json:"total_attendance"`
	ByStatus        map[model.AttendanceStatus]int64 `json:"by_status"`
}

type DashboardRepository interface {
	GetDashboardStats(date string) (*DashboardStats, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetDashboardStats(date string) (*DashboardStats, error) {
	stats := &DashboardStats{Date: date, ByStatus: map[model.AttendanceStatus]int64{
		model.StatusPresent: 0, model.StatusAbsent: 0, model.StatusOnLeave: 0, model.StatusHalfDay: 0,
	}}

	// 1. Totals
	if err := r.db.Model(&model.Employee{}).Count(&stats.TotalEmployees).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&model.Attendance{}).Count(&stats.TotalAttendance).Error; err != nil {
		return nil, err
	}

	// 2. Per-status counts for the day
	var daily []struct {
		Status model.AttendanceStatus
		Count  int64
	}
	err := r.db.Model(&model.Attendance{}).
		Where("date = ?", date).
		Group("status").Select("status, count(*) as count").
		Scan(&daily).Error
	if err != nil {
		return nil, err
	}
	for _, d := range daily {
		stats.ByStatus[d.Status] = d.Count
	}
	return stats, nil
}
