package client

import (
	"net/url"

	"hrms-console/internal/model"

	"github.com/gofiber/fiber/v2"
)

type AttendanceAPI interface {
	Mark(input model.AttendanceInput) (*model.Attendance, error)
	List() ([]model.Attendance, error)
	ListByEmployee(employeeID string) ([]model.Attendance, error)
	ListByDate(date string) ([]model.Attendance, error)
}

type attendanceAPI struct {
	c *Client
}

func NewAttendanceAPI(c *Client) AttendanceAPI {
	return &attendanceAPI{c}
}

const (
	attendancePath = "/api/v1/attendance"
	// DateQueryParam carries the optional date filter of the list endpoint.
	DateQueryParam = "attendance_date"
)

func (a *attendanceAPI) Mark(input model.AttendanceInput) (*model.Attendance, error) {
	var created model.Attendance
	if err := a.c.Do(fiber.MethodPost, attendancePath, nil, input, &created); err != nil {
		return nil, err
	}
	if err := checkAll(created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (a *attendanceAPI) List() ([]model.Attendance, error) {
	return a.list(attendancePath, nil)
}

func (a *attendanceAPI) ListByEmployee(employeeID string) ([]model.Attendance, error) {
	return a.list(attendancePath+"/employee/"+escape(employeeID), nil)
}

func (a *attendanceAPI) ListByDate(date string) ([]model.Attendance, error) {
	return a.list(attendancePath, url.Values{DateQueryParam: {date}})
}

func (a *attendanceAPI) list(path string, query url.Values) ([]model.Attendance, error) {
	var list []model.Attendance
	if err := a.c.Do(fiber.MethodGet, path, query, nil, &list); err != nil {
		return nil, err
	}
	if err := checkAll(list...); err != nil {
		return nil, err
	}
	return list, nil
}
