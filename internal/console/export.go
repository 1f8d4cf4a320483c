package console

import (
	"bytes"
	"fmt"

	"hrms-console/internal/client"
	"hrms-console/internal/model"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Attendance"

var exportHeader = []any{"Employee ID", "Employee Name", "Date", "Status", "Check In", "Check Out", "Notes", "Marked At"}

// WriteAttendanceXLSX renders records as a single-sheet workbook.
func WriteAttendanceXLSX(records []model.Attendance) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, err
	}
	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{r.EmployeeID, r.EmployeeName, r.Date, string(r.Status), deref(r.CheckInTime), deref(r.CheckOutTime), deref(r.Notes), r.MarkedAt()}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(exportSheet, "A", "H", 18); err != nil {
		return nil, err
	}
	return f.WriteToBuffer()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ExportAttendance downloads the attendance records, or one day's with ?date=, as xlsx.
// It asks the backend directly and leaves the workspace alone.
func (h *Handler) ExportAttendance(c *fiber.Ctx) error {
	date := c.Query("date")

	var (
		records []model.Attendance
		err     error
	)
	if date != "" {
		if !model.IsDate(date) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid date")
		}
		records, err = h.attendance.ListByDate(date)
	} else {
		records, err = h.attendance.List()
	}
	if err != nil {
		if client.KindOf(err) != 0 {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
		return err
	}

	buf, err := WriteAttendanceXLSX(records)
	if err != nil {
		return err
	}

	name := "attendance-all.xlsx"
	if date != "" {
		name = fmt.Sprintf("attendance-%s.xlsx", date)
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(buf.Bytes())
}
