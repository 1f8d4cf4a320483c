package page

import (
	"sync"
	"time"

	"hrms-console/internal/client"
	"hrms-console/internal/model"

	"golang.org/x/sync/errgroup"
)

// Stats are derived on every load and never cached across mounts.
type Stats struct {
	TotalEmployees  int
	TotalAttendance int
	PresentToday    int
	AbsentToday     int
}

// ComputeStats counts employees and attendance, and today's Present/Absent records.
func ComputeStats(employees []model.Employee, records []model.Attendance, today string) Stats {
	s := Stats{
		TotalEmployees:  len(employees),
		TotalAttendance: len(records),
	}
	for _, r := range records {
		if r.Date != today {
			continue
		}
		switch r.Status {
		case model.StatusPresent:
			s.PresentToday++
		case model.StatusAbsent:
			s.AbsentToday++
		}
	}
	return s
}

type DashboardView struct {
	Status Status
	Error  string
	Stats  Stats
	Today  string
}

type Dashboard struct {
	employees  client.EmployeeAPI
	attendance client.AttendanceAPI
	now        func() time.Time

	mu    sync.Mutex
	fetch fetchState
	stats Stats
	today string
}

func NewDashboard(employees client.EmployeeAPI, attendance client.AttendanceAPI, opts Options) *Dashboard {
	opts = opts.withDefaults()
	return &Dashboard{employees: employees, attendance: attendance, now: opts.Now}
}

func (p *Dashboard) Mount() { p.load(true) }

func (p *Dashboard) Refresh() { p.load(false) }

// load fetches both collections concurrently; either failure fails the whole aggregation.
func (p *Dashboard) load(initial bool) {
	p.mu.Lock()
	token := p.fetch.begin()
	if initial {
		p.stats = Stats{}
	}
	p.mu.Unlock()

	var (
		g         errgroup.Group
		employees []model.Employee
		records   []model.Attendance
	)
	g.Go(func() (err error) {
		employees, err = p.employees.List()
		return err
	})
	g.Go(func() (err error) {
		records, err = p.attendance.List()
		return err
	})
	err := g.Wait()

	today := model.Today(p.now())

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fetch.settle(token, err) && err == nil {
		p.stats = ComputeStats(employees, records, today)
		p.today = today
	}
}

func (p *Dashboard) View() DashboardView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return DashboardView{Status: p.fetch.status, Error: p.fetch.err, Stats: p.stats, Today: p.today}
}

func (p *Dashboard) Close() {
	p.mu.Lock()
	p.fetch.closed = true
	p.mu.Unlock()
}
