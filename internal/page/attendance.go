package page

import (
	"sync"

	"hrms-console/internal/client"
	"hrms-console/internal/form"
	"hrms-console/internal/model"
)

type AttendanceView struct {
	Status     Status
	Error      string
	Success    string
	Records    []model.Attendance // after the date filter
	Total      int                // before the date filter
	Present    int
	Absent     int
	DateFilter string
	Form       form.AttendanceFormView
}

// Attendance controls the attendance page: the record table, its date filter and the
// mark-attendance form.
type Attendance struct {
	api    client.AttendanceAPI
	form   *form.AttendanceForm
	banner *Banner

	mu         sync.Mutex
	fetch      fetchState
	records    []model.Attendance
	dateFilter string
}

func NewAttendance(api client.AttendanceAPI, employees client.EmployeeAPI, opts Options) *Attendance {
	opts = opts.withDefaults()
	return &Attendance{
		api:    api,
		form:   form.NewAttendanceForm(api, employees, opts.Now),
		banner: NewBanner(opts.BannerTTL),
	}
}

// Mount loads the records and, alongside, the form's employee list. The form's list
// failing does not fail the page.
func (p *Attendance) Mount() {
	var wg sync.WaitGroup
	wg.Go(func() { _ = p.form.LoadEmployees() })
	wg.Go(func() { p.load(true) })
	wg.Wait()
}

func (p *Attendance) Refresh() { p.load(false) }

func (p *Attendance) load(initial bool) {
	p.mu.Lock()
	token := p.fetch.begin()
	if initial {
		p.records = nil
	}
	p.mu.Unlock()

	list, err := p.api.List()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fetch.settle(token, err) && err == nil {
		p.records = list
	}
}

// SetDateFilter narrows the displayed records to one day; "" shows all. It filters the
// fetched collection and makes no request.
func (p *Attendance) SetDateFilter(date string) error {
	if date != "" && !model.IsDate(date) {
		return ErrBadDate
	}
	p.mu.Lock()
	p.dateFilter = date
	p.mu.Unlock()
	return nil
}

func (p *Attendance) SubmitAttendance(v form.AttendanceValues) error {
	if _, err := p.form.Submit(v); err != nil {
		return err
	}
	p.banner.Show(MsgAttendanceMarked)
	p.Refresh()
	return nil
}

func (p *Attendance) DismissBanner() { p.banner.Dismiss() }

func (p *Attendance) View() AttendanceView {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := AttendanceView{
		Status:     p.fetch.status,
		Error:      p.fetch.err,
		Success:    p.banner.Message(),
		Total:      len(p.records),
		DateFilter: p.dateFilter,
		Form:       p.form.View(),
	}
	for _, r := range p.records {
		if p.dateFilter != "" && r.Date != p.dateFilter {
			continue
		}
		v.Records = append(v.Records, r)
		switch r.Status {
		case model.StatusPresent:
			v.Present++
		case model.StatusAbsent:
			v.Absent++
		}
	}
	return v
}

func (p *Attendance) Close() {
	p.mu.Lock()
	p.fetch.closed = true
	p.mu.Unlock()
	p.banner.Close()
}
