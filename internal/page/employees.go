package page

import (
	"sync"

	"hrms-console/internal/client"
	"hrms-console/internal/form"
	"hrms-console/internal/model"
)

type EmployeesView struct {
	Status      Status
	Error       string // load failure
	ActionError string // failed deletion
	Success     string
	Employees   []model.Employee
	ShowForm    bool
	Form        form.EmployeeFormView
	Staged      *model.Employee
	Deleting    bool
}

// Employees controls the employee list page: list, add form and staged deletion.
type Employees struct {
	api    client.EmployeeAPI
	form   *form.EmployeeForm
	banner *Banner

	mu        sync.Mutex
	fetch     fetchState
	employees []model.Employee
	showForm  bool
	staged    *model.Employee
	deleting  bool
	actionErr string
}

func NewEmployees(api client.EmployeeAPI, opts Options) *Employees {
	opts = opts.withDefaults()
	return &Employees{
		api:    api,
		form:   form.NewEmployeeForm(api),
		banner: NewBanner(opts.BannerTTL),
	}
}

// Mount performs the initial load; a failure leaves the list empty.
func (p *Employees) Mount() { p.load(true) }

// Refresh re-fetches; a failure keeps the list already displayed.
func (p *Employees) Refresh() { p.load(false) }

func (p *Employees) load(initial bool) {
	p.mu.Lock()
	token := p.fetch.begin()
	if initial {
		p.employees = nil
	}
	p.mu.Unlock()

	list, err := p.api.List()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fetch.settle(token, err) && err == nil {
		p.employees = list
	}
}

func (p *Employees) SetFormVisible(show bool) {
	p.mu.Lock()
	p.showForm = show
	p.mu.Unlock()
	if !show {
		p.form.Reset()
	}
}

// SubmitEmployee hands v to the form. On success the form closes, a banner is shown and
// the list is re-fetched. Failures stay inside the form's view.
func (p *Employees) SubmitEmployee(v form.EmployeeValues) error {
	p.mu.Lock()
	p.showForm = true
	p.mu.Unlock()

	if _, err := p.form.Submit(v); err != nil {
		return err
	}

	p.banner.Show(MsgEmployeeAdded)
	p.mu.Lock()
	p.showForm = false
	p.mu.Unlock()
	p.Refresh()
	return nil
}

// StageDelete marks a displayed employee for deletion. No request is made.
func (p *Employees) StageDelete(id uint) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.staged != nil {
		return ErrDeletePending
	}
	for i := range p.employees {
		if p.employees[i].ID == id {
			emp := p.employees[i]
			p.staged = &emp
			p.actionErr = ""
			return nil
		}
	}
	return ErrNotDisplayed
}

func (p *Employees) CancelDelete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.deleting {
		return
	}
	p.staged = nil
}

// ConfirmDelete deletes the staged employee. Either way the staged item is cleared; on
// success the list is re-fetched and a banner is shown.
func (p *Employees) ConfirmDelete() error {
	p.mu.Lock()
	if p.staged == nil {
		p.mu.Unlock()
		return ErrNothingStaged
	}
	if p.deleting {
		p.mu.Unlock()
		return ErrBusy
	}
	p.deleting = true
	id := p.staged.ID
	p.mu.Unlock()

	err := p.api.Delete(id)

	p.mu.Lock()
	p.deleting = false
	p.staged = nil
	if err != nil {
		p.actionErr = message(err)
		p.mu.Unlock()
		return err
	}
	p.mu.Unlock()

	p.banner.Show(MsgEmployeeDeleted)
	p.Refresh()
	return nil
}

func (p *Employees) DismissBanner() { p.banner.Dismiss() }

func (p *Employees) View() EmployeesView {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := EmployeesView{
		Status:      p.fetch.status,
		Error:       p.fetch.err,
		ActionError: p.actionErr,
		Success:     p.banner.Message(),
		Employees:   append([]model.Employee(nil), p.employees...),
		ShowForm:    p.showForm,
		Form:        p.form.View(),
		Deleting:    p.deleting,
	}
	if p.staged != nil {
		staged := *p.staged
		v.Staged = &staged
	}
	return v
}

func (p *Employees) Close() {
	p.mu.Lock()
	p.fetch.closed = true
	p.mu.Unlock()
	p.banner.Close()
}
