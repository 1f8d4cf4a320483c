// Package page holds the page controllers behind the console's views. Each controller owns
// the snapshot of the collections it displays for as long as it is mounted: Mount performs
// the initial fetch, Refresh re-fetches on request, mutations re-fetch after they succeed,
// and Close discards the controller.
//
// Fetches are synchronous from the caller's point of view and may overlap when called from
// several goroutines. Every fetch takes a token; only the response to the latest issued
// token is applied.
package page

import (
	"errors"
	"time"

	"hrms-console/internal/client"
)

// Status of a page's load cycle.
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Failed
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failed:
		return "error"
	}
	return "idle"
}

// Page is what the console mounts for a view.
type Page interface {
	Mount()
	Refresh()
	Close()
}

var (
	ErrNotDisplayed  = errors.New("page: item is not in the displayed collection")
	ErrDeletePending = errors.New("page: another deletion is already staged")
	ErrNothingStaged = errors.New("page: no deletion staged")
	ErrBusy          = errors.New("page: deletion in progress")
	ErrBadDate       = errors.New("page: date must be YYYY-MM-DD")
)

const (
	MsgEmployeeAdded    = "Employee added successfully!"
	MsgEmployeeDeleted  = "Employee deleted successfully!"
	MsgAttendanceMarked = "Attendance marked successfully!"
)

const DefaultBannerTTL = 5 * time.Second

type Options struct {
	BannerTTL time.Duration
	Now       func() time.Time
}

func (o Options) withDefaults() Options {
	if o.BannerTTL <= 0 {
		o.BannerTTL = DefaultBannerTTL
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// fetchState is the load state machine shared by the controllers. It is guarded by the
// owning controller's mutex.
type fetchState struct {
	status Status
	err    string
	seq    uint64
	closed bool
}

// begin enters Loading and issues a new token.
func (f *fetchState) begin() uint64 {
	f.seq++
	f.status = Loading
	f.err = ""
	return f.seq
}

// settle reports whether the response for token should be applied, and records its outcome.
func (f *fetchState) settle(token uint64, err error) bool {
	if f.closed || token != f.seq {
		return false
	}
	if err != nil {
		f.status = Failed
		f.err = message(err)
		return true
	}
	f.status = Success
	return true
}

func message(err error) string {
	if err == nil {
		return ""
	}
	var e *client.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
