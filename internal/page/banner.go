package page

import (
	"sync"
	"time"
)

// Banner is a transient success message that clears itself ttl after it was shown.
// Close stops the pending timer; it must be called when the owning page goes away.
type Banner struct {
	ttl time.Duration

	mu     sync.Mutex
	msg    string
	gen    uint64
	timer  *time.Timer
	closed bool
}

func NewBanner(ttl time.Duration) *Banner {
	return &Banner{ttl: ttl}
}

// Show replaces the message and restarts the countdown.
func (b *Banner) Show(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	gen := b.gen
	b.msg = msg
	b.timer = time.AfterFunc(b.ttl, func() { b.expire(gen) })
}

func (b *Banner) expire(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	// a newer Show owns the message now
	if gen != b.gen {
		return
	}
	b.msg = ""
	b.timer = nil
}

func (b *Banner) Message() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.msg
}

// Dismiss clears the message early, as the close button does.
func (b *Banner) Dismiss() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.gen++
	b.msg = ""
}

func (b *Banner) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.msg = ""
}

// pending reports whether a clear is scheduled.
func (b *Banner) pending() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.timer != nil
}
