package console

import (
	"context"
	"sync"
	"time"

	"hrms-console/internal/page"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// LocalsKey is where the workspace middleware leaves the request's *Workspace.
const LocalsKey = "workspace"

// Workspace is one browser's console state: the page controller currently mounted.
type Workspace struct {
	mu       sync.Mutex
	active   page.Page
	lastSeen time.Time
}

// Mount closes the previously mounted controller, installs p and performs p's initial load.
func (w *Workspace) Mount(p page.Page) {
	w.mu.Lock()
	prev := w.active
	w.active = p
	w.mu.Unlock()

	if prev != nil {
		prev.Close()
	}
	p.Mount()
}

func (w *Workspace) Active() page.Page {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.active
}

func (w *Workspace) close() {
	w.mu.Lock()
	prev := w.active
	w.active = nil
	w.mu.Unlock()
	if prev != nil {
		prev.Close()
	}
}

// Active returns the workspace's controller if it is a T.
func Active[T page.Page](w *Workspace) (T, bool) {
	p, ok := w.Active().(T)
	return p, ok
}

// Current returns the workspace set on c by the middleware.
func Current(c *fiber.Ctx) *Workspace {
	ws, _ := c.Locals(LocalsKey).(*Workspace)
	if ws == nil {
		// Handlers mounted without the middleware still get a throwaway workspace.
		ws = &Workspace{}
		c.Locals(LocalsKey, ws)
	}
	return ws
}

// Store keeps the workspaces by id.
type Store struct {
	now func() time.Time

	mu    sync.Mutex
	items map[string]*Workspace
}

func NewStore() *Store {
	return &Store{now: time.Now, items: make(map[string]*Workspace)}
}

// Get returns the workspace for id, creating it on first use, and marks it as seen.
func (s *Store) Get(id string) *Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	ws, ok := s.items[id]
	if !ok {
		ws = &Workspace{}
		s.items[id] = ws
	}
	ws.mu.Lock()
	ws.lastSeen = s.now()
	ws.mu.Unlock()
	return ws
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Sweep closes and forgets every workspace not seen for idle. It returns how many went.
func (s *Store) Sweep(idle time.Duration) int {
	cutoff := s.now().Add(-idle)

	s.mu.Lock()
	var stale []*Workspace
	for id, ws := range s.items {
		ws.mu.Lock()
		old := ws.lastSeen.Before(cutoff)
		ws.mu.Unlock()
		if old {
			stale = append(stale, ws)
			delete(s.items, id)
		}
	}
	s.mu.Unlock()

	for _, ws := range stale {
		ws.close()
	}
	return len(stale)
}

// Run sweeps every idle/2 until ctx is done, then closes all workspaces.
func (s *Store) Run(ctx context.Context, idle time.Duration) {
	ticker := time.NewTicker(idle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.closeAll()
			return
		case <-ticker.C:
			if n := s.Sweep(idle); n > 0 {
				log.Debugw("swept idle workspaces", "count", n, "remaining", s.Len())
			}
		}
	}
}

func (s *Store) closeAll() {
	s.mu.Lock()
	items := s.items
	s.items = make(map[string]*Workspace)
	s.mu.Unlock()
	for _, ws := range items {
		ws.close()
	}
}
