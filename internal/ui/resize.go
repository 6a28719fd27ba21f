package ui

import "sync"

// ResizeHub fans terminal resize events out to subscribers.
type ResizeHub struct {
	mu   sync.Mutex
	subs []func()
}

// OnResize registers fn to run on every resize.
func (h *ResizeHub) OnResize(fn func()) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs = append(h.subs, fn)
}

// Fire runs every subscriber in registration order.
func (h *ResizeHub) Fire() {
	h.mu.Lock()
	subs := append([]func(){}, h.subs...)
	h.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Subscribers returns how many callbacks are registered.
func (h *ResizeHub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
