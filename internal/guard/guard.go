package guard

import "sync"

// Scope is the host-owned root style scope holding live token values.
type Scope interface {
	Snapshot() Tokens
	Set(name, value string)
}

// ResizeSource delivers viewport-resize notifications.
type ResizeSource interface {
	OnResize(fn func())
}

// Option configures a Guard.
type Option func(*Guard)

// WithRules replaces the default rule list. The slice is copied.
func WithRules(rules []Rule) Option {
	return func(g *Guard) {
		g.rules = append([]Rule(nil), rules...)
	}
}

// WithLogger routes diagnostic messages to logf.
func WithLogger(logf func(format string, args ...any)) Option {
	return func(g *Guard) {
		if logf != nil {
			g.logf = logf
		}
	}
}

// WithObserver registers a callback that receives every pass report.
func WithObserver(fn func(Report)) Option {
	return func(g *Guard) {
		g.observe = fn
	}
}

// Guard applies the contrast rules to a Scope. It is created once at
// startup and handed to whatever owns theming; ApplyOnce and EnsureBound
// never panic.
type Guard struct {
	mu      sync.Mutex
	bound   bool
	passMu  sync.Mutex
	rules   []Rule
	logf    func(format string, args ...any)
	observe func(Report)
}

// New constructs a Guard using DefaultRules unless overridden.
func New(opts ...Option) *Guard {
	g := &Guard{
		rules: DefaultRules(),
		logf:  func(string, ...any) {},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Rules returns a copy of the active rule list.
func (g *Guard) Rules() []Rule {
	return append([]Rule(nil), g.rules...)
}

// ApplyOnce runs one full pass over the rules against scope and writes
// changed foreground tokens back. Faults are logged and swallowed.
func (g *Guard) ApplyOnce(scope Scope) {
	if g == nil || scope == nil {
		return
	}
	g.passMu.Lock()
	defer g.passMu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			g.logf("guard: pass aborted: %v", r)
		}
	}()

	current := scope.Snapshot()
	next, report := Apply(current, g.rules)

	written := make(map[string]bool)
	for _, res := range report.Results {
		switch res.Status {
		case StatusApplied:
			g.logf("guard: %s %s -> %s (%.2f -> %.2f, met=%t)",
				res.Rule, res.Before, res.After, res.BeforeRatio, res.AfterRatio, res.Met)
			name := res.Rule.Foreground
			if written[name] {
				continue
			}
			written[name] = true
			if next[name] != current[name] {
				scope.Set(name, next[name])
			}
		case StatusSkipped, StatusFailed:
			g.logf("guard: %s %s: %v", res.Rule, res.Status, res.Err)
		}
	}

	if g.observe != nil {
		g.observe(report)
	}
}

// EnsureBound subscribes a pass over scope to src's resize notifications.
// Only the first call binds; the subscription lives as long as the source.
func (g *Guard) EnsureBound(src ResizeSource, scope Scope) {
	if g == nil || src == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			g.logf("guard: bind failed: %v", r)
		}
	}()

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.bound {
		return
	}
	src.OnResize(func() { g.ApplyOnce(scope) })
	g.bound = true
}

// Bound reports whether EnsureBound has attached the resize listener.
func (g *Guard) Bound() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.bound
}
