package theme

import (
	"fmt"
	"strings"
	"sync"

	"contrastguard/internal/guard"
)

// Scope is the root style scope: the live token values every view renders
// with. It satisfies guard.Scope.
type Scope struct {
	mu     sync.RWMutex
	values guard.Tokens
}

// NewScope returns a Scope seeded with tokens.
func NewScope(tokens guard.Tokens) *Scope {
	if tokens == nil {
		tokens = guard.Tokens{}
	}
	return &Scope{values: tokens.Clone()}
}

// Snapshot returns a copy of the current values.
func (s *Scope) Snapshot() guard.Tokens {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.Clone()
}

// Get returns one token value.
func (s *Scope) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

// Set overwrites one token value.
func (s *Scope) Set(name, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[name] = value
}

// Replace swaps in a fresh set of values, e.g. after a theme change.
func (s *Scope) Replace(tokens guard.Tokens) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = tokens.Clone()
}

// CSS renders the scope as custom properties on :root, sorted by name.
func (s *Scope) CSS() string {
	snap := s.Snapshot()
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, name := range snap.Names() {
		fmt.Fprintf(&b, "  --%s: %s;\n", name, snap[name])
	}
	b.WriteString("}\n")
	return b.String()
}
