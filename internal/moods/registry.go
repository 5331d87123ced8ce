// Package moods holds the mood preset registry and the lookups built on it:
// exact resolution by name, uniform random selection, and prefix autocomplete.
package moods

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"moodplay/pkg/moodtypes"
)

// IndexSource produces uniformly distributed indexes in [0, n).
// *rand.Rand from math/rand/v2 satisfies it.
type IndexSource interface {
	IntN(n int) int
}

// IndexSourceFunc adapts a function to IndexSource.
type IndexSourceFunc func(n int) int

// IntN calls f.
func (f IndexSourceFunc) IntN(n int) int {
	return f(n)
}

// globalSource draws from the math/rand/v2 top-level generator, which is safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Registry is an immutable, ordered table of mood presets.
// It is built once at startup and is safe for concurrent reads.
type Registry struct {
	presets []moodtypes.MoodPreset
	lowered []string
	index   map[string]int
	source  IndexSource
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithIndexSource replaces the random source used by RandomName.
func WithIndexSource(source IndexSource) Option {
	return func(r *Registry) {
		if source != nil {
			r.source = source
		}
	}
}

// NewRegistry builds a registry from presets, keeping their order.
// It fails if the table is empty, or if any preset has an empty or duplicate
// name, a name with surrounding whitespace, or an empty query.
func NewRegistry(presets []moodtypes.MoodPreset, opts ...Option) (*Registry, error) {
	if len(presets) == 0 {
		return nil, moodtypes.ErrRegistryExhausted
	}

	r := &Registry{
		presets: make([]moodtypes.MoodPreset, 0, len(presets)),
		lowered: make([]string, 0, len(presets)),
		index:   make(map[string]int, len(presets)),
		source:  globalSource{},
	}
	for _, opt := range opts {
		opt(r)
	}

	for i, p := range presets {
		if p.Name == "" {
			return nil, fmt.Errorf("preset %d: mood name cannot be empty", i)
		}
		if strings.TrimSpace(p.Name) != p.Name {
			return nil, fmt.Errorf("preset %d: mood name %q has surrounding whitespace", i, p.Name)
		}
		if strings.TrimSpace(p.Query) == "" {
			return nil, fmt.Errorf("mood %s: query cannot be empty", p.Name)
		}
		if _, exists := r.index[p.Name]; exists {
			return nil, fmt.Errorf("mood %s already registered", p.Name)
		}

		r.index[p.Name] = len(r.presets)
		r.presets = append(r.presets, p)
		r.lowered = append(r.lowered, strings.ToLower(p.Name))
	}

	return r, nil
}

// Lookup returns the query for an exact, case-sensitive name match.
func (r *Registry) Lookup(name string) (string, bool) {
	i, ok := r.index[name]
	if !ok {
		return "", false
	}
	return r.presets[i].Query, true
}

// Names returns every mood name in registry order.
// The returned slice is a copy and can be safely modified.
func (r *Registry) Names() []string {
	names := make([]string, len(r.presets))
	for i, p := range r.presets {
		names[i] = p.Name
	}
	return names
}

// Presets returns a copy of the preset table in registry order.
func (r *Registry) Presets() []moodtypes.MoodPreset {
	out := make([]moodtypes.MoodPreset, len(r.presets))
	copy(out, r.presets)
	return out
}

// Len returns the number of presets.
func (r *Registry) Len() int {
	return len(r.presets)
}

// RandomName returns a name chosen uniformly at random.
// It returns "" only when the registry is empty or the index source misbehaves.
func (r *Registry) RandomName() string {
	n := len(r.presets)
	if n == 0 {
		return ""
	}
	i := r.source.IntN(n)
	if i < 0 || i >= n {
		return ""
	}
	return r.presets[i].Name
}
