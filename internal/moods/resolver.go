package moods

import (
	"fmt"
	"strings"

	"moodplay/internal/logger"
	"moodplay/pkg/moodtypes"
)

// Resolver turns user input into search queries using a Registry.
type Resolver struct {
	registry *Registry
}

// NewResolver creates a resolver over registry.
func NewResolver(registry *Registry) *Resolver {
	return &Resolver{registry: registry}
}

// ResolveByName trims raw and looks it up exactly.
// Matching is case-sensitive: "Chill" does not resolve even though "chill" does.
func (r *Resolver) ResolveByName(raw string) (string, bool) {
	return r.registry.Lookup(strings.TrimSpace(raw))
}

// ResolveRandom picks a mood uniformly at random and returns its name and query.
// An error means the registry broke its own invariants; it is never a user error.
func (r *Resolver) ResolveRandom() (string, string, error) {
	name := r.registry.RandomName()
	query, ok := r.registry.Lookup(name)
	if !ok {
		return "", "", fmt.Errorf("failed to select random mood %q: %w", name, moodtypes.ErrRegistryExhausted)
	}

	logger.Debug("Selected random mood", "mood", name)
	return name, query, nil
}
