package moods

import "strings"

// MaxChoices is the most suggestions a chat transport accepts per autocomplete reply.
const MaxChoices = 25

// Filter suggests mood names matching partial input.
type Filter struct {
	registry *Registry
}

// NewFilter creates an autocomplete filter over registry.
func NewFilter(registry *Registry) *Filter {
	return &Filter{registry: registry}
}

// Suggest returns up to limit names, in registry order, whose lower-cased form
// starts with the trimmed, lower-cased partial input. Empty input matches every name.
func (f *Filter) Suggest(partial string, limit int) []string {
	if limit <= 0 {
		return []string{}
	}

	prefix := strings.ToLower(strings.TrimSpace(partial))
	suggestions := make([]string, 0, min(limit, f.registry.Len()))
	for i, lowered := range f.registry.lowered {
		if len(suggestions) == limit {
			break
		}
		if prefix == "" || strings.HasPrefix(lowered, prefix) {
			suggestions = append(suggestions, f.registry.presets[i].Name)
		}
	}
	return suggestions
}
