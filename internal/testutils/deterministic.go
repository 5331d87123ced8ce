// Package testutils provides deterministic generators and test doubles for moodplay.
// These utilities keep test output stable while matching production formats.
package testutils

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	// Thread-safe counter for deterministic ID generation
	idCounter uint64
	idMutex   sync.Mutex
)

// GenerateInteractionID returns a random UUID, or a deterministic one in test mode.
// In test mode, returns UUIDs in format: 00000001-0000-4000-8000-000000000001, 00000002-0000-4000-8000-000000000002, etc.
func GenerateInteractionID(testMode bool) string {
	if testMode {
		return getDeterministicUUID()
	}
	return uuid.New().String()
}

// getDeterministicUUID generates a deterministic UUID maintaining UUID v4 format.
func getDeterministicUUID() string {
	idMutex.Lock()
	defer idMutex.Unlock()

	idCounter++

	// Format: xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx
	return fmt.Sprintf("%08x-0000-4000-8000-%012x", idCounter, idCounter)
}

// ResetTestCounters resets the deterministic counters.
// This should only be called from test code to ensure consistent test runs.
func ResetTestCounters() {
	idMutex.Lock()
	defer idMutex.Unlock()
	idCounter = 0
}

// SequenceSource replays a fixed sequence of indexes, reduced modulo n.
// It satisfies moods.IndexSource and is safe for concurrent use.
type SequenceSource struct {
	mu     sync.Mutex
	values []int
	pos    int
	calls  []int
}

// NewSequenceSource creates a source that cycles through values.
func NewSequenceSource(values ...int) *SequenceSource {
	if len(values) == 0 {
		values = []int{0}
	}
	return &SequenceSource{values: values}
}

// IntN returns the next value of the sequence modulo n.
func (s *SequenceSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, n)
	v := s.values[s.pos%len(s.values)]
	s.pos++
	if n <= 0 {
		return 0
	}
	return ((v % n) + n) % n
}

// Calls returns the n passed to each IntN call so far.
func (s *SequenceSource) Calls() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.calls))
	copy(out, s.calls)
	return out
}
