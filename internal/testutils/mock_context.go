package testutils

import (
	"context"
	"sync"

	"moodplay/pkg/moodtypes"
)

// MockOptions implements moodtypes.Options from a plain map for testing.
// Values must be string, int, or bool; anything else reads as absent.
type MockOptions map[string]interface{}

// String returns the string option name.
func (m MockOptions) String(name string) (string, bool) {
	v, ok := m[name].(string)
	return v, ok
}

// Int returns the integer option name.
func (m MockOptions) Int(name string) (int, bool) {
	v, ok := m[name].(int)
	return v, ok
}

// Bool returns the boolean option name.
func (m MockOptions) Bool(name string) (bool, bool) {
	v, ok := m[name].(bool)
	return v, ok
}

// EnqueueCall records a single call to RecordingEnqueuer.
type EnqueueCall struct {
	Interaction moodtypes.Interaction
	Request     moodtypes.PlaybackRequest
}

// RecordingEnqueuer records every request handed to it and returns a preset error.
type RecordingEnqueuer struct {
	mu    sync.Mutex
	calls []EnqueueCall
	err   error
}

// NewRecordingEnqueuer creates an enqueuer that succeeds.
func NewRecordingEnqueuer() *RecordingEnqueuer {
	return &RecordingEnqueuer{}
}

// SetError makes subsequent Enqueue calls fail with err.
func (r *RecordingEnqueuer) SetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Enqueue records the call.
func (r *RecordingEnqueuer) Enqueue(_ context.Context, interaction moodtypes.Interaction, request moodtypes.PlaybackRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, EnqueueCall{Interaction: interaction, Request: request})
	return r.err
}

// Calls returns a copy of the recorded calls.
func (r *RecordingEnqueuer) Calls() []EnqueueCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]EnqueueCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// Last returns the most recent call, or false if there were none.
func (r *RecordingEnqueuer) Last() (EnqueueCall, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return EnqueueCall{}, false
	}
	return r.calls[len(r.calls)-1], true
}
