package moodtypes

import (
	"errors"
	"fmt"
)

// ErrUnknownMood is matched by every *UnknownMoodError.
var ErrUnknownMood = errors.New("unknown mood")

// ErrRegistryExhausted reports selection from a registry that has no entries,
// or a registry that failed to resolve a name it produced itself.
var ErrRegistryExhausted = errors.New("mood registry has no entries")

// UnknownMoodError is returned when a supplied mood name does not exactly match a preset.
type UnknownMoodError struct {
	Name string
}

func (e *UnknownMoodError) Error() string {
	return "unknown mood. Use autocomplete to see available moods."
}

// Is makes UnknownMoodError match ErrUnknownMood.
func (e *UnknownMoodError) Is(target error) bool {
	return target == ErrUnknownMood
}

// genericFailure is shown in place of internal errors.
const genericFailure = "something went wrong while picking a mood, please try again later"

// UserMessage renders err as the single line reported back to the user.
// Internal invariant violations are replaced with a generic message; everything
// else (unknown moods, queue failures) is reported with its own text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrRegistryExhausted) {
		return genericFailure
	}
	return fmt.Sprintf("error: %s", err.Error())
}
