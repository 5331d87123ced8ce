package moodtypes

import "context"

// OptionType identifies the value type of a command option.
type OptionType int

const (
	// OptionString is a free-text option
	OptionString OptionType = iota
	// OptionInteger is a whole-number option
	OptionInteger
	// OptionBoolean is a true/false option
	OptionBoolean
)

// String returns the lower-case type name.
func (t OptionType) String() string {
	switch t {
	case OptionString:
		return "string"
	case OptionInteger:
		return "integer"
	case OptionBoolean:
		return "bool"
	default:
		return "unknown"
	}
}

// OptionSpec declares a single option of a command.
type OptionSpec struct {
	Name         string
	Description  string
	Type         OptionType
	Required     bool
	Autocomplete bool
	// MinValue and MaxValue bound integer options. Zero means unbounded.
	MinValue int
	MaxValue int
}

// Options gives access to the option values supplied with an invocation.
// The second return value reports whether the option was supplied at all.
type Options interface {
	String(name string) (string, bool)
	Int(name string) (int, bool)
	Bool(name string) (bool, bool)
}

// Invocation is a single command call coming from a transport.
type Invocation struct {
	Interaction Interaction
	Options     Options
}

// Command is implemented by every command a transport can dispatch.
type Command interface {
	Name() string
	Description() string
	Options() []OptionSpec
	// RequiresVoice reports whether the invoking user must be in a voice channel.
	RequiresVoice() bool
	Execute(ctx context.Context, inv Invocation) error
}

// Autocompleter is implemented by commands that suggest values for an option.
type Autocompleter interface {
	Autocomplete(option string, partial string) []Choice
}

// Choice is a single autocomplete suggestion.
type Choice struct {
	Name  string
	Value string
}
