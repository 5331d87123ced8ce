// Package commands provides command registration and dispatch for moodplay.
// Transports look commands up here by name and hand them invocations.
package commands

import (
	"context"
	"fmt"
	"sync"

	"moodplay/internal/logger"
	"moodplay/pkg/moodtypes"
)

// Registry manages command registration and lookup.
// It keeps registration order so transports declare commands deterministically.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]moodtypes.Command
	order    []string
}

// NewRegistry creates a new command registry with an empty command map.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]moodtypes.Command),
	}
}

// Register adds a command to the registry. Returns an error if the command
// name is empty or if a command with the same name is already registered.
func (r *Registry) Register(cmd moodtypes.Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cmd.Name() == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	if _, exists := r.commands[cmd.Name()]; exists {
		return fmt.Errorf("command %s already registered", cmd.Name())
	}

	r.commands[cmd.Name()] = cmd
	r.order = append(r.order, cmd.Name())
	return nil
}

// Get retrieves a command by name. Returns the command and true if found,
// or nil and false if the command is not registered.
func (r *Registry) Get(name string) (moodtypes.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[name]
	return cmd, exists
}

// GetAll returns every registered command in registration order.
// The returned slice is a copy and can be safely modified.
func (r *Registry) GetAll() []moodtypes.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	commands := make([]moodtypes.Command, 0, len(r.order))
	for _, name := range r.order {
		commands = append(commands, r.commands[name])
	}
	return commands
}

// IsValidCommand checks if a command exists in the registry.
func (r *Registry) IsValidCommand(name string) bool {
	_, exists := r.Get(name)
	return exists
}

// Execute runs a command by name with the provided invocation.
// Returns an error if the command is not found; errors from the command itself
// are returned unchanged.
func (r *Registry) Execute(ctx context.Context, name string, inv moodtypes.Invocation) error {
	cmd, exists := r.Get(name)
	if !exists {
		return fmt.Errorf("unknown command: %s", name)
	}
	logger.CommandExecution(name, inv.Interaction.ID, inv.Interaction.Transport)
	return cmd.Execute(ctx, inv)
}

// Autocomplete asks a command for suggestions for one of its options.
// Commands that do not autocomplete yield no choices.
func (r *Registry) Autocomplete(name string, option string, partial string) ([]moodtypes.Choice, error) {
	cmd, exists := r.Get(name)
	if !exists {
		return nil, fmt.Errorf("unknown command: %s", name)
	}
	completer, ok := cmd.(moodtypes.Autocompleter)
	if !ok {
		return []moodtypes.Choice{}, nil
	}
	return completer.Autocomplete(option, partial), nil
}
