package commands

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodplay/pkg/moodtypes"
)

// MockCommand implements moodtypes.Command for testing
type MockCommand struct {
	name        string
	description string
	executeFunc func(ctx context.Context, inv moodtypes.Invocation) error
}

func NewMockCommand(name string) *MockCommand {
	return &MockCommand{
		name:        name,
		description: fmt.Sprintf("Mock command: %s", name),
		executeFunc: func(_ context.Context, _ moodtypes.Invocation) error {
			return nil
		},
	}
}

func (m *MockCommand) Name() string { return m.name }
func (m *MockCommand) Description() string { return m.description }
func (m *MockCommand) Options() []moodtypes.OptionSpec { return nil }
func (m *MockCommand) RequiresVoice() bool { return false }
func (m *MockCommand) SetExecuteFunc(fn func(context.Context, moodtypes.Invocation) error) {
	m.executeFunc = fn
}

func (m *MockCommand) Execute(ctx context.Context, inv moodtypes.Invocation) error {
	if m.executeFunc != nil {
		return m.executeFunc(ctx, inv)
	}
	return nil
}

// MockCompletingCommand adds autocomplete to MockCommand
type MockCompletingCommand struct {
	*MockCommand
	choices []moodtypes.Choice
}

func (m *MockCompletingCommand) Autocomplete(_ string, _ string) []moodtypes.Choice {
	return m.choices
}

func TestRegistry_NewRegistry(t *testing.T) {
	registry := NewRegistry()

	assert.NotNil(t, registry)
	assert.NotNil(t, registry.commands)
	assert.Equal(t, 0, len(registry.commands))
}

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name    string
		command moodtypes.Command
		wantErr bool
		errMsg  string
	}{
		{
			name:    "register valid command",
			command: NewMockCommand("test"),
			wantErr: false,
		},
		{
			name:    "register another command",
			command: NewMockCommand("another"),
			wantErr: false,
		},
		{
			name:    "register command with empty name",
			command: NewMockCommand(""),
			wantErr: true,
			errMsg:  "command name cannot be empty",
		},
		{
			name:    "register duplicate command",
			command: NewMockCommand("test"),
			wantErr: true,
			errMsg:  "command test already registered",
		},
	}

	registry := NewRegistry()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := registry.Register(tt.command)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
			} else {
				assert.NoError(t, err)
				assert.True(t, registry.IsValidCommand(tt.command.Name()))
			}
		})
	}
}

func TestRegistry_GetAllKeepsOrder(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"mood", "random", "alpha"} {
		require.NoError(t, registry.Register(NewMockCommand(name)))
	}

	all := registry.GetAll()
	require.Len(t, all, 3)
	assert.Equal(t, "mood", all[0].Name())
	assert.Equal(t, "random", all[1].Name())
	assert.Equal(t, "alpha", all[2].Name())
}

func TestRegistry_Execute(t *testing.T) {
	registry := NewRegistry()
	cmd := NewMockCommand("mood")

	var got moodtypes.Invocation
	cmd.SetExecuteFunc(func(_ context.Context, inv moodtypes.Invocation) error {
		got = inv
		return nil
	})
	require.NoError(t, registry.Register(cmd))

	inv := moodtypes.Invocation{Interaction: moodtypes.Interaction{ID: "abc", Transport: "test"}}
	require.NoError(t, registry.Execute(context.Background(), "mood", inv))
	assert.Equal(t, "abc", got.Interaction.ID)

	err := registry.Execute(context.Background(), "missing", inv)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command: missing")
}

func TestRegistry_ExecutePropagatesErrorUnchanged(t *testing.T) {
	registry := NewRegistry()
	cmd := NewMockCommand("mood")
	sentinel := errors.New("queue unavailable")
	cmd.SetExecuteFunc(func(_ context.Context, _ moodtypes.Invocation) error {
		return sentinel
	})
	require.NoError(t, registry.Register(cmd))

	err := registry.Execute(context.Background(), "mood", moodtypes.Invocation{})
	assert.Same(t, sentinel, err)
}

func TestRegistry_Autocomplete(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register(NewMockCommand("random")))
	require.NoError(t, registry.Register(&MockCompletingCommand{
		MockCommand: NewMockCommand("mood"),
		choices:     []moodtypes.Choice{{Name: "chill", Value: "chill"}},
	}))

	choices, err := registry.Autocomplete("mood", "mood", "ch")
	require.NoError(t, err)
	assert.Equal(t, []moodtypes.Choice{{Name: "chill", Value: "chill"}}, choices)

	choices, err = registry.Autocomplete("random", "count", "")
	require.NoError(t, err)
	assert.Empty(t, choices)

	_, err = registry.Autocomplete("missing", "x", "")
	assert.Error(t, err)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = registry.Register(NewMockCommand(fmt.Sprintf("cmd%d", i)))
			_ = registry.GetAll()
			_, _ = registry.Get("cmd0")
		}(i)
	}
	wg.Wait()

	assert.Len(t, registry.GetAll(), 20)
}
