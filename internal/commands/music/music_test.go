package music

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodplay/internal/commands"
	"moodplay/internal/moods"
	"moodplay/internal/testutils"
	"moodplay/pkg/moodtypes"
)

func setupMusicDeps(t *testing.T, opts ...moods.Option) (Dependencies, *testutils.RecordingEnqueuer, *moods.Registry) {
	t.Helper()
	registry, err := moods.Default(opts...)
	require.NoError(t, err)

	enqueuer := testutils.NewRecordingEnqueuer()
	return Dependencies{
		Resolver: moods.NewResolver(registry),
		Filter:   moods.NewFilter(registry),
		Enqueuer: enqueuer,
	}, enqueuer, registry
}

func intPtr(i int) *int { return &i }

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name     string
		opts     RequestOptions
		expected moodtypes.PlaybackRequest
	}{
		{
			name:     "defaults",
			opts:     RequestOptions{},
			expected: moodtypes.PlaybackRequest{Query: "q"},
		},
		{
			name:     "positive count",
			opts:     RequestOptions{Count: intPtr(5), Immediate: true},
			expected: moodtypes.PlaybackRequest{Query: "q", AddToFrontOfQueue: true, PlaylistLimit: intPtr(5)},
		},
		{
			name:     "zero count means default limit",
			opts:     RequestOptions{Count: intPtr(0), Shuffle: true},
			expected: moodtypes.PlaybackRequest{Query: "q", ShuffleAdditions: true},
		},
		{
			name:     "negative count means default limit",
			opts:     RequestOptions{Count: intPtr(-3)},
			expected: moodtypes.PlaybackRequest{Query: "q"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRequest("q", tt.opts)
			assert.Equal(t, tt.expected, got)
			assert.False(t, got.ShouldSplitChapters)
			assert.False(t, got.SkipCurrentTrack)
		})
	}
}

func TestBuildRequest_LimitIsCopied(t *testing.T) {
	count := 7
	req := BuildRequest("q", RequestOptions{Count: &count})
	count = 9
	require.NotNil(t, req.PlaylistLimit)
	assert.Equal(t, 7, *req.PlaylistLimit)
}

func TestReadRequestOptions(t *testing.T) {
	ro := ReadRequestOptions(testutils.MockOptions{"count": 3, "immediate": true})
	require.NotNil(t, ro.Count)
	assert.Equal(t, 3, *ro.Count)
	assert.True(t, ro.Immediate)
	assert.False(t, ro.Shuffle)

	ro = ReadRequestOptions(nil)
	assert.Nil(t, ro.Count)
}

func TestMoodCommand_Metadata(t *testing.T) {
	deps, _, _ := setupMusicDeps(t)
	cmd := NewMoodCommand(deps)

	assert.Equal(t, "mood", cmd.Name())
	assert.NotEmpty(t, cmd.Description())
	assert.True(t, cmd.RequiresVoice())

	opts := cmd.Options()
	require.Len(t, opts, 4)
	assert.Equal(t, OptionMood, opts[0].Name)
	assert.True(t, opts[0].Required)
	assert.True(t, opts[0].Autocomplete)
	assert.Equal(t, moodtypes.OptionString, opts[0].Type)
	assert.Equal(t, OptionCount, opts[1].Name)
	assert.Equal(t, 1, opts[1].MinValue)
	assert.Equal(t, 100, opts[1].MaxValue)
	assert.False(t, opts[1].Required)
	assert.Equal(t, OptionImmediate, opts[2].Name)
	assert.Equal(t, OptionShuffle, opts[3].Name)
}

func TestMoodCommand_Execute(t *testing.T) {
	deps, enqueuer, _ := setupMusicDeps(t)
	cmd := NewMoodCommand(deps)

	interaction := moodtypes.Interaction{ID: "i-1", Transport: "test", GuildID: "g"}
	err := cmd.Execute(context.Background(), moodtypes.Invocation{
		Interaction: interaction,
		Options: testutils.MockOptions{
			"mood":      " party ",
			"count":     5,
			"immediate": true,
			"shuffle":   false,
		},
	})
	require.NoError(t, err)

	call, ok := enqueuer.Last()
	require.True(t, ok)
	assert.Equal(t, interaction, call.Interaction)
	assert.Equal(t, moodtypes.PlaybackRequest{
		Query:             "party dance music mix",
		AddToFrontOfQueue: true,
		ShuffleAdditions:  false,
		PlaylistLimit:     intPtr(5),
	}, call.Request)
}

func TestMoodCommand_UnknownMood(t *testing.T) {
	deps, enqueuer, _ := setupMusicDeps(t)
	cmd := NewMoodCommand(deps)

	for _, name := range []string{"unicorns", "Chill", "", "   "} {
		t.Run(name, func(t *testing.T) {
			err := cmd.Execute(context.Background(), moodtypes.Invocation{
				Options: testutils.MockOptions{"mood": name},
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, moodtypes.ErrUnknownMood)
			assert.Contains(t, err.Error(), "autocomplete")
		})
	}
	assert.Empty(t, enqueuer.Calls())
}

func TestMoodCommand_CollaboratorFailureUnchanged(t *testing.T) {
	deps, enqueuer, _ := setupMusicDeps(t)
	sentinel := errors.New("you need to be in a voice channel")
	enqueuer.SetError(sentinel)

	err := NewMoodCommand(deps).Execute(context.Background(), moodtypes.Invocation{
		Options: testutils.MockOptions{"mood": "chill"},
	})
	assert.Same(t, sentinel, err)
	assert.Len(t, enqueuer.Calls(), 1)
}

func TestMoodCommand_Autocomplete(t *testing.T) {
	deps, _, registry := setupMusicDeps(t)
	cmd := NewMoodCommand(deps)

	choices := cmd.Autocomplete(OptionMood, "S")
	assert.Equal(t, []moodtypes.Choice{
		{Name: "sad", Value: "sad"},
		{Name: "sleep", Value: "sleep"},
	}, choices)

	all := cmd.Autocomplete(OptionMood, "")
	assert.Len(t, all, registry.Len())

	assert.Empty(t, cmd.Autocomplete(OptionCount, "1"))
}

func TestMoodCommand_SuggestionLimit(t *testing.T) {
	deps, _, _ := setupMusicDeps(t)

	deps.SuggestionLimit = 3
	assert.Len(t, NewMoodCommand(deps).Autocomplete(OptionMood, ""), 3)

	deps.SuggestionLimit = 500
	assert.Equal(t, moods.MaxChoices, NewMoodCommand(deps).limit)
}

func TestRandomCommand_Metadata(t *testing.T) {
	deps, _, _ := setupMusicDeps(t)
	cmd := NewRandomCommand(deps)

	assert.Equal(t, "random", cmd.Name())
	assert.True(t, cmd.RequiresVoice())
	opts := cmd.Options()
	require.Len(t, opts, 3)
	assert.Equal(t, OptionCount, opts[0].Name)
	_, isCompleter := interface{}(cmd).(moodtypes.Autocompleter)
	assert.False(t, isCompleter)
}

func TestRandomCommand_ExecuteDefaults(t *testing.T) {
	deps, enqueuer, registry := setupMusicDeps(t)

	err := NewRandomCommand(deps).Execute(context.Background(), moodtypes.Invocation{
		Options: testutils.MockOptions{},
	})
	require.NoError(t, err)

	call, ok := enqueuer.Last()
	require.True(t, ok)
	assert.Nil(t, call.Request.PlaylistLimit)
	assert.False(t, call.Request.AddToFrontOfQueue)
	assert.False(t, call.Request.ShuffleAdditions)

	queries := make([]string, 0, registry.Len())
	for _, p := range registry.Presets() {
		queries = append(queries, p.Query)
	}
	assert.Contains(t, queries, call.Request.Query)
}

func TestRandomCommand_ExecuteDeterministic(t *testing.T) {
	deps, enqueuer, _ := setupMusicDeps(t, moods.WithIndexSource(testutils.NewSequenceSource(10)))

	err := NewRandomCommand(deps).Execute(context.Background(), moodtypes.Invocation{
		Options: testutils.MockOptions{"count": 12, "shuffle": true},
	})
	require.NoError(t, err)

	call, _ := enqueuer.Last()
	assert.Equal(t, moodtypes.PlaybackRequest{
		Query:            "smooth jazz music",
		ShuffleAdditions: true,
		PlaylistLimit:    intPtr(12),
	}, call.Request)
}

func TestRandomCommand_InvariantViolation(t *testing.T) {
	broken := moods.IndexSourceFunc(func(n int) int { return n + 1 })
	deps, enqueuer, _ := setupMusicDeps(t, moods.WithIndexSource(broken))

	err := NewRandomCommand(deps).Execute(context.Background(), moodtypes.Invocation{})
	assert.ErrorIs(t, err, moodtypes.ErrRegistryExhausted)
	assert.Empty(t, enqueuer.Calls())
}

func TestRegister(t *testing.T) {
	deps, _, _ := setupMusicDeps(t)
	registry := commands.NewRegistry()

	require.NoError(t, Register(registry, deps))
	all := registry.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "mood", all[0].Name())
	assert.Equal(t, "random", all[1].Name())

	assert.Error(t, Register(registry, deps), "second registration must fail")
	assert.Error(t, Register(commands.NewRegistry(), Dependencies{}))
}
