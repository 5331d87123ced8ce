package music

import (
	"context"
	"strings"

	"moodplay/internal/logger"
	"moodplay/internal/moods"
	"moodplay/pkg/moodtypes"
)

// MoodCommand implements the mood command: play music for a named mood.
type MoodCommand struct {
	resolver *moods.Resolver
	filter   *moods.Filter
	enqueuer moodtypes.Enqueuer
	limit    int
}

// NewMoodCommand creates the mood command.
func NewMoodCommand(deps Dependencies) *MoodCommand {
	limit := deps.SuggestionLimit
	if limit <= 0 || limit > moods.MaxChoices {
		limit = moods.MaxChoices
	}
	return &MoodCommand{
		resolver: deps.Resolver,
		filter:   deps.Filter,
		enqueuer: deps.Enqueuer,
		limit:    limit,
	}
}

// Name returns "mood".
func (c *MoodCommand) Name() string {
	return "mood"
}

// Description returns a brief description of the mood command.
func (c *MoodCommand) Description() string {
	return "play music based on a mood"
}

// Options declares the mood option followed by the shared playback options.
func (c *MoodCommand) Options() []moodtypes.OptionSpec {
	return append([]moodtypes.OptionSpec{
		{
			Name:         OptionMood,
			Description:  "the mood you want to listen to",
			Type:         moodtypes.OptionString,
			Required:     true,
			Autocomplete: true,
		},
	}, playbackOptions()...)
}

// RequiresVoice returns true.
func (c *MoodCommand) RequiresVoice() bool {
	return true
}

// Execute resolves the mood name exactly and enqueues its query.
// Unknown names yield *moodtypes.UnknownMoodError; enqueue errors are returned unchanged.
func (c *MoodCommand) Execute(ctx context.Context, inv moodtypes.Invocation) error {
	var raw string
	if inv.Options != nil {
		raw, _ = inv.Options.String(OptionMood)
	}
	name := strings.TrimSpace(raw)

	query, ok := c.resolver.ResolveByName(name)
	if !ok {
		logger.Debug("Unknown mood requested", "mood", name, "interaction", inv.Interaction.ID)
		return &moodtypes.UnknownMoodError{Name: name}
	}

	req := BuildRequest(query, ReadRequestOptions(inv.Options))
	logger.Debug("Enqueueing mood", "mood", name, "query", query, "interaction", inv.Interaction.ID)
	return c.enqueuer.Enqueue(ctx, inv.Interaction, req)
}

// Autocomplete suggests mood names for the mood option.
func (c *MoodCommand) Autocomplete(option string, partial string) []moodtypes.Choice {
	if option != OptionMood {
		return []moodtypes.Choice{}
	}

	names := c.filter.Suggest(partial, c.limit)
	choices := make([]moodtypes.Choice, len(names))
	for i, name := range names {
		choices[i] = moodtypes.Choice{Name: name, Value: name}
	}
	return choices
}
