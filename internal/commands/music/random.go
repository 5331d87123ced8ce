package music

import (
	"context"

	"moodplay/internal/logger"
	"moodplay/internal/moods"
	"moodplay/pkg/moodtypes"
)

// RandomCommand implements the random command: play music for a randomly chosen mood.
type RandomCommand struct {
	resolver *moods.Resolver
	enqueuer moodtypes.Enqueuer
}

// NewRandomCommand creates the random command.
func NewRandomCommand(deps Dependencies) *RandomCommand {
	return &RandomCommand{
		resolver: deps.Resolver,
		enqueuer: deps.Enqueuer,
	}
}

// Name returns "random".
func (c *RandomCommand) Name() string {
	return "random"
}

// Description returns a brief description of the random command.
func (c *RandomCommand) Description() string {
	return "play music from a random mood"
}

// Options declares the shared playback options.
func (c *RandomCommand) Options() []moodtypes.OptionSpec {
	return playbackOptions()
}

// RequiresVoice returns true.
func (c *RandomCommand) RequiresVoice() bool {
	return true
}

// Execute picks a random mood and enqueues its query.
func (c *RandomCommand) Execute(ctx context.Context, inv moodtypes.Invocation) error {
	name, query, err := c.resolver.ResolveRandom()
	if err != nil {
		logger.Error("Random mood selection failed", "error", err)
		return err
	}

	req := BuildRequest(query, ReadRequestOptions(inv.Options))
	logger.Debug("Enqueueing random mood", "mood", name, "query", query, "interaction", inv.Interaction.ID)
	return c.enqueuer.Enqueue(ctx, inv.Interaction, req)
}
