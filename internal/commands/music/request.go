// Package music implements the mood-driven playback commands: "mood" picks a preset
// by name, "random" picks one at random. Both hand a playback request to the queue.
package music

import (
	"fmt"

	"moodplay/internal/commands"
	"moodplay/internal/moods"
	"moodplay/pkg/moodtypes"
)

// Option names shared by the playback commands.
const (
	OptionMood      = "mood"
	OptionCount     = "count"
	OptionImmediate = "immediate"
	OptionShuffle   = "shuffle"
)

// Bounds of the count option as declared to transports.
const (
	MinCount = 1
	MaxCount = 100
)

// RequestOptions are the optional inputs common to both playback commands.
type RequestOptions struct {
	// Count is nil when the user did not ask for a specific number of tracks.
	Count     *int
	Immediate bool
	Shuffle   bool
}

// ReadRequestOptions extracts count, immediate and shuffle from invocation options.
func ReadRequestOptions(opts moodtypes.Options) RequestOptions {
	var ro RequestOptions
	if opts == nil {
		return ro
	}
	if count, ok := opts.Int(OptionCount); ok {
		ro.Count = &count
	}
	ro.Immediate, _ = opts.Bool(OptionImmediate)
	ro.Shuffle, _ = opts.Bool(OptionShuffle)
	return ro
}

// BuildRequest assembles the playback request for a resolved query.
// A missing or non-positive count leaves the playlist limit to the queue's default.
func BuildRequest(query string, ro RequestOptions) moodtypes.PlaybackRequest {
	req := moodtypes.PlaybackRequest{
		Query:               query,
		AddToFrontOfQueue:   ro.Immediate,
		ShuffleAdditions:    ro.Shuffle,
		ShouldSplitChapters: false,
		SkipCurrentTrack:    false,
	}
	if ro.Count != nil && *ro.Count > 0 {
		limit := *ro.Count
		req.PlaylistLimit = &limit
	}
	return req
}

// playbackOptions declares count, immediate and shuffle.
func playbackOptions() []moodtypes.OptionSpec {
	return []moodtypes.OptionSpec{
		{
			Name:        OptionCount,
			Description: "number of songs to add (defaults to guild playlist limit)",
			Type:        moodtypes.OptionInteger,
			MinValue:    MinCount,
			MaxValue:    MaxCount,
		},
		{
			Name:        OptionImmediate,
			Description: "add tracks to the front of the queue",
			Type:        moodtypes.OptionBoolean,
		},
		{
			Name:        OptionShuffle,
			Description: "shuffle the added tracks",
			Type:        moodtypes.OptionBoolean,
		},
	}
}

// Dependencies are the collaborators the playback commands are built from.
type Dependencies struct {
	Resolver *moods.Resolver
	Filter   *moods.Filter
	Enqueuer moodtypes.Enqueuer
	// SuggestionLimit caps autocomplete replies. Values outside 1..25 mean 25.
	SuggestionLimit int
}

// Register adds the mood and random commands to registry.
func Register(registry *commands.Registry, deps Dependencies) error {
	if deps.Resolver == nil || deps.Filter == nil || deps.Enqueuer == nil {
		return fmt.Errorf("music commands need a resolver, a filter and an enqueuer")
	}
	if err := registry.Register(NewMoodCommand(deps)); err != nil {
		return err
	}
	return registry.Register(NewRandomCommand(deps))
}
