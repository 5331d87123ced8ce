package moodtypes

import (
	"context"
	"fmt"
)

// PlaybackRequest describes what a queue service should enqueue and how.
type PlaybackRequest struct {
	Query               string `json:"query"`
	AddToFrontOfQueue   bool   `json:"addToFrontOfQueue"`
	ShuffleAdditions    bool   `json:"shuffleAdditions"`
	ShouldSplitChapters bool   `json:"shouldSplitChapters"`
	SkipCurrentTrack    bool   `json:"skipCurrentTrack"`
	// PlaylistLimit is nil when the caller's default limit applies.
	PlaylistLimit *int `json:"playlistLimit,omitempty"`
}

// Interaction identifies the user interaction a request originates from.
type Interaction struct {
	ID        string `json:"id"`
	Transport string `json:"transport"`
	GuildID   string `json:"guildId,omitempty"`
	ChannelID string `json:"channelId,omitempty"`
	UserID    string `json:"userId,omitempty"`

	// Raw carries the transport's native event, if any.
	Raw interface{} `json:"-"`
}

// Enqueuer hands a playback request to the downstream queue.
// Any error it returns is surfaced to the user as is.
type Enqueuer interface {
	Enqueue(ctx context.Context, interaction Interaction, request PlaybackRequest) error
}

// EnqueuerFunc adapts a plain function to the Enqueuer interface.
type EnqueuerFunc func(ctx context.Context, interaction Interaction, request PlaybackRequest) error

// Enqueue calls f.
func (f EnqueuerFunc) Enqueue(ctx context.Context, interaction Interaction, request PlaybackRequest) error {
	return f(ctx, interaction, request)
}

// Details lists the non-default settings of r in a human readable form,
// e.g. "up to 5 songs", "front of queue", "shuffled".
func (r PlaybackRequest) Details() []string {
	var details []string
	if r.PlaylistLimit != nil {
		details = append(details, fmt.Sprintf("up to %d songs", *r.PlaylistLimit))
	}
	if r.AddToFrontOfQueue {
		details = append(details, "front of queue")
	}
	if r.ShuffleAdditions {
		details = append(details, "shuffled")
	}
	return details
}
