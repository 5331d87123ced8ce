package queue

import (
	"context"
	"strconv"

	"moodplay/internal/logger"
	"moodplay/pkg/moodtypes"
)

// LogEnqueuer logs playback requests and accepts them without forwarding.
// It is used when no queue service is configured.
type LogEnqueuer struct{}

// NewLogEnqueuer creates a dry-run enqueuer.
func NewLogEnqueuer() *LogEnqueuer {
	return &LogEnqueuer{}
}

// Enqueue logs the request.
func (l *LogEnqueuer) Enqueue(_ context.Context, interaction moodtypes.Interaction, request moodtypes.PlaybackRequest) error {
	limit := "default"
	if request.PlaylistLimit != nil {
		limit = strconv.Itoa(*request.PlaylistLimit)
	}
	logger.Info("Playback request (dry run)",
		"query", request.Query,
		"front", request.AddToFrontOfQueue,
		"shuffle", request.ShuffleAdditions,
		"limit", limit,
		"interaction", interaction.ID,
		"transport", interaction.Transport)
	return nil
}
