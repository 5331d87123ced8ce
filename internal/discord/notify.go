package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"moodplay/internal/logger"
	"moodplay/pkg/moodtypes"
)

// NotifyingEnqueuer edits the deferred Discord reply once the wrapped enqueuer
// accepts a request. Failures are returned untouched so the handler can report them.
type NotifyingEnqueuer struct {
	inner     moodtypes.Enqueuer
	responder Responder
}

// NewNotifyingEnqueuer wraps inner.
func NewNotifyingEnqueuer(inner moodtypes.Enqueuer, responder Responder) *NotifyingEnqueuer {
	return &NotifyingEnqueuer{inner: inner, responder: responder}
}

// Enqueue forwards to the wrapped enqueuer and confirms success to the user.
func (n *NotifyingEnqueuer) Enqueue(ctx context.Context, interaction moodtypes.Interaction, request moodtypes.PlaybackRequest) error {
	if err := n.inner.Enqueue(ctx, interaction, request); err != nil {
		return err
	}

	raw, ok := interaction.Raw.(*discordgo.Interaction)
	if !ok || raw == nil {
		return nil
	}

	content := Confirmation(request)
	if _, err := n.responder.InteractionResponseEdit(raw, &discordgo.WebhookEdit{Content: &content}); err != nil {
		// The request is already queued; a lost confirmation is not a failure.
		logger.Warn("Failed to confirm queued request", "interaction", interaction.ID, "error", err)
	}
	return nil
}

// Confirmation renders the reply shown after a request is queued.
func Confirmation(request moodtypes.PlaybackRequest) string {
	details := request.Details()
	msg := fmt.Sprintf("🎶 queued **%s**", request.Query)
	if len(details) > 0 {
		msg += " (" + strings.Join(details, ", ") + ")"
	}
	return msg
}
