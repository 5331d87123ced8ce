package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"

	"moodplay/internal/commands"
	"moodplay/internal/logger"
	"moodplay/internal/moods"
	"moodplay/pkg/moodtypes"
)

// TransportName identifies Discord in moodtypes.Interaction.Transport.
const TransportName = "discord"

// Messages shown to users for failures detected before a command runs.
const (
	msgNotInVoice     = "you need to be in a voice channel to use this command"
	msgUnknownCommand = "unknown command"
)

// Responder is the part of *discordgo.Session used to answer interactions.
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// VoiceChecker reports whether a user is currently connected to a voice channel of a guild.
type VoiceChecker func(guildID, userID string) bool

// StateVoiceChecker checks voice membership against the session's state cache.
func StateVoiceChecker(state *discordgo.State) VoiceChecker {
	return func(guildID, userID string) bool {
		if state == nil || guildID == "" || userID == "" {
			return false
		}
		vs, err := state.VoiceState(guildID, userID)
		return err == nil && vs != nil && vs.ChannelID != ""
	}
}

// Handler routes Discord interactions to registered commands.
//
// Command interactions are acknowledged with a deferred reply before the command
// runs. On failure the reply is edited with the error; on success the enqueue
// collaborator owns the reply (see NotifyingEnqueuer).
type Handler struct {
	registry  *commands.Registry
	responder Responder
	inVoice   VoiceChecker
	log       *log.Logger
}

// NewHandler creates a handler. A nil inVoice makes every voice check fail.
func NewHandler(registry *commands.Registry, responder Responder, inVoice VoiceChecker) *Handler {
	if inVoice == nil {
		inVoice = func(string, string) bool { return false }
	}
	return &Handler{
		registry:  registry,
		responder: responder,
		inVoice:   inVoice,
		log:       logger.NewStyledLogger("Discord"),
	}
}

// Handle processes a single interaction.
func (h *Handler) Handle(ctx context.Context, i *discordgo.InteractionCreate) {
	if i == nil || i.Interaction == nil {
		return
	}

	switch i.Type {
	case discordgo.InteractionApplicationCommandAutocomplete:
		h.handleAutocomplete(i.Interaction)
	case discordgo.InteractionApplicationCommand:
		h.handleCommand(ctx, i.Interaction)
	default:
		h.log.Debug("Ignoring interaction", "type", int(i.Type), "interaction", i.ID)
	}
}

func (h *Handler) handleAutocomplete(i *discordgo.Interaction) {
	data := i.ApplicationCommandData()
	option, partial := focused(data.Options)

	choices, err := h.registry.Autocomplete(data.Name, option, partial)
	if err != nil {
		h.log.Warn("Autocomplete failed", "command", data.Name, "error", err)
		choices = nil
	}

	err = h.responder.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: Choices(choices, moods.MaxChoices),
		},
	})
	if err != nil {
		h.log.Error("Failed to send autocomplete choices", "command", data.Name, "error", err)
	}
}

func (h *Handler) handleCommand(ctx context.Context, i *discordgo.Interaction) {
	data := i.ApplicationCommandData()

	cmd, ok := h.registry.Get(data.Name)
	if !ok {
		h.replyEphemeral(i, msgUnknownCommand)
		return
	}

	userID := interactionUserID(i)
	if cmd.RequiresVoice() && !h.inVoice(i.GuildID, userID) {
		h.log.Debug("Rejected command outside voice channel", "command", data.Name, "guild", i.GuildID)
		h.replyEphemeral(i, msgNotInVoice)
		return
	}

	err := h.responder.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		h.log.Error("Failed to acknowledge command", "command", data.Name, "error", err)
		return
	}

	inv := moodtypes.Invocation{
		Interaction: moodtypes.Interaction{
			ID:        i.ID,
			Transport: TransportName,
			GuildID:   i.GuildID,
			ChannelID: i.ChannelID,
			UserID:    userID,
			Raw:       i,
		},
		Options: NewOptions(data.Options),
	}

	if err := h.registry.Execute(ctx, data.Name, inv); err != nil {
		if errors.Is(err, moodtypes.ErrRegistryExhausted) {
			h.log.Error("Command failed", "command", data.Name, "error", err)
		} else {
			h.log.Debug("Command returned error", "command", data.Name, "error", err)
		}
		h.editReply(i, moodtypes.UserMessage(err))
	}
}

func (h *Handler) replyEphemeral(i *discordgo.Interaction, content string) {
	err := h.responder.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		h.log.Error("Failed to reply", "interaction", i.ID, "error", err)
	}
}

func (h *Handler) editReply(i *discordgo.Interaction, content string) {
	if _, err := h.responder.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &content}); err != nil {
		h.log.Error("Failed to edit reply", "interaction", i.ID, "error", err)
	}
}

// interactionUserID returns the invoking user, whether in a guild or a DM.
func interactionUserID(i *discordgo.Interaction) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
