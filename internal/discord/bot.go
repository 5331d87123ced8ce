package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"moodplay/internal/commands"
	"moodplay/internal/logger"
)

// Bot owns the Discord gateway session.
type Bot struct {
	session *discordgo.Session
	guildID string
}

// NewBot creates a session for token. Commands are registered to guildID,
// or globally when guildID is empty.
func NewBot(token string, guildID string) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildVoiceStates

	return &Bot{session: session, guildID: guildID}, nil
}

// Session returns the underlying session; it satisfies Responder.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

// Run connects, declares the registry's commands and serves interactions until ctx is done.
func (b *Bot) Run(ctx context.Context, registry *commands.Registry) error {
	handler := NewHandler(registry, b.session, StateVoiceChecker(b.session.State))
	remove := b.session.AddHandler(func(_ *discordgo.Session, i *discordgo.InteractionCreate) {
		handler.Handle(ctx, i)
	})
	defer remove()

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to connect to discord: %w", err)
	}
	defer func() {
		if err := b.session.Close(); err != nil {
			logger.Warn("Failed to close discord session", "error", err)
		}
	}()

	defs := ApplicationCommands(registry.GetAll())
	registered, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.guildID, defs)
	if err != nil {
		return fmt.Errorf("failed to register slash commands: %w", err)
	}
	logger.Info("Discord bot ready", "user", b.session.State.User.Username, "commands", len(registered), "guild", b.guildID)

	<-ctx.Done()
	logger.Info("Shutting down discord bot")
	return nil
}
