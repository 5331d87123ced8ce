package main

import (
	"fmt"

	"github.com/spf13/viper"

	"moodplay/internal/commands"
	"moodplay/internal/commands/music"
	"moodplay/internal/config"
	"moodplay/internal/logger"
	"moodplay/internal/moods"
	"moodplay/internal/queue"
	"moodplay/pkg/moodtypes"
)

// app is the wired command set shared by every transport.
type app struct {
	moods    *moods.Registry
	commands *commands.Registry
}

func loadConfig(v *viper.Viper, file string) (*config.Config, error) {
	cfg, err := config.Load(v, file)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadMoods builds the preset registry, failing fast on an invalid or empty table.
func loadMoods(cfg *config.Config) (*moods.Registry, error) {
	registry, err := moods.Load(cfg.Moods.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load mood presets: %w", err)
	}
	return registry, nil
}

// buildEnqueuer selects the HTTP queue client, or the dry-run logger without a queue URL.
func buildEnqueuer(cfg *config.Config) (moodtypes.Enqueuer, error) {
	if cfg.Queue.URL == "" {
		logger.Warn("No queue URL configured, playback requests will only be logged")
		return queue.NewLogEnqueuer(), nil
	}
	return queue.NewHTTPEnqueuer(cfg.Queue.URL, cfg.Queue.Token, cfg.Queue.Timeout)
}

func buildApp(cfg *config.Config, enqueuer moodtypes.Enqueuer) (*app, error) {
	registry, err := loadMoods(cfg)
	if err != nil {
		return nil, err
	}

	cmds := commands.NewRegistry()
	err = music.Register(cmds, music.Dependencies{
		Resolver:        moods.NewResolver(registry),
		Filter:          moods.NewFilter(registry),
		Enqueuer:        enqueuer,
		SuggestionLimit: cfg.Autocomplete.Limit,
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Commands registered", "moods", registry.Len(), "commands", len(cmds.GetAll()))
	return &app{moods: registry, commands: cmds}, nil
}
