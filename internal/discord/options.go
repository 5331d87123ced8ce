package discord

import (
	"github.com/bwmarrin/discordgo"
)

// Options exposes slash command options through moodtypes.Options.
type Options struct {
	byName map[string]*discordgo.ApplicationCommandInteractionDataOption
}

// NewOptions indexes the top-level options of an interaction.
func NewOptions(opts []*discordgo.ApplicationCommandInteractionDataOption) *Options {
	byName := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		if opt != nil {
			byName[opt.Name] = opt
		}
	}
	return &Options{byName: byName}
}

// String returns a string option.
func (o *Options) String(name string) (string, bool) {
	opt, ok := o.byName[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionString {
		return "", false
	}
	v, ok := opt.Value.(string)
	return v, ok
}

// Int returns an integer option. Discord delivers numbers as float64 in JSON.
func (o *Options) Int(name string) (int, bool) {
	opt, ok := o.byName[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionInteger {
		return 0, false
	}
	switch v := opt.Value.(type) {
	case float64:
		return int(v), true
	case int64:
		return int(v), true
	case int:
		return v, true
	default:
		return 0, false
	}
}

// Bool returns a boolean option.
func (o *Options) Bool(name string) (bool, bool) {
	opt, ok := o.byName[name]
	if !ok || opt.Type != discordgo.ApplicationCommandOptionBoolean {
		return false, false
	}
	v, ok := opt.Value.(bool)
	return v, ok
}

// focused returns the option the user is currently typing into.
func focused(opts []*discordgo.ApplicationCommandInteractionDataOption) (name string, value string) {
	for _, opt := range opts {
		if opt == nil || !opt.Focused {
			continue
		}
		if s, ok := opt.Value.(string); ok {
			return opt.Name, s
		}
		return opt.Name, ""
	}
	return "", ""
}
