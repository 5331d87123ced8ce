// Package discord exposes moodplay commands as Discord slash commands.
// It declares the commands, answers autocomplete requests, enforces voice channel
// membership, and reports command outcomes back to the user.
package discord

import (
	"github.com/bwmarrin/discordgo"

	"moodplay/pkg/moodtypes"
)

// ApplicationCommands converts command declarations into Discord slash command definitions.
func ApplicationCommands(cmds []moodtypes.Command) []*discordgo.ApplicationCommand {
	defs := make([]*discordgo.ApplicationCommand, 0, len(cmds))
	for _, cmd := range cmds {
		defs = append(defs, ApplicationCommand(cmd))
	}
	return defs
}

// ApplicationCommand converts a single command declaration.
func ApplicationCommand(cmd moodtypes.Command) *discordgo.ApplicationCommand {
	def := &discordgo.ApplicationCommand{
		Name:        cmd.Name(),
		Description: cmd.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
	for _, spec := range cmd.Options() {
		def.Options = append(def.Options, applicationOption(spec))
	}
	return def
}

func applicationOption(spec moodtypes.OptionSpec) *discordgo.ApplicationCommandOption {
	opt := &discordgo.ApplicationCommandOption{
		Name:         spec.Name,
		Description:  spec.Description,
		Required:     spec.Required,
		Autocomplete: spec.Autocomplete,
	}

	switch spec.Type {
	case moodtypes.OptionInteger:
		opt.Type = discordgo.ApplicationCommandOptionInteger
		if spec.MinValue != 0 {
			minValue := float64(spec.MinValue)
			opt.MinValue = &minValue
		}
		if spec.MaxValue != 0 {
			opt.MaxValue = float64(spec.MaxValue)
		}
	case moodtypes.OptionBoolean:
		opt.Type = discordgo.ApplicationCommandOptionBoolean
	default:
		opt.Type = discordgo.ApplicationCommandOptionString
	}
	return opt
}

// Choices converts autocomplete suggestions, keeping at most limit of them.
func Choices(choices []moodtypes.Choice, limit int) []*discordgo.ApplicationCommandOptionChoice {
	if len(choices) > limit {
		choices = choices[:limit]
	}
	out := make([]*discordgo.ApplicationCommandOptionChoice, len(choices))
	for i, c := range choices {
		out[i] = &discordgo.ApplicationCommandOptionChoice{Name: c.Name, Value: c.Value}
	}
	return out
}
