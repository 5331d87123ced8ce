// Package render formats the mood preset table for terminals using Glamour.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"moodplay/pkg/moodtypes"
)

// PresetMarkdown renders presets as a markdown table in registry order.
func PresetMarkdown(presets []moodtypes.MoodPreset) string {
	var b strings.Builder
	b.WriteString("# Moods\n\n")
	b.WriteString("| Mood | Search query |\n")
	b.WriteString("|------|--------------|\n")
	for _, p := range presets {
		fmt.Fprintf(&b, "| %s | %s |\n", escapeCell(p.Name), escapeCell(p.Query))
	}
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

// Markdown renders markdown for a terminal. style is a Glamour standard style name
// ("dark", "light", "notty", "ascii"); "auto" or empty detects one from the terminal.
func Markdown(markdown string, style string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("markdown content cannot be empty")
	}

	styleOpt := glamour.WithAutoStyle()
	if style != "" && style != "auto" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	renderer, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(100))
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return rendered, nil
}

// Presets renders the preset table for a terminal.
func Presets(presets []moodtypes.MoodPreset, style string) (string, error) {
	return Markdown(PresetMarkdown(presets), style)
}
