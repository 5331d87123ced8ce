package moods

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"moodplay/internal/data/embedded"
	"moodplay/internal/logger"
	"moodplay/pkg/moodtypes"
)

// ParsePresets decodes a YAML preset table, preserving the order of entries.
func ParsePresets(data []byte) ([]moodtypes.MoodPreset, error) {
	var file moodtypes.PresetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse preset file: %w", err)
	}
	return file.Presets, nil
}

// Default builds the registry from the preset table compiled into the binary.
func Default(opts ...Option) (*Registry, error) {
	presets, err := ParsePresets(embedded.MoodPresetData)
	if err != nil {
		return nil, fmt.Errorf("embedded presets: %w", err)
	}
	return NewRegistry(presets, opts...)
}

// Load builds the registry from the preset file at path, or from the embedded
// table when path is empty.
func Load(path string, opts ...Option) (*Registry, error) {
	if path == "" {
		return Default(opts...)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	presets, err := ParsePresets(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	registry, err := NewRegistry(presets, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("Loaded mood presets", "file", path, "count", registry.Len())
	return registry, nil
}
