// Package moodtypes defines the data structures and interfaces shared across moodplay.
// It contains the mood preset model, the playback request handed to queue services,
// the command contracts implemented by orchestrators, and the error taxonomy.
package moodtypes

// MoodPreset associates a short mood name with the search query used to find music for it.
type MoodPreset struct {
	Name  string `yaml:"name" json:"name"`
	Query string `yaml:"query" json:"query"`
}

// PresetFile is the on-disk layout of a preset table. Presets keep the order they appear in.
type PresetFile struct {
	Presets []MoodPreset `yaml:"presets"`
}
