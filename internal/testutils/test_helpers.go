package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"moodplay/pkg/moodtypes"
)

// TestDataGenerator provides common test data
type TestDataGenerator struct{}

// NewTestDataGenerator creates a new test data generator
func NewTestDataGenerator() *TestDataGenerator {
	return &TestDataGenerator{}
}

// SmallPresets returns a short preset table with mixed-case names.
func (g *TestDataGenerator) SmallPresets() []moodtypes.MoodPreset {
	return []moodtypes.MoodPreset{
		{Name: "chill", Query: "lofi chill beats to relax"},
		{Name: "Sunny", Query: "sunny day music"},
		{Name: "sad", Query: "sad emotional music"},
		{Name: "sleep", Query: "sleep relaxing ambient music"},
	}
}

// ManyPresets returns count presets named mood00, mood01, ...
func (g *TestDataGenerator) ManyPresets(count int) []moodtypes.MoodPreset {
	presets := make([]moodtypes.MoodPreset, count)
	for i := range presets {
		name := "mood" + twoDigits(i)
		presets[i] = moodtypes.MoodPreset{Name: name, Query: name + " music"}
	}
	return presets
}

func twoDigits(i int) string {
	return string([]byte{byte('0' + (i/10)%10), byte('0' + i%10)})
}

// FileHelpers provides file system utilities for tests
type FileHelpers struct{}

// NewFileHelpers creates new file helpers
func NewFileHelpers() *FileHelpers {
	return &FileHelpers{}
}

// CreateTempFile creates a temporary file with content
func (f *FileHelpers) CreateTempFile(t *testing.T, filename, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), filename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
