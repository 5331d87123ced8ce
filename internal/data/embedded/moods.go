// Package embedded provides access to data files compiled into the binary.
package embedded

import _ "embed"

// MoodPresetData contains the embedded default mood preset table in YAML.
//
//go:embed moods.yaml
var MoodPresetData []byte
