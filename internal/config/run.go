// Package config loads the JSON run configuration for the deck build
// tooling: grid dimensions, unit system, and where to find records and
// write snapshots.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RunConfig describes one model build. Optional fields use pointers so a
// partial config file falls back to defaults through the Get* accessors.
type RunConfig struct {
	// Grid dimensions (required)
	NX int `json:"nx"`
	NY int `json:"ny"`
	NZ int `json:"nz"`

	// Deck unit system: "METRIC" (default) or "FIELD"
	UnitSystem *string `json:"unit_system,omitempty"`

	// DeckPath points at the JSON record file; the -deck flag overrides it.
	DeckPath *string `json:"deck_path,omitempty"`

	// SnapshotName labels a saved snapshot; defaults to the deck file name.
	SnapshotName *string `json:"snapshot_name,omitempty"`
}

// maxConfigFileSize bounds config files (1MB).
const maxConfigFileSize = 1 * 1024 * 1024

// Load reads and validates a RunConfig from a JSON file.
func Load(path string) (*RunConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &RunConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *RunConfig) Validate() error {
	if c.NX <= 0 || c.NY <= 0 || c.NZ <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%dx%d", c.NX, c.NY, c.NZ)
	}
	if c.UnitSystem != nil {
		switch *c.UnitSystem {
		case "METRIC", "FIELD":
		default:
			return fmt.Errorf("unit_system must be METRIC or FIELD, got %q", *c.UnitSystem)
		}
	}
	return nil
}

// GetUnitSystem returns the configured unit system name or the METRIC
// default.
func (c *RunConfig) GetUnitSystem() string {
	if c.UnitSystem == nil {
		return "METRIC"
	}
	return *c.UnitSystem
}

// GetDeckPath returns the configured deck path, or empty when unset.
func (c *RunConfig) GetDeckPath() string {
	if c.DeckPath == nil {
		return ""
	}
	return *c.DeckPath
}

// GetSnapshotName returns the snapshot label, falling back to the deck file
// base name.
func (c *RunConfig) GetSnapshotName() string {
	if c.SnapshotName != nil && *c.SnapshotName != "" {
		return *c.SnapshotName
	}
	if p := c.GetDeckPath(); p != "" {
		return filepath.Base(p)
	}
	return "unnamed"
}
