// Package meta implements the engine that picks a search strategy for a
// compiled pattern and runs it.
//
// Every pattern is evaluated by the greedy evaluator. The engine only
// decides where to try it:
//   - Anchored: start-anchored patterns are tried at offset 0 only
//   - Literal: the pattern is a set of fixed strings found by a prefilter
//   - Prefilter: candidate offsets come from a required literal prefix
//   - Scan: every character offset is tried from left to right
//
// All strategies report exactly the match the plain scan would.
package meta

import (
	"strconv"

	"github.com/coregx/minire/prefilter"
)

// Config controls engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // Always scan every offset
//	engine, err := meta.CompileWithConfig("[hH]ello", config)
type Config struct {
	// EnablePrefilter enables literal-based prefiltering.
	// When false, the Scan strategy is used for unanchored patterns.
	// Default: true
	EnablePrefilter bool

	// MaxLiterals limits the number of prefix literals extracted from
	// expanded character classes.
	// Default: 64
	MaxLiterals int

	// MaxLiteralLen limits the length of each prefix literal in bytes.
	// Default: 64
	MaxLiteralLen int

	// MaxClassExpansion is the largest character class expanded into
	// alternative literals.
	// Default: 10
	MaxClassExpansion int

	// StrictDelimiters rejects patterns ending inside '[' or '(' instead of
	// closing them implicitly.
	// Default: false
	StrictDelimiters bool

	// EnableASCIIFastPath checks the haystack once per search and, when it is
	// pure ASCII, evaluates one byte per character without UTF-8 decoding.
	// Default: true
	EnableASCIIFastPath bool

	// Tracker tunes when a prefilter producing mostly false candidates is
	// abandoned in favor of the plain scan.
	Tracker prefilter.TrackerConfig
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:     true,
		MaxLiterals:         64,
		MaxLiteralLen:       64,
		MaxClassExpansion:   10,
		StrictDelimiters:    false,
		EnableASCIIFastPath: true,
		Tracker:             prefilter.DefaultTrackerConfig(),
	}
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of range.
//
// Valid ranges (checked only when EnablePrefilter is set):
//   - MaxLiterals: 1 to 1,000
//   - MaxLiteralLen: 1 to 256
//   - MaxClassExpansion: 1 to 256
//   - Tracker.CheckInterval: at least 1
//   - Tracker.MinEfficiency: 0 to 1
func (c Config) Validate() error {
	if !c.EnablePrefilter {
		return nil
	}

	if err := checkRange("MaxLiterals", c.MaxLiterals, 1, 1_000); err != nil {
		return err
	}
	if err := checkRange("MaxLiteralLen", c.MaxLiteralLen, 1, 256); err != nil {
		return err
	}
	if err := checkRange("MaxClassExpansion", c.MaxClassExpansion, 1, 256); err != nil {
		return err
	}
	if c.Tracker.CheckInterval < 1 {
		return &ConfigError{
			Field:   "Tracker.CheckInterval",
			Message: "must be at least 1",
		}
	}
	if c.Tracker.MinEfficiency < 0 || c.Tracker.MinEfficiency > 1 {
		return &ConfigError{
			Field:   "Tracker.MinEfficiency",
			Message: "must be between 0 and 1",
		}
	}
	return nil
}

func checkRange(field string, v, lo, hi int) error {
	if v < lo || v > hi {
		return &ConfigError{
			Field:   field,
			Message: "must be between " + strconv.Itoa(lo) + " and " + strconv.Itoa(hi),
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "minire: invalid config: " + e.Field + ": " + e.Message
}
