// Package config provides converter configuration from the command
// line.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultAddonName is the addon folder created under the output base
// folder when none is configured.
const DefaultAddonName = "quakeautomatedscriptport"

// Config represents one conversion run configuration.
type Config struct {
	// InputDir is scanned recursively for .map files.
	InputDir string

	// OutputDir is the addon content base folder; the addon layout is
	// created underneath it.
	OutputDir string

	// CompilerPath locates the resourcecompiler binary. Empty means
	// generate .vmf files only, without compiling them.
	CompilerPath string

	AddonName string

	LoggingLevel string
}

// Default returns a Config with the defaults applied.
func Default() Config {
	return Config{
		AddonName:    DefaultAddonName,
		LoggingLevel: "info",
	}
}

// Validate normalizes the config and reports every problem found.
func (c *Config) Validate() error {
	c.LoggingLevel = strings.ToLower(c.LoggingLevel)

	problems := []string{}
	if c.InputDir == "" {
		problems = append(problems, "input folder is required")
	}
	if c.OutputDir == "" {
		problems = append(problems, "output folder is required")
	}
	if c.AddonName == "" {
		problems = append(problems, "addon name must not be empty")
	}
	if !validateLoggingLevel(c.LoggingLevel) {
		problems = append(problems,
			fmt.Sprintf("invalid logging level %q, expected one of: %s",
				c.LoggingLevel, AvailableLoggingLevelsString))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

// AddonDir is the addon content folder created under the output base
// folder.
func (c Config) AddonDir() string {
	return filepath.Join(c.OutputDir, c.AddonName)
}

// MapsDir holds the generated .vmf documents.
func (c Config) MapsDir() string {
	return filepath.Join(c.AddonDir(), "maps")
}

// MaterialsDir is always created next to MapsDir. No materials are
// generated into it; the addon layout requires it to exist.
func (c Config) MaterialsDir() string {
	return filepath.Join(c.AddonDir(), "materials")
}

var availableLoggingLevels = []string{"panic", "fatal", "error", "warn", "info", "debug"}

// AvailableLoggingLevelsString lists the accepted logging levels for
// flag descriptions and error messages.
var AvailableLoggingLevelsString = strings.Join(availableLoggingLevels, ", ")

func validateLoggingLevel(loggingLevel string) bool {
	for _, l := range availableLoggingLevels {
		if l == loggingLevel {
			return true
		}
	}
	return false
}
