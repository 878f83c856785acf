package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	type testCase struct {
		Name   string
		Mutate func(*Config)
		Valid  bool
	}

	testCases := []testCase{
		{Name: "complete config", Mutate: func(c *Config) {}, Valid: true},
		{Name: "missing input", Mutate: func(c *Config) { c.InputDir = "" }, Valid: false},
		{Name: "missing output", Mutate: func(c *Config) { c.OutputDir = "" }, Valid: false},
		{Name: "empty addon name", Mutate: func(c *Config) { c.AddonName = "" }, Valid: false},
		{Name: "unknown logging level", Mutate: func(c *Config) { c.LoggingLevel = "verbose" }, Valid: false},
		{Name: "uppercase logging level", Mutate: func(c *Config) { c.LoggingLevel = "DEBUG" }, Valid: true},
		{Name: "compiler path is optional", Mutate: func(c *Config) { c.CompilerPath = "" }, Valid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			conf := Default()
			conf.InputDir = "in"
			conf.OutputDir = "out"
			tc.Mutate(&conf)

			err := conf.Validate()
			if tc.Valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateNormalizesLoggingLevel(t *testing.T) {
	conf := Default()
	conf.InputDir = "in"
	conf.OutputDir = "out"
	conf.LoggingLevel = "WARN"

	assert.NoError(t, conf.Validate())
	assert.Equal(t, "warn", conf.LoggingLevel)
}

func TestAddonLayoutPaths(t *testing.T) {
	conf := Default()
	conf.OutputDir = "alyx_output"

	assert.Equal(t, filepath.Join("alyx_output", DefaultAddonName), conf.AddonDir())
	assert.Equal(t, filepath.Join("alyx_output", DefaultAddonName, "maps"), conf.MapsDir())
	assert.Equal(t, filepath.Join("alyx_output", DefaultAddonName, "materials"), conf.MaterialsDir())
}
