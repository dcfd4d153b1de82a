package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "text format", mutate: func(c *Config) { c.Format = FormatText }},
		{name: "custom glob", mutate: func(c *Config) { c.Pattern = "*.sublime-[pw]*" }},
		{name: "unknown log level", mutate: func(c *Config) { c.LogLevel = "loud" }, field: "log_level"},
		{name: "empty pattern", mutate: func(c *Config) { c.Pattern = " " }, field: "pattern"},
		{name: "pattern with separator", mutate: func(c *Config) { c.Pattern = "ws/*.code-workspace" }, field: "pattern"},
		{name: "malformed glob", mutate: func(c *Config) { c.Pattern = "[*.code-workspace" }, field: "pattern"},
		{name: "empty exclude", mutate: func(c *Config) { c.Exclude = []string{"node_modules", ""} }, field: "exclude/1"},
		{name: "exclude path", mutate: func(c *Config) { c.Exclude = []string{"a/b"} }, field: "exclude/0"},
		{name: "unknown format", mutate: func(c *Config) { c.Format = "xml" }, field: "format"},
		{name: "empty template", mutate: func(c *Config) { c.TextTemplate = "" }, field: "text_template"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New().Defaults()
			require.NoError(t, err)
			tt.mutate(cfg)

			result := cfg.Check()
			if tt.field == "" {
				assert.True(t, result.Valid, "%v", result.Errors)
				assert.Empty(t, result.Errors)
				return
			}

			assert.False(t, result.Valid)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, tt.field, result.Errors[0].Field)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.yml", "exclude: [node_modules]\nformat: text\n")

		result, err := Validate(path)
		require.NoError(t, err)
		assert.True(t, result.Valid, "%v", result.Errors)
	})

	t.Run("semantic error", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.yml", "pattern: \"[bad\"\n")

		result, err := Validate(path)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, "pattern", result.Errors[0].Field)
	})

	t.Run("syntax error", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "config.json", "{")

		result, err := Validate(path)
		require.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, "syntax", result.Errors[0].Field)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Validate(filepath.Join(t.TempDir(), "config.yml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config file not found")
	})
}

func TestValidationResult_Merge(t *testing.T) {
	r := &ValidationResult{Valid: true}
	r.Merge(nil)
	assert.True(t, r.Valid)

	r.Merge(&ValidationResult{Valid: false, Errors: []ValidationError{{Field: "format", Message: "bad"}}})
	assert.False(t, r.Valid)
	assert.Len(t, r.Errors, 1)
}
