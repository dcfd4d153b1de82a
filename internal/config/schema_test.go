package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchemaJSON(t *testing.T) {
	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(GetSchemaJSON()), &schema))

	props, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"log_level", "pattern", "exclude", "skip_unreadable", "format", "text_template"} {
		assert.Contains(t, props, key)
	}
}

func TestValidateWithSchema_DefaultsAreValid(t *testing.T) {
	result, err := ValidateWithSchema("defaults.yml", defaultsYAML)
	require.NoError(t, err)
	assert.True(t, result.Valid, "%v", result.Errors)
}

func TestValidateWithSchema(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		valid   bool
		field   string
	}{
		{
			name:    "valid yaml",
			path:    "config.yml",
			content: "format: text\nexclude: [node_modules]\n",
			valid:   true,
		},
		{
			name:    "empty yaml",
			path:    "config.yaml",
			content: "",
			valid:   true,
		},
		{
			name:    "valid toml",
			path:    "config.toml",
			content: "skip_unreadable = true\nexclude = [\"vendor\"]\n",
			valid:   true,
		},
		{
			name:    "valid json",
			path:    "config.json",
			content: `{"pattern": "*.code-workspace"}`,
			valid:   true,
		},
		{
			name:    "unknown key",
			path:    "config.yml",
			content: "threshold: 70\n",
			valid:   false,
		},
		{
			name:    "bad format enum",
			path:    "config.json",
			content: `{"format": "xml"}`,
			valid:   false,
			field:   "format",
		},
		{
			name:    "wrong type",
			path:    "config.toml",
			content: "skip_unreadable = \"yes\"\n",
			valid:   false,
			field:   "skip_unreadable",
		},
		{
			name:    "yaml syntax",
			path:    "config.yml",
			content: "exclude: [oops\n",
			valid:   false,
			field:   "syntax",
		},
		{
			name:    "json syntax",
			path:    "config.json",
			content: `{"format":`,
			valid:   false,
			field:   "syntax",
		},
		{
			name:    "toml syntax",
			path:    "config.toml",
			content: "format = \n",
			valid:   false,
			field:   "syntax",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateWithSchema(tt.path, []byte(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid, "%v", result.Errors)
			if tt.field != "" {
				require.NotEmpty(t, result.Errors)
				assert.Equal(t, tt.field, result.Errors[0].Field)
			}
		})
	}
}

func TestValidateWithSchema_UnsupportedFormat(t *testing.T) {
	_, err := ValidateWithSchema("config.ini", []byte("a=b"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}
