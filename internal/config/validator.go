package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of config validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

func (r *ValidationResult) addError(field, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Merge folds other's findings into r
func (r *ValidationResult) Merge(other *ValidationResult) {
	if other == nil {
		return
	}
	for _, e := range other.Errors {
		r.addError(e.Field, e.Message)
	}
}

// Validate loads a config file and checks its values
func Validate(path string) (*ValidationResult, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg, err := New().Load(path)
	if err != nil {
		result := &ValidationResult{Valid: true, Errors: []ValidationError{}}
		result.addError("syntax", fmt.Sprintf("Failed to parse config: %v", err))
		return result, nil
	}
	return cfg.Check(), nil
}

// Check validates the values of an already loaded configuration
func (c *Config) Check() *ValidationResult {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		result.addError("log_level", fmt.Sprintf("Unknown log level %q", c.LogLevel))
	}

	switch {
	case strings.TrimSpace(c.Pattern) == "":
		result.addError("pattern", "Pattern is empty")
	case strings.ContainsRune(c.Pattern, '/') || strings.ContainsRune(c.Pattern, filepath.Separator):
		result.addError("pattern", "Pattern is matched against base names and must not contain a path separator")
	default:
		if _, err := filepath.Match(c.Pattern, ""); err != nil {
			result.addError("pattern", fmt.Sprintf("Invalid glob %q: %v", c.Pattern, err))
		}
	}

	for i, name := range c.Exclude {
		field := fmt.Sprintf("exclude/%d", i)
		if strings.TrimSpace(name) == "" {
			result.addError(field, "Excluded directory name is empty")
			continue
		}
		if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) {
			result.addError(field, fmt.Sprintf("Excluded entry %q must be a directory name, not a path", name))
		}
	}

	if c.Format != FormatAlfred && c.Format != FormatText {
		result.addError("format", fmt.Sprintf("Unknown format %q (expected %q or %q)", c.Format, FormatAlfred, FormatText))
	}

	if strings.TrimSpace(c.TextTemplate) == "" {
		result.addError("text_template", "Text template is empty")
	}

	return result
}
