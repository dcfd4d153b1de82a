package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/wsfind/internal/config"
	"github.com/NikitaCOEUR/wsfind/internal/render"
)

// Validate validates a wsfind configuration file, printing findings to out
func Validate(configPath string, out io.Writer) error {
	if out == nil {
		out = os.Stdout
	}

	// If no path provided, look for the user config file
	if configPath == "" {
		configPath = config.FindUserConfig()
		if configPath == "" {
			dir, _ := config.GetConfigDir()
			return fmt.Errorf("no config file found in %s", dir)
		}
	}

	_, _ = fmt.Fprintf(out, "Validating: %s\n\n", configPath)

	content, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// First validate with JSON Schema
	result, err := config.ValidateWithSchema(configPath, content)
	if err != nil {
		return err
	}

	// Schema-valid files get the value checks as well
	if result.Valid {
		customResult, err := config.Validate(configPath)
		if err != nil {
			return err
		}
		result.Merge(customResult)
	}

	if result.Valid {
		if cfg, err := config.New().Load(configPath); err == nil {
			if _, err := render.ParseTemplate(cfg.TextTemplate); err != nil {
				result.Merge(&config.ValidationResult{Errors: []config.ValidationError{{
					Field:   "text_template",
					Message: fmt.Sprintf("Template does not parse: %v", err),
				}}})
			}
		}
	}

	if result.Valid {
		_, _ = fmt.Fprintln(out, "✅ Configuration is valid!")
		return nil
	}

	_, _ = fmt.Fprintln(out, "❌ Configuration has errors:")
	for i, validationErr := range result.Errors {
		_, _ = fmt.Fprintf(out, "%d. [%s] %s\n", i+1, validationErr.Field, validationErr.Message)
	}

	_, _ = fmt.Fprintf(out, "\nFound %d error(s)\n", len(result.Errors))

	return fmt.Errorf("validation failed")
}
