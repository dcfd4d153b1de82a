package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/wsfind/internal/alfred"
	"github.com/NikitaCOEUR/wsfind/internal/config"
)

// SchemaParams contains parameters for the Schema command
type SchemaParams struct {
	// OutputPath writes the schema to a file instead of Stdout
	OutputPath string
	// Items selects the output document schema instead of the config schema
	Items  bool
	Stdout io.Writer
}

// Schema displays or exports a JSON Schema
func Schema(params SchemaParams) error {
	out := params.Stdout
	if out == nil {
		out = os.Stdout
	}

	schemaJSON := config.GetSchemaJSON()
	if params.Items {
		data, err := alfred.Schema()
		if err != nil {
			return err
		}
		schemaJSON = string(data)
	}

	if params.OutputPath != "" {
		if err := os.WriteFile(params.OutputPath, []byte(schemaJSON), 0644); err != nil {
			return fmt.Errorf("failed to write schema to %s: %w", params.OutputPath, err)
		}
		_, _ = fmt.Fprintf(out, "JSON Schema written to: %s\n", params.OutputPath)
		return nil
	}

	_, err := fmt.Fprintln(out, schemaJSON)
	return err
}
