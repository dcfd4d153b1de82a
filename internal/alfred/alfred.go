// Package alfred defines the script filter document consumed by the launcher.
package alfred

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/invopop/jsonschema"
)

// Variables carries per-item metadata handed back to the launcher
type Variables struct {
	Confidence int `json:"confidence" jsonschema:"minimum=0,maximum=100,description=Partial similarity score"`
}

// Item is a single suggestion row.
// Field order is part of the output contract.
type Item struct {
	Title     string     `json:"title"`
	Arg       *string    `json:"arg" jsonschema:"nullable"`
	Subtitle  string     `json:"subtitle"`
	Valid     bool       `json:"valid"`
	Variables *Variables `json:"variables" jsonschema:"nullable"`
}

// Response is the top-level document
type Response struct {
	Items []Item `json:"items" jsonschema:"minItems=1"`
}

// NewMatch builds a suggestion for a matched workspace
func NewMatch(title, subtitle, arg string, confidence int) Item {
	return Item{
		Title:     title,
		Arg:       &arg,
		Subtitle:  subtitle,
		Valid:     true,
		Variables: &Variables{Confidence: confidence},
	}
}

// NoResults builds the placeholder shown when nothing matched
func NoResults(query string) Item {
	return Item{
		Title: fmt.Sprintf("No results found for \"%s\"", query),
		Valid: true,
	}
}

// Confidence returns the item's score, if it has one
func (i Item) Confidence() (int, bool) {
	if i.Variables == nil {
		return 0, false
	}
	return i.Variables.Confidence, true
}

// IsPlaceholder reports whether the item is the no-results row
func (i Item) IsPlaceholder() bool {
	return i.Arg == nil && i.Variables == nil
}

// Encode writes resp as a single JSON line
func Encode(w io.Writer, resp Response) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}

// Marshal returns resp as a JSON string without a trailing newline
func Marshal(resp Response) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, resp); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Schema returns the JSON Schema of Response
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	s := r.Reflect(&Response{})
	s.Title = "wsfind script filter response"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
