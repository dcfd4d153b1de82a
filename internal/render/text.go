// Package render formats suggestions for people reading a terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/NikitaCOEUR/wsfind/internal/alfred"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	highStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	midStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

// Row is the data a row template is executed with
type Row struct {
	Title      string
	Subtitle   string
	Arg        string
	Confidence int
}

// ParseTemplate compiles a row template with the sprig and style functions
func ParseTemplate(text string) (*template.Template, error) {
	return template.New("row").
		Funcs(sprig.TxtFuncMap()).
		Funcs(styleFuncs()).
		Option("missingkey=error").
		Parse(text)
}

func styleFuncs() template.FuncMap {
	return template.FuncMap{
		"title":  func(s string) string { return titleStyle.Render(s) },
		"subtle": func(s string) string { return subtleStyle.Render(s) },
		"warn":   func(s string) string { return warningStyle.Render(s) },
		"score":  renderScore,
	}
}

// renderScore pads the score to three columns and colors it by strength
func renderScore(confidence int) string {
	s := fmt.Sprintf("%3d", confidence)
	if confidence >= 80 {
		return highStyle.Render(s)
	}
	return midStyle.Render(s)
}

// Text writes a header and one templated line per item. The no-results
// placeholder is written as a single warning line.
func Text(w io.Writer, query string, items []alfred.Item, rowTemplate string) error {
	tmpl, err := ParseTemplate(rowTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse text template: %w", err)
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("🔎 %q", query)) + "\n")

	for _, item := range items {
		if item.IsPlaceholder() {
			b.WriteString("   " + warningStyle.Render(item.Title) + "\n")
			continue
		}

		confidence, _ := item.Confidence()
		row := Row{
			Title:      item.Title,
			Subtitle:   item.Subtitle,
			Arg:        *item.Arg,
			Confidence: confidence,
		}

		b.WriteString("   ")
		if err := tmpl.Execute(&b, row); err != nil {
			return fmt.Errorf("failed to render %s: %w", item.Subtitle, err)
		}
		b.WriteString("\n")
	}

	_, err = io.WriteString(w, b.String())
	return err
}
