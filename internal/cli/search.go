package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/NikitaCOEUR/wsfind/internal/alfred"
	"github.com/NikitaCOEUR/wsfind/internal/config"
	"github.com/NikitaCOEUR/wsfind/internal/derrors"
	"github.com/NikitaCOEUR/wsfind/internal/logger"
	"github.com/NikitaCOEUR/wsfind/internal/render"
	"github.com/NikitaCOEUR/wsfind/internal/suggest"
	"github.com/NikitaCOEUR/wsfind/internal/trace"
)

// SearchParams contains parameters for the Search command
type SearchParams struct {
	Folder     string
	Query      string
	ConfigPath string
	// LogLevel and Format override the config file when non-empty
	LogLevel string
	Format   string
	Stdout   io.Writer
	Stderr   io.Writer
}

// Search ranks the workspaces under Folder against Query and writes the result
func Search(ctx context.Context, params SearchParams) error {
	defer trace.Region(ctx, "cli.Search")()

	stdout, stderr := params.Stdout, params.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	if err := checkFolder(params.Folder); err != nil {
		return err
	}

	var (
		cfg     *config.Config
		cfgPath string
		err     error
	)
	trace.WithRegion(ctx, "config.Resolve", func() {
		cfg, cfgPath, err = loadConfig(params)
	})
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel, stderr)
	log.Debug().
		Str("config", cfgPath).
		Str("pattern", cfg.Pattern).
		Strs("exclude", cfg.Exclude).
		Str("format", cfg.Format).
		Msg("Configuration loaded")

	engine, err := suggest.New(suggest.Options{
		Pattern:        cfg.Pattern,
		Exclude:        cfg.Exclude,
		SkipUnreadable: cfg.SkipUnreadable,
		Logger:         log,
	})
	if err != nil {
		return err
	}

	if cfg.Format == config.FormatText {
		var items []alfred.Item
		trace.WithRegion(ctx, "engine.Suggest", func() {
			items, err = engine.Suggest(params.Query, params.Folder)
		})
		if err != nil {
			return err
		}
		return render.Text(stdout, params.Query, items, cfg.TextTemplate)
	}

	var out string
	trace.WithRegion(ctx, "engine.Generate", func() {
		out, err = engine.Generate(params.Query, params.Folder)
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(stdout, out)
	return err
}

// checkFolder fails with an InvalidRootError when folder does not exist
func checkFolder(folder string) error {
	_, err := os.Stat(folder)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return derrors.NewInvalidRootError(folder)
	default:
		return fmt.Errorf("failed to check folder %s: %w", folder, err)
	}
}

// loadConfig resolves the config file, applies flag overrides and checks the result
func loadConfig(params SearchParams) (*config.Config, string, error) {
	cfg, path, err := config.New().Resolve(params.ConfigPath)
	if err != nil {
		return nil, path, err
	}

	if params.LogLevel != "" {
		cfg.LogLevel = params.LogLevel
	}
	if params.Format != "" {
		cfg.Format = params.Format
	}

	if result := cfg.Check(); !result.Valid {
		first := result.Errors[0]
		return nil, path, derrors.NewValidationError(first.Field, first.Message, nil)
	}

	return cfg, path, nil
}
