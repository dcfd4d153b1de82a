// Package main is the entry point for the wsfind CLI application.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	wscli "github.com/NikitaCOEUR/wsfind/internal/cli"
	"github.com/NikitaCOEUR/wsfind/internal/derrors"
	"github.com/NikitaCOEUR/wsfind/internal/trace"
	"github.com/NikitaCOEUR/wsfind/pkg/version"
	"github.com/urfave/cli/v3"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit status
func run(args []string, stdout, stderr io.Writer) int {
	defer trace.Init(stderr)()

	app := newApp(stdout, stderr)

	if err := app.Run(context.Background(), args); err != nil {
		var rootErr *derrors.InvalidRootError
		if errors.As(err, &rootErr) {
			_, _ = fmt.Fprintln(stderr, rootErr.Error())
		} else {
			_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "wsfind",
		Usage:     "Fuzzy-find VS Code workspace files and print Alfred script filter JSON",
		Version:   version.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "folder",
				Usage: "Root folder to search for workspace files",
			},
			&cli.StringFlag{
				Name:  "query",
				Usage: "Text to match against workspace paths",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "Output format: alfred or text (overrides config)",
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Config file path (defaults to the user config directory)",
				Sources: cli.EnvVars("WSFIND_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error), overrides config",
				Sources: cli.EnvVars("WSFIND_LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, name := range []string{"folder", "query"} {
				if !cmd.IsSet(name) {
					return derrors.NewValidationError(name, fmt.Sprintf("the following arguments are required: --%s", name), nil)
				}
			}

			return wscli.Search(ctx, wscli.SearchParams{
				Folder:     cmd.String("folder"),
				Query:      cmd.String("query"),
				ConfigPath: cmd.String("config"),
				LogLevel:   cmd.String("log-level"),
				Format:     cmd.String("format"),
				Stdout:     stdout,
				Stderr:     stderr,
			})
		},
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "Validate a wsfind configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := ""
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return wscli.Validate(configPath, stdout)
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for the config file or the output items",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
					&cli.BoolFlag{
						Name:  "items",
						Usage: "Print the schema of the Alfred items document instead",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return wscli.Schema(wscli.SchemaParams{
						OutputPath: outputPath,
						Items:      cmd.Bool("items"),
						Stdout:     stdout,
					})
				},
			},
		},
	}
}
