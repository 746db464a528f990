package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/glizzus/cronexpand/internal/config"
	"github.com/glizzus/cronexpand/internal/expression"
	"github.com/glizzus/cronexpand/internal/schedule"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

func newApp(cfg *config.CLIConfig, out io.Writer) *cli.App {
	return &cli.App{
		Name:      "cronexpand",
		Usage:     "Expand a cron expression into the values each field matches",
		ArgsUsage: `"<minute> <hour> <day of month> <month> <day of week> <command>"`,
		Writer:    out,

		// Only the report goes to Writer; usage errors surface as errors.
		HideHelpCommand: true,

		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("incorrect usage: %w", err)
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Also require the schedule to be accepted by a standard cron parser",
				Value: cfg.Strict,
			},
			&cli.IntFlag{
				Name:  "label-width",
				Usage: "Column at which field values start",
				Value: cfg.LabelWidth,
			},
		},
		Action: func(c *cli.Context) error {
			switch {
			case c.NArg() == 0:
				return &expression.ParsingError{Reason: expression.ReasonInsufficientParameters}
			case c.NArg() > 1:
				return fmt.Errorf("expected the expression as a single quoted argument, got %d arguments", c.NArg())
			}

			width := c.Int("label-width")
			if width < 0 {
				return fmt.Errorf("label width must not be negative, got %d", width)
			}

			line := c.Args().First()
			slog.Debug("Describing expression", "expression", line)

			parsed, err := expression.Parse(line)
			if err != nil {
				return err
			}

			if c.Bool("strict") {
				if err := schedule.ValidateCron(parsed.Schedule()); err != nil {
					return fmt.Errorf("strict check failed: %w", err)
				}
			}

			if _, err := fmt.Fprintln(c.App.Writer, parsed.Report(width)); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			slog.Debug("Described expression", "schedule", parsed.Schedule(), "command", parsed.Command)
			return nil
		},
	}
}

// run executes the CLI and returns the process exit code. Every log line
// of the invocation, including the failure, carries the same runID.
func run(args []string, out io.Writer) int {
	slog.SetDefault(slog.Default().With("runID", uuid.NewString()))

	if err := runApp(args, out); err != nil {
		slog.Error("Failed to expand cron expression", "error", err)
		return 1
	}
	return 0
}

func runApp(args []string, out io.Writer) error {
	envErr := config.LoadEnv()
	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", envErr)
	}

	cfg, err := config.NewCLIConfigFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	slog.SetLogLoggerLevel(level)

	if envErr != nil {
		slog.Debug("No .env file found, continuing without it")
	}

	return newApp(cfg, out).Run(args)
}

func main() {
	os.Exit(run(os.Args, os.Stdout))
}
