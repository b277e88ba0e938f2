// Package cmd implements the id3dump command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/simonhull/id3tags"
	"github.com/simonhull/id3tags/internal/config"
	"github.com/simonhull/id3tags/internal/render"
)

var errFilesFailed = errors.New("one or more files could not be read")

// NewRootCmd builds the id3dump command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "id3dump [flags] FILE...",
		Short: "Print the ID3 tags of MP3 files",
		Long: `id3dump reads the ID3v2 tag at the start and the ID3v1 tag at the end
of each file and prints what it finds.

Examples:
  id3dump song.mp3
  id3dump --format json *.mp3
  id3dump --strict --no-trim --config id3dump.yaml album/*.mp3`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDump,
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "YAML configuration file")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")

	root.Flags().StringP("format", "f", "", "Output format (text, yaml, json)")
	root.Flags().Bool("strict", false, "Fail on frames that cannot be interpreted")
	root.Flags().Bool("no-trim", false, "Print ID3v1 fields with their padding")

	root.AddCommand(newServeCmd(), newFramesCmd(), newVersionCmd())
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFilesFailed) {
			fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		}
		stop()
		os.Exit(1)
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	renderer, err := render.New(cfg.Output.Format, cfg.Output.Trim)
	if err != nil {
		return err
	}

	opts := cfg.ExtractOptions()
	entries := make([]render.Entry, 0, len(args))
	failed := 0
	for _, path := range args {
		res, err := id3tags.ExtractContext(cmd.Context(), path, opts...)
		if err != nil {
			if ctxErr := cmd.Context().Err(); ctxErr != nil {
				return ctxErr
			}
			failed++
			logger.Warn("extraction failed", "path", path, "kind", id3tags.ErrorKind(err))
		} else {
			logger.Debug("extracted", "path", path,
				"legacy", res.Legacy != nil, "frame_based", res.FrameBased != nil)
		}
		entries = append(entries, render.Entry{Path: path, Result: res, Err: err})
	}

	if err := renderer.Render(cmd.OutOrStdout(), entries); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if failed > 0 {
		return errFilesFailed
	}
	return nil
}

// loadConfig reads --config when given and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format, _ = flags.GetString("format")
	}
	if flags.Changed("strict") {
		cfg.Parsing.StrictFrames, _ = flags.GetBool("strict")
	}
	if flags.Changed("no-trim") {
		noTrim, _ := flags.GetBool("no-trim")
		cfg.Output.Trim = !noTrim
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("addr") {
		cfg.Server.Addr, _ = flags.GetString("addr")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger writes text logs to stderr at the configured level.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	level, err := config.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}
