package cmd

import (
	"github.com/spf13/cobra"

	"github.com/simonhull/id3tags/internal/server"
)

func newServeCmd() *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Start the extraction HTTP API",
		Long: `Start an HTTP server that extracts tags from uploaded files.

Endpoints:
  GET  /api/v1/health
  POST /api/v1/extract   multipart field "file", or the file as the raw body

Examples:
  id3dump serve --addr :9000
  id3dump serve --config id3dump.yaml --log-level debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd, cfg)
			if err != nil {
				return err
			}
			return server.New(cfg, logger).Run(cmd.Context())
		},
	}

	serve.Flags().String("addr", "", "Listen address (default from config, :8080)")
	return serve
}
