package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/glossalab/glossa/pkg/api"
	"github.com/glossalab/glossa/pkg/interpreter"
	"github.com/glossalab/glossa/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Start the content interpretation API server",
		Description: `Start an HTTP server exposing the interpretation API:
  - POST /interpret  - Interpret content with a registered operation
  - GET /operations  - List available operations per content type
  - POST /analyze    - Analyze content characteristics

The server also serves /health, /ready, and /metrics endpoints and shuts
down gracefully on SIGINT/SIGTERM.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Usage:   "HTTP server port (default: 8080)",
				Sources: cli.EnvVars("PORT"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := server.NewConfig()
			cfg.Name = name
			cfg.Version = version
			cfg.Handlers = api.Routes(interpreter.New())
			if port := cmd.Int("port"); port != 0 {
				cfg.Port = int(port)
			}

			slog.Info("starting server",
				"name", name,
				"version", version,
				"port", cfg.Port,
			)

			s := server.New(server.WithConfig(cfg))
			return s.Run(ctx)
		},
	}
}
