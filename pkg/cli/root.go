package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/glossalab/glossa/pkg/logging"
)

const (
	name           = "glossa"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Content interpretation toolkit",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Description: `Interpret text, code, and creative content with registered operations,
analyze content characteristics, and serve the same capabilities over HTTP.

Results can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			interpretCmd(),
			analyzeCmd(),
			operationsCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the CLI. It is called by main.main() and handles
// SIGINT/SIGTERM for graceful shutdown of long-running commands.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
