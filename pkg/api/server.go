package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/glossalab/glossa/pkg/interpreter"
	"github.com/glossalab/glossa/pkg/logging"
	"github.com/glossalab/glossa/pkg/server"
)

const (
	name           = "glossad"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/glossalab/glossa/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Routes returns the interpretation API route map backed by the given
// interpreter. Exposed so the CLI can serve the same surface.
func Routes(i *interpreter.Interpreter) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/interpret":  i.HandleInterpret,
		"/operations": i.HandleOperations,
		"/analyze":    i.HandleAnalyze,
	}
}

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve() error {
	ctx := context.Background()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	i := interpreter.New()

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(Routes(i)),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
