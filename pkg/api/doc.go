// Package api provides the HTTP API layer for the content interpretation
// service.
//
// This package acts as a thin wrapper around the reusable pkg/server package,
// configuring it with application-specific routes and handlers.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "log"
//	    "github.com/glossalab/glossa/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application endpoints (with rate limiting):
//   - POST /interpret  - Interpret content with a registered operation
//   - GET /operations  - List available operations per content type
//   - POST /analyze    - Analyze content characteristics
//
// System endpoints:
//   - GET /health  - Health check (liveness probe)
//   - GET /ready   - Readiness check
//   - GET /metrics - Prometheus metrics
//
// # Configuration
//
// The server is configured via environment variables:
//   - PORT: HTTP server port (default: 8080)
//
// Version information is set at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/glossalab/glossa/pkg/api.version=1.0.0'"
package api
