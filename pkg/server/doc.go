// Package server provides a production-ready HTTP server chassis with
// graceful shutdown, health and readiness probes, Prometheus metrics, and a
// middleware chain covering request IDs, API versioning, panic recovery,
// rate limiting, and structured request logging.
//
// Servers are constructed with functional options:
//
//	s := server.New(
//		server.WithName("glossad"),
//		server.WithVersion(version),
//		server.WithHandler(routes),
//	)
//	if err := s.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// Run blocks until the context is cancelled or an interrupt signal is
// received, then drains in-flight requests within the configured shutdown
// timeout.
package server
