// Package defaults provides centralized configuration constants for glossa.
//
// This package defines timeout values and other configuration defaults used
// across the codebase. Centralizing these values ensures consistency and
// makes tuning easier.
//
// # Usage
//
// Import and use constants directly:
//
//	import "github.com/glossalab/glossa/pkg/defaults"
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CLICommandTimeout)
//	defer cancel()
package defaults
