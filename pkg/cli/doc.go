// Package cli implements the glossa command-line interface.
//
// # Commands
//
// interpret - Apply a registered operation to content:
//
//	glossa interpret --type text --operation summarize --input "..."
//	glossa interpret --type code --operation explain --file main.py --format yaml
//	glossa interpret --type text --operation transform --opt style=formal --input "..."
//
// analyze - Report content characteristics:
//
//	glossa analyze --input "def main(): pass"
//	glossa analyze --file notes.txt --format table
//
// operations - List available operations per content type:
//
//	glossa operations --format table
//
// serve - Start the HTTP API server:
//
//	glossa serve --port 8080
//
// # Global Flags
//
//	--log-level    Logging verbosity: debug, info, warn, error (default: info)
//
// # Output Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: json, yaml, table (default: json)
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity
//	PORT       HTTP server port for serve (default: 8080)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages: pkg/interpreter for operations and analysis, pkg/server for the
// HTTP chassis, and pkg/serializers for output formatting.
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/glossalab/glossa/pkg/cli.version=1.0.0'"
package cli
