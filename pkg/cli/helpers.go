package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/glossalab/glossa/pkg/interpreter"
	"github.com/glossalab/glossa/pkg/serializers"
)

var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   "json",
		Usage:   "Output format (json, yaml, table)",
	}
)

// parseOutputFormat resolves the --format flag into a serializer format.
func parseOutputFormat(cmd *cli.Command) (serializers.Format, error) {
	f := serializers.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

// parseOperationOptions converts repeated key=value pairs into operation
// options. Values stay strings; operations coerce them as needed.
func parseOperationOptions(pairs []string) (interpreter.Options, error) {
	opts := interpreter.Options{}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid option %q (format: key=value)", pair)
		}
		opts[key] = value
	}
	return opts, nil
}

// resolveInput returns the content to process, from --input or --file.
func resolveInput(cmd *cli.Command) (string, error) {
	input := cmd.String("input")
	file := cmd.String("file")

	switch {
	case input != "" && file != "":
		return "", fmt.Errorf("--input and --file are mutually exclusive")
	case input != "":
		return input, nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read input file %q: %w", file, err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("no input provided, use --input or --file")
	}
}
