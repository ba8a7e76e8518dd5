package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/glossalab/glossa/pkg/interpreter"
	"github.com/glossalab/glossa/pkg/serializers"
)

func interpretCmd() *cli.Command {
	reg := interpreter.NewRegistry()

	return &cli.Command{
		Name:                  "interpret",
		EnableShellCompletion: true,
		Usage:                 "Interpret content with a registered operation",
		Description: `Apply a registered interpretation operation to the given content:
  - text: summarize, expand, transform
  - code: explain, optimize, debug
  - creative: story, poem, ideas

Operation options are passed as repeated --opt key=value flags, for example:

  glossa interpret --type text --operation transform --opt style=formal --input "hello"

The result can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "type",
				Aliases:  []string{"c"},
				Required: true,
				Usage: fmt.Sprintf("Content type (supported values: %s)",
					strings.Join(reg.ContentTypes(), ", ")),
			},
			&cli.StringFlag{
				Name:     "operation",
				Aliases:  []string{"p"},
				Required: true,
				Usage:    "Operation to apply to the content",
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Content to interpret",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to a file with content to interpret",
			},
			&cli.StringSliceFlag{
				Name:  "opt",
				Usage: "Operation option (format: key=value, can be repeated)",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			contentType := cmd.String("type")
			if !reg.HasContentType(contentType) {
				return fmt.Errorf("invalid content type %q, supported types: %s",
					contentType, strings.Join(reg.ContentTypes(), ", "))
			}

			operation := cmd.String("operation")
			fn, ok := reg.Lookup(contentType, operation)
			if !ok {
				return fmt.Errorf("invalid operation %q for %s, supported operations: %s",
					operation, contentType, strings.Join(reg.Operations(contentType), ", "))
			}

			input, err := resolveInput(cmd)
			if err != nil {
				return err
			}

			opts, err := parseOperationOptions(cmd.StringSlice("opt"))
			if err != nil {
				return err
			}

			result, err := fn(input, opts)
			if err != nil {
				return fmt.Errorf("error applying %s/%s: %w", contentType, operation, err)
			}

			ser := serializers.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(interpreter.InterpretResponse{
				Success:        true,
				ContentType:    contentType,
				Operation:      operation,
				Input:          input,
				Result:         result,
				OptionsApplied: opts,
			})
		},
	}
}
