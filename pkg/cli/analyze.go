package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/glossalab/glossa/pkg/interpreter"
	"github.com/glossalab/glossa/pkg/serializers"
)

func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "analyze",
		EnableShellCompletion: true,
		Usage:                 "Analyze content characteristics",
		Description: `Analyze the given content and report its characteristics:
  - Length in characters
  - Word and sentence counts
  - Complexity classification (simple, moderate, complex)
  - Likely content type (text, code, creative)

The analysis can be output in JSON, YAML, or table format.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Content to analyze",
			},
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Path to a file with content to analyze",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			input, err := resolveInput(cmd)
			if err != nil {
				return err
			}

			ser := serializers.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(interpreter.AnalyzeResponse{
				Success:  true,
				Analysis: interpreter.Analyze(input),
			})
		},
	}
}
