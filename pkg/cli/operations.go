package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/glossalab/glossa/pkg/interpreter"
	"github.com/glossalab/glossa/pkg/serializers"
)

func operationsCmd() *cli.Command {
	reg := interpreter.NewRegistry()

	return &cli.Command{
		Name:                  "operations",
		EnableShellCompletion: true,
		Usage:                 "List available operations per content type",
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			ser := serializers.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			// Table output gets a compact one-row-per-type rendering,
			// structured formats keep the API response shape.
			if outFormat == serializers.FormatTable {
				titleCaser := cases.Title(language.English)
				rows := make(map[string]string, len(reg.ContentTypes()))
				for _, ct := range reg.ContentTypes() {
					rows[titleCaser.String(ct)] = strings.Join(reg.Operations(ct), ", ")
				}
				return ser.Serialize(rows)
			}

			return ser.Serialize(interpreter.OperationsResponse{
				Success:             true,
				AvailableOperations: reg.List(),
			})
		},
	}
}
