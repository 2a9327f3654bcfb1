package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var outputPath string

var renderCmd = &cobra.Command{
	Use:       "render {plan|program} <id>",
	Short:     "Render one report to a PDF file",
	Args:      cobra.MatchAll(cobra.ExactArgs(2), validKind),
	ValidArgs: reportKinds,
	RunE:      runRender,
}

// validKind checks the first positional argument against reportKinds.
func validKind(cmd *cobra.Command, args []string) error {
	for _, k := range reportKinds {
		if args[0] == k {
			return nil
		}
	}
	return fmt.Errorf("unknown report kind %q, want plan or program", args[0])
}

func runRender(cmd *cobra.Command, args []string) error {
	out, err := buildReport(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	path := outputPath
	if path == "" {
		path = out.Filename
	}
	if err := os.WriteFile(path, out.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	logger.Info("report written", zap.String("path", path), zap.Int("bytes", len(out.Data)))
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func init() {
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: sanitized report name)")
}
