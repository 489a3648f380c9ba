// Package main provides the CLI entrypoint for schema-mapper.
//
// schema-mapper maps untrusted JSON or YAML documents onto a declared shape:
//   - map: fill every declared field, reporting missing and mistyped ones
//   - check: validate a schema declaration and print its compiled tree
//   - gen: generate Go struct types mirroring a schema
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app carries state shared by all commands.
type app struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "schema-mapper",
		Short: "Map untrusted documents onto a declared schema",
		Long: `schema-mapper fills every field a schema declares, taking the source value
when it has the declared type and a default otherwise, and reports each
missing or mistyped field.

Schemas are YAML or JSON declarations:

  name: String
  tags: [String]
  friends:
    - id: Number`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newMapCmd(a),
		newCheckCmd(a),
		newGenCmd(a),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
