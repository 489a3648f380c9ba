package main

import (
	"encoding/json"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"schema-mapper/mapper"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		schemaPath string
		dump       bool
		defaults   bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a schema declaration",
		Long: `Compile the schema and print it in declaration syntax together with the
number of fields an empty source would report.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := mapper.LoadFile(schemaPath, mapper.WithLogger(a.logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			fmt.Fprintln(out, schema.String())
			fmt.Fprintf(out, "fields: %d, leaves: %d\n", len(schema.Root().Fields()), schema.Root().Leaves())

			if defaults {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")

				err := enc.Encode(schema.Defaults())
				if err != nil {
					return fmt.Errorf("writing defaults: %w", err)
				}
			}

			if dump {
				cfg := spew.ConfigState{
					Indent:                  "  ",
					DisableMethods:          true,
					DisablePointerAddresses: true,
					DisableCapacities:       true,
				}
				cfg.Fdump(out, schema.Root())
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema declaration file (YAML or JSON)")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the compiled node tree")
	cmd.Flags().BoolVar(&defaults, "defaults", false, "print the all-defaults result as JSON")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}
