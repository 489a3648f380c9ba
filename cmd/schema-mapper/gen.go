package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"schema-mapper/internal/gen"
	"schema-mapper/mapper"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		schemaPath string
		outPath    string
		noComments bool
	)

	config := gen.DefaultGeneratorConfig()

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Go struct types mirroring a schema",
		Long: `Generate Go struct types whose json tags match the schema field names, so a
mapped result can be decoded straight into them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := mapper.LoadFile(schemaPath, mapper.WithLogger(a.logger))
			if err != nil {
				return err
			}

			config.GenerateComments = !noComments

			src, err := gen.NewGenerator(config).Generate(schema)
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}

			err = gen.WriteFile(outPath, src)
			if err != nil {
				return err
			}

			a.logger.Info("generated types", zap.String("out", outPath), zap.String("type", config.TypeName))

			return nil
		},
	}

	cmd.Flags().StringVarP(&schemaPath, "schema", "s", "", "schema declaration file (YAML or JSON)")
	cmd.Flags().StringVarP(&config.PackageName, "package", "p", config.PackageName, "package name of the generated file")
	cmd.Flags().StringVarP(&config.TypeName, "type", "t", config.TypeName, "name of the root type")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&noComments, "no-comments", false, "omit doc comments on generated types")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}
