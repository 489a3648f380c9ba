package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"schema-mapper/diagnostic"
	"schema-mapper/mapper"
)

// Mapping modes for the map command.
const (
	modeAuto       = "auto"
	modeObject     = "object"
	modeCollection = "collection"
)

type mapOptions struct {
	schemaPath string
	mode       string
	suggest    bool
	strict     bool
	details    bool
	jobs       int
}

// mappedDocument is the JSON written for every input.
type mappedDocument struct {
	Input       string                  `json:"input"`
	Result      any                     `json:"result"`
	Errors      []string                `json:"errors"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics,omitempty"`
}

func newMapCmd(a *app) *cobra.Command {
	opts := mapOptions{}

	cmd := &cobra.Command{
		Use:   "map INPUT...",
		Short: "Map JSON or YAML documents onto a schema",
		Long: `Map every input document onto the schema and print one JSON document per
input, in argument order, holding the mapped result and its diagnostics.

Modes:
  auto        lists are mapped element-wise, anything else as one object;
              the result is always a list
  object      the input is mapped as one object
  collection  the input must be a list; anything else maps to []`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, a, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.schemaPath, "schema", "s", "", "schema declaration file (YAML or JSON)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", modeAuto, "mapping mode: auto, object or collection")
	cmd.Flags().BoolVar(&opts.suggest, "suggest", false, "suggest similar source keys for missing fields")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when any diagnostic is reported")
	cmd.Flags().BoolVar(&opts.details, "details", false, "include structured diagnostics with full paths")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 4, "number of inputs mapped concurrently")
	_ = cmd.MarkFlagRequired("schema")

	return cmd
}

func runMap(cmd *cobra.Command, a *app, opts mapOptions, inputs []string) error {
	switch opts.mode {
	case modeAuto, modeObject, modeCollection:
	default:
		return fmt.Errorf("unknown mode %q: expected auto, object or collection", opts.mode)
	}

	if opts.jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", opts.jobs)
	}

	schema, err := mapper.LoadFile(opts.schemaPath,
		mapper.WithLogger(a.logger),
		mapper.WithSuggestions(opts.suggest))
	if err != nil {
		return err
	}

	docs := make([]mappedDocument, len(inputs))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(opts.jobs)

	for i, path := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			src, err := readInput(path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			docs[i] = mapDocument(schema, opts.mode, path, src)

			a.logger.Debug("input mapped",
				zap.String("input", path),
				zap.Int("diagnostics", len(docs[i].Errors)))

			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	total := 0

	for _, doc := range docs {
		total += len(doc.Errors)
		if !opts.details {
			doc.Diagnostics = nil
		}

		err := enc.Encode(doc)
		if err != nil {
			return fmt.Errorf("writing result for %s: %w", doc.Input, err)
		}
	}

	if opts.strict && total > 0 {
		return fmt.Errorf("%d diagnostics reported", total)
	}

	return nil
}

func mapDocument(schema *mapper.Schema, mode, path string, src any) mappedDocument {
	switch mode {
	case modeObject:
		res := schema.MapFromObject(src)
		return mappedDocument{Input: path, Result: res.Result, Errors: res.Errors, Diagnostics: res.Diagnostics}
	case modeCollection:
		res := schema.MapFromCollection(src)
		return mappedDocument{Input: path, Result: res.Result, Errors: res.Errors, Diagnostics: res.Diagnostics}
	default:
		res := schema.Map(src)
		return mappedDocument{Input: path, Result: res.Result, Errors: res.Errors, Diagnostics: res.Diagnostics}
	}
}
