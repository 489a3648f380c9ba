package mapper

import (
	"go.uber.org/zap"

	"schema-mapper/diagnostic"
	"schema-mapper/internal/source"
)

// Schema is a compiled, immutable schema. It is safe for concurrent use;
// every mapping call works on its own output tree and diagnostics.
type Schema struct {
	root      *Node
	log       *zap.Logger
	suggest   bool
	threshold float64
}

// ObjectResult is the outcome of mapping a single value.
type ObjectResult struct {
	Result      map[string]any          `json:"result"`
	Errors      []string                `json:"errors"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics,omitempty"`
}

// CollectionResult is the outcome of mapping a list of values.
type CollectionResult struct {
	Result      []map[string]any        `json:"result"`
	Errors      []string                `json:"errors"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics,omitempty"`
}

// Valid returns true if the result is faithful to the source.
func (r ObjectResult) Valid() bool { return len(r.Errors) == 0 }

// Valid returns true if every element was faithful to its source.
func (r CollectionResult) Valid() bool { return len(r.Errors) == 0 }

// Root returns the compiled root node.
func (s *Schema) Root() *Node {
	return s.root
}

// String renders the schema in declaration syntax.
func (s *Schema) String() string {
	return s.root.String()
}

// Defaults returns the all-defaults output tree of the schema.
func (s *Schema) Defaults() map[string]any {
	return s.root.Defaults().(map[string]any)
}

// MapFromObject maps a single source value. A source that is not a record
// (nil, a primitive, a list, ...) yields the all-defaults tree with one
// diagnostic per leaf.
func (s *Schema) MapFromObject(src any) ObjectResult {
	w := s.newWalker()
	out := w.object(s.root, src, diagnostic.Path{})

	if ce := s.log.Check(zap.DebugLevel, "mapped object"); ce != nil {
		ce.Write(zap.Int("diagnostics", w.sink.Len()))
	}

	return ObjectResult{
		Result:      out,
		Errors:      w.sink.Errors(),
		Diagnostics: w.sink.Diagnostics(),
	}
}

// MapFromCollection maps every element of a list source in order. A source
// that is not a list yields an empty result with no diagnostics.
func (s *Schema) MapFromCollection(src any) CollectionResult {
	items, ok := source.AsList(src)
	if !ok {
		return CollectionResult{
			Result:      []map[string]any{},
			Errors:      []string{},
			Diagnostics: []diagnostic.Diagnostic{},
		}
	}

	sink := diagnostic.NewSink()
	out := make([]map[string]any, 0, len(items))

	for i, item := range items {
		// every element is walked with its own sink, as MapFromObject would
		w := s.newWalker()
		out = append(out, w.object(s.root, item, diagnostic.Path{}.Index(i)))
		sink.Merge(w.sink)
	}

	if ce := s.log.Check(zap.DebugLevel, "mapped collection"); ce != nil {
		ce.Write(zap.Int("items", len(items)), zap.Int("diagnostics", sink.Len()))
	}

	return CollectionResult{
		Result:      out,
		Errors:      sink.Errors(),
		Diagnostics: sink.Diagnostics(),
	}
}

// Map dispatches on the source shape: lists go through MapFromCollection,
// anything else through MapFromObject. The result is always collection
// shaped; a single object is returned as a one-element list.
func (s *Schema) Map(src any) CollectionResult {
	if _, ok := source.AsList(src); ok {
		return s.MapFromCollection(src)
	}

	res := s.MapFromObject(src)

	return CollectionResult{
		Result:      []map[string]any{res.Result},
		Errors:      res.Errors,
		Diagnostics: res.Diagnostics,
	}
}

func (s *Schema) newWalker() *walker {
	return &walker{
		sink:      diagnostic.NewSink(),
		suggest:   s.suggest,
		threshold: s.threshold,
	}
}
