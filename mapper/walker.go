package mapper

import (
	"schema-mapper/diagnostic"
	"schema-mapper/internal/match"
	"schema-mapper/internal/source"
	"schema-mapper/primitive"
)

// walker performs one recursive descent of a schema against a source value.
// Recursion depth follows the schema; source data only drives iteration.
type walker struct {
	sink      *diagnostic.Sink
	suggest   bool
	threshold float64
}

// object maps src onto an object node. A src that is not a record is walked
// as an empty record, so every field still gets its default and reports.
func (w *walker) object(n *Node, src any, at diagnostic.Path) map[string]any {
	rec, _ := source.AsRecord(src)

	out := make(map[string]any, len(n.fields))
	for _, f := range n.fields {
		out[f.name] = w.field(f.node, rec, at.Field(f.name))
	}

	return out
}

func (w *walker) field(n *Node, rec source.Record, at diagnostic.Path) any {
	var (
		value   any
		present bool
	)

	if rec != nil {
		value, present = rec.Lookup(at.Leaf())
	}

	switch n.kind {
	case NodeObject:
		return w.object(n, value, at)

	case NodeArrayOfPrimitive, NodeArrayOfObject:
		items, ok := source.AsList(value)
		if !ok {
			w.missing(at, rec)
			return []any{}
		}

		return w.list(n, items, at)

	default:
		if !present {
			w.missing(at, rec)
			return n.prim.Default()
		}

		return w.leaf(n.prim, value, at)
	}
}

// list maps every element; the output always has the source's length.
func (w *walker) list(n *Node, items []any, at diagnostic.Path) []any {
	out := make([]any, 0, len(items))

	for i, item := range items {
		if n.kind == NodeArrayOfObject {
			out = append(out, w.object(n.elem, item, at.Index(i)))
		} else {
			out = append(out, w.leaf(n.prim, item, at.Index(i)))
		}
	}

	return out
}

// leaf passes a matching value through unchanged and defaults anything else.
func (w *walker) leaf(k primitive.KindEnum, value any, at diagnostic.Path) any {
	if k.Matches(value) {
		return value
	}

	w.sink.PushTypeMismatch(at, k.String(), primitive.TypeName(value))

	return k.Default()
}

func (w *walker) missing(at diagnostic.Path, rec source.Record) {
	if !w.suggest || rec == nil {
		w.sink.PushMissingProperty(at)
		return
	}

	w.sink.PushMissingProperty(at, match.Suggest(at.Leaf(), rec.Keys(), w.threshold)...)
}
