package mapper

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"schema-mapper/diagnostic"
	"schema-mapper/internal/common"
	"schema-mapper/primitive"
)

// ErrInvalidSchema is wrapped by every schema declaration error.
var ErrInvalidSchema = errors.New("invalid schema")

// Field is one named entry of an ordered object declaration.
type Field struct {
	Name string
	Decl any
}

// Fields declares an object schema whose field order is kept.
type Fields []Field

// Compile builds a Schema from a Go declaration. Accepted declarations:
//   - primitive.KindEnum (String, Number, Boolean, Object, Array)
//   - a primitive name as string ("String", "number", ...)
//   - Fields, in declaration order
//   - map[string]any, in sorted key order
//   - []any holding exactly one primitive or object declaration
//   - *yaml.Node
//   - *Node, an already compiled node
//
// The top-level declaration must be an object.
func Compile(decl any, opts ...Option) (*Schema, error) {
	cfg := newConfig(opts)

	root, err := compileDecl(decl, diagnostic.Path{})
	if err != nil {
		return nil, err
	}

	if root.kind != NodeObject {
		return nil, invalid(diagnostic.Path{}, "top-level declaration must be an object, got %s", root.kind)
	}

	cfg.logger.Debug("schema compiled",
		zap.Int("fields", len(root.fields)),
		zap.Int("leaves", root.Leaves()))

	return &Schema{
		root:      root,
		log:       cfg.logger,
		suggest:   cfg.suggest,
		threshold: cfg.threshold,
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(decl any, opts ...Option) *Schema {
	s, err := Compile(decl, opts...)
	if err != nil {
		panic(err)
	}

	return s
}

func compileDecl(decl any, at diagnostic.Path) (*Node, error) {
	switch d := decl.(type) {
	case primitive.KindEnum:
		if !d.IsValid() {
			return nil, invalid(at, "unknown primitive %s", d)
		}

		return newPrimitive(d), nil
	case string:
		k, ok := primitive.ParseKind(d)
		if !ok {
			return nil, invalid(at, "unknown type %q", d)
		}

		return newPrimitive(k), nil
	case Fields:
		return compileFields(d, at)
	case map[string]any:
		return compileFields(sortedFields(d), at)
	case []any:
		if !common.IsSingle(d) {
			return nil, invalid(at, "array declaration must wrap exactly one element, got %d", len(d))
		}

		elem, err := compileDecl(d[0], at.Index(0))
		if err != nil {
			return nil, err
		}

		return arrayOf(elem, at)
	case *yaml.Node:
		if d == nil {
			return nil, invalid(at, "nil YAML node")
		}

		return compileYAML(d, at)
	case *Node:
		if d == nil {
			return nil, invalid(at, "nil node")
		}

		if d.kind == 0 {
			return nil, invalid(at, "uncompiled node")
		}

		return d, nil
	default:
		return nil, invalid(at, "unsupported declaration of type %T", decl)
	}
}

func compileFields(fields Fields, at diagnostic.Path) (*Node, error) {
	n := &Node{kind: NodeObject, fields: make([]FieldNode, 0, len(fields))}
	seen := make(map[string]struct{}, len(fields))

	for _, f := range fields {
		if f.Name == "" {
			return nil, invalid(at, "empty field name")
		}

		if _, ok := seen[f.Name]; ok {
			return nil, invalid(at, "duplicate field %q", f.Name)
		}

		seen[f.Name] = struct{}{}

		child, err := compileDecl(f.Decl, at.Field(f.Name))
		if err != nil {
			return nil, err
		}

		n.fields = append(n.fields, FieldNode{name: f.Name, node: child})
	}

	return n, nil
}

func arrayOf(elem *Node, at diagnostic.Path) (*Node, error) {
	switch elem.kind {
	case NodePrimitive, NodeObject:
		return newArray(elem), nil
	default:
		return nil, invalid(at, "array elements must be a primitive or an object, got %s", elem.kind)
	}
}

func sortedFields(m map[string]any) Fields {
	out := make(Fields, 0, len(m))
	for _, name := range common.SortedKeys(m) {
		out = append(out, Field{Name: name, Decl: m[name]})
	}

	return out
}

func invalid(at diagnostic.Path, format string, args ...any) error {
	where := "<root>"
	if !at.IsRoot() {
		where = at.String()
	}

	return fmt.Errorf("%w: %s: %s", ErrInvalidSchema, where, fmt.Sprintf(format, args...))
}
