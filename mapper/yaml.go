package mapper

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"schema-mapper/diagnostic"
	"schema-mapper/internal/common"
	"schema-mapper/primitive"
)

// LoadFile loads and compiles a YAML or JSON schema declaration file.
func LoadFile(path string, opts ...Option) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	s, err := Parse(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("schema file %s: %w", path, err)
	}

	return s, nil
}

// Parse compiles a YAML or JSON schema declaration. Mapping key order is
// kept as written.
func Parse(data []byte, opts ...Option) (*Schema, error) {
	var doc yaml.Node

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	return Compile(&doc, opts...)
}

// maxSchemaNodes bounds the size of a schema after alias expansion.
const maxSchemaNodes = 1 << 16

// yamlCompiler compiles one YAML document. Anchored nodes are compiled once
// and shared by every alias that refers to them.
type yamlCompiler struct {
	active map[*yaml.Node]struct{}
	done   map[*yaml.Node]anchored
	nodes  int
}

type anchored struct {
	node *Node
	size int
}

func compileYAML(node *yaml.Node, at diagnostic.Path) (*Node, error) {
	c := &yamlCompiler{
		active: map[*yaml.Node]struct{}{},
		done:   map[*yaml.Node]anchored{},
	}

	return c.compile(node, at)
}

func (c *yamlCompiler) compile(node *yaml.Node, at diagnostic.Path) (*Node, error) {
	if node.Kind == yaml.AliasNode {
		return c.alias(node, at)
	}

	if node.Anchor == "" {
		return c.compileNode(node, at)
	}

	c.active[node] = struct{}{}
	defer delete(c.active, node)

	start := c.nodes

	n, err := c.compileNode(node, at)
	if err != nil {
		return nil, err
	}

	c.done[node] = anchored{node: n, size: c.nodes - start}

	return n, nil
}

func (c *yamlCompiler) alias(node *yaml.Node, at diagnostic.Path) (*Node, error) {
	target := node.Alias
	if target == nil {
		return nil, invalidAt(at, node, "dangling alias")
	}

	if _, ok := c.active[target]; ok {
		return nil, invalidAt(at, node, "alias *%s refers to an enclosing node", node.Value)
	}

	hit, ok := c.done[target]
	if !ok {
		return c.compile(target, at)
	}

	c.nodes += hit.size
	if c.nodes > maxSchemaNodes {
		return nil, invalidAt(at, node, "schema expands to more than %d nodes", maxSchemaNodes)
	}

	return hit.node, nil
}

func (c *yamlCompiler) compileNode(node *yaml.Node, at diagnostic.Path) (*Node, error) {
	c.nodes++
	if c.nodes > maxSchemaNodes {
		return nil, invalidAt(at, node, "schema expands to more than %d nodes", maxSchemaNodes)
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, invalid(at, "empty document")
		}

		return c.compile(node.Content[0], at)

	case yaml.ScalarNode:
		k, ok := primitive.ParseKind(node.Value)
		if !ok || node.Tag == "!!null" {
			return nil, invalidAt(at, node, "unknown type %q", node.Value)
		}

		return newPrimitive(k), nil

	case yaml.MappingNode:
		n := &Node{kind: NodeObject, fields: make([]FieldNode, 0, len(node.Content)/2)}
		seen := map[string]struct{}{}

		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Kind != yaml.ScalarNode || key.Value == "" {
				return nil, invalidAt(at, key, "field names must be non-empty scalars")
			}

			if _, ok := seen[key.Value]; ok {
				return nil, invalidAt(at, key, "duplicate field %q", key.Value)
			}

			seen[key.Value] = struct{}{}

			child, err := c.compile(value, at.Field(key.Value))
			if err != nil {
				return nil, err
			}

			n.fields = append(n.fields, FieldNode{name: key.Value, node: child})
		}

		return n, nil

	case yaml.SequenceNode:
		if !common.IsSingle(node.Content) {
			return nil, invalidAt(at, node, "array declaration must wrap exactly one element, got %d", len(node.Content))
		}

		elem, err := c.compile(node.Content[0], at.Index(0))
		if err != nil {
			return nil, err
		}

		return arrayOf(elem, at)

	case 0:
		return nil, invalid(at, "empty document")

	default:
		return nil, invalidAt(at, node, "unsupported YAML node kind %v", node.Kind)
	}
}

func invalidAt(at diagnostic.Path, node *yaml.Node, format string, args ...any) error {
	return invalid(at, "line %d, column %d: %s", node.Line, node.Column, fmt.Sprintf(format, args...))
}
