package mapper

import (
	"strings"

	"schema-mapper/primitive"
)

//go:generate go tool stringer -type=NodeKind -trimprefix=Node -output=nodekind_string.go

// NodeKind is the variant of a schema Node. It is resolved once at compile
// time and never changes.
type NodeKind int

const (
	_ NodeKind = iota

	NodePrimitive
	NodeObject
	NodeArrayOfPrimitive
	NodeArrayOfObject
)

// Primitive declarators, re-exported for schema declarations.
const (
	String  = primitive.KindString
	Number  = primitive.KindNumber
	Boolean = primitive.KindBoolean
	Object  = primitive.KindObject
	Array   = primitive.KindArray
)

// Node is one compiled schema node.
type Node struct {
	kind   NodeKind
	prim   primitive.KindEnum // NodePrimitive, NodeArrayOfPrimitive
	fields []FieldNode        // NodeObject
	elem   *Node              // NodeArrayOfPrimitive, NodeArrayOfObject
}

// FieldNode is a named entry of an object node.
type FieldNode struct {
	name string
	node *Node
}

// Name returns the field name.
func (f FieldNode) Name() string { return f.name }

// Node returns the field's schema node.
func (f FieldNode) Node() *Node { return f.node }

func newPrimitive(k primitive.KindEnum) *Node {
	return &Node{kind: NodePrimitive, prim: k}
}

func newArray(elem *Node) *Node {
	if elem.kind == NodeObject {
		return &Node{kind: NodeArrayOfObject, elem: elem}
	}

	return &Node{kind: NodeArrayOfPrimitive, prim: elem.prim, elem: elem}
}

// Kind returns the node variant.
func (n *Node) Kind() NodeKind { return n.kind }

// Primitive returns the declared primitive kind of a Primitive or
// ArrayOfPrimitive node, and zero otherwise.
func (n *Node) Primitive() primitive.KindEnum { return n.prim }

// Fields returns a copy of an Object node's fields in declaration order.
func (n *Node) Fields() []FieldNode {
	out := make([]FieldNode, len(n.fields))
	copy(out, n.fields)

	return out
}

// Elem returns the element node of an array node, or nil.
func (n *Node) Elem() *Node { return n.elem }

// Defaults builds the all-defaults output for the node.
func (n *Node) Defaults() any {
	switch n.kind {
	case NodePrimitive:
		return n.prim.Default()
	case NodeObject:
		out := make(map[string]any, len(n.fields))
		for _, f := range n.fields {
			out[f.name] = f.node.Defaults()
		}

		return out
	default:
		return []any{}
	}
}

// Leaves counts primitive leaves and array fields, i.e. the number of
// diagnostics an empty source produces.
func (n *Node) Leaves() int {
	switch n.kind {
	case NodeObject:
		total := 0
		for _, f := range n.fields {
			total += f.node.Leaves()
		}

		return total
	default:
		return 1
	}
}

// String renders the node in declaration syntax, e.g.
// "{name: String, tags: [String], friends: [{id: Number}]}".
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)

	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	switch n.kind {
	case NodePrimitive:
		sb.WriteString(n.prim.String())
	case NodeObject:
		sb.WriteByte('{')

		for i, f := range n.fields {
			if i > 0 {
				sb.WriteString(", ")
			}

			sb.WriteString(f.name)
			sb.WriteString(": ")
			f.node.write(sb)
		}

		sb.WriteByte('}')
	case NodeArrayOfPrimitive, NodeArrayOfObject:
		sb.WriteByte('[')
		n.elem.write(sb)
		sb.WriteByte(']')
	}
}
