package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"schema-mapper/internal/match"
	"schema-mapper/mapper"
	"schema-mapper/primitive"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the package clause of the generated file.
	PackageName string
	// TypeName is the name of the struct generated for the schema root.
	TypeName string
	// GenerateComments adds a comment naming the schema path of every type.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "models",
		TypeName:         "Record",
		GenerateComments: true,
	}
}

// Generator turns compiled schemas into Go source.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

type structDef struct {
	Name    string
	Comment string
	Fields  []fieldDef
}

type fieldDef struct {
	Name string
	Type string
	Tag  string
}

var fileTemplate = template.Must(template.New("file").Parse(`// Code generated by schema-mapper; DO NOT EDIT.

package {{ .Package }}
{{ range .Structs }}
{{ with .Comment }}// {{ . }}
{{ end }}type {{ .Name }} struct {
{{- range .Fields }}
	{{ .Name }} {{ .Type }} {{ .Tag }}
{{- end }}
}
{{ end }}`))

// Generate renders the struct types for schema as a formatted Go file.
func (g *Generator) Generate(schema *mapper.Schema) ([]byte, error) {
	if schema == nil {
		return nil, errors.New("schema is nil")
	}

	if !token.IsIdentifier(g.config.PackageName) {
		return nil, fmt.Errorf("invalid package name %q", g.config.PackageName)
	}

	if !token.IsIdentifier(g.config.TypeName) || !token.IsExported(g.config.TypeName) {
		return nil, fmt.Errorf("invalid type name %q: must be an exported identifier", g.config.TypeName)
	}

	st := &state{used: map[string]struct{}{}, comments: g.config.GenerateComments}
	st.reserve(g.config.TypeName)
	st.queue = append(st.queue, pending{name: g.config.TypeName, path: "<root>", node: schema.Root()})

	for len(st.queue) > 0 {
		next := st.queue[0]
		st.queue = st.queue[1:]
		st.emit(next)
	}

	var buf bytes.Buffer

	err := fileTemplate.Execute(&buf, struct {
		Package string
		Structs []structDef
	}{g.config.PackageName, st.structs})
	if err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}

	return src, nil
}

type pending struct {
	name string
	path string
	node *mapper.Node
}

type state struct {
	used     map[string]struct{}
	queue    []pending
	structs  []structDef
	comments bool
}

func (st *state) emit(p pending) {
	def := structDef{Name: p.name}
	if st.comments {
		def.Comment = fmt.Sprintf("%s mirrors schema path %s.", p.name, p.path)
	}

	seen := map[string]struct{}{}

	for _, f := range p.node.Fields() {
		goName := uniqueName(ExportName(f.Name()), seen)
		path := f.Name()
		if p.path != "<root>" {
			path = p.path + "." + f.Name()
		}

		def.Fields = append(def.Fields, fieldDef{
			Name: goName,
			Type: st.typeOf(f.Node(), p.name+goName, path),
			Tag:  structTag(f.Name()),
		})
	}

	st.structs = append(st.structs, def)
}

// typeOf returns the Go type for n, queueing a struct for object nodes.
func (st *state) typeOf(n *mapper.Node, name, path string) string {
	switch n.Kind() {
	case mapper.NodeObject:
		name = st.reserve(name)
		st.queue = append(st.queue, pending{name: name, path: path, node: n})

		return name
	case mapper.NodeArrayOfObject:
		return "[]" + st.typeOf(n.Elem(), name, path+"[]")
	case mapper.NodeArrayOfPrimitive:
		return "[]" + primitiveType(n.Primitive())
	default:
		return primitiveType(n.Primitive())
	}
}

// reserve claims a type name, appending a counter on collision.
func (st *state) reserve(name string) string {
	return uniqueName(name, st.used)
}

func uniqueName(name string, used map[string]struct{}) string {
	candidate := name
	for i := 2; ; i++ {
		if _, ok := used[candidate]; !ok {
			used[candidate] = struct{}{}
			return candidate
		}

		candidate = name + strconv.Itoa(i)
	}
}

func structTag(key string) string {
	tag := "json:" + strconv.Quote(key)
	if strings.ContainsRune(tag, '`') {
		return strconv.Quote(tag)
	}

	return "`" + tag + "`"
}

func primitiveType(k primitive.KindEnum) string {
	switch k {
	case primitive.KindString:
		return "string"
	case primitive.KindNumber:
		return "float64"
	case primitive.KindBoolean:
		return "bool"
	case primitive.KindObject:
		return "map[string]any"
	default:
		return "[]any"
	}
}

var initialisms = map[string]string{
	"id": "ID", "url": "URL", "uri": "URI", "http": "HTTP", "json": "JSON",
	"api": "API", "uuid": "UUID", "ip": "IP", "html": "HTML", "xml": "XML",
}

// ExportName converts a schema key into an exported Go identifier:
// "first_name" -> "FirstName", "_id" -> "ID", "2fa" -> "F2Fa", "名前" -> "F名前".
func ExportName(key string) string {
	var sb strings.Builder

	for _, tok := range match.Tokenize(key) {
		tok = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}

			return -1
		}, tok)
		if tok == "" {
			continue
		}

		if up, ok := initialisms[tok]; ok {
			sb.WriteString(up)
			continue
		}

		runes := []rune(tok)
		runes[0] = unicode.ToUpper(runes[0])
		sb.WriteString(string(runes))
	}

	name := sb.String()
	if name == "" {
		return "Field"
	}

	// digits and letters without an upper case form cannot start an exported name
	if !token.IsExported(name) {
		name = "F" + name
	}

	return name
}
