package genesis

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"pallet-upgrade/internal/decl"
)

// ErrUnsupportedAttribute rejects a non-doc attribute on an extra genesis
// config line.
var ErrUnsupportedAttribute = errors.New("extra genesis config items only support the `doc` attribute")

// ShapePlaceholder marks output derived from a storage shape the
// generator does not know.
const ShapePlaceholder = "TODO_SHAPE"

// DefaultExpr is the initializer used when no default was declared.
const DefaultExpr = "Default::default()"

// Field is one field of the genesis config aggregate.
type Field struct {
	Name string
	Type string
	// Default is the initializer used by the Default impl.
	Default string
	// Attrs are attribute bodies preserved on the field, e.g. `doc = "..."`.
	Attrs []string
}

// ConfigDef is the derived genesis config aggregate.
type ConfigDef struct {
	// Fields in declaration order: storage lines first, then extra lines.
	Fields []Field
	// IsGeneric is set when any field type mentions the module generics.
	IsGeneric bool
}

// FromDefinition derives the genesis config fields of def.
func FromDefinition(def *decl.Definition) (*ConfigDef, error) {
	cd := &ConfigDef{}

	for i := range def.StorageLines {
		line := &def.StorageLines[i]
		if line.Config == nil {
			continue
		}

		f := Field{
			Name:    decl.GenesisFieldName(line),
			Type:    fieldType(line),
			Default: fieldDefault(line),
			Attrs:   docAttrs(line.Docs),
		}

		cd.add(f, def.Instantiable)
	}

	for _, extra := range def.ExtraGenesis.Config {
		for _, attr := range extra.Attrs {
			if !isDocAttr(attr) {
				return nil, fmt.Errorf("field %q: attribute `#[%s]`: %w", extra.Name, attr, ErrUnsupportedAttribute)
			}
		}

		f := Field{
			Name:    extra.Name,
			Type:    extra.Type,
			Default: extra.Default,
			Attrs:   extra.Attrs,
		}
		if f.Default == "" {
			f.Default = DefaultExpr
		}

		cd.add(f, def.Instantiable)
	}

	return cd, nil
}

func (cd *ConfigDef) add(f Field, instantiable bool) {
	cd.Fields = append(cd.Fields, f)
	cd.IsGeneric = cd.IsGeneric || UsesGenerics(f.Type, instantiable)
}

// fieldType is the config type feeding a storage line: the value itself
// for plain values, a list of entries for maps.
func fieldType(line *decl.StorageLine) string {
	switch s := line.Shape.(type) {
	case decl.Map:
		return fmt.Sprintf("Vec<(%s, %s)>", s.Key, line.ValueType)
	case decl.DoubleMap:
		return fmt.Sprintf("Vec<(%s, %s, %s)>", s.Key1, s.Key2, line.ValueType)
	case decl.Simple, nil:
		return line.ValueType
	default:
		return "/* " + ShapePlaceholder + " */"
	}
}

func fieldDefault(line *decl.StorageLine) string {
	if _, ok := line.Shape.(decl.Simple); !ok && line.Shape != nil {
		return DefaultExpr
	}

	switch {
	case !line.HasDefault():
		return DefaultExpr
	case line.IsOption:
		return line.Default + ".unwrap_or_default()"
	default:
		return line.Default
	}
}

func docAttrs(docs []string) []string {
	if len(docs) == 0 {
		return nil
	}

	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, "doc = "+rustString(d))
	}

	return out
}

// rustString renders s as a Rust string literal. Control characters use
// `\u{..}` escapes and invalid UTF-8 becomes U+FFFD.
func rustString(s string) string {
	var sb strings.Builder

	sb.WriteByte('"')

	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case 0:
			sb.WriteString(`\0`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&sb, `\u{%x}`, r)
				continue
			}

			sb.WriteRune(r)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

// isDocAttr reports whether an attribute body is a doc attribute:
// `doc = "..."` or `doc(...)`.
func isDocAttr(attr string) bool {
	rest, ok := strings.CutPrefix(strings.TrimSpace(attr), "doc")
	if !ok {
		return false
	}

	rest = strings.TrimSpace(rest)

	return rest == "" || strings.HasPrefix(rest, "=") || strings.HasPrefix(rest, "(")
}
