package gen

import (
	"fmt"
	"strings"

	"pallet-upgrade/internal/decl"
	"pallet-upgrade/internal/diagnostic"
	"pallet-upgrade/internal/genesis"
)

// QueryKind selects what reading an empty storage item returns.
type QueryKind string

const (
	// QueryValue returns the type default (or the declared default).
	QueryValue QueryKind = "ValueQuery"
	// QueryOption returns None.
	QueryOption QueryKind = "OptionQuery"
)

// DefaultProviderPrefix prefixes the name of a generated default provider.
const DefaultProviderPrefix = "DefaultFor"

// OptionWithDefaultComment trails a declaration whose legacy form was an
// optional value with a default.
const OptionWithDefaultComment = " // TODO: This type of storage is no longer supported: `OptionQuery` cannot be used" +
	" alongside a not-none value on empty storage. Please use `ValueQuery` instead."

// DefaultProviderName returns the provider name derived from a storage name.
func DefaultProviderName(storage string) string {
	return DefaultProviderPrefix + storage
}

// InferQueryKind picks the query kind of a line. The second result is set
// for an optional line with a default, which has no equivalent and is
// downgraded to QueryValue.
func InferQueryKind(line *decl.StorageLine) (QueryKind, bool) {
	if !line.IsOption {
		return QueryValue, false
	}

	if line.HasDefault() {
		return QueryValue, true
	}

	return QueryOption, false
}

// storageBlock is the rendering of one storage line. Warnings describe the
// placeholders left in Text.
type storageBlock struct {
	Name     string
	Query    QueryKind
	Text     string
	Warnings []diagnostic.Diagnostic
}

// renderStorageLine renders the optional default provider, the storage
// attributes and the type alias of line.
func renderStorageLine(module string, line *decl.StorageLine, gens Generics) storageBlock {
	block := storageBlock{Name: line.Name}

	query, conflict := InferQueryKind(line)
	block.Query = query

	var sb strings.Builder

	tail := ", " + string(query)
	if line.HasDefault() {
		provider := DefaultProviderName(line.Name)
		tail += ", " + provider

		fmt.Fprintf(&sb, "\t#[pallet::type_value]\n")
		fmt.Fprintf(&sb, "\tfn %s /* TODO_MAYBE_GENERICS */ () -> %s {\n", provider, line.ValueType)
		fmt.Fprintf(&sb, "\t\t%s\n", line.Default)
		fmt.Fprintf(&sb, "\t}\n")
	}

	sb.WriteString("\t#[pallet::storage]\n")

	if line.Getter != "" {
		fmt.Fprintf(&sb, "\t#[pallet::getter(fn %s)]\n", line.Getter)
	}

	vis := ConvertVisibility(line.Visibility)
	if line.Visibility.Kind == decl.VisibilityRestricted {
		block.Warnings = append(block.Warnings, diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticWarning,
			Code:     diagnostic.CodeRestrictedVis,
			Message:  fmt.Sprintf("visibility %q has no equivalent, left as %s", line.Visibility.Path, PlaceholderVisibility),
			Module:   module,
			Item:     line.Name,
		})
	}

	if !knownShape(line.Shape) {
		block.Warnings = append(block.Warnings, diagnostic.Diagnostic{
			Severity: diagnostic.DiagnosticWarning,
			Code:     diagnostic.CodeUnknownShape,
			Message:  fmt.Sprintf("storage shape %T has no container, left as %s", line.Shape, genesis.ShapePlaceholder),
			Module:   module,
			Item:     line.Name,
		})
	}

	fmt.Fprintf(&sb, "\t%s type %s%s = %s;", vis, line.Name, gens.Use, containerType(line, tail))

	if conflict {
		sb.WriteString(OptionWithDefaultComment)
		block.Warnings = append(block.Warnings, diagnostic.Diagnostic{
			Severity:    diagnostic.DiagnosticWarning,
			Code:        diagnostic.CodeOptionWithDefault,
			Message:     "optional storage with a default value is rendered with ValueQuery",
			Module:      module,
			Item:        line.Name,
			Suggestions: []string{"ValueQuery"},
		})
	}

	sb.WriteString("\n")
	block.Text = sb.String()

	return block
}

// containerType renders the storage container with its generic arguments.
// tail holds the query kind and optional default provider arguments.
func containerType(line *decl.StorageLine, tail string) string {
	switch s := line.Shape.(type) {
	case decl.Map:
		return fmt.Sprintf("StorageMap<_, %s, %s, %s%s>", s.Hasher, s.Key, line.ValueType, tail)
	case decl.DoubleMap:
		return fmt.Sprintf("StorageDoubleMap<_, %s, %s, %s, %s, %s%s>",
			s.Hasher1, s.Key1, s.Hasher2, s.Key2, line.ValueType, tail)
	case decl.Simple, nil:
		return fmt.Sprintf("StorageValue<_, %s%s>", line.ValueType, tail)
	default:
		return "/* " + genesis.ShapePlaceholder + " */"
	}
}

// knownShape reports whether containerType can render s.
func knownShape(s decl.Shape) bool {
	switch s.(type) {
	case decl.Simple, decl.Map, decl.DoubleMap, nil:
		return true
	default:
		return false
	}
}
