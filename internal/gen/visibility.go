package gen

import (
	"pallet-upgrade/internal/decl"
)

// PlaceholderVisibility stands in for a restricted visibility.
const PlaceholderVisibility = "/* TODO_VISIBILITY */"

// ConvertVisibility maps a legacy qualifier to its keyword inside the
// generated pallet module. Restricted paths are not rewritten.
func ConvertVisibility(v decl.Visibility) string {
	switch v.Kind {
	case decl.VisibilityInherited:
		return "pub(super)"
	case decl.VisibilityPublic:
		return "pub"
	default:
		return PlaceholderVisibility
	}
}
