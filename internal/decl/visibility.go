package decl

import (
	"strings"
)

// VisibilityKind classifies a legacy visibility qualifier.
type VisibilityKind int

const (
	// VisibilityInherited is the default private visibility.
	VisibilityInherited VisibilityKind = iota
	// VisibilityPublic is a bare `pub`.
	VisibilityPublic
	// VisibilityRestricted is `pub(crate)`, `pub(super)`, `pub(in path)`.
	VisibilityRestricted
)

// Visibility is a legacy visibility qualifier.
type Visibility struct {
	Kind VisibilityKind
	// Path keeps the original text of a restricted qualifier.
	Path string
}

// ParseVisibility classifies a qualifier as written in the legacy source.
func ParseVisibility(s string) Visibility {
	s = strings.TrimSpace(s)

	switch {
	case s == "":
		return Visibility{Kind: VisibilityInherited}
	case s == "pub":
		return Visibility{Kind: VisibilityPublic}
	default:
		return Visibility{Kind: VisibilityRestricted, Path: s}
	}
}

// String returns the qualifier as it would appear in the legacy source.
func (v Visibility) String() string {
	switch v.Kind {
	case VisibilityPublic:
		return "pub"
	case VisibilityRestricted:
		return v.Path
	default:
		return ""
	}
}
