package genesis

// Generic parameter names of the legacy module.
const (
	TypeParam     = "T"
	InstanceParam = "I"
)

// UsesGenerics reports whether expr mentions the module type parameter, or
// the instance parameter when the module is instantiable, as a standalone
// identifier.
func UsesGenerics(expr string, instantiable bool) bool {
	for _, ident := range identifiers(expr) {
		if ident == TypeParam || (instantiable && ident == InstanceParam) {
			return true
		}
	}

	return false
}

// identifiers splits expr into identifier tokens, skipping everything else.
func identifiers(expr string) []string {
	var out []string

	start := -1

	for i := 0; i <= len(expr); i++ {
		if i < len(expr) && isIdentByte(expr[i], start >= 0) {
			if start < 0 {
				start = i
			}

			continue
		}

		if start >= 0 {
			out = append(out, expr[start:i])
			start = -1
		}
	}

	return out
}

func isIdentByte(c byte, inIdent bool) bool {
	switch {
	case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		return true
	case '0' <= c && c <= '9':
		return inIdent
	default:
		return false
	}
}
