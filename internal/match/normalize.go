package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier into a separator-free lowercase form,
// so that "blake2_128_concat" and "Blake2_128Concat" compare equal.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// SnakeCase renders an identifier as lower snake_case.
// Examples:
//   - "TotalIssuance" -> "total_issuance"
//   - "XMLParser" -> "xml_parser"
//   - "already_snake" -> "already_snake"
func SnakeCase(s string) string {
	return strings.Join(TokenizeIdent(s), "_")
}

// TokenizeIdent splits an identifier into normalized lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase or snake_case string into tokens.
// Examples:
//   - "NextAssetID" -> ["Next", "Asset", "ID"]
//   - "accountNonce" -> ["account", "Nonce"]
//   - "twox_64_concat" -> ["twox", "64", "concat"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsToken reports whether a new token begins at runes[i].
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if isSeparator(prev) || !unicode.IsUpper(r) {
		return false
	}

	// "nextAsset" splits before 'A'.
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser" splits before 'P': end of an acronym.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
