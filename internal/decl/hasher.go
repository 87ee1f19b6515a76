package decl

import (
	"errors"
	"fmt"
	"strings"

	"pallet-upgrade/internal/match"
)

//go:generate go tool stringer -type=Hasher -trimprefix=Hasher -output=hasher_string.go

// Hasher is the hashing algorithm applied to a storage map key.
// String returns the hasher struct name used by the new syntax.
type Hasher int

const (
	_ Hasher = iota // zero value is an invalid hasher

	HasherBlake2_128
	HasherBlake2_256
	HasherBlake2_128Concat
	HasherTwox128
	HasherTwox256
	HasherTwox64Concat
	HasherIdentity

	hasherEnd
)

// ErrUnknownHasher is returned when a hasher spelling matches no known hasher.
var ErrUnknownHasher = errors.New("unknown hasher")

// Hashers lists every valid hasher in declaration order.
func Hashers() []Hasher {
	out := make([]Hasher, 0, int(hasherEnd)-1)
	for h := HasherBlake2_128; h < hasherEnd; h++ {
		out = append(out, h)
	}

	return out
}

// IsValid reports whether h is one of the declared hashers.
func (h Hasher) IsValid() bool {
	return h > 0 && h < hasherEnd
}

// ParseHasher accepts both the legacy spelling ("blake2_128_concat") and
// the struct name ("Blake2_128Concat").
func ParseHasher(s string) (Hasher, error) {
	names := make([]string, 0, int(hasherEnd)-1)
	for _, h := range Hashers() {
		names = append(names, h.String())
	}

	if name, ok := match.Lookup(s, names); ok {
		for _, h := range Hashers() {
			if h.String() == name {
				return h, nil
			}
		}
	}

	suggestions := match.Suggest(s, names, match.DefaultSuggestThreshold, 2)
	if len(suggestions) > 0 {
		return 0, fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownHasher, s, strings.Join(suggestions, ", "))
	}

	return 0, fmt.Errorf("%w %q", ErrUnknownHasher, s)
}
