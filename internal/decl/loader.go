package decl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"pallet-upgrade/internal/match"
)

// Format is an on-disk definition format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatHCL  Format = "hcl"
)

// FormatFromPath picks a format from a file extension, defaulting to YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return FormatHCL
	}

	return FormatYAML
}

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatYAML, FormatHCL:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported definition format %q (want yaml or hcl)", s)
	}
}

// LoadFile loads a definition from path in the given format. An empty
// format is inferred from the extension.
func LoadFile(path string, format Format) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
	}

	if format == "" {
		format = FormatFromPath(path)
	}

	switch format {
	case FormatHCL:
		return ParseHCL(data, path)
	default:
		return Parse(data)
	}
}

// Parse parses YAML data into a Definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition

	err := yaml.Unmarshal(data, &def)
	if err != nil {
		return nil, fmt.Errorf("failed to parse definition YAML: %w", err)
	}

	return &def, nil
}

// Marshal serializes a Definition to YAML.
func Marshal(def *Definition) ([]byte, error) {
	return yaml.Marshal(def)
}

var kindNames = []string{KindValue, "simple", KindMap, KindDoubleMap}

// canonicalKind maps any accepted kind spelling onto a Kind* constant.
// Unknown spellings come back unchanged.
func canonicalKind(kind string) string {
	if kind == "" {
		return KindValue
	}

	name, ok := match.Lookup(kind, kindNames)
	if !ok {
		return kind
	}

	if name == "simple" {
		return KindValue
	}

	return name
}
