package decl

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// --- Visibility YAML methods ---

// UnmarshalYAML decodes a visibility qualifier from a scalar.
func (v *Visibility) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("visibility: expected string, got %v", node.Kind)
	}

	*v = ParseVisibility(node.Value)

	return nil
}

// MarshalYAML encodes a visibility qualifier as its source text.
func (v Visibility) MarshalYAML() (any, error) {
	return v.String(), nil
}

// IsZero lets omitempty drop inherited visibility.
func (v Visibility) IsZero() bool {
	return v.Kind == VisibilityInherited
}

// --- Hasher YAML methods ---

// UnmarshalYAML decodes a hasher from its legacy or struct spelling.
func (h *Hasher) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("hasher: expected string, got %v", node.Kind)
	}

	parsed, err := ParseHasher(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}

	*h = parsed

	return nil
}

// MarshalYAML encodes a hasher as its struct name.
func (h Hasher) MarshalYAML() (any, error) {
	return h.String(), nil
}

// --- StorageLine YAML methods ---

// storageLineYAML is the flat on-disk form of a storage line.
type storageLineYAML struct {
	Name       string     `yaml:"name"`
	Type       string     `yaml:"type"`
	Kind       string     `yaml:"kind,omitempty"`
	Option     bool       `yaml:"option,omitempty"`
	Default    string     `yaml:"default,omitempty"`
	Getter     string     `yaml:"getter,omitempty"`
	Visibility Visibility `yaml:"visibility,omitempty"`
	Hasher     *Hasher    `yaml:"hasher,omitempty"`
	Key        string     `yaml:"key,omitempty"`
	Hasher2    *Hasher    `yaml:"hasher2,omitempty"`
	Key2       string     `yaml:"key2,omitempty"`
	Docs       []string   `yaml:"docs,omitempty"`
	Config     *string    `yaml:"config,omitempty"`
	Build      string     `yaml:"build,omitempty"`
}

// UnmarshalYAML decodes the flat form and folds the key fields into a Shape.
func (l *StorageLine) UnmarshalYAML(node *yaml.Node) error {
	var raw storageLineYAML

	if err := node.Decode(&raw); err != nil {
		return err
	}

	if raw.Config == nil && hasNullKey(node, "config") {
		raw.Config = new(string)
	}

	shape, err := buildShape(raw.Kind, raw.Hasher, raw.Key, raw.Hasher2, raw.Key2)
	if err != nil {
		return fmt.Errorf("storage %q (line %d): %w", raw.Name, node.Line, err)
	}

	*l = StorageLine{
		Name:       raw.Name,
		ValueType:  raw.Type,
		IsOption:   raw.Option,
		Default:    raw.Default,
		Getter:     raw.Getter,
		Visibility: raw.Visibility,
		Shape:      shape,
		Docs:       raw.Docs,
		Config:     raw.Config,
		Build:      raw.Build,
	}

	return nil
}

// MarshalYAML flattens the line back into its on-disk form.
func (l StorageLine) MarshalYAML() (any, error) {
	raw := storageLineYAML{
		Name:       l.Name,
		Type:       l.ValueType,
		Option:     l.IsOption,
		Default:    l.Default,
		Getter:     l.Getter,
		Visibility: l.Visibility,
		Docs:       l.Docs,
		Config:     l.Config,
		Build:      l.Build,
	}

	switch s := l.Shape.(type) {
	case Simple, nil:
	case Map:
		raw.Kind = KindMap
		raw.Hasher = &s.Hasher
		raw.Key = s.Key
	case DoubleMap:
		raw.Kind = KindDoubleMap
		raw.Hasher = &s.Hasher1
		raw.Key = s.Key1
		raw.Hasher2 = &s.Hasher2
		raw.Key2 = s.Key2
	default:
		return nil, fmt.Errorf("storage %q: unsupported shape %T", l.Name, l.Shape)
	}

	return raw, nil
}

// hasNullKey reports whether the mapping node sets key to an explicit null.
func hasNullKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1].ShortTag() == "!!null"
		}
	}

	return false
}

var errMissingHasher = errors.New("missing hasher")

// buildShape assembles a Shape from the flat front-end fields. An empty kind
// means a plain value.
func buildShape(kind string, hasher *Hasher, key string, hasher2 *Hasher, key2 string) (Shape, error) {
	switch canonicalKind(kind) {
	case KindValue:
		if hasher != nil || key != "" {
			return nil, fmt.Errorf("kind %q takes no key", KindValue)
		}

		return Simple{}, nil
	case KindMap:
		if hasher == nil {
			return nil, fmt.Errorf("kind %q: %w", KindMap, errMissingHasher)
		}

		return Map{Hasher: *hasher, Key: key}, nil
	case KindDoubleMap:
		if hasher == nil || hasher2 == nil {
			return nil, fmt.Errorf("kind %q: %w", KindDoubleMap, errMissingHasher)
		}

		return DoubleMap{Hasher1: *hasher, Key1: key, Hasher2: *hasher2, Key2: key2}, nil
	default:
		return nil, fmt.Errorf("unknown storage kind %q", kind)
	}
}
