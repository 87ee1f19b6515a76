package decl

import (
	"pallet-upgrade/internal/common"
)

// Definition is a parsed legacy storage declaration for one module.
type Definition struct {
	// Name is the module (crate) identifier.
	Name string `yaml:"name"`

	// Instantiable is set when the module carries the optional instance
	// generic parameter.
	Instantiable bool `yaml:"instantiable,omitempty"`

	// Visibility of the module's store trait.
	Visibility Visibility `yaml:"visibility,omitempty"`

	// StorageLines are the declared storage items in declaration order.
	StorageLines []StorageLine `yaml:"storage,omitempty"`

	// ExtraGenesis holds genesis configuration not bound to a storage item.
	ExtraGenesis ExtraGenesis `yaml:"extra_genesis,omitempty"`
}

// StorageLine is one declared storage item.
type StorageLine struct {
	Name      string
	ValueType string
	// IsOption marks a value that may be absent.
	IsOption bool
	// Default is the default-value expression; empty means none.
	Default string
	// Getter is the accessor function name; empty means none.
	Getter     string
	Visibility Visibility
	Shape      Shape
	// Docs are the doc comment lines attached to the item.
	Docs []string
	// Config names the genesis config field fed into this item. A non-nil
	// empty name derives the field name from the storage name.
	Config *string
	// Build is an opaque closure producing the initial data.
	Build string
}

// HasDefault reports whether a default-value expression was declared.
func (l *StorageLine) HasDefault() bool {
	return l.Default != ""
}

// HasGenesis reports whether the line takes part in genesis initialization.
func (l *StorageLine) HasGenesis() bool {
	return l.Config != nil || l.Build != ""
}

// ExtraGenesis is the genesis configuration declared outside storage lines.
type ExtraGenesis struct {
	Config []ExtraGenesisConfigLine `yaml:"config,omitempty"`
	// Build is an opaque closure run after all storage items are built.
	Build string `yaml:"build,omitempty"`
}

// IsEmpty reports whether nothing extra was declared.
func (e ExtraGenesis) IsEmpty() bool {
	return common.IsEmpty(e.Config) && e.Build == ""
}

// ExtraGenesisConfigLine is a genesis config field with no storage item.
type ExtraGenesisConfigLine struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Default string `yaml:"default,omitempty"`
	// Attrs are attribute bodies, e.g. `doc = "..."`.
	Attrs []string `yaml:"attrs,omitempty"`
}

// Shape is the closed set of storage layouts: Simple, Map and DoubleMap.
// Dispatch on it with an exhaustive type switch.
type Shape interface {
	isShape()
}

// Simple is a single value with no key.
type Simple struct{}

// Map is a value keyed by one hashed key.
type Map struct {
	Hasher Hasher
	Key    string
}

// DoubleMap is a value keyed by two independently hashed keys.
type DoubleMap struct {
	Hasher1 Hasher
	Key1    string
	Hasher2 Hasher
	Key2    string
}

func (Simple) isShape()    {}
func (Map) isShape()       {}
func (DoubleMap) isShape() {}

// ShapeName returns the front-end kind name of s.
func ShapeName(s Shape) string {
	switch s.(type) {
	case Simple, *Simple, nil:
		return KindValue
	case Map, *Map:
		return KindMap
	case DoubleMap, *DoubleMap:
		return KindDoubleMap
	default:
		return common.UnknownStr
	}
}

// Front-end kind names.
const (
	KindValue     = "value"
	KindMap       = "map"
	KindDoubleMap = "double_map"
)
