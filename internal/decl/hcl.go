package decl

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"pallet-upgrade/internal/common"
)

// hclFile is the root of an HCL definition file:
//
//	module "Balances" {
//	  instantiable = true
//	  storage "TotalIssuance" {
//	    type = "T::Balance"
//	  }
//	}
type hclFile struct {
	Modules []*hclModule `hcl:"module,block"`
	Remain  hcl.Body     `hcl:",remain"`
}

type hclModule struct {
	Name         string           `hcl:"name,label"`
	Instantiable *bool            `hcl:"instantiable,optional"`
	Visibility   *string          `hcl:"visibility,optional"`
	Storage      []*hclStorage    `hcl:"storage,block"`
	ExtraGenesis *hclExtraGenesis `hcl:"extra_genesis,block"`
}

type hclStorage struct {
	Name       string    `hcl:"name,label"`
	Type       string    `hcl:"type"`
	Kind       *string   `hcl:"kind,optional"`
	Option     *bool     `hcl:"option,optional"`
	Default    *string   `hcl:"default,optional"`
	Getter     *string   `hcl:"getter,optional"`
	Visibility *string   `hcl:"visibility,optional"`
	Hasher     *string   `hcl:"hasher,optional"`
	Key        *string   `hcl:"key,optional"`
	Hasher2    *string   `hcl:"hasher2,optional"`
	Key2       *string   `hcl:"key2,optional"`
	Docs       *[]string `hcl:"docs,optional"`
	Config     *string   `hcl:"config,optional"`
	Build      *string   `hcl:"build,optional"`
}

type hclExtraGenesis struct {
	Config []*hclExtraConfig `hcl:"config,block"`
	Build  *string           `hcl:"build,optional"`
}

type hclExtraConfig struct {
	Name    string    `hcl:"name,label"`
	Type    string    `hcl:"type"`
	Default *string   `hcl:"default,optional"`
	Attrs   *[]string `hcl:"attrs,optional"`
}

var errNoModule = errors.New("no module block")

// ParseHCL parses HCL source into a Definition. The file must declare
// exactly one module block.
func ParseHCL(src []byte, filename string) (*Definition, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root hclFile

	diags = gohcl.DecodeBody(file.Body, nil, &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	if len(root.Modules) > 1 {
		return nil, fmt.Errorf("%s: expected one module block, found %d", filename, len(root.Modules))
	}

	mod, ok := common.First(root.Modules)
	if !ok {
		return nil, fmt.Errorf("%s: %w", filename, errNoModule)
	}

	return translateModule(mod)
}

func translateModule(mod *hclModule) (*Definition, error) {
	def := &Definition{
		Name:         mod.Name,
		Instantiable: deref(mod.Instantiable),
		Visibility:   ParseVisibility(deref(mod.Visibility)),
	}

	for _, s := range mod.Storage {
		line, err := translateStorage(s)
		if err != nil {
			return nil, err
		}

		def.StorageLines = append(def.StorageLines, line)
	}

	if eg := mod.ExtraGenesis; eg != nil {
		def.ExtraGenesis.Build = deref(eg.Build)

		for _, c := range eg.Config {
			def.ExtraGenesis.Config = append(def.ExtraGenesis.Config, ExtraGenesisConfigLine{
				Name:    c.Name,
				Type:    c.Type,
				Default: deref(c.Default),
				Attrs:   deref(c.Attrs),
			})
		}
	}

	return def, nil
}

func translateStorage(s *hclStorage) (StorageLine, error) {
	var hasher, hasher2 *Hasher

	for _, h := range []struct {
		src *string
		dst **Hasher
	}{{s.Hasher, &hasher}, {s.Hasher2, &hasher2}} {
		if h.src == nil {
			continue
		}

		parsed, err := ParseHasher(*h.src)
		if err != nil {
			return StorageLine{}, fmt.Errorf("storage %q: %w", s.Name, err)
		}

		*h.dst = &parsed
	}

	shape, err := buildShape(deref(s.Kind), hasher, deref(s.Key), hasher2, deref(s.Key2))
	if err != nil {
		return StorageLine{}, fmt.Errorf("storage %q: %w", s.Name, err)
	}

	return StorageLine{
		Name:       s.Name,
		ValueType:  s.Type,
		IsOption:   deref(s.Option),
		Default:    deref(s.Default),
		Getter:     deref(s.Getter),
		Visibility: ParseVisibility(deref(s.Visibility)),
		Shape:      shape,
		Docs:       deref(s.Docs),
		Config:     s.Config,
		Build:      deref(s.Build),
	}, nil
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}

	return *p
}
