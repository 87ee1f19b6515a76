package genesis

import (
	"fmt"

	"pallet-upgrade/internal/decl"
)

// ExtraBuildSource names the block produced by the extra genesis build.
const ExtraBuildSource = "extra_genesis_build"

// Block is one ordered group of build statements. Fragments are opaque
// text and are never reinterpreted.
type Block struct {
	// Source is the storage item the block seeds, or ExtraBuildSource.
	Source    string
	Fragments []string
}

// BuildBlocks collects the genesis build blocks of def in declaration
// order: one per storage line with a config or build, then the extra build.
// useGen is the bare generic argument list of the module, e.g. "<T>".
func BuildBlocks(def *decl.Definition, useGen string) []Block {
	var blocks []Block

	for i := range def.StorageLines {
		line := &def.StorageLines[i]
		if !line.HasGenesis() {
			continue
		}

		blocks = append(blocks, Block{
			Source:    line.Name,
			Fragments: append([]string{dataFragment(line)}, storeFragments(line, useGen)...),
		})
	}

	if def.ExtraGenesis.Build != "" {
		blocks = append(blocks, Block{
			Source: ExtraBuildSource,
			Fragments: []string{
				fmt.Sprintf("let extra_genesis_builder: fn(&Self) = %s;", def.ExtraGenesis.Build),
				"extra_genesis_builder(self);",
			},
		})
	}

	return blocks
}

// dataFragment binds `data` to the initial value, from the build closure
// when given, otherwise from the config field.
func dataFragment(line *decl.StorageLine) string {
	if line.Build != "" {
		return fmt.Sprintf("let data = (%s)(self);", line.Build)
	}

	return fmt.Sprintf("let data = &self.%s;", decl.GenesisFieldName(line))
}

func storeFragments(line *decl.StorageLine, useGen string) []string {
	item := line.Name + useGen
	v := line.ValueType

	switch s := line.Shape.(type) {
	case decl.Map:
		return []string{
			"data.iter().for_each(|(k, v)| {",
			fmt.Sprintf("\t<%s as StorageMap<%s, %s>>::insert::<&%s, &%s>(k, v);", item, s.Key, v, s.Key, v),
			"});",
		}
	case decl.DoubleMap:
		return []string{
			"data.iter().for_each(|(k1, k2, v)| {",
			fmt.Sprintf("\t<%s as StorageDoubleMap<%s, %s, %s>>::insert::<&%s, &%s, &%s>(k1, k2, v);",
				item, s.Key1, s.Key2, v, s.Key1, s.Key2, v),
			"});",
		}
	case decl.Simple, nil:
		put := fmt.Sprintf("<%s as StorageValue<%s>>::put::<&%s>(v);", item, v, v)
		if line.IsOption && line.Build != "" {
			return []string{
				fmt.Sprintf("let v: Option<&%s> = data.as_ref();", v),
				"if let Some(v) = v {",
				"\t" + put,
				"}",
			}
		}

		return []string{
			fmt.Sprintf("let v: &%s = &data;", v),
			put,
		}
	default:
		return []string{"// " + ShapePlaceholder}
	}
}
