package decl

import (
	"fmt"

	"pallet-upgrade/internal/diagnostic"
	"pallet-upgrade/internal/match"
)

// Validate checks a definition for structural problems the generator cannot
// recover from. Constructs that merely lack a one-to-one mapping are left to
// the renderer, which reports them as warnings.
func Validate(def *Definition) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if def == nil {
		res.AddError("definition_is_nil", "definition is nil", "", "")
		return res
	}

	if def.Name == "" {
		res.AddError(diagnostic.CodeEmptyName, "module name is empty", "", "")
	}

	seenStorage := map[string]struct{}{}
	seenGenesis := map[string]struct{}{}

	for i := range def.StorageLines {
		line := &def.StorageLines[i]
		validateStorageLine(res, def.Name, i, line, seenStorage)

		if line.Config != nil {
			addGenesisName(res, def.Name, GenesisFieldName(line), seenGenesis)
		}
	}

	for _, extra := range def.ExtraGenesis.Config {
		if extra.Name == "" {
			res.AddError(diagnostic.CodeEmptyName, "extra genesis config field has no name", def.Name, "")
			continue
		}

		if extra.Type == "" {
			res.AddError(diagnostic.CodeEmptyType, "extra genesis config field has no type", def.Name, extra.Name)
		}

		addGenesisName(res, def.Name, extra.Name, seenGenesis)
	}

	return res
}

func validateStorageLine(
	res *diagnostic.Diagnostics,
	module string,
	index int,
	line *StorageLine,
	seen map[string]struct{},
) {
	if line.Name == "" {
		res.AddError(diagnostic.CodeEmptyName, fmt.Sprintf("storage line %d has no name", index), module, "")
		return
	}

	if _, ok := seen[line.Name]; ok {
		res.AddError(diagnostic.CodeDuplicateStorage, fmt.Sprintf("duplicate storage %q", line.Name), module, line.Name)
	}

	seen[line.Name] = struct{}{}

	if line.ValueType == "" {
		res.AddError(diagnostic.CodeEmptyType, "storage value type is empty", module, line.Name)
	}

	switch s := line.Shape.(type) {
	case Simple, nil:
	case Map:
		validateKey(res, module, line.Name, "key", s.Hasher, s.Key)
	case DoubleMap:
		validateKey(res, module, line.Name, "key1", s.Hasher1, s.Key1)
		validateKey(res, module, line.Name, "key2", s.Hasher2, s.Key2)
	default:
		res.AddError("unsupported_shape", fmt.Sprintf("unsupported storage shape %T", line.Shape), module, line.Name)
	}
}

func validateKey(res *diagnostic.Diagnostics, module, item, slot string, h Hasher, key string) {
	if key == "" {
		res.AddError(diagnostic.CodeMissingKey, slot+" type is empty", module, item)
	}

	if !h.IsValid() {
		res.AddError("invalid_hasher", fmt.Sprintf("%s hasher %s is invalid", slot, h), module, item)
	}
}

func addGenesisName(res *diagnostic.Diagnostics, module, name string, seen map[string]struct{}) {
	if _, ok := seen[name]; ok {
		res.AddError(diagnostic.CodeDuplicateGenesis, fmt.Sprintf("duplicate genesis config field %q", name), module, name)
		return
	}

	seen[name] = struct{}{}
}

// GenesisFieldName returns the genesis config field name of a line with a
// config attribute. An empty config name falls back to the getter, then to
// the snake_case storage name.
func GenesisFieldName(line *StorageLine) string {
	switch {
	case line.Config == nil:
		return ""
	case *line.Config != "":
		return *line.Config
	case line.Getter != "":
		return line.Getter
	default:
		return match.SnakeCase(line.Name)
	}
}
