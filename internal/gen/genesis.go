package gen

import (
	"fmt"
	"strings"

	"pallet-upgrade/internal/decl"
	"pallet-upgrade/internal/genesis"
)

// genesisSections is the rendered genesis part of a template.
type genesisSections struct {
	// Config holds the aggregate declaration and its Default impl.
	Config string
	// Build holds the genesis build impl.
	Build string
	// Fields are the derived fields, in declaration order.
	Fields []genesis.Field
}

// renderGenesis renders the genesis sections of def. It returns nil when
// no storage line contributes a build block.
func renderGenesis(def *decl.Definition, gens Generics) (*genesisSections, error) {
	blocks := genesis.BuildBlocks(def, gens.Use)
	if len(blocks) == 0 {
		return nil, nil
	}

	cd, err := genesis.FromDefinition(def)
	if err != nil {
		return nil, err
	}

	ggens := gens.genesis(cd.IsGeneric)

	var decls, defaults strings.Builder

	for _, f := range cd.Fields {
		decls.WriteString("\n")

		for _, attr := range f.Attrs {
			fmt.Fprintf(&decls, "\t\t#[%s]\n", attr)
		}

		fmt.Fprintf(&decls, "\t\tpub %s: %s,", f.Name, f.Type)
		fmt.Fprintf(&defaults, "\n\t\t\t\t%s: %s,", f.Name, f.Default)
	}

	var config strings.Builder

	fmt.Fprintf(&config, "\t#[pallet::genesis_config]\n")
	fmt.Fprintf(&config, "\tpub struct GenesisConfig%s\n", ggens.Decl)
	fmt.Fprintf(&config, "\t\t// TODO_MAYBE_WHERE_CLAUSE\n")
	fmt.Fprintf(&config, "\t{%s\n\t}\n\n", decls.String())
	fmt.Fprintf(&config, "\t#[cfg(feature = \"std\")]\n")
	fmt.Fprintf(&config, "\timpl%s Default for GenesisConfig%s\n", ggens.Impl, ggens.Use)
	fmt.Fprintf(&config, "\t\t// TODO_MAYBE_WHERE_CLAUSE\n")
	fmt.Fprintf(&config, "\t{\n\t\tfn default() -> Self {\n\t\t\tSelf {%s\n\t\t\t}\n\t\t}\n\t}\n", defaults.String())

	var body strings.Builder

	for _, b := range blocks {
		body.WriteString("\t\t\t{\n")

		for _, frag := range b.Fragments {
			fmt.Fprintf(&body, "\t\t\t\t%s\n", frag)
		}

		body.WriteString("\t\t\t}\n")
	}

	var build strings.Builder

	fmt.Fprintf(&build, "\t#[pallet::genesis_build]\n")
	fmt.Fprintf(&build, "\timpl%s GenesisBuild%s for GenesisConfig%s\n", gens.Impl, gens.Use, ggens.Use)
	fmt.Fprintf(&build, "\t\t// TODO_MAYBE_WHERE_CLAUSE\n")
	fmt.Fprintf(&build, "\t{\n\t\tfn build(&self) {\n%s\t\t}\n\t}\n", body.String())

	return &genesisSections{
		Config: config.String(),
		Build:  build.String(),
		Fields: cd.Fields,
	}, nil
}
