package gen

import (
	"bytes"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"pallet-upgrade/internal/decl"
	"pallet-upgrade/internal/diagnostic"
)

// GeneratorConfig holds configuration for template generation.
type GeneratorConfig struct {
	// SupportCrate is the crate providing the pallet prelude.
	SupportCrate string
	// SystemCrate is the crate providing the system config trait.
	SystemCrate string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		SupportCrate: "frame_support",
		SystemCrate:  "frame_system",
	}
}

// Generator renders upgrade templates from legacy definitions.
type Generator struct {
	config GeneratorConfig
	logger *zap.Logger
}

// NewGenerator creates a new Generator. A nil logger discards all logs.
func NewGenerator(config GeneratorConfig, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{config: config, logger: logger}
}

// Result is a rendered template with the placeholders it contains.
type Result struct {
	Text        string
	Diagnostics diagnostic.Diagnostics
}

// Generate renders the upgrade template of def. It fails only when the
// genesis config cannot be derived, and then returns no partial text.
func (g *Generator) Generate(def *decl.Definition) (*Result, error) {
	gens := NewGenerics(def.Instantiable)
	res := &Result{}
	log := g.logger.With(zap.String("module", def.Name))

	var storages strings.Builder

	for i := range def.StorageLines {
		line := &def.StorageLines[i]
		block := renderStorageLine(def.Name, line, gens)

		if i > 0 {
			storages.WriteString("\n")
		}

		storages.WriteString(block.Text)

		for _, w := range block.Warnings {
			res.Diagnostics.Add(w)
		}

		log.Debug("rendered storage item",
			zap.String("storage", block.Name),
			zap.String("shape", decl.ShapeName(line.Shape)),
			zap.String("query", string(block.Query)),
			zap.Int("warnings", len(block.Warnings)))
	}

	sections, err := renderGenesis(def, gens)
	if err != nil {
		return nil, fmt.Errorf("deriving genesis config of %s: %w", def.Name, err)
	}

	data := skeletonData{
		ModuleName:   def.Name,
		SupportCrate: g.config.SupportCrate,
		SystemCrate:  g.config.SystemCrate,
		Generics:     gens,
		Phantom:      gens.phantom(),
		StoreVis:     ConvertVisibility(def.Visibility),
		Storages:     storages.String(),
	}

	if def.Visibility.Kind == decl.VisibilityRestricted {
		res.Diagnostics.AddWarning(diagnostic.CodeRestrictedVis,
			fmt.Sprintf("store trait visibility %q has no equivalent, left as %s",
				def.Visibility.Path, PlaceholderVisibility),
			def.Name, "Store")
	}

	switch {
	case sections != nil:
		data.GenesisConfig = sections.Config
		data.GenesisBuild = sections.Build

		log.Debug("rendered genesis config", zap.Int("fields", len(sections.Fields)))
	case !def.ExtraGenesis.IsEmpty():
		res.Diagnostics.AddInfo(diagnostic.CodeGenesisSkipped,
			fmt.Sprintf("%d extra genesis config field(s) dropped: nothing builds genesis storage",
				len(def.ExtraGenesis.Config)),
			def.Name, "GenesisConfig")
	}

	var buf bytes.Buffer
	if err := skeletonTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	res.Text = buf.String()

	return res, nil
}
