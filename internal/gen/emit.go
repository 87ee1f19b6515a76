package gen

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"pallet-upgrade/internal/decl"
)

// EnvPrintUpgrade is the switch enabling template output. Any value,
// including the empty string, turns it on.
const EnvPrintUpgrade = "PRINT_PALLET_UPGRADE"

// FailurePrefix starts the diagnostic line written when generation aborts.
const FailurePrefix = "Could not print upgrade due compile error: "

// Options controls a single Emit call.
type Options struct {
	// Enabled gates all output. A disabled Emit has no side effects.
	Enabled bool
}

// OptionsFromEnv reads the activation switch once through lookup,
// typically os.LookupEnv.
func OptionsFromEnv(lookup func(string) (string, bool)) Options {
	_, ok := lookup(EnvPrintUpgrade)

	return Options{Enabled: ok}
}

// Emit generates the template of def and writes it to w. When generation
// fails only a diagnostic line is written and the error is returned.
// A disabled Emit returns (nil, nil) without touching w.
func (g *Generator) Emit(w io.Writer, def *decl.Definition, opts Options) (*Result, error) {
	if !opts.Enabled {
		return nil, nil
	}

	res, err := g.Generate(def)
	if err != nil {
		g.logger.Error("template generation aborted", zap.String("module", def.Name), zap.Error(err))

		if _, werr := fmt.Fprintf(w, "%s%v\n", FailurePrefix, err); werr != nil {
			return nil, fmt.Errorf("writing diagnostic: %w", werr)
		}

		return nil, err
	}

	for _, d := range res.Diagnostics.Warnings {
		g.logger.Warn("placeholder emitted",
			zap.String("module", d.Module),
			zap.String("item", d.Item),
			zap.String("code", d.Code),
			zap.String("message", d.Message))
	}

	for _, d := range res.Diagnostics.Infos {
		g.logger.Info("template note",
			zap.String("module", d.Module),
			zap.String("item", d.Item),
			zap.String("code", d.Code),
			zap.String("message", d.Message))
	}

	n, err := io.WriteString(w, res.Text)
	if err != nil {
		return nil, fmt.Errorf("writing template: %w", err)
	}

	g.logger.Info("template emitted",
		zap.String("module", def.Name),
		zap.Int("bytes", n),
		zap.Int("warnings", len(res.Diagnostics.Warnings)))

	return res, nil
}
