package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pallet-upgrade/internal/decl"
	"pallet-upgrade/internal/diagnostic"
	"pallet-upgrade/internal/gen"
)

// cli holds the flag values and the logger shared by all commands.
type cli struct {
	lookup func(string) (string, bool)
	logger *zap.Logger

	format       string
	output       string
	supportCrate string
	systemCrate  string
	verbose      bool
	dump         bool
}

// newRootCmd builds the root command. lookup reads the environment once per
// run. A nil logger is replaced by a production logger on stderr.
func newRootCmd(lookup func(string) (string, bool), logger *zap.Logger) *cobra.Command {
	c := &cli{lookup: lookup, logger: logger}

	cmd := &cobra.Command{
		Use:   "pallet-upgrade <definition>",
		Short: "Print the pallet upgrade template of a legacy storage declaration",
		Long: `pallet-upgrade renders the attribute-style pallet skeleton equivalent to a
legacy decl_storage definition written in YAML or HCL.

Nothing is read or printed unless ` + gen.EnvPrintUpgrade + ` is set.

Example:
  ` + gen.EnvPrintUpgrade + `=1 pallet-upgrade examples/balances.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runUpgrade(cmd.OutOrStdout(), args[0], gen.OptionsFromEnv(c.lookup))
		},
	}

	cmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&c.dump, "dump", false, "log the loaded definition at debug level")

	c.bindInputFlags(cmd)
	cmd.Flags().StringVar(&c.supportCrate, "support-crate", gen.DefaultGeneratorConfig().SupportCrate,
		"crate providing the pallet macros")
	cmd.Flags().StringVar(&c.systemCrate, "system-crate", gen.DefaultGeneratorConfig().SystemCrate,
		"crate providing the system config trait")

	cmd.AddCommand(newConvertCmd(c))

	return cmd
}

// bindInputFlags adds the flags every command reading a definition takes.
func (c *cli) bindInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&c.format, "format", "f", "", "definition format: yaml or hcl (default: from extension)")
	cmd.Flags().StringVarP(&c.output, "output", "o", "", "write the result to a file instead of stdout")
}

func (c *cli) initLogger() error {
	if c.logger != nil {
		return nil
	}

	config := zap.NewProductionConfig()
	if c.verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	c.logger = logger

	return nil
}

// load reads and validates the definition at path.
func (c *cli) load(path string) (*decl.Definition, *diagnostic.Diagnostics, error) {
	var format decl.Format

	if c.format != "" {
		f, err := decl.ParseFormat(c.format)
		if err != nil {
			return nil, nil, err
		}

		format = f
	}

	def, err := decl.LoadFile(path, format)
	if err != nil {
		return nil, nil, err
	}

	if c.dump {
		c.logger.Debug("loaded definition", zap.String("path", path), zap.String("dump", spew.Sdump(def)))
	}

	diags := decl.Validate(def)
	for _, w := range diags.Warnings {
		c.logger.Warn("definition warning", zap.String("diagnostic", w.String()))
	}

	if diags.HasErrors() {
		for _, e := range diags.Errors {
			c.logger.Error("invalid definition", zap.String("diagnostic", e.String()))
		}

		return nil, nil, fmt.Errorf("invalid definition %s: %w", path, diags.Error())
	}

	return def, diags, nil
}

// summarize logs the diagnostic counts of one processed definition.
func (c *cli) summarize(path string, diags *diagnostic.Diagnostics) {
	c.logger.Info("definition processed",
		zap.String("path", path),
		zap.Int("warnings", len(diags.Warnings)),
		zap.Int("notes", len(diags.Infos)))
}

// deliver writes data to the output file when one is set, else to stdout.
func (c *cli) deliver(stdout io.Writer, data []byte) error {
	if c.output != "" {
		return gen.WriteOutput(c.output, data)
	}

	_, err := stdout.Write(data)

	return err
}

func (c *cli) runUpgrade(stdout io.Writer, path string, opts gen.Options) error {
	if !opts.Enabled {
		c.logger.Debug("template output disabled", zap.String("env", gen.EnvPrintUpgrade))
		return nil
	}

	def, diags, err := c.load(path)
	if err != nil {
		return err
	}

	g := gen.NewGenerator(gen.GeneratorConfig{
		SupportCrate: c.supportCrate,
		SystemCrate:  c.systemCrate,
	}, c.logger)

	var buf bytes.Buffer

	res, err := g.Emit(&buf, def, opts)
	if err != nil {
		// The failure line goes to stdout and any existing output file is kept.
		if _, werr := stdout.Write(buf.Bytes()); werr != nil {
			return errors.Join(err, werr)
		}

		return err
	}

	diags.Merge(res.Diagnostics)
	c.summarize(path, diags)

	return c.deliver(stdout, buf.Bytes())
}
