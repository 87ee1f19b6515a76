package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pallet-upgrade/internal/decl"
)

func newConvertCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <definition>",
		Short: "Rewrite a definition as canonical YAML",
		Long: `convert loads a YAML or HCL definition, validates it and prints it back as
YAML with hashers and kinds in their canonical spelling. It is not gated by
the environment switch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd.OutOrStdout(), args[0])
		},
	}

	c.bindInputFlags(cmd)

	return cmd
}

func (c *cli) runConvert(stdout io.Writer, path string) error {
	def, diags, err := c.load(path)
	if err != nil {
		return err
	}

	data, err := decl.Marshal(def)
	if err != nil {
		return fmt.Errorf("encoding definition %s: %w", path, err)
	}

	c.logger.Debug("definition converted", zap.String("path", path), zap.Int("bytes", len(data)))
	c.summarize(path, diags)

	return c.deliver(stdout, data)
}
