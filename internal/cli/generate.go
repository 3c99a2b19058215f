package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/stackcheck/pkg/generate"
	pkgio "github.com/matzehuels/stackcheck/pkg/io"
)

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output string
		opts   generate.Options
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write random arrival lines",
		Long: `Write random arrival lines for testing a solver. Line lengths are uniform in
[--min-length, --max-length] and ship ids uniform in [1, --max-id]. The same
seed always produces the same file.`,
		Example: `  stackcheck generate --lines 1000 --max-id 50 -o tests.txt`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			c.applyGenerateDefaults(cmd, &opts)
			if err := opts.Validate(); err != nil {
				return err
			}

			out, closeOut, err := createOutput(output)
			if err != nil {
				return fmt.Errorf("create output: %w", err)
			}

			prog := newProgress(logger)
			g := generate.New(opts)
			n := 0
			for g.Next() {
				if _, err := fmt.Fprintln(out, pkgio.FormatArrivals(g.Sequence())); err != nil {
					closeOut()
					return fmt.Errorf("write: %w", err)
				}
				n++
			}
			if err := closeOut(); err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Generated %d lines (seed %d)", n, opts.Seed))

			if output != "" {
				printSuccess("Wrote %d arrival lines", n)
				printFile(output)
				printNextStep("Solve them", "stackcheck solve "+output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().IntVarP(&opts.Lines, "lines", "n", 0, "number of lines (default from config)")
	cmd.Flags().IntVar(&opts.MaxID, "max-id", 0, "largest ship id (default from config)")
	cmd.Flags().IntVar(&opts.MinLength, "min-length", 0, "shortest line")
	cmd.Flags().IntVar(&opts.MaxLength, "max-length", 0, "longest line (default from config)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (default from config)")

	return cmd
}

// applyGenerateDefaults fills options whose flags were not set from the
// config file.
func (c *CLI) applyGenerateDefaults(cmd *cobra.Command, opts *generate.Options) {
	cfg := c.config.Generate.Options()
	flags := cmd.Flags()
	if !flags.Changed("lines") {
		opts.Lines = cfg.Lines
	}
	if !flags.Changed("max-id") {
		opts.MaxID = cfg.MaxID
	}
	if !flags.Changed("min-length") {
		opts.MinLength = cfg.MinLength
	}
	if !flags.Changed("max-length") {
		opts.MaxLength = cfg.MaxLength
	}
	if !flags.Changed("seed") {
		opts.Seed = cfg.Seed
	}
}
