package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/stackcheck/pkg/io"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	output  string // output file, stdout if empty
	json    bool   // write a JSON array of solutions instead of candidate lines
	noCache bool
	refresh bool
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [input]",
		Short: "Print optimal stackings for arrival lines",
		Long: `Print an optimal stacking for every arrival line of [input] (stdin when
omitted or "-"), one candidate line per input line. The output is accepted by
"stackcheck check", which makes this a reference solution.`,
		Example: `  stackcheck solve tests.txt | stackcheck check tests.txt`,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return c.runSolve(cmd, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().BoolVar(&opts.json, "json", false, "write solutions as JSON")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the solution cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute cached solutions")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, path string, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	in, closeIn, err := openInput(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer closeIn()

	runner, err := c.newRunner(ctx, runnerOpts{noCache: opts.noCache, noStore: true})
	if err != nil {
		return err
	}
	defer runner.Close(ctx)

	out, closeOut, err := createOutput(opts.output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	prog := newProgress(logger)
	var (
		solutions      []pkgio.Solution
		solved, cached int
	)
	reader := pkgio.NewArrivalReader(in)
	for {
		arrivals, _, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			logger.Warn("stopped reading input", "err", err)
			break
		}

		p, hit, err := runner.SolveWithCacheInfo(ctx, arrivals, opts.refresh)
		if err != nil {
			closeOut()
			return err
		}
		solved++
		if hit {
			cached++
		}

		if opts.json {
			solutions = append(solutions, pkgio.Solution{Arrivals: arrivals, Stacks: p})
			continue
		}
		if _, err := fmt.Fprintln(out, pkgio.FormatPartition(p)); err != nil {
			closeOut()
			return fmt.Errorf("write solution: %w", err)
		}
	}

	if opts.json {
		if err := pkgio.WriteSolutionsJSON(out, solutions); err != nil {
			closeOut()
			return err
		}
	}
	if err := closeOut(); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Solved %d lines, %d from cache", solved, cached))
	if opts.output != "" {
		printSuccess("Wrote %d solutions", solved)
		printFile(opts.output)
		printNextStep("Check them", fmt.Sprintf("stackcheck check %s %s", path, opts.output))
	}
	return nil
}
