package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	serrors "github.com/matzehuels/stackcheck/pkg/errors"
	pkgio "github.com/matzehuels/stackcheck/pkg/io"
	"github.com/matzehuels/stackcheck/pkg/render"
	"github.com/matzehuels/stackcheck/pkg/stacking"
)

// Render output formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file, stdout if empty
	format    string // dot or svg
	line      int    // 1-based arrival line to draw
	candidate string // candidate line to draw instead of the optimal stacking
	labeled   bool   // caption each stack
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG, line: 1}

	cmd := &cobra.Command{
		Use:   "render [input]",
		Short: "Draw a stacking as Graphviz DOT or SVG",
		Long: `Draw the optimal stacking of one arrival line of [input] (stdin when omitted
or "-"), or the stacking given with --candidate. Each stack is a column with
its bottom container at the bottom.`,
		Example: `  stackcheck render tests.txt --line 3 -o line3.svg
  echo 3,1,2 | stackcheck render --candidate "2 3,1 2" --format dot`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatDOT && opts.format != formatSVG {
				return serrors.New(serrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: dot, svg)", opts.format)
			}
			if opts.line < 1 {
				return serrors.New(serrors.ErrCodeInvalidInput, "line must be at least 1")
			}
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return c.runRender(cmd, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, dot")
	cmd.Flags().IntVarP(&opts.line, "line", "l", opts.line, "arrival line to draw")
	cmd.Flags().StringVar(&opts.candidate, "candidate", "", `candidate line to draw, e.g. "2 3,1 2"`)
	cmd.Flags().BoolVar(&opts.labeled, "labels", false, "caption each stack")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	in, closeIn, err := openInput(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer closeIn()

	arrivals, text, err := readLine(in, opts.line)
	if err != nil {
		return err
	}

	var (
		stacks stacking.Partition
		cached bool
	)
	if opts.candidate != "" {
		_, stacks, err = pkgio.ParseCandidate(opts.candidate)
		if err != nil {
			return serrors.Wrap(serrors.ErrCodeInvalidInput, err, "candidate")
		}
	} else {
		runner, err := c.newRunner(ctx, runnerOpts{noStore: true})
		if err != nil {
			return err
		}
		defer runner.Close(ctx)

		stacks, cached, err = runner.SolveWithCacheInfo(ctx, arrivals, false)
		if err != nil {
			return err
		}
	}

	prog := newProgress(logger)
	data := []byte(render.ToDOT(stacks, render.Options{Title: text + "  →  " + pkgio.FormatStacks(stacks), Labeled: opts.labeled}))
	if opts.format == formatSVG {
		if data, err = render.RenderSVG(ctx, string(data)); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Rendered %d stacks", len(stacks)))

	if opts.output == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Rendered %d containers on %d stacks %s", len(arrivals), len(stacks), cacheLabel(cached))
	printFile(opts.output)
	return nil
}

// readLine returns the arrivals on the given 1-based line of r. Like
// check, it gives up at the first line that cannot be parsed.
func readLine(r io.Reader, line int) ([]int, string, error) {
	reader := pkgio.NewArrivalReader(r)
	for {
		arrivals, text, err := reader.Next()
		switch {
		case errors.Is(err, io.EOF):
			return nil, "", serrors.New(serrors.ErrCodeNotFound, "input has only %d lines", reader.Line())
		case err != nil:
			return nil, "", err
		case reader.Line() == line:
			return arrivals, text, nil
		}
	}
}
