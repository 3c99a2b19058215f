package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/stackcheck/pkg/checker"
	serrors "github.com/matzehuels/stackcheck/pkg/errors"
	pkgio "github.com/matzehuels/stackcheck/pkg/io"
	"github.com/matzehuels/stackcheck/pkg/pipeline"
	"github.com/matzehuels/stackcheck/pkg/store"
)

// errRejected is returned under --strict when a run did not pass.
var errRejected = errors.New("not every case was accepted")

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	format        string        // report format: text or json
	output        string        // report file, stdout if empty
	label         string        // label stored with the run
	timeout       time.Duration // per-case feasibility timeout, overrides config
	maxContainers int           // longest arrival line to grade
	noMemo        bool          // disable memoization in the feasibility search
	noCache       bool          // do not read or write cached solutions
	refresh       bool          // recompute solutions but update the cache
	failuresOnly  bool          // text report lists only cases that were not accepted
	interactive   bool          // browse cases in a terminal UI
	strict        bool          // exit non-zero unless every case is accepted
}

// checkCommand creates the check command.
func (c *CLI) checkCommand() *cobra.Command {
	opts := checkOpts{format: pipeline.FormatText}

	cmd := &cobra.Command{
		Use:   "check <input> [candidates]",
		Short: "Grade candidate solutions against an arrival file",
		Long: `Grade candidate solutions against an arrival file.

Each line of <input> is an arrival sequence such as "3,1,2". The matching line
of [candidates] (stdin when omitted or "-") holds the reported stack count
followed by the stacks, bottom to top: "2 3,1 2". A [candidates] file ending
in .json is read as the output of "stackcheck solve --json".

Reading stops at the end of <input> or at the first line that cannot be parsed.`,
		Example: `  mysolver < tests.txt | stackcheck check tests.txt
  stackcheck check tests.txt answers.txt --format json -o report.json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pipeline.ValidateFormat(opts.format); err != nil {
				return err
			}
			candidates := "-"
			if len(args) == 2 {
				candidates = args[1]
			}
			return c.runCheck(cmd, args[0], candidates, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "report format: text, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the report to a file")
	cmd.Flags().StringVar(&opts.label, "label", "", "label stored with the run")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "feasibility timeout per case (default from config)")
	cmd.Flags().IntVar(&opts.maxContainers, "max-containers", 0, "skip arrival lines longer than this (default from config, -1 for no limit)")
	cmd.Flags().BoolVar(&opts.noMemo, "no-memo", false, "disable memoization in the feasibility search")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the solution cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute cached solutions")
	cmd.Flags().BoolVar(&opts.failuresOnly, "failures", false, "only list cases that were not accepted")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse the graded cases")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit with an error unless every case is accepted")

	return cmd
}

func (c *CLI) runCheck(cmd *cobra.Command, inputPath, candidatesPath string, opts checkOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if inputPath == "-" && (candidatesPath == "-" || candidatesPath == "") {
		return fmt.Errorf("input and candidates cannot both be read from stdin")
	}

	input, closeInput, err := openInput(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer closeInput()

	candidates, closeCandidates, err := openInput(candidatesPath)
	if err != nil {
		return fmt.Errorf("open candidates: %w", err)
	}
	defer closeCandidates()

	var src pipeline.CaseSource = pkgio.NewCaseReader(input, candidates)
	if filepath.Ext(candidatesPath) == ".json" {
		solutions, err := pkgio.ReadSolutionsJSON(candidates)
		if err != nil {
			return serrors.Wrap(serrors.ErrCodeInvalidInput, err, "read %s", candidatesPath)
		}
		src = pkgio.NewSolutionCaseReader(input, solutions)
	}

	runner, err := c.newRunner(ctx, runnerOpts{noCache: opts.noCache})
	if err != nil {
		return err
	}
	defer runner.Close(ctx)

	if opts.timeout > 0 {
		runner.Checker.Timeout = opts.timeout
	}
	if opts.noMemo {
		runner.Checker.Verifier.Memoize = false
	}
	maxContainers := c.config.Check.MaxContainers
	if opts.maxContainers != 0 {
		maxContainers = opts.maxContainers
	}

	var (
		spinner *Spinner
		counts  tally
	)
	if opts.format == pipeline.FormatText && !opts.interactive && opts.output == "" {
		spinner = newSpinner(ctx, os.Stderr, "Checking cases")
		spinner.Start()
	}

	prog := newProgress(logger)
	run, err := runner.Run(ctx, src, pipeline.Options{
		Label:         opts.label,
		Input:         filepath.Base(inputPath),
		MaxContainers: maxContainers,
		Refresh:       opts.refresh,
		Progress: func(res store.CaseResult) {
			counts.add(res.Reason == string(checker.ReasonAccepted), res.Error != "")
			if spinner != nil {
				spinner.SetMessage(fmt.Sprintf("Checking line %d: %s", res.Line, counts))
			}
		},
	})
	if spinner != nil {
		spinner.Stop()
	}
	if run == nil || errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		// a run that could not be saved is still reported
		logger.Error("run incomplete", "err", err)
	}
	prog.done(fmt.Sprintf("Checked %d cases", run.Total()), "accepted", run.Accepted, "rejected", run.Rejected, "run", run.ID)

	if opts.interactive {
		if _, err := tea.NewProgram(NewCaseListModel(run), tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("case browser: %w", err)
		}
	} else if err := writeReport(run, opts); err != nil {
		return err
	}

	if opts.strict && !run.Passed() {
		return errRejected
	}
	return nil
}

func writeReport(run *store.Run, opts checkOpts) error {
	out, closeOut, err := createOutput(opts.output)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}

	switch opts.format {
	case pipeline.FormatJSON:
		err = pkgio.WriteReport(out, run)
	default:
		writeTextReport(out, run, opts.failuresOnly)
	}
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Wrote report for %d cases (%d accepted)", run.Total(), run.Accepted)
		printFile(opts.output)
	}
	if run.Failed > 0 {
		printWarning("%d cases could not be graded", run.Failed)
	}
	return nil
}

// ExitCode maps an error returned by the root command to a process exit
// status: 2 for a check that did not pass under --strict, 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errRejected):
		return 2
	default:
		return 1
	}
}
