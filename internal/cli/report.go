package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/stackcheck/pkg/checker"
	"github.com/matzehuels/stackcheck/pkg/store"
)

// caseStatus renders the verdict line of one case.
func caseStatus(c store.CaseResult) string {
	switch {
	case c.Error != "":
		return styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(c.Message)
	case c.Reason == string(checker.ReasonAccepted):
		return styleIconSuccess.Render(iconSuccess) + " " + StyleSuccess.Render(c.Message)
	default:
		return styleIconError.Render(iconError) + " " + StyleError.Render(c.Message)
	}
}

// writeCase writes the verdict of one case followed by the input, the
// candidate and the optimal solution.
func writeCase(w io.Writer, c store.CaseResult) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", StyleDim.Render(fmt.Sprintf("%4d", c.Line)), caseStatus(c))
	fmt.Fprintln(w, "     "+keyValue("Input:", c.Input))
	fmt.Fprintln(w, "     "+keyValue("Output:", c.Output))
	fmt.Fprintln(w, "     "+keyValue("Optimal solution:", c.Optimal))
}

// writeTextReport writes every case, or only the ones that were not
// accepted when failuresOnly is set, then the summary.
func writeTextReport(w io.Writer, run *store.Run, failuresOnly bool) {
	for _, c := range run.Cases {
		if failuresOnly && c.Reason == string(checker.ReasonAccepted) {
			continue
		}
		writeCase(w, c)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, summaryTable(run))
	if run.StopReason != "" {
		fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+
			StyleWarning.Render(fmt.Sprintf("stopped at line %d: %s", run.StoppedAt, run.StopReason)))
	}
}

// summaryTable renders the per-reason counts of a run.
func summaryTable(run *store.Run) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	var rows [][]string
	for _, reason := range checker.Reasons {
		n := run.Reasons[string(reason)]
		if n == 0 && reason != checker.ReasonAccepted {
			continue
		}
		rows = append(rows, []string{string(reason), strconv.Itoa(n)})
	}
	if run.Failed > 0 {
		rows = append(rows, []string{"failed", strconv.Itoa(run.Failed)})
	}
	rows = append(rows, []string{"total", strconv.Itoa(run.Total())})

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Result", "Cases").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if col == 1 {
				base = base.Align(lipgloss.Right)
			}
			switch rows[row][0] {
			case string(checker.ReasonAccepted):
				return base.Foreground(colorGreen)
			case "failed":
				return base.Foreground(colorYellow)
			case "total":
				return base.Bold(true)
			}
			return base.Foreground(colorRed)
		})

	return t.Render()
}
