package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/stackcheck/pkg/checker"
	"github.com/matzehuels/stackcheck/pkg/store"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// CaseListModel - Interactive browser over the cases of a run
// =============================================================================

// CaseListModel is the bubbletea model for browsing graded cases.
type CaseListModel struct {
	Run          *store.Run
	Cursor       int
	Height       int
	Offset       int
	FailuresOnly bool

	visible []int // indexes into Run.Cases
}

// NewCaseListModel creates a case browser for run.
func NewCaseListModel(run *store.Run) CaseListModel {
	m := CaseListModel{Run: run, Height: 12}
	m.filter()
	return m
}

// filter recomputes the visible cases and clamps the cursor.
func (m *CaseListModel) filter() {
	m.visible = make([]int, 0, len(m.Run.Cases))
	for i, c := range m.Run.Cases {
		if m.FailuresOnly && c.Reason == string(checker.ReasonAccepted) {
			continue
		}
		m.visible = append(m.visible, i)
	}
	m.Cursor = min(m.Cursor, max(len(m.visible)-1, 0))
	m.Offset = min(m.Offset, m.Cursor)
}

// Current returns the selected case, or nil when nothing is visible.
func (m CaseListModel) Current() *store.CaseResult {
	if len(m.visible) == 0 {
		return nil
	}
	return &m.Run.Cases[m.visible[m.Cursor]]
}

func (m CaseListModel) Init() tea.Cmd {
	return nil
}

func (m CaseListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.visible)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "f":
			m.FailuresOnly = !m.FailuresOnly
			m.filter()
		}
	case tea.WindowSizeMsg:
		// leave room for the title, the detail pane and the footer
		m.Height = max(msg.Height-14, 5)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m CaseListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Graded Cases"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  f failures only  q quit"))
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(StyleSuccess.Render("  nothing to show"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.visible))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		c := m.Run.Cases[m.visible[i]]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		result := c.Reason
		if c.Error != "" {
			result = strings.ToLower(c.Error)
		}
		rows = append(rows, []string{cursor, strconv.Itoa(c.Line), result, truncate(c.Input, 40)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Line", "Result", "Input").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.visible) {
				return lipgloss.NewStyle()
			}
			c := m.Run.Cases[m.visible[idx]]

			base := lipgloss.NewStyle()
			if col == 3 {
				base = base.Foreground(colorGray)
			} else {
				switch {
				case c.Error != "":
					base = base.Foreground(colorYellow)
				case c.Reason == string(checker.ReasonAccepted):
					base = base.Foreground(colorGreen)
				default:
					base = base.Foreground(colorRed)
				}
			}
			if idx == m.Cursor {
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")

	c := m.Current()
	b.WriteString(caseStatus(*c))
	b.WriteString("\n")
	b.WriteString("  " + keyValue("Input:", c.Input) + "\n")
	b.WriteString("  " + keyValue("Output:", c.Output) + "\n")
	b.WriteString("  " + keyValue("Optimal solution:", c.Optimal) + "\n")
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.visible))))

	return b.String()
}

// truncate shortens s to n runes with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
