package cli

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/stackcheck/pkg/store"
)

func sampleRun() *store.Run {
	return &store.Run{
		ID:       "run-1",
		Accepted: 2,
		Rejected: 1,
		Failed:   1,
		Reasons:  map[string]int{"accepted": 2, "above_optimal": 1},
		Cases: []store.CaseResult{
			{Line: 1, Input: "3,1,2", Output: "2 3,1 2", Optimal: "2 3,1 2", Reason: "accepted", Message: "Accepted"},
			{Line: 2, Input: "1,2,3", Output: "3 1 2 3", Optimal: "3 1 2 3", Reason: "accepted", Message: "Accepted"},
			{Line: 3, Input: "1,1", Output: "2 1 1", Optimal: "1 1,1", Reason: "above_optimal", Message: "Too many stacks"},
			{Line: 4, Input: "9,8,7", Output: "1 9,8,7", Error: "TIMEOUT", Message: "Failed: timed out"},
		},
	}
}

func TestWriteTextReport(t *testing.T) {
	var buf bytes.Buffer
	writeTextReport(&buf, sampleRun(), false)
	out := buf.String()

	for _, want := range []string{"3,1,2", "Too many stacks", "Failed: timed out", "above_optimal", "failed", "total"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTextReportFailuresOnly(t *testing.T) {
	var buf bytes.Buffer
	writeTextReport(&buf, sampleRun(), true)
	out := buf.String()

	if strings.Contains(out, "1,2,3") {
		t.Errorf("accepted case should be hidden:\n%s", out)
	}
	if !strings.Contains(out, "1,1") {
		t.Errorf("rejected case should be listed:\n%s", out)
	}
}

func TestWriteTextReportStopped(t *testing.T) {
	run := sampleRun()
	run.StoppedAt = 5
	run.StopReason = "arrivals line 5: bad id"

	var buf bytes.Buffer
	writeTextReport(&buf, run, false)
	if !strings.Contains(buf.String(), "stopped at line 5") {
		t.Errorf("report should mention where reading stopped:\n%s", buf.String())
	}
}

func TestSummaryTableSkipsUnusedReasons(t *testing.T) {
	out := summaryTable(sampleRun())
	if strings.Contains(out, "below_optimal") {
		t.Errorf("unused reason listed:\n%s", out)
	}
	if !strings.Contains(out, "accepted") {
		t.Errorf("accepted row missing:\n%s", out)
	}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCaseListNavigation(t *testing.T) {
	m := NewCaseListModel(sampleRun())

	if got := m.Current().Line; got != 1 {
		t.Fatalf("initial case = line %d, want 1", got)
	}

	var model tea.Model = m
	for range 5 {
		model, _ = model.Update(keyPress("j"))
	}
	m = model.(CaseListModel)
	if got := m.Current().Line; got != 4 {
		t.Errorf("after moving down = line %d, want 4", got)
	}

	model, _ = m.Update(keyPress("k"))
	m = model.(CaseListModel)
	if got := m.Current().Line; got != 3 {
		t.Errorf("after moving up = line %d, want 3", got)
	}
}

func TestCaseListFailuresOnly(t *testing.T) {
	m := NewCaseListModel(sampleRun())

	model, _ := m.Update(keyPress("f"))
	m = model.(CaseListModel)
	if !m.FailuresOnly {
		t.Fatal("f should toggle the filter")
	}
	if got := m.Current().Line; got != 3 {
		t.Errorf("first visible case = line %d, want 3", got)
	}
	if !strings.Contains(m.View(), "[1/2]") {
		t.Errorf("view should count visible cases:\n%s", m.View())
	}
}

func TestCaseListEmpty(t *testing.T) {
	m := NewCaseListModel(&store.Run{})
	if m.Current() != nil {
		t.Error("empty run should have no current case")
	}
	if !strings.Contains(m.View(), "nothing to show") {
		t.Errorf("unexpected view:\n%s", m.View())
	}
}

func TestCaseListQuit(t *testing.T) {
	_, cmd := NewCaseListModel(sampleRun()).Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("1,2,3,4,5,6", 5); got != "1,2,…" {
		t.Errorf("truncate = %q", got)
	}
}
