package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordlog/internal/model"
)

const shareText = "Wordle 1360 5/6*\n\n\U0001F7E9\u2B1B\u2B1B\u2B1B\U0001F7E9\n\U0001F7E9\U0001F7E9\U0001F7E9\U0001F7E9\U0001F7E9\n\nSkill 99/99\nLuck 45/99"

func TestPreviewShowsParsedResult(t *testing.T) {
	m := NewModel("Alice")
	m.input.SetValue(shareText)
	m.refresh()
	if m.parseErr != nil {
		t.Fatalf("unexpected parse error: %v", m.parseErr)
	}
	if m.record.Attempts != model.Attempts(5) {
		t.Fatalf("expected 5 attempts, got %v", m.record.Attempts)
	}
	view := m.View()
	for _, want := range []string{"Alice", "Puzzle 1360", "5/6 (hard mode)", "Luck 45/99"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestSubmitRequiresParseableText(t *testing.T) {
	m := NewModel("Alice")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.Submitted() {
		t.Fatalf("empty input must not submit")
	}

	m.input.SetValue("not a result")
	m.refresh()
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.Submitted() {
		t.Fatalf("unparseable input must not submit")
	}

	m.input.SetValue(shareText)
	m.refresh()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !m.Submitted() || cmd == nil {
		t.Fatalf("expected parseable input to submit and quit")
	}
	if m.Text() != shareText {
		t.Fatalf("unexpected text: %q", m.Text())
	}
}

func TestRenderGridRowKeepsUnknown(t *testing.T) {
	out := RenderGridRow("G?")
	if !strings.HasSuffix(out, "?") {
		t.Fatalf("expected unknown char to pass through: %q", out)
	}
}
