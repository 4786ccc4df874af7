// Package tui provides the Bubble Tea screen for pasting share text.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordlog/internal/model"
	"github.com/verte-zerg/wordlog/internal/parse"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))

	squareStyles = map[rune]lipgloss.Style{
		'G': lipgloss.NewStyle().Background(lipgloss.Color("#6AAA64")),
		'Y': lipgloss.NewStyle().Background(lipgloss.Color("#C9B458")),
		'B': lipgloss.NewStyle().Background(lipgloss.Color("#3A3A3C")),
		'W': lipgloss.NewStyle().Background(lipgloss.Color("#D3D6DA")),
	}
)

// Model implements the Bubble Tea paste screen.
type Model struct {
	name  string
	input textarea.Model

	record   model.ResultRecord
	parseErr error

	width  int
	height int

	submitted bool
}

// NewModel constructs a paste screen for the given player.
func NewModel(name string) *Model {
	input := textarea.New()
	input.Placeholder = "Paste your Wordle share text here"
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.SetHeight(12)
	input.Focus()
	m := &Model{name: name, input: input}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if msg.Width > 4 {
			m.input.SetWidth(msg.Width - 2)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlS, tea.KeyCtrlD:
			if m.parseErr == nil {
				m.submitted = true
				return m, tea.Quit
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Log a result for %s", m.name)))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderPreview())
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("ctrl+s save • esc cancel"))
	return b.String()
}

// Text returns the pasted share text.
func (m *Model) Text() string {
	return m.input.Value()
}

// Submitted reports whether the user confirmed a parseable result.
func (m *Model) Submitted() bool {
	return m.submitted
}

func (m *Model) refresh() {
	if strings.TrimSpace(m.input.Value()) == "" {
		m.record = model.ResultRecord{}
		m.parseErr = parse.ErrFormat
		return
	}
	m.record, m.parseErr = parse.Parse(m.input.Value())
}

func (m *Model) renderPreview() string {
	if m.parseErr != nil {
		if strings.TrimSpace(m.input.Value()) == "" {
			return footerStyle.Render("Waiting for share text...")
		}
		return errorStyle.Render(m.parseErr.Error())
	}
	rec := m.record
	mode := ""
	if rec.HardMode {
		mode = " (hard mode)"
	}
	lines := []string{
		okStyle.Render(fmt.Sprintf("Puzzle %d  %s%s  Skill %d/99  Luck %d/99", rec.PuzzleNumber, rec.Attempts.Score(), mode, rec.Skill, rec.Luck)),
	}
	for _, row := range rec.Grid {
		lines = append(lines, RenderGridRow(row))
	}
	return strings.Join(lines, "\n")
}

// RenderGridRow draws a letter-coded grid row as coloured cells. Unknown
// characters are printed as they are.
func RenderGridRow(row string) string {
	var b strings.Builder
	for _, r := range row {
		if style, ok := squareStyles[r]; ok {
			b.WriteString(style.Render("  "))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
