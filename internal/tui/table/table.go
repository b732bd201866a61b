// Package table shows tabular command output, interactively when stdout is a
// terminal and as aligned plain text otherwise.
package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var baseStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#334455"))

type TableConfig struct {
	Columns []table.Column
	Rows    []table.Row
	Focused bool
	Height  int
}

func (c TableConfig) ReturnTable() table.Model {
	height := c.Height
	if height <= 0 || height > len(c.Rows)+1 {
		height = len(c.Rows) + 1
	}

	t := table.New(
		table.WithColumns(c.Columns),
		table.WithRows(c.Rows),
		table.WithFocused(c.Focused),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#334455")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#0AF")).
		Background(lipgloss.Color("#224")).
		Bold(false)
	t.SetStyles(s)

	return t
}

type TableModel struct {
	table table.Model
}

func NewTableModel(t table.Model) TableModel {
	return TableModel{table: t}
}

func (m TableModel) Init() tea.Cmd { return nil }

func (m TableModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "ctrl+c", "enter":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m TableModel) View() string {
	return baseStyle.Render(m.table.View()) + "\n"
}

// Show runs the table until the user quits.
func (c TableConfig) Show() error {
	if _, err := tea.NewProgram(NewTableModel(c.ReturnTable())).Run(); err != nil {
		return fmt.Errorf("error running table: %w", err)
	}
	return nil
}

// Fprint writes the table as left-aligned plain text. Column widths grow to
// fit their longest cell, measured in terminal cells.
func (c TableConfig) Fprint(w io.Writer) error {
	widths := make([]int, len(c.Columns))
	for i, col := range c.Columns {
		widths[i] = lipgloss.Width(col.Title)
	}
	for _, row := range c.Rows {
		for i := range widths {
			if i < len(row) {
				widths[i] = max(widths[i], lipgloss.Width(row[i]))
			}
		}
	}

	line := func(cells []string) string {
		var b strings.Builder
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(cell)
			if i < len(widths)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+2))
			}
		}
		return strings.TrimRight(b.String(), " ")
	}

	titles := make([]string, len(c.Columns))
	for i, col := range c.Columns {
		titles[i] = col.Title
	}

	if _, err := fmt.Fprintln(w, line(titles)); err != nil {
		return err
	}
	for _, row := range c.Rows {
		if _, err := fmt.Fprintln(w, line(row)); err != nil {
			return err
		}
	}
	return nil
}
