package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/graphtint/graphtint/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// OptionListModel - Interactive option selection
// =============================================================================

// pickItem is one selectable entry with a short description.
type pickItem struct {
	Value string
	Desc  string
}

// OptionListModel is the bubbletea model for picking one value from a list.
type OptionListModel struct {
	Title    string
	Items    []pickItem
	Cursor   int
	Selected *pickItem
}

// NewOptionListModel creates a list model with the cursor on the current value.
func NewOptionListModel(title, current string, items []pickItem) OptionListModel {
	m := OptionListModel{Title: title, Items: items}
	for i, item := range items {
		if item.Value == current {
			m.Cursor = i
			break
		}
	}
	return m
}

func (m OptionListModel) Init() tea.Cmd {
	return nil
}

func (m OptionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Items[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m OptionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, item := range m.Items {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-12s %s", cursor, item.Value, listDimStyle.Render(item.Desc))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// Pickers
// =============================================================================

// pickOptions interactively fills the kind, strategy, and mode fields.
// Quitting any picker aborts the command.
func pickOptions(opts *pipeline.Options) error {
	kind, err := pickOne("Select Graph Kind", opts.Kind, []pickItem{
		{Value: "cycle", Desc: "vertices in a single ring"},
		{Value: "random", Desc: "Erdős–Rényi G(n, p)"},
		{Value: "bipartite", Desc: "complete bipartite on a half split"},
		{Value: "complete", Desc: "every pair connected"},
		{Value: "path", Desc: "vertices in a simple chain"},
		{Value: "star", Desc: "one hub, n-1 leaves"},
		{Value: "empty", Desc: "no edges at all"},
	})
	if err != nil {
		return err
	}
	opts.Kind = kind

	strategy, err := pickOne("Select Strategy", opts.Strategy, []pickItem{
		{Value: "firstfit", Desc: "natural order"},
		{Value: "degree", Desc: "highest degree first"},
		{Value: "saturation", Desc: "most constrained first (DSATUR)"},
	})
	if err != nil {
		return err
	}
	opts.Strategy = strategy

	mode, err := pickOne("Select Mode", opts.Mode, []pickItem{
		{Value: pipeline.ModeVertex, Desc: "color vertices"},
		{Value: pipeline.ModeEdge, Desc: "color edges via the line graph"},
	})
	if err != nil {
		return err
	}
	opts.Mode = mode

	return nil
}

// pickOne runs a single picker and returns the chosen value.
func pickOne(title, current string, items []pickItem) (string, error) {
	model := NewOptionListModel(title, current, items)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}
	m, ok := final.(OptionListModel)
	if !ok || m.Selected == nil {
		return "", fmt.Errorf("selection cancelled")
	}
	return m.Selected.Value, nil
}
