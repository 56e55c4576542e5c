// internal/tui/tui.go
// Package tui provides the interactive terminal browser for evaluation results.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/qeval/qeval/internal/export"
	"github.com/qeval/qeval/internal/perfdata"
	"github.com/qeval/qeval/internal/util"
)

// viewState represents the current view or screen of the application.
type viewState int

const (
	// viewKBSelector is the state where the user selects a knowledge base.
	viewKBSelector viewState = iota
	// viewStats is the state where the engine metrics for one KB are shown.
	viewStats
)

var (
	titleStyle  = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
)

// model is the main application model for the Bubble Tea UI.
type model struct {
	doc           *perfdata.Document
	state         viewState
	kbList        list.Model
	selectedKB    string
	statsView     string
	err           error
	width, height int
}

// item represents a selectable knowledge base in the list.
type item struct {
	key   string
	title string
	desc  string
}

// Title returns the title of the list item.
func (i item) Title() string { return i.title }

// Description returns the description of the list item.
func (i item) Description() string { return i.desc }

// FilterValue returns the title of the item, used for filtering.
func (i item) FilterValue() string { return i.title }

func initialModel(doc *perfdata.Document) *model {
	kbs := doc.SortedKBs()
	items := make([]list.Item, len(kbs))
	for i, kb := range kbs {
		info := doc.AdditionalData.KBs[kb]
		desc := info.Description
		if desc == "" {
			desc = fmt.Sprintf("%d engine(s)", len(doc.PerformanceData[kb]))
		}
		items[i] = item{key: kb, title: info.Name, desc: desc}
	}

	kbList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	kbList.Title = "Select a Knowledge Base"

	return &model{
		doc:    doc,
		state:  viewKBSelector,
		kbList: kbList,
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc", "tab":
			if m.state == viewStats {
				m.state = viewKBSelector
				return m, nil
			}
		case "enter":
			if m.state == viewKBSelector {
				if it, ok := m.kbList.SelectedItem().(item); ok {
					m.selectedKB = it.key
					m.statsView, m.err = renderStats(m.doc, it.key)
					m.state = viewStats
				}
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.kbList.SetSize(msg.Width-2, msg.Height-4)
	}

	var cmd tea.Cmd
	m.kbList, cmd = m.kbList.Update(msg)
	return m, cmd
}

// View renders the current screen.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	switch m.state {
	case viewKBSelector:
		return lipgloss.NewStyle().Margin(1, 2).Render(m.kbList.View())

	case viewStats:
		info := m.doc.AdditionalData.KBs[m.selectedKB]
		var builder strings.Builder
		builder.WriteString(titleStyle.Render(info.Name))
		builder.WriteString("\n\n")
		builder.WriteString(util.TruncateToWidth(m.statsView, m.width-4))
		builder.WriteString("\n")
		builder.WriteString(helpStyle.Render("esc: back • q: quit"))
		return lipgloss.NewStyle().Margin(1, 2).Render(builder.String())

	default:
		return "Unknown state"
	}
}

// renderStats lays out the aggregate metrics table for one knowledge base.
func renderStats(doc *perfdata.Document, kb string) (string, error) {
	table, err := export.OverviewTable(doc, kb)
	if err != nil {
		return "", err
	}

	widths := make([]int, len(table.Header))
	for i, h := range table.Header {
		widths[i] = len(h)
	}
	for _, row := range table.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var builder strings.Builder
	for i, h := range table.Header {
		builder.WriteString(headerStyle.Render(util.PadRunes(h, widths[i])))
		builder.WriteString("  ")
	}
	builder.WriteString("\n")
	for _, row := range table.Rows {
		for i, cell := range row {
			builder.WriteString(cellStyle.Render(util.PadRunes(cell, widths[i])))
		}
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

// Start runs the terminal browser until the user quits.
func Start(doc *perfdata.Document) error {
	p := tea.NewProgram(initialModel(doc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running terminal browser: %w", err)
	}
	return nil
}
