package browse

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/synbiolab/crngen/internal/storage"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	header  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
)

const (
	tabReactions = iota
	tabSpecies
)

// Model is a scrollable viewer over a stored network record: a reactions tab
// and a species tab, with a detail pane for the selected row.
type Model struct {
	record        *storage.NetworkRecord
	tab           int
	cursor        int
	offset        int
	width, height int
}

func New(record *storage.NetworkRecord) Model {
	return Model{record: record, width: 80, height: 24}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) rows() int {
	if m.tab == tabSpecies {
		return len(m.record.Species)
	}
	return len(m.record.Reactions)
}

func (m Model) visible() int {
	v := m.height - 9
	if v < 3 {
		v = 3
	}
	return v
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < m.rows()-1 {
				m.cursor++
			}
		case "g":
			m.cursor = 0
		case "G":
			m.cursor = m.rows() - 1
		case "tab":
			m.tab = (m.tab + 1) % 2
			m.cursor, m.offset = 0, 0
		}

		if m.cursor < m.offset {
			m.offset = m.cursor
		}
		if m.cursor >= m.offset+m.visible() {
			m.offset = m.cursor - m.visible() + 1
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	meta := m.record.Meta
	b.WriteString(header.Render(fmt.Sprintf("  %s", meta.ID)))
	b.WriteString(dim.Render(fmt.Sprintf("  %d species, %d reactions\n", meta.Species, meta.Reactions)))
	b.WriteString("\n")

	tabs := []string{"reactions", "species"}
	for i, name := range tabs {
		if i == m.tab {
			b.WriteString(cyan.Render(fmt.Sprintf("  [%s]", name)))
		} else {
			b.WriteString(dim.Render(fmt.Sprintf("   %s ", name)))
		}
	}
	b.WriteString("\n\n")

	if m.tab == tabSpecies {
		m.viewSpecies(&b)
	} else {
		m.viewReactions(&b)
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("  j/k: move  g/G: jump  tab: switch  q: quit"))
	return b.String()
}

func (m Model) viewReactions(b *strings.Builder) {
	end := m.offset + m.visible()
	if end > len(m.record.Reactions) {
		end = len(m.record.Reactions)
	}

	for i := m.offset; i < end; i++ {
		r := m.record.Reactions[i]
		line := fmt.Sprintf("%3d  %-50s", i, truncate(r.Display, 50))
		if i == m.cursor {
			b.WriteString(white.Render("  > " + line))
		} else {
			b.WriteString(dim.Render("    " + line))
		}
		b.WriteString("\n")
	}

	if m.cursor < len(m.record.Reactions) {
		r := m.record.Reactions[m.cursor]
		b.WriteString("\n")
		b.WriteString(yellow.Render(fmt.Sprintf("  kind: %s", r.Kind)))
		if r.Rate > 0 {
			b.WriteString(green.Render(fmt.Sprintf("  rate: %g", r.Rate)))
		}
		b.WriteString("\n")
	}
}

func (m Model) viewSpecies(b *strings.Builder) {
	end := m.offset + m.visible()
	if end > len(m.record.Species) {
		end = len(m.record.Species)
	}

	for i := m.offset; i < end; i++ {
		sp := m.record.Species[i]
		line := fmt.Sprintf("%3d  %-40s %s", i, truncate(sp.ID, 40), sp.Material)
		if i == m.cursor {
			b.WriteString(white.Render("  > " + line))
		} else {
			b.WriteString(dim.Render("    " + line))
		}
		b.WriteString("\n")
	}

	if m.cursor < len(m.record.Species) {
		sp := m.record.Species[m.cursor]
		if len(sp.Components) > 0 {
			b.WriteString("\n")
			b.WriteString(magenta.Render(fmt.Sprintf("  components: %s", strings.Join(sp.Components, ", "))))
			b.WriteString("\n")
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}

// Run opens the viewer for a stored record and blocks until the user quits.
func Run(record *storage.NetworkRecord) error {
	p := tea.NewProgram(New(record))
	_, err := p.Run()
	return err
}
