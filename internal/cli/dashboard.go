package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/1111MdTanvirAhmed1111/modledger/internal/cli/formatter"
	"github.com/1111MdTanvirAhmed1111/modledger/internal/domain"
	"github.com/1111MdTanvirAhmed1111/modledger/internal/ledger"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive ledger dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(app)
		},
	}
}

func runDashboard(app *App) error {
	p := tea.NewProgram(newDashboardModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// ── key bindings ─────────────────────────────────────────────────────────────

type dashboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Cycle  key.Binding
	Quit   key.Binding
	Reload key.Binding
}

func defaultDashboardKeys() dashboardKeyMap {
	return dashboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous mod"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next mod"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "cycle work status"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ── model ────────────────────────────────────────────────────────────────────

// dashboardModel shows a split-pane ledger view: stats header, selectable
// mod list on the left, detail for the selected mod on the right.
type dashboardModel struct {
	app    *App
	keys   dashboardKeyMap
	cursor int
	mods   []domain.Mod
	names  map[string]string
	stats  domain.Stats
	detail viewport.Model
	width  int
	height int
	err    error
}

func newDashboardModel(app *App) dashboardModel {
	m := dashboardModel{
		app:    app,
		keys:   defaultDashboardKeys(),
		detail: viewport.New(0, 0),
	}
	m.reload()
	return m
}

func (m *dashboardModel) reload() {
	m.mods = m.app.Store.Mods()
	m.names = creatorNames(m.app.Store.Creators())
	m.stats = m.app.Store.Stats()
	if m.cursor >= len(m.mods) {
		m.cursor = len(m.mods) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.refreshDetail()
}

func (m *dashboardModel) refreshDetail() {
	if len(m.mods) == 0 {
		m.detail.SetContent(formatter.Dim("No mods yet. Add one with `modledger mod add`."))
		return
	}
	mod := m.mods[m.cursor]
	name, ok := m.names[mod.CreatorID]
	if !ok {
		name = mod.CreatorID
	}
	m.detail.SetContent(formatter.FormatModInspect(&mod, name))
}

func (m dashboardModel) Init() tea.Cmd {
	return nil
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = msg.Width / 2
		m.detail.Height = msg.Height - 4
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.refreshDetail()
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.mods)-1 {
				m.cursor++
				m.refreshDetail()
			}
			return m, nil

		case key.Matches(msg, m.keys.Cycle):
			m.cycleStatus()
			return m, nil

		case key.Matches(msg, m.keys.Reload):
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

// cycleStatus advances the selected mod's work status pending → in_progress
// → done → pending.
func (m *dashboardModel) cycleStatus() {
	if len(m.mods) == 0 {
		return
	}
	mod := m.mods[m.cursor]

	var next domain.WorkStatus
	switch mod.WorkStatus {
	case domain.WorkPending:
		next = domain.WorkInProgress
	case domain.WorkInProgress:
		next = domain.WorkDone
	default:
		next = domain.WorkPending
	}

	if err := m.app.Store.UpdateMod(context.Background(), mod.ID, ledger.ModUpdate{WorkStatus: &next}); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.reload()
}

func (m dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.StatsLine(m.stats))
	b.WriteString("\n\n")

	left := m.renderModList()
	right := m.detail.View()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right))

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString(formatter.Dim("↑/↓ select · s status · r reload · q quit"))

	return b.String()
}

func (m dashboardModel) renderModList() string {
	if len(m.mods) == 0 {
		return formatter.Dim("(empty)")
	}

	var b strings.Builder
	for i := range m.mods {
		mod := &m.mods[i]
		line := fmt.Sprintf("%s %s", formatter.WorkStatusPill(mod.WorkStatus), mod.Title)
		if i == m.cursor {
			line = formatter.StyleHeader.Render("▶ ") + formatter.Bold(mod.Title) + " " + formatter.WorkStatusPill(mod.WorkStatus)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
