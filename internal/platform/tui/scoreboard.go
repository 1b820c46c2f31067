package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetromino/internal/core"
	"github.com/vovakirdan/tui-tetromino/internal/storage"
)

// Scoreboard layout constants
const (
	tableMinWidth = 50  // Minimum table width
	maxScores     = 100 // Max games to load per tab
)

// scoreTab is one list on the scoreboard.
type scoreTab int

const (
	tabBest scoreTab = iota
	tabPlayer
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextTab, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "left", "right", "h", "l"),
			key.WithHelp("tab", "best/mine"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	store    *storage.Store
	player   string
	tab      scoreTab
	scores   []storage.ScoreEntry
	best     int
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard over store. The second tab
// lists the recent games of player; it is hidden when player is empty.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		player: player,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.loadScores()
	return m
}

// tableHeight leaves room for the title, help, and margins.
func (m *ScoreboardModel) tableHeight() int {
	return core.Clamp(m.height-8, 3, maxScores)
}

// createTable creates a new table sized to the terminal.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Lines", Width: 7},
		{Title: "Level", Width: 6},
		{Title: "Preset", Width: 8},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 14},
	}

	// Give spare width to the player column
	if extra := m.width - 4 - tableMinWidth - 10; extra > 0 {
		columns[4].Width += min(extra, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.tableHeight()),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadScores reloads the rows of the current tab.
func (m *ScoreboardModel) loadScores() {
	m.scores = nil
	if m.store != nil {
		var err error
		if m.tab == tabPlayer {
			m.scores, err = m.store.PlayerScores(m.player, maxScores)
		} else {
			m.scores, err = m.store.TopScores(maxScores)
		}
		if err != nil {
			m.scores = nil
		}
		if best, err := m.store.HighScore(); err == nil {
			m.best = best
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current scores.
func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Lines),
			fmt.Sprintf("%d", s.Level),
			s.Preset,
			s.Player,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			if m.player != "" {
				m.tab = 1 - m.tab
				m.loadScores()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Title returns the heading of the current tab.
func (m ScoreboardModel) Title() string {
	if m.tab == tabPlayer {
		return fmt.Sprintf("RECENT GAMES - %s", m.player)
	}
	return "BEST GAMES"
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(m.Title()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Best Lines: %d", m.best))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	if m.width == 0 || m.height == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, b.String())
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No games recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(store *storage.Store, player string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, player, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
