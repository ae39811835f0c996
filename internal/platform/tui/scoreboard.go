package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/tui-breakout/internal/registry"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

const scoreboardRuns = 100

// ScoreboardKeyMap moves between runs and tabs.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Recent key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Next, k.Prev, k.Recent, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab", "prev game")),
		Recent: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "best/recent")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// ScoreboardModel shows the run history, one game per tab, or the most recent
// runs of every game.
type ScoreboardModel struct {
	store  *storage.Store
	games  []registry.GameInfo
	tab    int
	recent bool
	runs   []storage.Run
	stats  map[string]*storage.GameStats
	err    error
	now    func() time.Time

	table table.Model
	keys  ScoreboardKeyMap
	help  help.Model

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard of the given size.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		now:    time.Now,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) columns() []table.Column {
	cols := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Result", Width: 6},
		{Title: "Time", Width: 6},
		{Title: "When", Width: 16},
	}
	if m.recent {
		cols = append(cols[:1], append([]table.Column{{Title: "Game", Width: 10}}, cols[1:]...)...)
	}
	return cols
}

func (m ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// reload queries the store for the current view.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats, m.err = nil, nil, nil
	if m.store != nil {
		switch {
		case m.recent:
			m.runs, m.err = m.store.RecentRuns(scoreboardRuns)
		case len(m.games) > 0:
			m.runs, m.err = m.store.TopRuns(m.games[m.tab].ID, scoreboardRuns)
		}
		if m.err == nil {
			m.stats, m.err = m.store.GetAllGamesStats()
		}
	}

	now := m.now()
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		row := table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			string(r.Outcome),
			formatDuration(r.Duration),
			humanize.RelTime(r.CreatedAt, now, "ago", "from now"),
		}
		if m.recent {
			row = append(row[:1], append(table.Row{r.GameID}, row[1:]...)...)
		}
		rows[i] = row
	}
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// formatDuration renders a run length as mm:ss.
func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil
		case key.Matches(msg, m.keys.Recent):
			m.recent = !m.recent
			m.reload()
			return m, nil
		case key.Matches(msg, m.keys.Next):
			m.switchTab(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.switchTab(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) switchTab(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.recent = false
	m.tab = (m.tab + delta + len(m.games)) % len(m.games)
	m.reload()
}

// View stacks the tabs, the run table or a notice, a stats line and help.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("RUN HISTORY"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	body := m.table.View()
	switch {
	case m.err != nil:
		body = mutedStyle.Render("Could not read runs: " + m.err.Error())
	case m.store == nil:
		body = mutedStyle.Render("No scores database.")
	case len(m.runs) == 0:
		body = mutedStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")
	}
	for _, line := range strings.Split(panelStyle.Render(body), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if line := m.statsLine(); line != "" {
		b.WriteString(centerText(mutedStyle.Render(line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	parts := make([]string, 0, len(m.games)+1)
	for i, g := range m.games {
		if i == m.tab && !m.recent {
			parts = append(parts, activeTabStyle.Render(g.Title))
		} else {
			parts = append(parts, tabStyle.Render(g.Title))
		}
	}
	if m.recent {
		parts = append(parts, activeTabStyle.Render("Recent"))
	} else {
		parts = append(parts, tabStyle.Render("Recent"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// statsLine summarises the selected game.
func (m ScoreboardModel) statsLine() string {
	if m.recent || len(m.games) == 0 {
		return ""
	}
	st, ok := m.stats[m.games[m.tab].ID]
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s runs · %d wins · best %d · avg %.1f · played %s · last %s",
		humanize.Comma(int64(st.RunsCount)), st.Wins, st.HighScore, st.AvgScore,
		st.TotalTime.Round(time.Second), humanize.RelTime(st.LastPlayed, m.now(), "ago", "from now"))
}

// IsGoingBack reports that Back was pressed.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
