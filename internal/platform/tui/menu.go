package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
	"github.com/vovakirdan/skyhop/internal/registry"
)

// MenuItem represents a selectable entry in the mode menu.
type MenuItem struct {
	GameID string
	Title  string
}

// Selection holds the user's choice from the menu.
type Selection struct {
	GameID string
	Level  int // 0 = start from the beginning
}

const selectLevelTitle = "Select Level..."

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229"))

// MenuModel lets users choose a game mode and, for the campaign, a start level.
type MenuModel struct {
	items         []MenuItem
	cursor        int
	levels        table.Model
	inLevelSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	help          help.Model
	config        core.RuntimeConfig
	selected      *Selection
	quitting      bool
}

// NewMenuModel creates a new menu model listing every registered mode.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+1)
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}
	items = append(items, MenuItem{GameID: "skyhop", Title: selectLevelTitle})

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:     items,
		levels:    newLevelTable(cfg.ScreenH),
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
		help:      h,
		config:    cfg,
	}
}

// newLevelTable lists the campaign levels.
func newLevelTable(height int) table.Model {
	gameCfg := config.DefaultGameConfig()
	rows := make([]table.Row, 0, skyhop.LevelCount())
	for n := 1; n <= skyhop.LevelCount(); n++ {
		layout := skyhop.BuildLevel(n, gameCfg)
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", n),
			skyhop.LevelName(n),
			fmt.Sprintf("%d", len(layout.Platforms)-1),
		})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Level", Width: 16},
			{Title: "Platforms", Width: 10},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, max(2, height-8))),
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

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.inLevelSelect {
			return m.handleLevelSelectKey(msg)
		}
		return m.handleModeSelectKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleModeSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		item := m.items[m.cursor]
		if item.Title == selectLevelTitle {
			m.inLevelSelect = true
			m.levels.GotoTop()
			return m, nil
		}
		m.selected = &Selection{GameID: item.GameID}
		return m, tea.Quit
	}

	return m, nil
}

func (m MenuModel) handleLevelSelectKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionBack:
		m.inLevelSelect = false
		return m, nil

	case MenuActionSelect:
		m.selected = &Selection{
			GameID: "skyhop",
			Level:  m.levels.Cursor() + 1, // 1-indexed
		}
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.levels, cmd = m.levels.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("S K Y H O P", m.width)))
	b.WriteString("\n\n")

	if m.inLevelSelect {
		b.WriteString(centerText("Select a starting level:", m.width))
		b.WriteString("\n\n")
		b.WriteString(m.levels.View())
	} else {
		b.WriteString(centerText("Select game mode:", m.width))
		b.WriteString("\n\n")
		for i, item := range m.items {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			b.WriteString(centerText(cursor+item.Title, m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Menu)))
	return b.String()
}

// Selected returns the selection, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunMenu runs the menu. A nil selection means the user quit.
func RunMenu(cfg core.RuntimeConfig) (*Selection, core.RuntimeConfig, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() {
		return nil, cfg, nil
	}
	return m.Selected(), m.Config(), nil
}
