package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-splitter/internal/config"
	"github.com/vovakirdan/tui-splitter/internal/core"
	"github.com/vovakirdan/tui-splitter/internal/splitter"
	"github.com/vovakirdan/tui-splitter/internal/storage"
)

// MenuItem is one selectable difficulty.
type MenuItem struct {
	Key     string
	Label   string
	Summary string // Level 1 parameters
}

// MenuModel is the Bubble Tea model for the difficulty picker. Typing
// edits the player name; arrows pick the difficulty.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	name           textinput.Model
	width          int
	height         int
	highScore      int
	config         core.RuntimeConfig
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a menu preselecting the given difficulty key.
func NewMenuModel(cfg config.SplitterConfig, store *storage.Store, rt core.RuntimeConfig, difficulty, playerName string) MenuModel {
	keys := cfg.ProfileKeys()
	items := make([]MenuItem, 0, len(keys))
	cursor := 0

	for i, k := range keys {
		p := cfg.Difficulties[k]
		lc := cfg.LevelConfig(p, 1)
		items = append(items, MenuItem{
			Key:   k,
			Label: p.Label,
			Summary: fmt.Sprintf("%d ball(s)  speed %.0f-%.0f  target %s",
				lc.BallCount, lc.SpeedMin, lc.SpeedMax, formatPct(lc.TargetCapture)),
		})
		if k == difficulty {
			cursor = i
		}
	}

	ti := textinput.New()
	ti.Placeholder = splitter.DefaultPlayerName
	ti.CharLimit = splitter.MaxPlayerNameLen
	ti.Width = splitter.MaxPlayerNameLen + 1
	ti.Prompt = "Name: "
	ti.SetValue(playerName)
	ti.Focus()

	high := 0
	if store != nil {
		//nolint:errcheck // Missing high score just shows 0
		high, _ = store.HighScore()
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		name:      ti,
		width:     rt.ScreenW,
		height:    rt.ScreenH,
		highScore: high,
		config:    rt,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
		return m, nil

	case MenuActionScores:
		m.openScoreboard = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(centerText("  S P L I T T E R  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Wall off the bouncing balls", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = activeStyle
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, item.Label, item.Summary)
		pad := (m.width - len(line)) / 2
		if pad < 0 {
			pad = 0
		}
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.name.View(), m.width))
	b.WriteString("\n")
	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("High score: %d", m.highScore), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Difficulty  |  Enter: Play  |  Tab: Scores  |  Esc: Quit"
	b.WriteString(dimStyle.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// PlayerName returns the sanitized name typed into the menu.
func (m MenuModel) PlayerName() string {
	return splitter.SanitizePlayerName(m.name.Value())
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty      string
	PlayerName      string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// result converts the final menu state.
func (m MenuModel) result() MenuResult {
	r := MenuResult{Config: m.Config(), PlayerName: m.PlayerName()}
	switch {
	case m.WantsScoreboard():
		r.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		r.Quit = true
	default:
		r.Difficulty = m.Selected().Key
	}
	return r
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg config.SplitterConfig, store *storage.Store, rt core.RuntimeConfig, difficulty, playerName string) (MenuResult, error) {
	model := NewMenuModel(cfg, store, rt, difficulty, playerName)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: rt}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: rt, Quit: true}, nil
	}

	return m.result(), nil
}
