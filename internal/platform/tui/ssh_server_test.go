package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-splitter/internal/config"
	"github.com/vovakirdan/tui-splitter/internal/core"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return out, cmd
}

func newTestSession() SessionModel {
	return NewSessionModel(SessionOptions{
		Game:     config.DefaultSplitterConfig(),
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60},
		Username: "guest",
	})
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession()
	if m.menu.PlayerName() != "guest" {
		t.Errorf("menu name = %q, expected the SSH user", m.menu.PlayerName())
	}

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil {
		t.Fatal("Enter should start a game")
	}
	if cmd == nil {
		t.Error("starting a game should start the tick loop")
	}
	if got := m.game.Run().DifficultyKey(); got != config.DifficultyHard {
		t.Errorf("difficulty = %q, expected hard", got)
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.game != nil {
		t.Fatal("Esc should return to the menu")
	}
	if m.menu.items[m.menu.cursor].Key != config.DifficultyHard {
		t.Error("menu should remember the last difficulty")
	}

	// Late ticks from the finished game are dropped
	m, cmd = sessionUpdate(t, m, TickMsg{})
	if cmd != nil || m.quitting {
		t.Error("stale tick should be ignored")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := newTestSession()

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatal("Tab should open the scoreboard")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Fatal("Esc should return to the menu")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q on the scoreboard should end the session")
	}
}

func TestSessionQuitFromGame(t *testing.T) {
	m := newTestSession()

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q in game should end the session")
	}
	if m.View() != "" {
		t.Error("ended session should render nothing")
	}
}
