package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-splitter/internal/config"
	"github.com/vovakirdan/tui-splitter/internal/core"
	"github.com/vovakirdan/tui-splitter/internal/splitter"
	"github.com/vovakirdan/tui-splitter/internal/storage"
)

// ModelOptions configures a game model.
type ModelOptions struct {
	Config     config.SplitterConfig
	Runtime    core.RuntimeConfig
	Difficulty string
	PlayerName string
	Store      *storage.Store // May be nil; scores are then not saved
	Logger     *log.Logger
	Bell       io.Writer // Terminal bell target; nil disables it

	// Embedded models are hosted by a session: quitting and Esc are
	// reported through IsQuitting and Back instead of ending the program.
	Embedded bool
}

// Model is the Bubble Tea model for a splitter run.
type Model struct {
	run       *splitter.Run
	screen    *core.Screen
	config    core.RuntimeConfig
	viewport  Viewport
	surface   config.SurfaceConfig
	pointer   Pointer
	crosshair Crosshair
	flash     *Flash
	keys      GameKeyMap
	help      help.Model
	logger    *log.Logger
	lastTick  time.Time
	embedded  bool
	quitting  bool
	back      bool // Player asked to leave the run (Esc)
}

// NewModel creates a model and starts a run on the requested difficulty.
func NewModel(opts ModelOptions) (Model, error) {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	vp := NewViewport(opts.Config.Surface, cfg.ScreenW, cfg.ScreenH)
	w, h := playableSurface(vp)
	flash := NewFlash(opts.Bell, logger)

	var recorder splitter.ScoreRecorder
	if opts.Store != nil {
		recorder = opts.Store
	}

	run, err := splitter.NewRun(opts.Config, splitter.Options{
		Width:      w,
		Height:     h,
		Seed:       cfg.Seed,
		Difficulty: opts.Difficulty,
		PlayerName: opts.PlayerName,
		Feedback:   flash,
		Recorder:   recorder,
		Logger:     logger,
	})
	if err != nil {
		return Model{}, err
	}

	hm := help.New()
	hm.Width = cfg.ScreenW

	return Model{
		run:      run,
		screen:   core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 0)),
		config:   cfg,
		viewport: vp,
		surface:  opts.Config.Surface,
		flash:    flash,
		keys:     DefaultGameKeyMap(),
		help:     hm,
		logger:   logger,
		embedded: opts.Embedded,
	}, nil
}

// playableSurface returns the surface size for a viewport, never smaller
// than the minimum field.
func playableSurface(vp Viewport) (float64, float64) {
	cols := max(vp.Cols, minFieldCols)
	rows := max(vp.Rows, minFieldRows)
	return float64(cols) * vp.CellW, float64(rows) * vp.CellH
}

// Run returns the underlying run.
func (m Model) Run() *splitter.Run {
	return m.run
}

// Back reports whether the player left the run with Esc.
func (m Model) Back() bool {
	return m.back
}

// IsQuitting reports whether the player quit.
func (m Model) IsQuitting() bool {
	return m.quitting && !m.back
}

// quit ends the program unless the model is embedded.
func (m Model) quit() tea.Cmd {
	if m.embedded {
		return nil
	}
	return tea.Quit
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.run.End()
		m.quitting = true
		return m, m.quit()
	}

	switch action {
	case core.ActionUp:
		m.crosshair.Move(0, -1, m.run, m.viewport)
	case core.ActionDown:
		m.crosshair.Move(0, 1, m.run, m.viewport)
	case core.ActionLeft:
		m.crosshair.Move(-1, 0, m.run, m.viewport)
	case core.ActionRight:
		m.crosshair.Move(1, 0, m.run, m.viewport)

	case core.ActionToggleAim:
		m.run.ToggleOrientation()
		m.crosshair.Aim(m.run, m.viewport)

	case core.ActionCut:
		if _, won := m.run.Status().(splitter.LevelWon); won {
			m.run.NextLevel()
			break
		}
		if !m.crosshair.Visible {
			m.crosshair.Move(0, 0, m.run, m.viewport)
			break
		}
		m.crosshair.Fire(m.run, m.viewport)

	case core.ActionNextLevel:
		m.run.NextLevel()

	case core.ActionDifficulty:
		m.restart(nextDifficulty(m.run.Config().ProfileKeys(), m.run.DifficultyKey()))

	case core.ActionRestart:
		m.restart(m.run.DifficultyKey())

	case core.ActionBack:
		m.run.End()
		m.back = true
		m.quitting = true
		return m, m.quit()
	}

	return m, nil
}

// restart ends the current run, saving its score, and starts a new one.
func (m *Model) restart(difficulty string) {
	m.run.End()
	if err := m.run.StartNewRun(difficulty); err != nil {
		m.logger.Error("cannot start run", "difficulty", difficulty, "err", err)
		return
	}
	m.pointer = Pointer{}
}

func nextDifficulty(keys []string, current string) string {
	for i, k := range keys {
		if k == current {
			return keys[(i+1)%len(keys)]
		}
	}
	if len(keys) > 0 {
		return keys[0]
	}
	return current
}

// handleMouse routes pointer events to the run.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.viewport.TooSmall() {
		return m, nil
	}
	if msg.Action == tea.MouseActionPress {
		m.crosshair.Visible = false
	}
	m.pointer.Handle(msg, m.run, m.viewport)
	return m, nil
}

// handleResize processes window resize events. The run keeps its state
// and is rescaled to the new field; a too small window pauses it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 0))
	m.help.Width = msg.Width

	m.viewport = NewViewport(m.surface, msg.Width, msg.Height)
	if !m.viewport.TooSmall() {
		m.run.Resize(m.viewport.SurfaceSize())
		m.crosshair.Clamp(m.viewport)
	}

	m.logger.Debug("resize", "cols", msg.Width, "rows", msg.Height, "tooSmall", m.viewport.TooSmall())
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := elapsed(m.lastTick, now, m.config.TickSeconds())
	m.lastTick = now

	if !m.viewport.TooSmall() {
		m.run.Tick(dt)
		if !m.pointer.Held() {
			m.crosshair.Aim(m.run, m.viewport)
		}
	}
	m.flash.Tick()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	DrawRun(m.screen, m.run, m.viewport, m.overlay())

	dir := filepath.Join(os.Getenv("HOME"), ".splitter", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("splitter_L%d_%s.txt", m.run.Level(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
	}
}

func (m Model) overlay() Overlay {
	return Overlay{Crosshair: m.crosshair, Flash: m.flash.Text()}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawRun(m.screen, m.run, m.viewport, m.overlay())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for a local game.
func Run(opts ModelOptions) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release aim the cut
	)

	_, err = p.Run()
	return err
}
