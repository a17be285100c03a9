package tui

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-splitter/internal/config"
	"github.com/vovakirdan/tui-splitter/internal/splitter"
)

// footerRows is the number of rows below the play field (help bar).
const footerRows = 1

// Viewport maps terminal cells onto surface coordinates. The play field
// starts below the HUD rows; one cell covers CellW x CellH surface units.
type Viewport struct {
	CellW   float64
	CellH   float64
	HUDRows int
	Cols    int // Play field width in cells
	Rows    int // Play field height in cells
}

// NewViewport builds the mapping for a terminal of the given size.
func NewViewport(surface config.SurfaceConfig, screenW, screenH int) Viewport {
	rows := screenH - surface.HUDRows - footerRows
	if rows < 0 {
		rows = 0
	}
	if screenW < 0 {
		screenW = 0
	}
	return Viewport{
		CellW:   surface.CellWidth,
		CellH:   surface.CellHeight,
		HUDRows: surface.HUDRows,
		Cols:    screenW,
		Rows:    rows,
	}
}

// SurfaceSize returns the play field size in surface units.
func (v Viewport) SurfaceSize() (float64, float64) {
	return float64(v.Cols) * v.CellW, float64(v.Rows) * v.CellH
}

// ToSurface returns the surface point at the center of a screen cell.
// ok is false when the cell lies outside the play field.
func (v Viewport) ToSurface(col, row int) (x, y float64, ok bool) {
	fieldRow := row - v.HUDRows
	if col < 0 || col >= v.Cols || fieldRow < 0 || fieldRow >= v.Rows {
		return 0, 0, false
	}
	return (float64(col) + 0.5) * v.CellW, (float64(fieldRow) + 0.5) * v.CellH, true
}

// ToCell returns the screen cell containing a surface point.
func (v Viewport) ToCell(x, y float64) (col, row int) {
	col = int(math.Floor(x / v.CellW))
	row = int(math.Floor(y/v.CellH)) + v.HUDRows
	return col, row
}

// Pointer tracks the mouse button that owns the current aim gesture.
// Press starts a preview, motion updates it, release starts the cut.
// Events from any other button while one is held are dropped.
type Pointer struct {
	held   bool
	button tea.MouseButton
}

// Held reports whether a gesture is in progress.
func (p Pointer) Held() bool {
	return p.held
}

// Handle applies a mouse event to the run.
func (p *Pointer) Handle(msg tea.MouseMsg, run *splitter.Run, vp Viewport) {
	if tea.MouseEvent(msg).IsWheel() {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if p.held || msg.Button != tea.MouseButtonLeft {
			return
		}
		if !splitter.IsRunning(run.Status()) || run.HasActiveCut() {
			return
		}
		p.held = true
		p.button = msg.Button
		p.preview(msg, run, vp)

	case tea.MouseActionMotion:
		if !p.held || run.HasActiveCut() {
			return
		}
		if msg.Button != p.button && msg.Button != tea.MouseButtonNone {
			return
		}
		p.preview(msg, run, vp)

	case tea.MouseActionRelease:
		if !p.held {
			return
		}
		// X10 mouse mode reports releases without a button
		if msg.Button != p.button && msg.Button != tea.MouseButtonNone {
			return
		}
		if x, y, ok := vp.ToSurface(msg.X, msg.Y); ok {
			run.StartCutFromPreview(x, y)
		}
		p.held = false
		run.ClearPreview()
	}
}

func (p *Pointer) preview(msg tea.MouseMsg, run *splitter.Run, vp Viewport) {
	x, y, ok := vp.ToSurface(msg.X, msg.Y)
	if !ok {
		run.ClearPreview()
		return
	}
	run.UpdatePreview(x, y)
}

// Crosshair is the keyboard aiming cursor, in play-field cells.
type Crosshair struct {
	Col     int
	Row     int // Screen row, HUD included
	Visible bool
}

// Center places the crosshair in the middle of the play field.
func (c *Crosshair) Center(vp Viewport) {
	c.Col = vp.Cols / 2
	c.Row = vp.HUDRows + vp.Rows/2
}

// Move shifts the crosshair, keeping it inside the play field, and
// refreshes the run's preview at the new position.
func (c *Crosshair) Move(dx, dy int, run *splitter.Run, vp Viewport) {
	if vp.Cols == 0 || vp.Rows == 0 {
		return
	}
	if !c.Visible {
		c.Visible = true
		c.Center(vp)
	} else {
		c.Col = clampInt(c.Col+dx, 0, vp.Cols-1)
		c.Row = clampInt(c.Row+dy, vp.HUDRows, vp.HUDRows+vp.Rows-1)
	}
	c.Aim(run, vp)
}

// Aim recomputes the preview at the crosshair.
func (c *Crosshair) Aim(run *splitter.Run, vp Viewport) {
	if !c.Visible {
		return
	}
	if x, y, ok := vp.ToSurface(c.Col, c.Row); ok {
		run.UpdatePreview(x, y)
	}
}

// Fire starts a cut at the crosshair.
func (c *Crosshair) Fire(run *splitter.Run, vp Viewport) bool {
	if !c.Visible {
		return false
	}
	x, y, ok := vp.ToSurface(c.Col, c.Row)
	if !ok {
		return false
	}
	run.UpdatePreview(x, y)
	started := run.StartCutFromPreview(x, y)
	run.ClearPreview()
	return started
}

// Clamp keeps the crosshair inside a resized play field.
func (c *Crosshair) Clamp(vp Viewport) {
	if vp.Cols == 0 || vp.Rows == 0 {
		c.Visible = false
		return
	}
	c.Col = clampInt(c.Col, 0, vp.Cols-1)
	c.Row = clampInt(c.Row, vp.HUDRows, vp.HUDRows+vp.Rows-1)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
