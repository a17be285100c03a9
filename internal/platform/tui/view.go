package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-splitter/internal/core"
	"github.com/vovakirdan/tui-splitter/internal/splitter"
)

// Minimum play field size in cells.
const (
	minFieldCols = 30
	minFieldRows = 8
)

// Field glyphs.
const (
	glyphCaptured  = '▒'
	glyphBall      = '●'
	glyphWallV     = '┃'
	glyphWallH     = '━'
	glyphPreviewV  = '┊'
	glyphPreviewH  = '┄'
	glyphSeamV     = '│'
	glyphSeamH     = '─'
	glyphSeamCross = '┼'
	glyphCrosshair = '+'
)

// Overlay describes the non-simulation parts of a frame.
type Overlay struct {
	Crosshair Crosshair
	Flash     string
}

// TooSmall reports whether the viewport cannot hold a playable field.
func (v Viewport) TooSmall() bool {
	return v.Cols < minFieldCols || v.Rows < minFieldRows
}

// StatusText describes the run's state for the HUD.
func StatusText(run *splitter.Run) string {
	switch s := run.Status().(type) {
	case splitter.GameOver:
		return "Run Over: ball hit building wall."
	case splitter.LevelWon:
		if s.Reason == splitter.ReasonStalled {
			return fmt.Sprintf("No valid cuts left. Level %d cleared.", run.Level())
		}
		return fmt.Sprintf("Level %d cleared. Continue to %d.", run.Level(), run.Level()+1)
	}
	return "Goal: capture " + formatPct(run.LevelConfig().TargetCapture) + " this level."
}

// HUDLine is the top line of the HUD.
func HUDLine(run *splitter.Run) string {
	parts := []string{
		fmt.Sprintf("%s | L%d", run.Profile().Label, run.Level()),
		fmt.Sprintf("Balls: %d", len(run.Balls())),
		fmt.Sprintf("Cuts: %d | Aim: %s", run.Cuts(), run.Orientation().Short()),
		fmt.Sprintf("Score: %d | %s", run.RoundedScore(), formatPct(run.CaptureRatio())),
	}
	return strings.Join(parts, "   ")
}

func formatPct(v float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(v*100)))
}

// DrawRun renders a run into the screen buffer.
func DrawRun(s *core.Screen, run *splitter.Run, vp Viewport, o Overlay) {
	s.Clear()

	if vp.TooSmall() {
		msg := fmt.Sprintf("Too small (%dx%d)", s.Width(), s.Height())
		s.DrawTextCentered(s.Height()/2, msg, core.ColorLost)
		return
	}

	drawHUD(s, run, o)
	drawField(s, run, vp)
	drawPreview(s, run, vp)
	drawActiveCut(s, run, vp)
	drawBalls(s, run, vp)

	if o.Crosshair.Visible && splitter.IsRunning(run.Status()) {
		s.SetColored(o.Crosshair.Col, o.Crosshair.Row, glyphCrosshair, core.ColorCrosshair)
	}

	drawOverlay(s, run, vp)
}

func drawHUD(s *core.Screen, run *splitter.Run, o Overlay) {
	s.DrawTextColored(1, 0, HUDLine(run), core.ColorHUD)

	statusColor := core.ColorStatus
	switch run.Status().(type) {
	case splitter.GameOver:
		statusColor = core.ColorLost
	case splitter.LevelWon:
		statusColor = core.ColorWon
	}
	s.DrawTextColored(1, 1, StatusText(run), statusColor)

	if o.Flash != "" {
		x := s.Width() - len([]rune(o.Flash)) - 1
		if x > 0 {
			s.DrawTextColored(x, 1, o.Flash, core.ColorFlash)
		}
	}
}

// drawField shades captured cells and marks seams between live regions.
// A cell belongs to the region containing its center.
func drawField(s *core.Screen, run *splitter.Run, vp Viewport) {
	regions := run.Regions()
	owners := make([]int, vp.Cols*vp.Rows)

	for row := 0; row < vp.Rows; row++ {
		for col := 0; col < vp.Cols; col++ {
			x, y, _ := vp.ToSurface(col, row+vp.HUDRows)
			owners[row*vp.Cols+col] = ownerAt(regions, x, y)
		}
	}

	for row := 0; row < vp.Rows; row++ {
		screenRow := row + vp.HUDRows
		for col := 0; col < vp.Cols; col++ {
			id := owners[row*vp.Cols+col]
			if id == 0 {
				s.SetColored(col, screenRow, glyphCaptured, core.ColorCaptured)
				continue
			}

			left := col > 0 && seam(id, owners[row*vp.Cols+col-1])
			up := row > 0 && seam(id, owners[(row-1)*vp.Cols+col])
			switch {
			case left && up:
				s.SetColored(col, screenRow, glyphSeamCross, core.ColorSeam)
			case left:
				s.SetColored(col, screenRow, glyphSeamV, core.ColorSeam)
			case up:
				s.SetColored(col, screenRow, glyphSeamH, core.ColorSeam)
			}
		}
	}
}

func ownerAt(regions []splitter.Region, x, y float64) int {
	for _, r := range regions {
		if r.Contains(x, y) {
			return r.ID
		}
	}
	return 0
}

func seam(id, neighbor int) bool {
	return neighbor != 0 && neighbor != id
}

func drawPreview(s *core.Screen, run *splitter.Run, vp Viewport) {
	p, ok := run.Preview()
	if !ok {
		return
	}
	region, ok := findRegion(run.Regions(), p.RegionID)
	if !ok {
		return
	}

	if p.Orientation == splitter.Vertical {
		drawVSegment(s, vp, p.Cut, region.Y, region.Bottom(), glyphPreviewV, core.ColorPreview)
	} else {
		drawHSegment(s, vp, p.Cut, region.X, region.Right(), glyphPreviewH, core.ColorPreview)
	}
}

func drawActiveCut(s *core.Screen, run *splitter.Run, vp Viewport) {
	c, ok := run.ActiveCut()
	if !ok {
		return
	}
	if c.Orientation == splitter.Vertical {
		drawVSegment(s, vp, c.Cut, c.NegPos, c.PosPos, glyphWallV, core.ColorWall)
	} else {
		drawHSegment(s, vp, c.Cut, c.NegPos, c.PosPos, glyphWallH, core.ColorWall)
	}
}

func drawBalls(s *core.Screen, run *splitter.Run, vp Viewport) {
	for _, b := range run.Balls() {
		col, row := fieldCell(vp, b.X, b.Y)
		s.SetColored(col, row, glyphBall, core.ColorBall)
	}
}

func drawOverlay(s *core.Screen, run *splitter.Run, vp Viewport) {
	var title, hint string
	switch run.Status().(type) {
	case splitter.LevelWon:
		title, hint = "LEVEL CLEAR", "n: next level"
	case splitter.GameOver:
		title, hint = "RUN OVER", "r: new run   q: quit"
	default:
		return
	}

	w := len(hint) + 6
	h := 5
	box := core.CellRect{
		X: (vp.Cols - w) / 2,
		Y: vp.HUDRows + (vp.Rows-h)/2,
		W: w,
		H: h,
	}
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorFrame)
	s.DrawTextColored(box.X+(w-len(title))/2, box.Y+1, title, core.ColorTitle)
	s.DrawTextColored(box.X+(w-len(hint))/2, box.Y+3, hint, core.ColorHUD)
}

// drawVSegment draws a vertical line at surface x from y0 to y1.
func drawVSegment(s *core.Screen, vp Viewport, x, y0, y1 float64, r rune, c core.Color) {
	col, top := fieldCell(vp, x, y0)
	_, bottom := fieldCell(vp, x, math.Max(y0, y1-epsilon))
	s.DrawVLine(col, top, bottom-top+1, r, c)
}

// drawHSegment draws a horizontal line at surface y from x0 to x1.
func drawHSegment(s *core.Screen, vp Viewport, y, x0, x1 float64, r rune, c core.Color) {
	left, row := fieldCell(vp, x0, y)
	right, _ := fieldCell(vp, math.Max(x0, x1-epsilon), y)
	s.DrawHLine(left, row, right-left+1, r, c)
}

const epsilon = 1e-6

// fieldCell maps a surface point to a screen cell inside the play field.
func fieldCell(vp Viewport, x, y float64) (int, int) {
	col, row := vp.ToCell(x, y)
	return clampInt(col, 0, vp.Cols-1), clampInt(row, vp.HUDRows, vp.HUDRows+vp.Rows-1)
}

func findRegion(regions []splitter.Region, id int) (splitter.Region, bool) {
	for _, r := range regions {
		if r.ID == id {
			return r, true
		}
	}
	return splitter.Region{}, false
}
