package splitter

import (
	"math"

	"github.com/vovakirdan/tui-splitter/internal/core"
)

// paddingMargin is added to the largest ball diameter when computing the
// minimum distance between a cut and a region edge.
const paddingMargin = 6

// PreviewCut is a candidate cut shown while the player aims.
type PreviewCut struct {
	RegionID    int
	Orientation Orientation
	Cut         float64 // Fixed coordinate along the split axis
	CursorAxis  float64 // Cursor position along the perpendicular axis
}

// ActiveCut is the single wall currently closing across a region. Both
// endpoints start at the initiation point and grow toward the region edges.
type ActiveCut struct {
	RegionID    int
	Orientation Orientation
	Cut         float64
	NegPos      float64 // Endpoint moving toward the top/left edge
	PosPos      float64 // Endpoint moving toward the bottom/right edge
	NegDone     bool
	PosDone     bool
}

// CutPadding returns the minimum distance from a cut to either edge of the
// region: max(minPadding, 2*largestRadius + 6), with the radius floored at minRadius.
func CutPadding(balls []Ball, regionID int, minPadding, minRadius float64) float64 {
	return math.Max(minPadding, MaxRadiusIn(balls, regionID, minRadius)*2+paddingMargin)
}

// CandidateCut computes the cut through (x, y) in the given orientation.
// It reports false when the region is too narrow along the split axis.
// The cut coordinate is clamped into [edge+padding, far edge-padding].
func CandidateCut(region Region, o Orientation, x, y, padding float64) (PreviewCut, bool) {
	if o == Vertical {
		if region.W < padding*2 {
			return PreviewCut{}, false
		}
		return PreviewCut{
			RegionID:    region.ID,
			Orientation: Vertical,
			Cut:         core.ClampF(x, region.X+padding, region.Right()-padding),
			CursorAxis:  y,
		}, true
	}

	if region.H < padding*2 {
		return PreviewCut{}, false
	}
	return PreviewCut{
		RegionID:    region.ID,
		Orientation: Horizontal,
		Cut:         core.ClampF(y, region.Y+padding, region.Bottom()-padding),
		CursorAxis:  x,
	}, true
}

// StartCut turns a preview into a zero-length closing wall anchored at the
// release point's perpendicular coordinate, clamped into the region.
func StartCut(p PreviewCut, region Region, x, y float64) ActiveCut {
	var pos float64
	if p.Orientation == Vertical {
		pos = core.ClampF(y, region.Y, region.Bottom())
	} else {
		pos = core.ClampF(x, region.X, region.Right())
	}
	return ActiveCut{
		RegionID:    region.ID,
		Orientation: p.Orientation,
		Cut:         p.Cut,
		NegPos:      pos,
		PosPos:      pos,
	}
}

// span returns the region's extent along the wall's growth axis.
func (c *ActiveCut) span(region Region) (lo, hi float64) {
	if c.Orientation == Vertical {
		return region.Y, region.Bottom()
	}
	return region.X, region.Right()
}

// Advance grows both endpoints by step toward their edges.
func (c *ActiveCut) Advance(region Region, step float64) {
	lo, hi := c.span(region)
	c.NegPos = math.Max(lo, c.NegPos-step)
	c.PosPos = math.Min(hi, c.PosPos+step)
	c.NegDone = c.NegPos <= lo
	c.PosDone = c.PosPos >= hi
}

// Done reports whether both endpoints reached their edges.
func (c ActiveCut) Done() bool {
	return c.NegDone && c.PosDone
}

// Segment returns the wall's current endpoints.
func (c ActiveCut) Segment() (x1, y1, x2, y2 float64) {
	if c.Orientation == Vertical {
		return c.Cut, c.NegPos, c.Cut, c.PosPos
	}
	return c.NegPos, c.Cut, c.PosPos, c.Cut
}

// HitsBall reports whether any ball in the cut's region touches the wall.
func HitsBall(c ActiveCut, balls []Ball, wallThickness float64) bool {
	x1, y1, x2, y2 := c.Segment()
	half := wallThickness * 0.5
	for _, b := range balls {
		if b.RegionID != c.RegionID {
			continue
		}
		if core.DistancePointToSegment(b.X, b.Y, x1, y1, x2, y2) <= b.R+half {
			return true
		}
	}
	return false
}

// HasAnyValidCut reports whether some region admits a cut in either
// orientation through its center.
func HasAnyValidCut(store *RegionStore, balls []Ball, minPadding, minRadius float64) bool {
	for _, r := range store.All() {
		padding := CutPadding(balls, r.ID, minPadding, minRadius)
		cx, cy := r.Center()
		if _, ok := CandidateCut(r, Vertical, cx, cy, padding); ok {
			return true
		}
		if _, ok := CandidateCut(r, Horizontal, cx, cy, padding); ok {
			return true
		}
	}
	return false
}
