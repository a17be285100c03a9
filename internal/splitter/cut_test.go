package splitter

import "testing"

func TestCutPadding(t *testing.T) {
	balls := []Ball{{R: 8, RegionID: 1}, {R: 12, RegionID: 2}}

	tests := []struct {
		region int
		want   float64
	}{
		{1, 22}, // 2*8+6
		{2, 30}, // 2*12+6
		{3, 20}, // empty region uses the min radius: 2*7+6
	}
	for _, tc := range tests {
		if got := CutPadding(balls, tc.region, 18, 7); got != tc.want {
			t.Errorf("CutPadding(region %d) = %v, expected %v", tc.region, got, tc.want)
		}
	}

	if got := CutPadding(nil, 1, 40, 7); got != 40 {
		t.Errorf("CutPadding with large minimum = %v, expected 40", got)
	}
}

func TestCandidateCut(t *testing.T) {
	region := Region{ID: 5}
	region.X, region.Y, region.W, region.H = 100, 50, 200, 40

	tests := []struct {
		name        string
		orientation Orientation
		x, y        float64
		wantOK      bool
		wantCut     float64
		wantCursor  float64
	}{
		{"vertical inside", Vertical, 180, 70, true, 180, 70},
		{"vertical clamped low", Vertical, 101, 70, true, 130, 70},
		{"vertical clamped high", Vertical, 299, 60, true, 270, 60},
		{"horizontal too short", Horizontal, 180, 70, false, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, ok := CandidateCut(region, tc.orientation, tc.x, tc.y, 30)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, expected %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if p.RegionID != region.ID || p.Orientation != tc.orientation {
				t.Errorf("preview = %+v, wrong region or orientation", p)
			}
			if p.Cut != tc.wantCut || p.CursorAxis != tc.wantCursor {
				t.Errorf("cut/cursor = %v/%v, expected %v/%v", p.Cut, p.CursorAxis, tc.wantCut, tc.wantCursor)
			}
		})
	}
}

func TestCandidateCutBoundary(t *testing.T) {
	region := Region{ID: 1}
	region.W, region.H = 60, 59

	// Span exactly twice the padding still admits a (single) cut
	if p, ok := CandidateCut(region, Vertical, 10, 10, 30); !ok || p.Cut != 30 {
		t.Errorf("vertical cut = %+v, %v; expected cut at 30", p, ok)
	}
	if _, ok := CandidateCut(region, Horizontal, 10, 10, 30); ok {
		t.Error("horizontal span 59 < 60 should have no cut")
	}
}

func TestStartCut(t *testing.T) {
	region := Region{ID: 3}
	region.X, region.Y, region.W, region.H = 0, 100, 400, 200

	tests := []struct {
		name string
		p    PreviewCut
		x, y float64
		want float64
	}{
		{"vertical anchor", PreviewCut{RegionID: 3, Orientation: Vertical, Cut: 200}, 200, 180, 180},
		{"vertical anchor clamped", PreviewCut{RegionID: 3, Orientation: Vertical, Cut: 200}, 200, 20, 100},
		{"horizontal anchor", PreviewCut{RegionID: 3, Orientation: Horizontal, Cut: 150}, 250, 150, 250},
		{"horizontal anchor clamped", PreviewCut{RegionID: 3, Orientation: Horizontal, Cut: 150}, 900, 150, 400},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := StartCut(tc.p, region, tc.x, tc.y)
			if c.NegPos != tc.want || c.PosPos != tc.want {
				t.Errorf("endpoints = %v, %v; expected both %v", c.NegPos, c.PosPos, tc.want)
			}
			if c.Cut != tc.p.Cut || c.Orientation != tc.p.Orientation || c.RegionID != region.ID {
				t.Errorf("active cut = %+v does not match preview %+v", c, tc.p)
			}
			if c.NegDone || c.PosDone {
				t.Error("a new cut should not be done")
			}
		})
	}
}

func TestActiveCutAdvance(t *testing.T) {
	region := Region{ID: 1}
	region.W, region.H = 400, 300

	c := ActiveCut{RegionID: 1, Orientation: Vertical, Cut: 200, NegPos: 100, PosPos: 100}

	c.Advance(region, 60)
	if c.NegPos != 40 || c.PosPos != 160 {
		t.Errorf("after first step endpoints = %v, %v; expected 40, 160", c.NegPos, c.PosPos)
	}
	if c.NegDone || c.PosDone {
		t.Error("no endpoint should be done yet")
	}

	c.Advance(region, 60)
	if c.NegPos != 0 || !c.NegDone {
		t.Errorf("negative end = %v (done %v), expected clamped at 0", c.NegPos, c.NegDone)
	}
	if c.PosDone {
		t.Error("positive end should still be moving")
	}

	c.Advance(region, 60)
	c.Advance(region, 60)
	if c.PosPos != 300 || !c.Done() {
		t.Errorf("positive end = %v, done = %v; expected 300, true", c.PosPos, c.Done())
	}

	x1, y1, x2, y2 := c.Segment()
	if x1 != 200 || x2 != 200 || y1 != 0 || y2 != 300 {
		t.Errorf("Segment() = (%v,%v)-(%v,%v)", x1, y1, x2, y2)
	}

	h := ActiveCut{Orientation: Horizontal, Cut: 50, NegPos: 10, PosPos: 90}
	x1, y1, x2, y2 = h.Segment()
	if x1 != 10 || x2 != 90 || y1 != 50 || y2 != 50 {
		t.Errorf("horizontal Segment() = (%v,%v)-(%v,%v)", x1, y1, x2, y2)
	}
}

func TestHitsBall(t *testing.T) {
	c := ActiveCut{RegionID: 1, Orientation: Vertical, Cut: 400, NegPos: 200, PosPos: 400}

	tests := []struct {
		name string
		ball Ball
		want bool
	}{
		{"touching within r+3", Ball{X: 410, Y: 300, R: 8, RegionID: 1}, true},
		{"exactly r+3", Ball{X: 411, Y: 300, R: 8, RegionID: 1}, true},
		{"just outside", Ball{X: 411.5, Y: 300, R: 8, RegionID: 1}, false},
		{"near endpoint", Ball{X: 400, Y: 190, R: 8, RegionID: 1}, true},
		{"beyond endpoint", Ball{X: 400, Y: 180, R: 8, RegionID: 1}, false},
		{"other region ignored", Ball{X: 400, Y: 300, R: 8, RegionID: 2}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HitsBall(c, []Ball{tc.ball}, 6); got != tc.want {
				t.Errorf("HitsBall() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestHasAnyValidCut(t *testing.T) {
	s, region := singleRegion(20, 20)
	big := []Ball{{X: 10, Y: 10, R: 12, RegionID: region.ID}}

	// padding = max(18, 2*12+6) = 30, and 20 < 60 on both axes
	if HasAnyValidCut(s, big, 18, 7) {
		t.Error("20x20 region with an r=12 ball should have no valid cut")
	}

	s2, region2 := singleRegion(100, 20)
	small := []Ball{{X: 50, Y: 10, R: 7, RegionID: region2.ID}}
	if !HasAnyValidCut(s2, small, 18, 7) {
		t.Error("100x20 region should admit a vertical cut")
	}

	empty := NewRegionStore()
	if HasAnyValidCut(empty, nil, 18, 7) {
		t.Error("empty store has no valid cut")
	}
}
