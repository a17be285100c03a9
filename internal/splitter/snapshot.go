package splitter

import "math"

// Snapshot captures the run state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Level       int
	Difficulty  string
	Score       float64
	Cuts        int
	Status      string
	Orientation Orientation
	Capture     float64
	RegionCount int
	BallCount   int
	ActiveCut   bool

	// Flattened geometry: {id, x, y, w, h} per region, {x, y, vx, vy, r, region} per ball.
	RegionData []float64
	BallData   []float64
}

// Snapshot returns the current run snapshot.
func (r *Run) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        r.ticks,
		Level:       r.level,
		Difficulty:  r.profileKey,
		Score:       r.score,
		Cuts:        r.cuts,
		Status:      r.status.String(),
		Orientation: r.orientation,
		Capture:     r.store.CaptureRatio(),
		RegionCount: r.store.Len(),
		BallCount:   len(r.balls),
		ActiveCut:   r.active != nil,
	}

	for _, reg := range r.store.All() {
		snap.RegionData = append(snap.RegionData, float64(reg.ID), reg.X, reg.Y, reg.W, reg.H)
	}
	for _, b := range r.balls {
		snap.BallData = append(snap.BallData, b.X, b.Y, b.VX, b.VY, b.R, float64(b.RegionID))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation
	for _, c := range snap.Difficulty {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + math.Float64bits(snap.Score)
	h = h*31 + uint64(snap.Cuts) //#nosec G115 -- hash computation
	for _, c := range snap.Status {
		h = h*31 + uint64(c) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Orientation) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.Capture)
	h = h*31 + uint64(snap.RegionCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallCount)   //#nosec G115 -- hash computation
	if snap.ActiveCut {
		h = h*31 + 1
	}

	for _, v := range snap.RegionData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
