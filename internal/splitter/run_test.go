package splitter

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-splitter/internal/config"
)

type recorderStub struct {
	entries []ScoreEntry
	err     error
}

func (r *recorderStub) RecordScore(e ScoreEntry) error {
	r.entries = append(r.entries, e)
	return r.err
}

type testRun struct {
	*Run
	events   []EventKind
	recorder *recorderStub
}

func newTestRun(t *testing.T, w, h float64) *testRun {
	t.Helper()
	tr := &testRun{recorder: &recorderStub{}}
	run, err := NewRun(config.DefaultSplitterConfig(), Options{
		Width:      w,
		Height:     h,
		Seed:       42,
		Difficulty: config.DifficultyNormal,
		PlayerName: "Tester",
		Feedback:   FeedbackFunc(func(k EventKind) { tr.events = append(tr.events, k) }),
		Recorder:   tr.recorder,
	})
	if err != nil {
		t.Fatalf("NewRun failed: %v", err)
	}
	tr.Run = run
	return tr
}

// place replaces the spawned balls with the given ones, all in region 1.
func (tr *testRun) place(balls ...Ball) {
	for i := range balls {
		balls[i].RegionID = 1
	}
	tr.balls = balls
}

// cut aims at (x, y), releases there and ticks until the wall resolves.
func (tr *testRun) cut(t *testing.T, x, y float64) {
	t.Helper()
	tr.UpdatePreview(x, y)
	if _, ok := tr.Preview(); !ok {
		t.Fatalf("no preview at (%v, %v)", x, y)
	}
	if !tr.StartCutFromPreview(x, y) {
		t.Fatalf("cut at (%v, %v) did not start", x, y)
	}
	for i := 0; i < 1000 && tr.HasActiveCut(); i++ {
		tr.Tick(MaxStep)
	}
	if tr.HasActiveCut() {
		t.Fatal("cut never resolved")
	}
}

func (tr *testRun) hasEvent(kind EventKind) bool {
	for _, e := range tr.events {
		if e == kind {
			return true
		}
	}
	return false
}

func TestNewRunStartsLevelOne(t *testing.T) {
	tr := newTestRun(t, 800, 600)

	if tr.Level() != 1 || tr.Score() != 0 || tr.Cuts() != 0 {
		t.Errorf("level/score/cuts = %d/%v/%d, expected 1/0/0", tr.Level(), tr.Score(), tr.Cuts())
	}
	if !IsRunning(tr.Status()) {
		t.Errorf("status = %v, expected running", tr.Status())
	}
	if len(tr.Balls()) != tr.LevelConfig().BallCount {
		t.Errorf("ball count = %d, expected %d", len(tr.Balls()), tr.LevelConfig().BallCount)
	}
	regions := tr.Regions()
	if len(regions) != 1 || regions[0].ID != 1 || regions[0].Area() != 800*600 {
		t.Errorf("regions = %+v, expected one full-surface region", regions)
	}
	if tr.Orientation() != Vertical {
		t.Error("initial orientation should be vertical")
	}
}

func TestNewRunErrors(t *testing.T) {
	cfg := config.DefaultSplitterConfig()

	if _, err := NewRun(cfg, Options{Width: 0, Height: 600}); err == nil {
		t.Error("NewRun should reject a zero-width surface")
	}
	_, err := NewRun(cfg, Options{Width: 800, Height: 600, Difficulty: "nightmare"})
	if !errors.Is(err, config.ErrUnknownDifficulty) {
		t.Errorf("NewRun error = %v, expected ErrUnknownDifficulty", err)
	}
}

func TestOrphanCutScoring(t *testing.T) {
	tr := newTestRun(t, 800, 600)
	tr.place(Ball{X: 200, Y: 300, VX: 0, VY: 50, R: 8})

	tr.cut(t, 400, 300)

	if !approx(tr.CaptureRatio(), 0.5) {
		t.Errorf("capture = %v, expected 0.5", tr.CaptureRatio())
	}
	want := 0.5 * 10000 * 1.0 * (1 + 1*0.15)
	if !approx(tr.Score(), want) {
		t.Errorf("score = %v, expected %v", tr.Score(), want)
	}
	if tr.Cuts() != 1 {
		t.Errorf("cuts = %d, expected 1", tr.Cuts())
	}
	if !IsRunning(tr.Status()) {
		t.Errorf("status = %v, expected running (0.5 < target)", tr.Status())
	}

	regions := tr.Regions()
	if len(regions) != 1 {
		t.Fatalf("expected the empty half to be pruned, got %d regions", len(regions))
	}
	if regions[0].X != 0 || regions[0].W != 400 || regions[0].H != 600 {
		t.Errorf("surviving region = %+v, expected left half", regions[0].Rect)
	}
	if tr.Balls()[0].RegionID != regions[0].ID {
		t.Error("ball should be reassigned to the surviving region")
	}

	// Every split speeds balls up
	if vy := tr.Balls()[0].VY; !approx(vy*vy, (50*1.08)*(50*1.08)) {
		t.Errorf("|vy| = %v, expected %v", vy, 50*1.08)
	}
	if !tr.hasEvent(EventCutStart) || !tr.hasEvent(EventSplit) {
		t.Errorf("events = %v, expected cutStart and split", tr.events)
	}
}

func TestSplitKeepsBothOccupiedHalves(t *testing.T) {
	tr := newTestRun(t, 800, 600)
	tr.place(
		Ball{X: 200, Y: 300, R: 8},
		Ball{X: 600, Y: 300, R: 8},
	)

	tr.cut(t, 400, 100)

	if len(tr.Regions()) != 2 {
		t.Fatalf("expected 2 regions, got %d", len(tr.Regions()))
	}
	if tr.CaptureRatio() != 0 || tr.Score() != 0 {
		t.Errorf("capture/score = %v/%v, expected 0/0", tr.CaptureRatio(), tr.Score())
	}
	balls := tr.Balls()
	if balls[0].RegionID == balls[1].RegionID {
		t.Error("balls should end up in different regions")
	}
}

func TestTargetReachedWinsLevel(t *testing.T) {
	tr := newTestRun(t, 800, 600)
	tr.place(Ball{X: 100, Y: 300, R: 8})
	tr.levelCfg.TargetCapture = 0.5

	tr.cut(t, 400, 300)

	won, ok := tr.Status().(LevelWon)
	if !ok || won.Reason != ReasonTarget {
		t.Fatalf("status = %#v, expected LevelWon{target}", tr.Status())
	}
	want := 0.5*10000*1.15 + 500*1*1.0
	if !approx(tr.Score(), want) {
		t.Errorf("score = %v, expected %v (split + clear bonus)", tr.Score(), want)
	}
	if !tr.hasEvent(EventLevelWon) {
		t.Error("expected a levelwon event")
	}
	if len(tr.recorder.entries) != 0 {
		t.Error("winning a level should not persist the score")
	}
}

func TestStalledLevelWins(t *testing.T) {
	tr := newTestRun(t, 120, 30)
	tr.place(Ball{X: 10, Y: 15, R: 7})

	// Horizontal cuts are impossible (30 < 2*20), the left piece is too narrow to cut again
	tr.cut(t, 35, 15)

	won, ok := tr.Status().(LevelWon)
	if !ok || won.Reason != ReasonStalled {
		t.Fatalf("status = %#v, expected LevelWon{stalled}", tr.Status())
	}
	capture := 1 - (35.0*30)/(120*30)
	if !approx(tr.Score(), capture*10000*1.15) {
		t.Errorf("score = %v, expected %v without bonus", tr.Score(), capture*10000*1.15)
	}
}

func TestCollisionEndsRun(t *testing.T) {
	tr := newTestRun(t, 800, 600)
	tr.place(Ball{X: 410, Y: 300, R: 8})
	tr.score = 1234.4

	tr.cut(t, 400, 100)

	if _, ok := tr.Status().(GameOver); !ok {
		t.Fatalf("status = %v, expected gameover", tr.Status())
	}
	if tr.HasActiveCut() {
		t.Error("active cut should be discarded")
	}
	if len(tr.Regions()) != 1 {
		t.Error("a failed cut must not split")
	}
	if !tr.hasEvent(EventGameOver) {
		t.Error("expected a gameover event")
	}

	if len(tr.recorder.entries) != 1 {
		t.Fatalf("recorded %d scores, expected 1", len(tr.recorder.entries))
	}
	got := tr.recorder.entries[0]
	want := ScoreEntry{Name: "Tester", Score: 1234, Level: 1, Difficulty: "Normal"}
	if got != want {
		t.Errorf("entry = %+v, expected %+v", got, want)
	}

	// Persisted at most once per run
	tr.End()
	if len(tr.recorder.entries) != 1 {
		t.Errorf("End() after gameover recorded again: %d entries", len(tr.recorder.entries))
	}
}

func TestCollisionWithZeroScoreIsNotRecorded(t *testing.T) {
	tr := newTestRun(t, 800, 600)
	tr.place(Ball{X: 405, Y: 300, R: 8})

	tr.cut(t, 400, 300)

	if _, ok := tr.Status().(GameOver); !ok {
		t.Fatalf("status = %v, expected gameover", tr.Status())
	}
	if len(tr.recorder.entries) != 0 {
		t.Error("a zero score should not be recorded")
	}
}

func TestRecorderErrorStillMarksSaved(t *testing.T) {
	tr := newTestRun(t, 800, 600)
	tr.recorder.err = errors.New("disk full")
	tr.score = 10

	tr.End()
	tr.End()

	if !tr.ScoreSaved() {
		t.Error("score should be marked saved after a failed write")
	}
	if len(tr.recorder.entries) != 1 {
		t.Errorf("recorder called %d times, expected 1", len(tr.recorder.entries))
	}
}

func TestStartCutIsNoOpWhenNotAllowed(t *testing.T) {
	t.Run("not running", func(t *testing.T) {
		tr := newTestRun(t, 800, 600)
		tr.status = GameOver{}
		tr.preview = &PreviewCut{RegionID: 1, Orientation: Vertical, Cut: 400, CursorAxis: 300}
		before := tr.Snapshot()

		if tr.StartCutFromPreview(400, 300) {
			t.Error("StartCutFromPreview should refuse while not running")
		}
		after := tr.Snapshot()
		if before.Hash() != after.Hash() || tr.HasActiveCut() {
			t.Error("state changed by a refused cut")
		}
	})

	t.Run("cut already active", func(t *testing.T) {
		tr := newTestRun(t, 800, 600)
		tr.place(Ball{X: 100, Y: 100, R: 8})
		tr.UpdatePreview(400, 300)
		if !tr.StartCutFromPreview(400, 300) {
			t.Fatal("first cut should start")
		}
		first, _ := tr.ActiveCut()

		tr.preview = &PreviewCut{RegionID: 1, Orientation: Horizontal, Cut: 200, CursorAxis: 50}
		if tr.StartCutFromPreview(50, 200) {
			t.Error("a second cut should not start")
		}
		second, _ := tr.ActiveCut()
		if first != second {
			t.Errorf("active cut changed: %+v -> %+v", first, second)
		}
	})

	t.Run("no preview", func(t *testing.T) {
		tr := newTestRun(t, 800, 600)
		if tr.StartCutFromPreview(400, 300) {
			t.Error("StartCutFromPreview without preview should be a no-op")
		}
	})
}

func TestUpdatePreview(t *testing.T) {
	tr := newTestRun(t, 800, 600)
	tr.place(Ball{X: 100, Y: 100, R: 8})

	tr.UpdatePreview(5, 300)
	p, ok := tr.Preview()
	if !ok {
		t.Fatal("expected a preview")
	}
	if p.Orientation != Vertical || p.Cut != 22 || p.CursorAxis != 300 {
		t.Errorf("preview = %+v, expected vertical cut clamped to 22", p)
	}

	tr.UpdatePreview(-50, 300)
	if _, ok := tr.Preview(); ok {
		t.Error("preview outside every region should be cleared")
	}

	tr.UpdatePreview(400, 300)
	tr.ClearPreview()
	if _, ok := tr.Preview(); ok {
		t.Error("ClearPreview should drop the preview")
	}
}

func TestUpdatePreviewFallsBackToOtherOrientation(t *testing.T) {
	tr := newTestRun(t, 40, 600)
	tr.place(Ball{X: 20, Y: 100, R: 8})

	// padding 22: 40 < 44 so vertical is impossible
	tr.UpdatePreview(20, 300)

	p, ok := tr.Preview()
	if !ok {
		t.Fatal("expected a fallback preview")
	}
	if p.Orientation != Horizontal || tr.Orientation() != Horizontal {
		t.Errorf("orientation = %v (preview %v), expected horizontal", tr.Orientation(), p.Orientation)
	}
	if tr.hasEvent(EventToggle) {
		t.Error("fallback flip should not emit a toggle event")
	}
}

func TestToggleOrientation(t *testing.T) {
	tr := newTestRun(t, 800, 600)

	tr.ToggleOrientation()
	if tr.Orientation() != Horizontal {
		t.Error("ToggleOrientation should switch to horizontal")
	}
	tr.ToggleOrientation()
	if tr.Orientation() != Vertical {
		t.Error("ToggleOrientation should switch back to vertical")
	}
	if len(tr.events) != 2 || tr.events[0] != EventToggle {
		t.Errorf("events = %v, expected two toggles", tr.events)
	}
}

func TestNextLevel(t *testing.T) {
	tr := newTestRun(t, 800, 600)

	if tr.NextLevel() {
		t.Fatal("NextLevel should do nothing while running")
	}

	tr.place(Ball{X: 100, Y: 300, R: 8})
	tr.levelCfg.TargetCapture = 0.5
	tr.cut(t, 400, 300)
	score := tr.Score()

	if !tr.NextLevel() {
		t.Fatal("NextLevel should advance from LevelWon")
	}
	if tr.Level() != 2 || !IsRunning(tr.Status()) {
		t.Errorf("level/status = %d/%v, expected 2/running", tr.Level(), tr.Status())
	}
	if tr.Score() != score {
		t.Errorf("score should carry over: %v != %v", tr.Score(), score)
	}
	if tr.Cuts() != 0 || len(tr.Regions()) != 1 || tr.Regions()[0].ID != 1 {
		t.Error("level start should reset cuts and regions")
	}
	if len(tr.Balls()) != tr.LevelConfig().BallCount {
		t.Errorf("balls = %d, expected %d", len(tr.Balls()), tr.LevelConfig().BallCount)
	}
}

func TestStartNewRun(t *testing.T) {
	tr := newTestRun(t, 800, 600)
	tr.score = 500
	tr.level = 4
	tr.status = GameOver{}

	if err := tr.StartNewRun("nightmare"); !errors.Is(err, config.ErrUnknownDifficulty) {
		t.Errorf("StartNewRun(unknown) error = %v", err)
	}
	if tr.Score() != 500 {
		t.Error("a failed StartNewRun should leave the run untouched")
	}

	if err := tr.StartNewRun(config.DifficultyHard); err != nil {
		t.Fatalf("StartNewRun failed: %v", err)
	}
	if tr.Score() != 0 || tr.Level() != 1 || tr.ScoreSaved() {
		t.Errorf("score/level/saved = %v/%d/%v after new run", tr.Score(), tr.Level(), tr.ScoreSaved())
	}
	if tr.DifficultyKey() != config.DifficultyHard || tr.Profile().Label != "Hard" {
		t.Errorf("difficulty = %s, expected hard", tr.DifficultyKey())
	}
	if len(tr.Balls()) != 3 {
		t.Errorf("hard level 1 should spawn 3 balls, got %d", len(tr.Balls()))
	}
}

func TestTickClampsStep(t *testing.T) {
	tr := newTestRun(t, 800, 600)
	tr.place(Ball{X: 400, Y: 300, VX: 100, R: 8})

	tr.Tick(1.0)

	if got := tr.Balls()[0].X; !approx(got, 400+100*MaxStep) {
		t.Errorf("X = %v, expected %v", got, 400+100*MaxStep)
	}
}

func TestTickIgnoredWhenNotRunning(t *testing.T) {
	tr := newTestRun(t, 800, 600)
	tr.status = LevelWon{Reason: ReasonTarget}
	before := tr.Snapshot()

	tr.Tick(MaxStep)

	after := tr.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Tick should not change a run that is not running")
	}
}

func TestRescalePreservesInvariants(t *testing.T) {
	tr := newTestRun(t, 800, 600)
	tr.place(
		Ball{X: 100, Y: 100, VX: 80, VY: 40, R: 9},
		Ball{X: 300, Y: 500, VX: -60, VY: 20, R: 12},
	)
	tr.cut(t, 400, 300)
	tr.UpdatePreview(200, 150)
	tr.StartCutFromPreview(200, 150)
	active, _ := tr.ActiveCut()
	capture := tr.CaptureRatio()

	tr.Rescale(1.5, 0.5)

	if !approx(tr.CaptureRatio(), capture) {
		t.Errorf("capture = %v, expected %v after rescale", tr.CaptureRatio(), capture)
	}
	w, h := tr.Surface()
	if w != 1200 || h != 300 {
		t.Errorf("surface = %vx%v, expected 1200x300", w, h)
	}

	regions := tr.Regions()
	for i := range regions {
		for j := i + 1; j < len(regions); j++ {
			if regions[i].Intersects(regions[j].Rect) {
				t.Errorf("regions %d and %d overlap after rescale", regions[i].ID, regions[j].ID)
			}
		}
	}
	for i, b := range tr.Balls() {
		region, ok := tr.store.Get(b.RegionID)
		if !ok || !b.InBounds(region.Rect) {
			t.Errorf("ball %d out of bounds after rescale: %+v", i, b)
		}
	}

	scaled, ok := tr.ActiveCut()
	if !ok {
		t.Fatal("active cut lost by rescale")
	}
	if active.Orientation == Vertical {
		if !approx(scaled.Cut, active.Cut*1.5) || !approx(scaled.NegPos, active.NegPos*0.5) {
			t.Errorf("active cut = %+v, expected x*1.5 and y*0.5 of %+v", scaled, active)
		}
	}
}

func TestResize(t *testing.T) {
	tr := newTestRun(t, 800, 600)
	tr.Resize(400, 300)

	w, h := tr.Surface()
	if w != 400 || h != 300 {
		t.Errorf("surface = %vx%v, expected 400x300", w, h)
	}
	if r := tr.Regions()[0]; r.W != 400 || r.H != 300 {
		t.Errorf("region = %+v, expected 400x300", r.Rect)
	}

	tr.Resize(0, 300)
	if w, _ := tr.Surface(); w != 400 {
		t.Error("Resize to zero width should be ignored")
	}
}

func TestDeterminism(t *testing.T) {
	play := func(seed int64) Snapshot {
		run, err := NewRun(config.DefaultSplitterConfig(), Options{Width: 800, Height: 600, Seed: seed})
		if err != nil {
			t.Fatalf("NewRun failed: %v", err)
		}
		for i := 0; i < 400; i++ {
			switch i {
			case 30:
				run.UpdatePreview(400, 300)
				run.StartCutFromPreview(400, 300)
			case 150:
				run.ToggleOrientation()
				run.UpdatePreview(200, 200)
				run.StartCutFromPreview(200, 200)
			}
			run.Tick(1.0 / 60.0)
		}
		return run.Snapshot()
	}

	s1 := play(12345)
	s2 := play(12345)
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}

	s3 := play(54321)
	if s1.Hash() == s3.Hash() {
		t.Error("different seeds should produce different runs")
	}
}

func TestSanitizePlayerName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "Player"},
		{"   ", "Player"},
		{"  Ada  ", "Ada"},
		{"ABCDEFGHIJKLMNOP", "ABCDEFGHIJKL"},
		{"ÅÄÖåäöÅÄÖåäöÅÄ", "ÅÄÖåäöÅÄÖåäö"},
	}
	for _, tc := range tests {
		if got := SanitizePlayerName(tc.in); got != tc.want {
			t.Errorf("SanitizePlayerName(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestStatusStrings(t *testing.T) {
	tests := []struct {
		s    Status
		want string
	}{
		{Running{}, "running"},
		{LevelWon{Reason: ReasonStalled}, "levelwon"},
		{GameOver{}, "gameover"},
	}
	for _, tc := range tests {
		if tc.s.String() != tc.want {
			t.Errorf("String() = %q, expected %q", tc.s.String(), tc.want)
		}
	}
	if ReasonStalled.String() != "stalled" || ReasonTarget.String() != "target" {
		t.Error("ClearReason strings mismatch")
	}
}
