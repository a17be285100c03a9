package splitter

import (
	"errors"
	"io"
	"math"
	"math/rand"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-splitter/internal/config"
	"github.com/vovakirdan/tui-splitter/internal/core"
)

// Player name rules for score entries.
const (
	DefaultPlayerName = "Player"
	MaxPlayerNameLen  = 12
)

// Options configures a new Run.
type Options struct {
	Width      float64 // Surface width in surface units
	Height     float64 // Surface height in surface units
	Seed       int64
	Difficulty string // Profile key; empty selects the configured default
	PlayerName string
	Feedback   Feedback
	Recorder   ScoreRecorder
	Logger     *log.Logger
}

// Run owns all state of one play session: the current level's regions and
// balls, the cut in flight, score and status. It is not safe for concurrent
// use; the platform layer serializes ticks and input.
type Run struct {
	cfg        config.SplitterConfig
	profileKey string
	profile    config.Profile
	levelCfg   config.LevelConfig

	level      int
	score      float64
	cuts       int
	status     Status
	scoreSaved bool

	store       *RegionStore
	balls       []Ball
	preview     *PreviewCut
	active      *ActiveCut
	orientation Orientation

	rng    *rand.Rand
	ticks  uint64
	width  float64
	height float64

	playerName string
	feedback   Feedback
	recorder   ScoreRecorder
	logger     *log.Logger
}

// NewRun creates a run and starts level 1 on the requested difficulty.
func NewRun(cfg config.SplitterConfig, opts Options) (*Run, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.New("splitter: surface size must be positive")
	}
	key, err := cfg.ResolveDifficulty(opts.Difficulty)
	if err != nil {
		return nil, err
	}

	r := &Run{
		cfg:        cfg,
		store:      NewRegionStore(),
		rng:        rand.New(rand.NewSource(opts.Seed)), //#nosec G404 -- game randomness
		width:      opts.Width,
		height:     opts.Height,
		playerName: SanitizePlayerName(opts.PlayerName),
		feedback:   opts.Feedback,
		recorder:   opts.Recorder,
		logger:     opts.Logger,
	}
	if r.feedback == nil {
		r.feedback = noFeedback{}
	}
	if r.logger == nil {
		r.logger = log.New(io.Discard)
	}

	if err := r.StartNewRun(key); err != nil {
		return nil, err
	}
	return r, nil
}

// SanitizePlayerName trims the name and limits it to MaxPlayerNameLen runes.
func SanitizePlayerName(name string) string {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxPlayerNameLen {
		name = strings.TrimSpace(string([]rune(name)[:MaxPlayerNameLen]))
	}
	if name == "" {
		return DefaultPlayerName
	}
	return name
}

// SetPlayerName changes the name recorded with this run's score.
func (r *Run) SetPlayerName(name string) {
	r.playerName = SanitizePlayerName(name)
}

// StartNewRun resets score and level and switches to the given difficulty.
// An unknown key leaves the run untouched.
func (r *Run) StartNewRun(profileKey string) error {
	key, err := r.cfg.ResolveDifficulty(profileKey)
	if err != nil {
		return err
	}
	profile, err := r.cfg.Profile(key)
	if err != nil {
		return err
	}

	r.profileKey = key
	r.profile = profile
	r.score = 0
	r.scoreSaved = false
	r.StartLevel(1)

	r.logger.Debug("new run", "difficulty", key, "player", r.playerName)
	return nil
}

// StartLevel discards every in-flight cut and rebuilds the surface with a
// fresh batch of balls for the given level.
func (r *Run) StartLevel(level int) {
	if level < 1 {
		level = 1
	}
	r.level = level
	r.levelCfg = r.cfg.LevelConfig(r.profile, level)
	r.active = nil
	r.preview = nil
	r.orientation = Vertical
	r.cuts = 0
	r.status = Running{}

	full := r.store.CreateInitial(r.width, r.height)
	r.balls = SpawnBalls(r.rng, full, r.levelCfg.BallCount,
		r.levelCfg.SpeedMin, r.levelCfg.SpeedMax,
		r.cfg.Base.MinRadius, r.cfg.Base.MaxRadius)

	r.logger.Debug("level start",
		"level", level,
		"balls", r.levelCfg.BallCount,
		"wallSpeed", r.levelCfg.WallSpeed,
		"target", r.levelCfg.TargetCapture,
	)
}

// NextLevel advances to the next level. It only acts on a won level.
func (r *Run) NextLevel() bool {
	if _, ok := r.status.(LevelWon); !ok {
		return false
	}
	r.StartLevel(r.level + 1)
	return true
}

func (r *Run) padding(regionID int) float64 {
	return CutPadding(r.balls, regionID, r.cfg.Base.MinCutPadding, r.cfg.Base.MinRadius)
}

// UpdatePreview recomputes the candidate cut under (x, y). When only the
// other orientation fits, the preferred orientation is switched to it.
func (r *Run) UpdatePreview(x, y float64) {
	if !IsRunning(r.status) || r.active != nil {
		r.preview = nil
		return
	}

	region, ok := r.store.FindContaining(x, y)
	if !ok {
		r.preview = nil
		return
	}

	pad := r.padding(region.ID)
	if p, ok := CandidateCut(region, r.orientation, x, y, pad); ok {
		r.preview = &p
		return
	}
	if p, ok := CandidateCut(region, r.orientation.Other(), x, y, pad); ok {
		r.orientation = r.orientation.Other()
		r.preview = &p
		return
	}
	r.preview = nil
}

// StartCutFromPreview starts a closing wall from the current preview,
// anchored at (x, y). It is a no-op without a preview, while a wall is
// already closing, or when the run is not Running.
func (r *Run) StartCutFromPreview(x, y float64) bool {
	if r.preview == nil || !IsRunning(r.status) || r.active != nil {
		return false
	}

	region, ok := r.store.Get(r.preview.RegionID)
	if !ok {
		r.preview = nil
		return false
	}

	cut := StartCut(*r.preview, region, x, y)
	r.active = &cut
	r.preview = nil
	r.feedback.Event(EventCutStart)
	return true
}

// ClearPreview drops the current preview, if any.
func (r *Run) ClearPreview() {
	r.preview = nil
}

// ToggleOrientation flips the preferred cut orientation.
func (r *Run) ToggleOrientation() {
	r.orientation = r.orientation.Other()
	r.feedback.Event(EventToggle)
}

// Tick advances the simulation by dt seconds, clamped to MaxStep.
func (r *Run) Tick(dt float64) {
	if !IsRunning(r.status) {
		return
	}
	dt = core.ClampF(dt, 0, MaxStep)
	r.ticks++

	Advance(r.balls, r.store.ByID(), dt, r.levelCfg.PassiveSpeedRampPerSec)
	r.advanceCut(dt)
}

func (r *Run) advanceCut(dt float64) {
	if r.active == nil {
		return
	}

	region, ok := r.store.Get(r.active.RegionID)
	if !ok {
		r.logger.Warn("active cut lost its region", "region", r.active.RegionID)
		r.active = nil
		return
	}

	r.active.Advance(region, r.levelCfg.WallSpeed*dt)

	if HitsBall(*r.active, r.balls, r.cfg.Base.WallThickness) {
		r.active = nil
		r.status = GameOver{}
		r.feedback.Event(EventGameOver)
		r.logger.Info("run over", "level", r.level, "score", r.RoundedScore())
		r.persist()
		return
	}

	if r.active.Done() {
		cut := *r.active
		r.active = nil
		r.settleSplit(region, cut.Orientation, cut.Cut)
	}
}

// settleSplit commits a completed wall: split, reassign, prune empty
// children, then score against the post-prune capture ratio.
func (r *Run) settleSplit(region Region, o Orientation, cut float64) {
	before := r.store.CaptureRatio()

	a, b, err := r.store.Split(region, o, cut)
	if err != nil {
		r.logger.Error("split rejected", "err", err)
		return
	}
	r.store.Replace(region.ID, a, b)
	ReassignAll(r.balls, r.store)

	for _, child := range []Region{a, b} {
		if CountIn(r.balls, child.ID) == 0 {
			r.store.Prune(child.ID)
		}
	}

	after := r.store.CaptureRatio()
	r.score += r.cutScore(before, after)
	r.cuts++
	SpeedUp(r.balls, r.levelCfg.SpeedUpPerCut)
	r.feedback.Event(EventSplit)

	if after >= r.levelCfg.TargetCapture {
		r.score += r.cfg.Scoring.LevelClearBonus * float64(r.level) * r.profile.ScoreMult
		r.status = LevelWon{Reason: ReasonTarget}
		r.feedback.Event(EventLevelWon)
		return
	}

	if !HasAnyValidCut(r.store, r.balls, r.cfg.Base.MinCutPadding, r.cfg.Base.MinRadius) {
		r.status = LevelWon{Reason: ReasonStalled}
		r.feedback.Event(EventLevelWon)
	}
}

func (r *Run) cutScore(before, after float64) float64 {
	delta := math.Max(0, after-before)
	sc := r.cfg.Scoring
	return delta * sc.CaptureScale * r.profile.ScoreMult * (1 + float64(r.level)*sc.LevelFactor)
}

// persist hands a positive, unsaved score to the recorder exactly once.
// A recorder error is logged; the run still counts as saved.
func (r *Run) persist() {
	if r.scoreSaved || r.score <= 0 {
		return
	}
	r.scoreSaved = true
	if r.recorder == nil {
		return
	}

	entry := ScoreEntry{
		Name:       r.playerName,
		Score:      r.RoundedScore(),
		Level:      r.level,
		Difficulty: r.profile.Label,
	}
	if err := r.recorder.RecordScore(entry); err != nil {
		r.logger.Error("failed to record score", "err", err)
	}
}

// End persists the run's score if it has not been saved yet. The platform
// layer calls it when the player quits or abandons a run.
func (r *Run) End() {
	r.persist()
}

// Rescale scales all geometry by (sx, sy). Ball radii are unchanged; balls
// are clamped back inside their regions' inset bounds.
func (r *Run) Rescale(sx, sy float64) {
	if sx <= 0 || sy <= 0 {
		return
	}
	r.store.Rescale(sx, sy)
	RescaleBalls(r.balls, sx, sy)
	for i := range r.balls {
		if region, ok := r.store.Get(r.balls[i].RegionID); ok {
			r.balls[i].clampInto(region.Rect)
		}
	}

	if c := r.active; c != nil {
		along, across := sx, sy
		if c.Orientation == Horizontal {
			along, across = sy, sx
		}
		c.Cut *= along
		c.NegPos *= across
		c.PosPos *= across
	}
	if p := r.preview; p != nil {
		along, across := sx, sy
		if p.Orientation == Horizontal {
			along, across = sy, sx
		}
		p.Cut *= along
		p.CursorAxis *= across
	}

	r.width *= sx
	r.height *= sy
}

// Resize rescales the run to a new surface size.
func (r *Run) Resize(w, h float64) {
	if w <= 0 || h <= 0 || r.width <= 0 || r.height <= 0 {
		return
	}
	if w == r.width && h == r.height {
		return
	}
	r.Rescale(w/r.width, h/r.height)
}

// Accessors used by the platform layer.

func (r *Run) Level() int { return r.level }
func (r *Run) Score() float64 { return r.score }
func (r *Run) RoundedScore() int { return int(math.Round(r.score)) }
func (r *Run) Cuts() int { return r.cuts }
func (r *Run) Status() Status { return r.status }
func (r *Run) ScoreSaved() bool { return r.scoreSaved }
func (r *Run) Orientation() Orientation { return r.orientation }
func (r *Run) DifficultyKey() string { return r.profileKey }
func (r *Run) Profile() config.Profile { return r.profile }
func (r *Run) LevelConfig() config.LevelConfig { return r.levelCfg }
func (r *Run) PlayerName() string { return r.playerName }
func (r *Run) CaptureRatio() float64 { return r.store.CaptureRatio() }
func (r *Run) Surface() (float64, float64) { return r.width, r.height }
func (r *Run) Regions() []Region { return r.store.All() }
func (r *Run) Config() config.SplitterConfig { return r.cfg }
func (r *Run) HasActiveCut() bool { return r.active != nil }

// Balls returns a copy of the current balls.
func (r *Run) Balls() []Ball {
	out := make([]Ball, len(r.balls))
	copy(out, r.balls)
	return out
}

// Preview returns the current preview cut, if any.
func (r *Run) Preview() (PreviewCut, bool) {
	if r.preview == nil {
		return PreviewCut{}, false
	}
	return *r.preview, true
}

// ActiveCut returns the wall currently closing, if any.
func (r *Run) ActiveCut() (ActiveCut, bool) {
	if r.active == nil {
		return ActiveCut{}, false
	}
	return *r.active, true
}
