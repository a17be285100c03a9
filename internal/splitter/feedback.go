package splitter

// EventKind names a moment the feedback collaborator may react to.
type EventKind string

const (
	EventToggle   EventKind = "toggle"
	EventCutStart EventKind = "cutStart"
	EventSplit    EventKind = "split"
	EventLevelWon EventKind = "levelwon"
	EventGameOver EventKind = "gameover"
)

// Feedback receives fire-and-forget event notifications (sound, flash, bell).
type Feedback interface {
	Event(kind EventKind)
}

// FeedbackFunc adapts a function to Feedback.
type FeedbackFunc func(kind EventKind)

// Event calls f(kind).
func (f FeedbackFunc) Event(kind EventKind) {
	f(kind)
}

type noFeedback struct{}

func (noFeedback) Event(EventKind) {}

// ScoreEntry is a finished run as handed to persistence.
type ScoreEntry struct {
	Name       string
	Score      int
	Level      int
	Difficulty string // Profile label, e.g. "Hard"
}

// ScoreRecorder persists finished runs.
type ScoreRecorder interface {
	RecordScore(entry ScoreEntry) error
}

// RecorderFunc adapts a function to ScoreRecorder.
type RecorderFunc func(entry ScoreEntry) error

// RecordScore calls f(entry).
func (f RecorderFunc) RecordScore(entry ScoreEntry) error {
	return f(entry)
}
