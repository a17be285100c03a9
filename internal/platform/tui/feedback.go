package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-splitter/internal/splitter"
)

// flashTicks is how long a feedback message stays on the HUD.
const flashTicks = 45

var flashText = map[splitter.EventKind]string{
	splitter.EventToggle:   "aim flipped",
	splitter.EventCutStart: "wall closing",
	splitter.EventSplit:    "split!",
	splitter.EventLevelWon: "level clear!",
	splitter.EventGameOver: "crash!",
}

// Flash turns run events into short HUD messages and, when a bell writer
// is set, rings the terminal bell on level clear and game over.
type Flash struct {
	text   string
	ttl    int
	bell   io.Writer
	logger *log.Logger
}

// NewFlash creates a Flash. bell may be nil to stay silent.
func NewFlash(bell io.Writer, logger *log.Logger) *Flash {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Flash{bell: bell, logger: logger}
}

// Event implements splitter.Feedback.
func (f *Flash) Event(kind splitter.EventKind) {
	f.logger.Debug("event", "kind", kind)

	if text, ok := flashText[kind]; ok {
		f.text = text
		f.ttl = flashTicks
	}

	if f.bell != nil && (kind == splitter.EventLevelWon || kind == splitter.EventGameOver) {
		//nolint:errcheck // Best-effort bell
		f.bell.Write([]byte("\a"))
	}
}

// Tick ages the current message.
func (f *Flash) Tick() {
	if f.ttl == 0 {
		return
	}
	f.ttl--
	if f.ttl == 0 {
		f.text = ""
	}
}

// Text returns the message to show, or "".
func (f *Flash) Text() string {
	return f.text
}
