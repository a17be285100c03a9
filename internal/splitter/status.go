package splitter

// Status is the run state. It is a closed set: Running, LevelWon and GameOver.
// Callers switch on the concrete type.
type Status interface {
	isStatus()
	String() string
}

// ClearReason says why a level was won.
type ClearReason int

const (
	ReasonTarget  ClearReason = iota // Capture ratio reached the level target
	ReasonStalled                    // No region admits another cut
)

func (r ClearReason) String() string {
	if r == ReasonStalled {
		return "stalled"
	}
	return "target"
}

// Running means balls move and cuts may be started.
type Running struct{}

// LevelWon means the level is over and NextLevel may be called.
type LevelWon struct {
	Reason ClearReason
}

// GameOver means a ball touched a closing wall. Only a new run leaves it.
type GameOver struct{}

func (Running) isStatus()  {}
func (LevelWon) isStatus() {}
func (GameOver) isStatus() {}

func (Running) String() string  { return "running" }
func (LevelWon) String() string { return "levelwon" }
func (GameOver) String() string { return "gameover" }

// IsRunning reports whether s is Running.
func IsRunning(s Status) bool {
	_, ok := s.(Running)
	return ok
}
