package session

import "github.com/vovakirdan/guess-arcade/internal/core"

// Event is something a session reports to its observer.
type Event interface {
	sessionEvent()
}

// StartedEvent is sent once the secret has been dealt.
type StartedEvent struct {
	SessionID string
	GameID    string
	Title     string
	PlayerID  string
	Attempts  int
	View      string // Masked secret as players see it
}

func (StartedEvent) sessionEvent() {}

// TurnEvent is sent after every graded guess.
type TurnEvent struct {
	SessionID string
	GameID    string
	PlayerID  string
	Turn      int // 1-based
	Guess     string
	Feedback  Feedback
	Remaining int
	Score     int
	View      string
}

func (TurnEvent) sessionEvent() {}

// EndedEvent is sent once, when the session reaches a terminal state.
type EndedEvent struct {
	SessionID string
	Record    core.GameRecord
	Remaining int
	Secret    string
}

func (EndedEvent) sessionEvent() {}

// Observer receives session events. Front ends implement it to render play.
type Observer interface {
	Notify(evt Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(evt Event)

// Notify calls f.
func (f ObserverFunc) Notify(evt Event) {
	f(evt)
}

// Observers fans events out to several observers in order.
type Observers []Observer

// Notify forwards evt to every observer.
func (o Observers) Notify(evt Event) {
	for _, obs := range o {
		if obs != nil {
			obs.Notify(evt)
		}
	}
}
