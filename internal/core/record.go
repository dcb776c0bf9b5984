package core

import "fmt"

// GameRecord is the outcome of one completed session.
// It is a value type: copies handed to collectors cannot alter the original.
type GameRecord struct {
	GameID   string // Registry id of the game ("mastermind", "wheel")
	PlayerID string // Stable id of the player who played the session
	Score    int    // Final score under the game's score policy
	Outcome  State  // Terminal state the session ended in
}

// String formats the record the way leaderboards print it.
func (r GameRecord) String() string {
	return fmt.Sprintf("GameRecord: %s - %d", r.PlayerID, r.Score)
}
