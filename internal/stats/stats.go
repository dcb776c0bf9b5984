// Package stats collects game records and answers leaderboard queries.
package stats

import (
	"sort"

	"github.com/vovakirdan/guess-arcade/internal/core"
)

// Store is a statistics collector. The in-memory Record and the SQLite
// storage.Store implement it with the same ordering rules: averages are
// integer means (0 when empty) and rankings are by score descending,
// ties kept in insertion order.
type Store interface {
	Add(rec core.GameRecord) error
	Average() (int, error)
	PlayerAverage(playerID string) (int, error)
	Top(n int) ([]core.GameRecord, error)
	PlayerTop(playerID string, n int) ([]core.GameRecord, error)
	Records() ([]core.GameRecord, error)
}

// Record keeps every game record in memory, in insertion order.
type Record struct {
	records []core.GameRecord
}

// NewRecord creates an empty collector.
func NewRecord() *Record {
	return &Record{}
}

// Add appends a record.
func (r *Record) Add(rec core.GameRecord) error {
	r.records = append(r.records, rec)
	return nil
}

// Average returns the integer mean score of all records.
func (r *Record) Average() (int, error) {
	return average(r.records), nil
}

// PlayerAverage returns the integer mean score of one player's records.
func (r *Record) PlayerAverage(playerID string) (int, error) {
	return average(r.filter(playerID)), nil
}

// Top returns the n highest-scoring records.
func (r *Record) Top(n int) ([]core.GameRecord, error) {
	return top(r.records, n), nil
}

// PlayerTop returns one player's n highest-scoring records.
func (r *Record) PlayerTop(playerID string, n int) ([]core.GameRecord, error) {
	return top(r.filter(playerID), n), nil
}

// Records returns a copy of every record in insertion order.
func (r *Record) Records() ([]core.GameRecord, error) {
	return append([]core.GameRecord(nil), r.records...), nil
}

// Len returns the number of records.
func (r *Record) Len() int { return len(r.records) }

func (r *Record) filter(playerID string) []core.GameRecord {
	var out []core.GameRecord
	for _, rec := range r.records {
		if rec.PlayerID == playerID {
			out = append(out, rec)
		}
	}
	return out
}

func average(records []core.GameRecord) int {
	if len(records) == 0 {
		return 0
	}
	sum := 0
	for _, rec := range records {
		sum += rec.Score
	}
	return sum / len(records)
}

// top ranks a copy of records; n <= 0 yields nothing.
func top(records []core.GameRecord, n int) []core.GameRecord {
	if n <= 0 || len(records) == 0 {
		return nil
	}
	ranked := append([]core.GameRecord(nil), records...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

var _ Store = (*Record)(nil)
