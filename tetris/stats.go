package tetris

import "time"

// MatchStats provides execution statistics for a match. Counters are
// simulation facts (they are deterministic for a seeded match); the tick
// durations are wall-clock diagnostics.
type MatchStats struct {
	Ticks          int64
	PiecesSpawned  int
	PiecesLocked   int
	RowsEliminated int

	MinTick   time.Duration
	MaxTick   time.Duration
	AvgTick   time.Duration
	LastTick  time.Duration
	TotalTick time.Duration
}

type statsInternal struct {
	ticks          int64
	piecesSpawned  int
	piecesLocked   int
	rowsEliminated int

	minTick   time.Duration
	maxTick   time.Duration
	lastTick  time.Duration
	totalTick time.Duration
}

func (s *statsInternal) recordTick(d time.Duration) {
	if s.ticks == 0 || d < s.minTick {
		s.minTick = d
	}
	if d > s.maxTick {
		s.maxTick = d
	}
	s.lastTick = d
	s.totalTick += d
	s.ticks++
}

// Stats returns a snapshot of the match's execution statistics.
func (m *Match) Stats() MatchStats {
	stats := MatchStats{
		Ticks:          m.stats.ticks,
		PiecesSpawned:  m.stats.piecesSpawned,
		PiecesLocked:   m.stats.piecesLocked,
		RowsEliminated: m.stats.rowsEliminated,
		MinTick:        m.stats.minTick,
		MaxTick:        m.stats.maxTick,
		LastTick:       m.stats.lastTick,
		TotalTick:      m.stats.totalTick,
	}
	if m.stats.ticks > 0 {
		stats.AvgTick = m.stats.totalTick / time.Duration(m.stats.ticks)
	}
	return stats
}
