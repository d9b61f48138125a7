package tetris

import "time"

// State is the match state machine's current phase.
type State uint8

const (
	// StateAwaitingSpawn means no piece is active; the spawn accumulator is
	// counting toward the next spawn.
	StateAwaitingSpawn State = iota
	// StateActivePiece means a piece is falling and steerable.
	StateActivePiece
	// StateOver is terminal: ticks no longer mutate any state.
	StateOver
)

func (s State) String() string {
	switch s {
	case StateAwaitingSpawn:
		return "AwaitingSpawn"
	case StateActivePiece:
		return "ActivePiece"
	case StateOver:
		return "Over"
	}
	return "State(?)"
}

// Match owns one game session: the grid, the optional active piece and the
// accumulators driving gravity and spawning. All mutation happens inside
// Tick; the driver calls it synchronously once per frame, so no locking is
// involved anywhere.
type Match struct {
	cfg   Config
	rng   Rand
	grid  *Grid
	piece *Piece

	fallAcc  float64
	spawnAcc float64
	over     bool

	stats statsInternal
}

// NewMatch creates a match with an empty grid, awaiting the first spawn.
func NewMatch(cfg Config) *Match {
	rng := cfg.Rand
	if rng == nil {
		rng = globalRand{}
	}
	return &Match{
		cfg:  cfg,
		rng:  rng,
		grid: NewGrid(cfg.Width, cfg.Height),
	}
}

// Grid returns the match's grid. Renderers read it; they must not write it.
func (m *Match) Grid() *Grid { return m.grid }

// IsOver reports whether the match has reached its terminal state.
func (m *Match) IsOver() bool { return m.over }

// State returns the current phase of the state machine.
func (m *Match) State() State {
	switch {
	case m.over:
		return StateOver
	case m.piece != nil:
		return StateActivePiece
	}
	return StateAwaitingSpawn
}

// ActivePiece returns a copy of the active piece, if any.
func (m *Match) ActivePiece() (Piece, bool) {
	if m.piece == nil {
		return Piece{}, false
	}
	return *m.piece, true
}

// Tick advances the match by delta seconds with the given input snapshot.
// Once the match is over, Tick is a no-op.
func (m *Match) Tick(delta float64, in Input) {
	if m.over {
		return
	}
	start := time.Now()
	if m.piece != nil {
		m.tickActive(delta, in)
	} else {
		m.tickAwaitingSpawn(delta)
	}
	m.stats.recordTick(time.Since(start))
}

func (m *Match) tickActive(delta float64, in Input) {
	// The piece's transient rendering marks come off first so the end check
	// and row elimination only ever see settled cells.
	m.grid.Stamp(m.piece, false)

	if m.grid.RowOccupied(m.cfg.endRow()) {
		// Restamp so the piece stays visible on the final frame.
		m.over = true
		m.grid.Stamp(m.piece, true)
		return
	}
	m.stats.rowsEliminated += m.grid.EliminateFullRows()

	landed := false
	m.fallAcc += delta
	if m.fallAcc > m.cfg.FallDelay {
		m.fallAcc = 0
		if !m.piece.TryOffset(0, -1, m.grid) {
			landed = true
		}
	}

	if in.Down {
		if !m.piece.TryOffset(0, -1, m.grid) {
			landed = true
		}
	}
	switch {
	case in.Left:
		m.piece.TryOffset(-1, 0, m.grid)
	case in.Right:
		m.piece.TryOffset(1, 0, m.grid)
	}
	if in.Rotate {
		m.piece.TryRotate(m.grid)
	}

	m.grid.Stamp(m.piece, true)
	if landed {
		// The stamp above is now permanent occupancy.
		m.piece = nil
		m.stats.piecesLocked++
	}
}

func (m *Match) tickAwaitingSpawn(delta float64) {
	if m.grid.RowOccupied(m.cfg.endRow()) {
		m.over = true
		return
	}
	m.stats.rowsEliminated += m.grid.EliminateFullRows()

	m.spawnAcc += delta
	if m.spawnAcc <= m.cfg.SpawnDelay {
		return
	}
	m.spawnAcc = 0
	m.spawn()
}

// spawn places a fresh piece at the horizontal center of the top row. If the
// spawn cells are already occupied the piece is pushed down one row at a
// time until it fits or reaches the floor, so a crowded spawn column never
// produces an invalid piece.
func (m *Match) spawn() {
	shape := Shape(m.rng.IntN(NumShapes))
	piece := NewPiece(shape, Point{m.cfg.Width / 2, m.cfg.Height - 1})
	for piece.HasCollision(m.grid) && piece.Anchor.Y > 0 {
		piece.Anchor.Y--
	}
	m.piece = &piece
	m.grid.Stamp(m.piece, true)
	m.stats.piecesSpawned++
}
