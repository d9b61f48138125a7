package tetris

import "math/rand/v2"

// Rand supplies the one random decision the engine makes: the shape picked
// at spawn. *rand/v2.Rand satisfies it; injecting a seeded source makes a
// match fully deterministic for a given input and delta sequence.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Config carries the match policy knobs. The end-row heuristic and the
// kick-free rotation follow the original program; both are policy here, not
// official-rules constants.
type Config struct {
	// Width and Height are the grid dimensions in cells.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// FallDelay is the accumulated time, in seconds, between gravity steps.
	FallDelay float64 `yaml:"fallDelay"`

	// SpawnDelay is the accumulated time, in seconds, between a piece
	// locking and the next piece spawning.
	SpawnDelay float64 `yaml:"spawnDelay"`

	// EndRowOffset selects the end-condition row, counted down from the top
	// edge. The match is over once any settled cell occupies that row.
	EndRowOffset int `yaml:"endRowOffset"`

	// Rand picks spawn shapes. Nil uses the shared global source.
	Rand Rand `yaml:"-"`
}

// DefaultConfig returns the policy of the original program: a 10×21 field
// with the end row four rows below the top edge.
func DefaultConfig() Config {
	return Config{
		Width:        10,
		Height:       21,
		FallDelay:    0.4,
		SpawnDelay:   0.5,
		EndRowOffset: 4,
	}
}

// endRow is the absolute index of the end-condition row.
func (c Config) endRow() int { return c.Height - c.EndRowOffset }
