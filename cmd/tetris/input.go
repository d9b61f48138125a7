package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/tetris"
)

// Key repeat in ticks at 60 TPS: first repeat after 0.2s, then every 0.05s.
const (
	repeatDelay    = 12
	repeatInterval = 3
	softDropEvery  = 2
)

// keyRepeats reports a press on the first tick a key goes down and then on a
// repeating cadence while it stays held.
func keyRepeats(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// readInput samples the keyboard into the engine's per-tick intent snapshot.
func readInput() tetris.Input {
	down := inpututil.KeyPressDuration(ebiten.KeyDown)
	return tetris.Input{
		Down:   down > 0 && down%softDropEvery == 0,
		Left:   keyRepeats(ebiten.KeyLeft),
		Right:  keyRepeats(ebiten.KeyRight),
		Rotate: inpututil.IsKeyJustPressed(ebiten.KeyUp),
	}
}
