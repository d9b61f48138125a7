package tetris

// Input is the snapshot of held intents for one tick, sampled once by the
// driver. The core is agnostic to the device behind it.
type Input struct {
	Down   bool
	Left   bool
	Right  bool
	Rotate bool
}
