// Package debugui provides a Dear ImGui inspection overlay for a running
// match: the state machine's phase, the active piece, execution statistics
// with a frame-time plot, and a live view of the grid's occupancy.
package debugui

import (
	"github.com/plus3/blockfall/tetris"
)

// Overlay renders the debug windows for one match. Create it once and call
// Render between the backend's BeginFrame and EndFrame each frame.
type Overlay struct {
	match *tetris.Match

	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewOverlay creates an overlay for the given match, keeping historyFrames
// samples in the frame-time plot.
func NewOverlay(match *tetris.Match, historyFrames int) *Overlay {
	return &Overlay{
		match:         match,
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Render draws all debug windows. deltaTime is the frame delta in seconds.
func (o *Overlay) Render(deltaTime float32) {
	o.frameHistory[o.frameIndex] = deltaTime * 1000.0
	o.frameIndex = (o.frameIndex + 1) % o.historyFrames

	o.renderMatchWindow()
	o.renderGridWindow()
}
