package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
)

func (o *Overlay) renderMatchWindow() {
	if !imgui.BeginV("Match", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("State: %s", o.match.State()))

	if piece, ok := o.match.ActivePiece(); ok {
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Piece: %s", piece.Shape))
		imgui.Text(fmt.Sprintf("Anchor: (%d, %d)", piece.Anchor.X, piece.Anchor.Y))
		imgui.Text(fmt.Sprintf("Rotation: %d", piece.Rotation))
		if imgui.TreeNodeStr("World Cells") {
			for _, cell := range piece.WorldCells() {
				imgui.BulletText(fmt.Sprintf("(%d, %d)", cell.X, cell.Y))
			}
			imgui.TreePop()
		}
	}

	stats := o.match.Stats()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Pieces: %d spawned / %d locked", stats.PiecesSpawned, stats.PiecesLocked))
	imgui.Text(fmt.Sprintf("Rows Eliminated: %d", stats.RowsEliminated))

	if imgui.TreeNodeStr("Tick Durations") {
		imgui.Text(fmt.Sprintf("Avg: %v", stats.AvgTick))
		imgui.Text(fmt.Sprintf("Min: %v", stats.MinTick))
		imgui.Text(fmt.Sprintf("Max: %v", stats.MaxTick))
		imgui.Text(fmt.Sprintf("Last: %v", stats.LastTick))
		imgui.TreePop()
	}

	var avgFrameTime float32
	for _, ft := range o.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(o.historyFrames)

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &o.frameHistory[0], int32(len(o.frameHistory)))

	imgui.End()
}
