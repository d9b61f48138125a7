package debugui

import (
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
)

func (o *Overlay) renderGridWindow() {
	if !imgui.BeginV("Grid", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	grid := o.match.Grid()
	cells := grid.Cells()

	// Rows print top-down; the backing slice has row 0 at the bottom.
	var row strings.Builder
	for y := grid.Height() - 1; y >= 0; y-- {
		row.Reset()
		for x := 0; x < grid.Width(); x++ {
			if cells[y*grid.Width()+x] {
				row.WriteByte('#')
			} else {
				row.WriteByte('.')
			}
		}
		imgui.Text(row.String())
	}

	imgui.End()
}
