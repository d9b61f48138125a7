// Command tetris is the playable front end: an ebiten window driving the
// engine at a fixed 60 ticks per second and drawing the grid's occupancy.
package main

import (
	"flag"
	"image/color"
	"log"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/tetris"
	"github.com/plus3/blockfall/tetris/debugui"
	debugui_ebiten "github.com/plus3/blockfall/tetris/debugui/ebiten"
)

const tickDelta = 1.0 / 60.0

var (
	cellColor    = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
	outlineColor = color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}
	overColor    = color.RGBA{R: 0x60, A: 0x60}
)

type game struct {
	match    *tetris.Match
	cellSize int
	width    int
	height   int

	// Debug overlay; all nil unless -debug is set.
	backend *debugui_ebiten.ImguiBackend
	overlay *debugui.Overlay
	timer   *debugui.FrameTimer
}

func (g *game) Update() error {
	in := readInput()

	if g.backend != nil {
		g.backend.BeginFrame()
		g.overlay.Render(g.timer.GetDeltaTime())
		g.backend.EndFrame()
	}

	g.match.Tick(tickDelta, in)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	grid := g.match.Grid()
	cells := grid.Cells()
	cell := g.cellSize
	pad := 2

	// Center the field; row 0 draws at the bottom.
	bounds := screen.Bounds()
	originX := (bounds.Dx() - grid.Width()*cell) / 2
	originY := (bounds.Dy() - grid.Height()*cell) / 2

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			px := float32(originX + x*cell)
			py := float32(originY + (grid.Height()-1-y)*cell)
			size := float32(cell - pad)
			if cells[y*grid.Width()+x] {
				vector.DrawFilledRect(screen, px, py, size, size, cellColor, false)
			} else {
				vector.StrokeRect(screen, px, py, size, size, 1, outlineColor, false)
			}
		}
	}

	if g.match.IsOver() {
		vector.DrawFilledRect(screen,
			float32(originX), float32(originY),
			float32(grid.Width()*cell), float32(grid.Height()*cell),
			overColor, false)
	}

	if g.backend != nil {
		g.backend.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != nil {
		g.backend.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	debug := flag.Bool("debug", false, "show the Dear ImGui debug overlay")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	match := tetris.NewMatch(cfg.Game)

	windowWidth := cfg.Game.Width*cfg.CellSize + 8*cfg.CellSize
	windowHeight := cfg.Game.Height*cfg.CellSize + 4*cfg.CellSize

	g := &game{
		match:    match,
		cellSize: cfg.CellSize,
		width:    windowWidth,
		height:   windowHeight,
	}

	if *debug {
		backend := ebitenbackend.NewEbitenBackend()
		backend.CreateWindow("tetris", windowWidth, windowHeight)
		imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini
		g.backend = &debugui_ebiten.ImguiBackend{EbitenBackend: backend}
		g.overlay = debugui.NewOverlay(match, 120)
		g.timer = debugui.NewFrameTimer()
	} else {
		ebiten.SetWindowSize(windowWidth, windowHeight)
		ebiten.SetWindowTitle("tetris")
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
