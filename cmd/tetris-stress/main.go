// Command tetris-stress runs headless seeded matches with a random input
// policy and reports simulation and timing statistics.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/tetris"
)

const tickDelta = 1.0 / 60.0

// recordingRand wraps the engine's shape source and tallies every pick, so
// the report can show the spawn distribution.
type recordingRand struct {
	inner  *rand.Rand
	counts *intmap.Map[int, int64]
}

func (r *recordingRand) IntN(n int) int {
	v := r.inner.IntN(n)
	prev, _ := r.counts.Get(v)
	r.counts.Put(v, prev+1)
	return v
}

func main() {
	defaults := tetris.DefaultConfig()

	matches := flag.Int("matches", 20, "The number of matches to simulate.")
	maxTicks := flag.Int("max-ticks", 50000, "The tick budget per match before it is abandoned.")
	seed := flag.Uint64("seed", 1, "The base seed; match i runs with (seed, i).")
	fallDelay := flag.Float64("fall-delay", defaults.FallDelay, "Seconds between gravity steps.")
	spawnDelay := flag.Float64("spawn-delay", defaults.SpawnDelay, "Seconds between lock and next spawn.")
	flag.Parse()

	log.Println("Starting match stress test...")

	shapeCounts := intmap.New[int, int64](tetris.NumShapes)
	columnHeights := intmap.New[int, int64](defaults.Width)

	report := &Report{
		Matches:    *matches,
		MaxTicks:   *maxTicks,
		Seed:       *seed,
		FallDelay:  *fallDelay,
		SpawnDelay: *spawnDelay,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	for i := 0; i < *matches; i++ {
		cfg := defaults
		cfg.FallDelay = *fallDelay
		cfg.SpawnDelay = *spawnDelay
		cfg.Rand = &recordingRand{
			inner:  rand.New(rand.NewPCG(*seed, uint64(i))),
			counts: shapeCounts,
		}
		m := tetris.NewMatch(cfg)
		inputRng := rand.New(rand.NewPCG(*seed^0x9e3779b97f4a7c15, uint64(i)))

		ticks := 0
		for !m.IsOver() && ticks < *maxTicks {
			in := tetris.Input{
				Down:   inputRng.IntN(3) == 0,
				Left:   inputRng.IntN(4) == 0,
				Right:  inputRng.IntN(4) == 0,
				Rotate: inputRng.IntN(6) == 0,
			}

			tickStart := time.Now()
			m.Tick(tickDelta, in)
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
			ticks++
		}

		stats := m.Stats()
		report.TotalTicks += int64(ticks)
		report.PiecesSpawned += stats.PiecesSpawned
		report.PiecesLocked += stats.PiecesLocked
		report.RowsEliminated += stats.RowsEliminated
		if m.IsOver() {
			report.Completed++
		}

		grid := m.Grid()
		for x := 0; x < grid.Width(); x++ {
			height := 0
			for y := grid.Height() - 1; y >= 0; y-- {
				if occupied, _ := grid.Get(x, y); occupied {
					height = y + 1
					break
				}
			}
			prev, _ := columnHeights.Get(x)
			columnHeights.Put(x, prev+int64(height))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Shapes = shapeRows(shapeCounts)
	report.Columns = columnRows(columnHeights, defaults.Width, *matches)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}

func shapeRows(counts *intmap.Map[int, int64]) []ShapeRow {
	var total int64
	for s := 0; s < tetris.NumShapes; s++ {
		count, _ := counts.Get(s)
		total += count
	}

	rows := make([]ShapeRow, 0, tetris.NumShapes)
	for s := 0; s < tetris.NumShapes; s++ {
		count, _ := counts.Get(s)
		row := ShapeRow{Shape: tetris.Shape(s).String(), Count: count}
		if total > 0 {
			row.Pct = 100 * float64(count) / float64(total)
		}
		rows = append(rows, row)
	}
	return rows
}

func columnRows(heights *intmap.Map[int, int64], width, matches int) []ColumnRow {
	rows := make([]ColumnRow, 0, width)
	for x := 0; x < width; x++ {
		sum, _ := heights.Get(x)
		row := ColumnRow{Column: x}
		if matches > 0 {
			row.AvgHeight = float64(sum) / float64(matches)
		}
		rows = append(rows, row)
	}
	return rows
}
