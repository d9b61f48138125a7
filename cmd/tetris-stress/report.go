package main

import (
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Matches    int
	MaxTicks   int
	Seed       uint64
	FallDelay  float64
	SpawnDelay float64

	// Results
	Completed      int
	TotalTicks     int64
	PiecesSpawned  int
	PiecesLocked   int
	RowsEliminated int
	TotalTime      time.Duration
	TickTime       Stats
	Shapes         []ShapeRow
	Columns        []ColumnRow
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type ShapeRow struct {
	Shape string
	Count int64
	Pct   float64
}

type ColumnRow struct {
	Column    int
	AvgHeight float64
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Match Stress Test Report

## Test Configuration
- **Matches:** {{.Matches}}
- **Tick Budget per Match:** {{.MaxTicks}}
- **Base Seed:** {{.Seed}}
- **Fall Delay:** {{.FallDelay}}s
- **Spawn Delay:** {{.SpawnDelay}}s

## Simulation Results
- **Matches Reaching Game Over:** {{.Completed}} / {{.Matches}}
- **Total Ticks:** {{.TotalTicks}}
- **Pieces Spawned:** {{.PiecesSpawned}}
- **Pieces Locked:** {{.PiecesLocked}}
- **Rows Eliminated:** {{.RowsEliminated}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Spawn Shape Distribution
{{range .Shapes}}- **{{.Shape}}:** {{.Count}} ({{printf "%.1f" .Pct}}%)
{{end}}
## Final Column Heights (avg over matches)
{{range .Columns}}- **Column {{.Column}}:** {{printf "%.1f" .AvgHeight}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
