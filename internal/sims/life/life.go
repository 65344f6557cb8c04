package life

import (
	"strconv"

	"torus-life/internal/core"
)

// World implements Conway's Game of Life on a toroidal grid. Two
// equally-shaped grids hold the current and the staging generation; a step
// evaluates the rule from the current grid into the staging grid, then
// commits by swapping the two.
type World struct {
	cfg Config

	cur *core.Grid
	nxt *core.Grid

	gen uint64
}

// New returns a Life simulation with the provided dimensions using defaults.
func New(rows, cols int) *World {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	cur := core.NewGrid(cfg.Rows, cfg.Cols)
	// NewGrid clamps degenerate dimensions; keep the config honest.
	cfg.Rows, cfg.Cols = cur.Rows, cur.Cols
	return &World{
		cfg: cfg,
		cur: cur,
		nxt: core.NewGrid(cfg.Rows, cfg.Cols),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "life" }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return core.Size{Rows: w.cfg.Rows, Cols: w.cfg.Cols} }

// Cells exposes the current generation's values.
func (w *World) Cells() []uint8 { return w.cur.Cells() }

// At returns the current state of the cell at (row, col), toroidally wrapped.
func (w *World) At(row, col int) uint8 { return w.cur.At(row, col) }

// Generation reports how many steps have run since the last reseed.
func (w *World) Generation() uint64 { return w.gen }

// AliveCount returns the number of live cells in the current generation.
func (w *World) AliveCount() int {
	alive := 0
	for _, v := range w.cur.Cells() {
		alive += int(v)
	}
	return alive
}

// Reset reseeds the board deterministically from the provided seed,
// overwriting every cell. A zero seed falls back to the configured one.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	rng := core.NewRNG(seed).Source()
	switch w.cfg.Mode {
	case SeedNoise:
		seedNoise(rng, w.cur, seed, w.cfg.Density, w.cfg.NoiseScale)
	default:
		seedUniform(rng, w.cur, w.cfg.Density)
	}
	w.gen = 0
}

// neighborCount returns how many of the 8 toroidal neighbours of (row, col)
// are alive. On degenerate grids wrap can resolve several offsets to the
// same cell, including the centre itself; that is the torus, not a bug.
func (w *World) neighborCount(row, col int) int {
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			count += int(w.cur.At(row+dr, col+dc))
		}
	}
	return count
}

// Step advances the simulation by one generation. The rule is a pure
// function of the current grid into the staging grid: survival on 2 or 3
// neighbours, birth on exactly 3, death otherwise.
func (w *World) Step() {
	rows, cols := w.cfg.Rows, w.cfg.Cols
	staging := w.nxt.Cells()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			neighbors := w.neighborCount(r, c)
			idx := w.nxt.Index(r, c)
			alive := w.cur.At(r, c) == 1
			staging[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				staging[idx] = 1
			}
		}
	}
	w.commit()
}

// commit publishes the staging generation as current. A pointer swap is
// equivalent to a full copy here because the next step fully overwrites the
// staging grid before reading anything through the current one.
func (w *World) commit() {
	w.cur, w.nxt = w.nxt, w.cur
	w.gen++
}

// Parameters exposes the current tunables for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{
			Key:   "density",
			Label: "Seed density",
			Type:  core.ParamTypeFloat,
			Value: strconv.FormatFloat(w.cfg.Density, 'f', 2, 64),
		},
		{
			Key:   "mode",
			Label: "Seed mode",
			Value: string(w.cfg.Mode),
		},
	}}
}

// ParameterControls lists the HUD-adjustable controls.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:   "density",
			Label: "Seed density",
			Type:  core.ParamTypeFloat,
			Step:  0.01,
			Min:   0, HasMin: true,
			Max: 1, HasMax: true,
		},
	}
}

// SetFloatParameter updates a float tunable; it takes effect on the next
// reseed.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		if value < 0 {
			value = 0
		}
		if value > 1 {
			value = 1
		}
		w.cfg.Density = value
		return true
	}
	return false
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
