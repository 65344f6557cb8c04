//go:build ebiten

package app

import (
	"image/color"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core simulation to the ebiten.Game interface: it owns the
// run/pause flag, routes keyboard events, and paces simulation steps
// independently of the render rate.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	stepper *core.FixedStep

	onColor  color.Color
	offColor color.Color

	cellSize int
	paused   bool
	stepOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.Rows, size.Cols),
		hud:      ui.NewHUD(sim),
		stepper:  core.NewFixedStep(cfg.TPS),
		onColor:  color.RGBA{G: 200, A: 255},
		offColor: color.Black,
		cellSize: cfg.CellSize,
		seed:     cfg.Seed,
	}
}

// Reseed reinitializes the simulation state with the provided seed. The
// run/pause flag is untouched: reseeding works the same way in both states.
func (g *Game) Reseed(seed int64) {
	g.sim.Reset(seed)
	g.stepOnce = false
}

// Update handles per-frame input and advances the simulation on its own
// step clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reseed(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}

	g.hud.Update()

	if !g.paused {
		if g.stepper.ShouldStep() {
			g.sim.Step()
		}
		g.stepOnce = false
	} else if g.stepOnce {
		g.sim.Step()
		g.stepOnce = false
	}
	return nil
}

// Draw renders the current generation and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, g.cellSize)
	g.hud.Draw(screen, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.Cols * g.cellSize, s.Rows * g.cellSize
}
