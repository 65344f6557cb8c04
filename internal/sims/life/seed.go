package life

import (
	"math/rand/v2"

	"torus-life/internal/core"

	"github.com/aquilax/go-perlin"
)

const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3

	// Field values above this belong to a cluster. Noise2D output spans
	// roughly [-0.7, 0.7].
	noiseCutoff = 0.12
)

// seedUniform overwrites the grid, setting each cell alive independently
// with probability density.
func seedUniform(rng *rand.Rand, g *core.Grid, density float64) {
	core.FillDensity(rng, g.Cells(), density)
}

// seedNoise overwrites the grid with cluster-shaped life: a perlin field
// selects the cluster regions and the density fills them. Cells outside the
// clusters stay dead.
func seedNoise(rng *rand.Rand, g *core.Grid, seed int64, density, scale float64) {
	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)
	fill := density * 4
	if fill > 1 {
		fill = 1
	}
	cells := g.Cells()
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			idx := g.Index(r, c)
			cells[idx] = 0
			if p.Noise2D(float64(c)*scale, float64(r)*scale) <= noiseCutoff {
				continue
			}
			if rng.Float64() < fill {
				cells[idx] = 1
			}
		}
	}
}
