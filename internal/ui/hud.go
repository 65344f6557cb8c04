//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strconv"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a small status readout over the simulation view and routes the
// bracket keys to the sim's adjustable float parameters.
type HUD struct {
	sim      core.Sim
	visible  bool
	controls []core.ParameterControl
	setter   core.FloatParameterSetter
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	h := &HUD{sim: sim, visible: true}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Update handles HUD interactions: [ and ] nudge the first float control by
// its step, clamped to the control's bounds.
func (h *HUD) Update() {
	if h == nil || h.setter == nil {
		return
	}
	ctrl, ok := h.firstFloatControl()
	if !ok {
		return
	}
	delta := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		delta = -1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		delta = 1
	}
	if delta == 0 {
		return
	}
	value := h.paramValue(ctrl.Key) + delta*ctrl.Step
	if ctrl.HasMin && value < ctrl.Min {
		value = ctrl.Min
	}
	if ctrl.HasMax && value > ctrl.Max {
		value = ctrl.Max
	}
	h.setter.SetFloatParameter(ctrl.Key, value)
}

// Draw paints the status lines in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if h == nil || !h.visible {
		return
	}
	status := "running"
	if paused {
		status = "paused"
	}
	line := fmt.Sprintf("%s  %s", h.sim.Name(), status)
	if counter, ok := h.sim.(core.GenerationCounter); ok {
		line = fmt.Sprintf("%s  gen %d", line, counter.Generation())
	}
	if counter, ok := h.sim.(core.AliveCounter); ok {
		line = fmt.Sprintf("%s  alive %d", line, counter.AliveCount())
	}
	text.Draw(screen, line, basicfont.Face7x13, 8, 16, color.White)

	help := "space pause  n step  r/s reseed  h hide  q quit"
	if ctrl, ok := h.firstFloatControl(); ok && h.setter != nil {
		help = fmt.Sprintf("%s  [/] %s %.2f", help, ctrl.Label, h.paramValue(ctrl.Key))
	}
	text.Draw(screen, help, basicfont.Face7x13, 8, 32, color.White)
}

func (h *HUD) firstFloatControl() (core.ParameterControl, bool) {
	for _, ctrl := range h.controls {
		if ctrl.Type == core.ParamTypeFloat {
			return ctrl, true
		}
	}
	return core.ParameterControl{}, false
}

func (h *HUD) paramValue(key string) float64 {
	provider, ok := h.sim.(core.ParametersProvider)
	if !ok {
		return 0
	}
	for _, p := range provider.Parameters().Params {
		if p.Key != key {
			continue
		}
		if v, err := strconv.ParseFloat(p.Value, 64); err == nil {
			return v
		}
	}
	return 0
}
