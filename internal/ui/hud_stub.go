//go:build !ebiten

package ui

import "torus-life/internal/core"

// HUD is a placeholder for builds without the ebiten tag.
type HUD struct{}

// NewHUD returns an inert HUD in the headless build.
func NewHUD(core.Sim) *HUD { return &HUD{} }

// Toggle is a no-op placeholder.
func (h *HUD) Toggle() {}

// Update is a no-op placeholder.
func (h *HUD) Update() {}

// Draw is a no-op placeholder to satisfy the interface shape.
func (h *HUD) Draw(any, bool) {}
