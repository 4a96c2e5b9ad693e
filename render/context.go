package render

import (
	"math"
	"time"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	Frame *Frame

	// Time state
	Now     time.Time
	Elapsed float64

	// Screen dimensions (terminal size in cells)
	ScreenWidth  int
	ScreenHeight int

	// Scene area height in cells, status bar excluded
	SceneHeight int
}

// NewRenderContext derives a context for a width×height terminal
func NewRenderContext(f *Frame, width, height int) RenderContext {
	return RenderContext{
		Frame:        f,
		Now:          f.Now,
		Elapsed:      f.Elapsed,
		ScreenWidth:  width,
		ScreenHeight: height,
		SceneHeight:  max(height-parameter.StatusBarHeight, 0),
	}
}

// WorldToScreen converts world coordinates to screen units through the frame camera
func (rc *RenderContext) WorldToScreen(p vmath.Vec2) vmath.Vec2 {
	return rc.Frame.View.Camera.ToScreen(p, rc.Frame.View.Viewport)
}

// ScreenToCell converts screen units to a terminal cell
// Returns (cx, cy, visible) where visible=false if outside the scene area
func (rc *RenderContext) ScreenToCell(s vmath.Vec2) (int, int, bool) {
	cx := int(math.Floor(s.X / parameter.CellWidth))
	cy := int(math.Floor(s.Y / parameter.CellHeight))
	return cx, cy, rc.InScene(cx, cy)
}

// WorldToCell converts world coordinates directly to a terminal cell
func (rc *RenderContext) WorldToCell(p vmath.Vec2) (int, int, bool) {
	return rc.ScreenToCell(rc.WorldToScreen(p))
}

// CellToWorld returns the world position under the center of a cell
func (rc *RenderContext) CellToWorld(cx, cy int) vmath.Vec2 {
	s := vmath.V((float64(cx)+0.5)*parameter.CellWidth, (float64(cy)+0.5)*parameter.CellHeight)
	return rc.Frame.View.Camera.ToWorld(s, rc.Frame.View.Viewport)
}

// InScene checks if a cell lies in the scene area
func (rc *RenderContext) InScene(cx, cy int) bool {
	return cx >= 0 && cx < rc.ScreenWidth && cy >= 0 && cy < rc.SceneHeight
}

// Zoom returns the camera zoom of the frame
func (rc *RenderContext) Zoom() float64 {
	return rc.Frame.View.Camera.Zoom
}
