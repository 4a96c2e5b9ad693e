package interact

import (
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/vmath"
)

// Viewport is the drawable surface size in screen units
type Viewport struct {
	W, H float64
}

// Clamped replaces degenerate dimensions with the minimum viable size
func (v Viewport) Clamped() Viewport {
	return Viewport{
		W: max(v.W, parameter.MinViewportWidth),
		H: max(v.H, parameter.MinViewportHeight),
	}
}

// Center returns the viewport midpoint
func (v Viewport) Center() vmath.Vec2 {
	return vmath.V(v.W/2, v.H/2)
}

// Contains reports whether a screen point lies on the surface
func (v Viewport) Contains(p vmath.Vec2) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= v.W && p.Y <= v.H
}

// Camera maps world space to screen space
type Camera struct {
	PanX, PanY float64
	Zoom       float64
}

// DefaultCamera is the reset view
func DefaultCamera() Camera {
	return Camera{Zoom: 1}
}

// Pan returns the pan offset as a vector
func (c Camera) Pan() vmath.Vec2 { return vmath.V(c.PanX, c.PanY) }

// ToWorld converts a screen point: world = (screen - center - pan) / zoom
func (c Camera) ToWorld(screen vmath.Vec2, vp Viewport) vmath.Vec2 {
	return screen.Sub(vp.Center()).Sub(c.Pan()).Div(c.Zoom)
}

// ToScreen is the inverse of ToWorld
func (c Camera) ToScreen(world vmath.Vec2, vp Viewport) vmath.Vec2 {
	return world.Scale(c.Zoom).Add(vp.Center()).Add(c.Pan())
}

// withZoomAt changes zoom keeping the world point under screen fixed
func (c Camera) withZoomAt(zoom float64, screen vmath.Vec2, vp Viewport) Camera {
	world := c.ToWorld(screen, vp)
	zoom = ClampZoom(zoom)
	pan := screen.Sub(vp.Center()).Sub(world.Scale(zoom))
	return Camera{PanX: pan.X, PanY: pan.Y, Zoom: zoom}
}

// centeredOn returns a camera showing world point p at the viewport center
func centeredOn(p vmath.Vec2, zoom float64) Camera {
	zoom = ClampZoom(zoom)
	pan := p.Scale(-zoom)
	return Camera{PanX: pan.X, PanY: pan.Y, Zoom: zoom}
}

// ClampZoom bounds zoom to the allowed range
func ClampZoom(z float64) float64 {
	return vmath.Clamp(z, parameter.ZoomMin, parameter.ZoomMax)
}
