package renderer

import (
	"math"

	"github.com/lixenwraith/constellation/layout"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/parameter/visual"
	"github.com/lixenwraith/constellation/render"
	"github.com/lixenwraith/constellation/terminal"
	"github.com/lixenwraith/constellation/vmath"
)

// BackgroundRenderer paints the sky gradient over the scene area
type BackgroundRenderer struct{}

func NewBackgroundRenderer() *BackgroundRenderer {
	return &BackgroundRenderer{}
}

// Render implements SystemRenderer
func (r *BackgroundRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	h := max(ctx.SceneHeight-1, 1)
	for y := 0; y < ctx.SceneHeight; y++ {
		bg := render.LerpLab(visual.SkyDeep, visual.SkyHorizon, float64(y)/float64(h))
		for x := 0; x < ctx.ScreenWidth; x++ {
			buf.SetWithBg(x, y, ' ', bg, bg)
		}
	}
}

// SectorRenderer tints the hex wedge of each constellation with its hue
type SectorRenderer struct{}

func NewSectorRenderer() *SectorRenderer {
	return &SectorRenderer{}
}

// wedgeCos is the cosine of the half angle of one of the six wedges
var wedgeCos = math.Cos(math.Pi / 6)

// sectorAt returns the constellation whose wedge holds world point p and its tint strength
// The wedge spans 30 degrees either side of the hub-to-center direction, -1 when none
func sectorAt(cons []layout.Constellation, p vmath.Vec2) (int, float64) {
	d := p.Len()
	if d == 0 {
		return -1, 0
	}
	u := p.Div(d)
	for i := range cons {
		c := &cons[i]
		dist := c.Center.Len()
		if c.Palette < 0 || c.Radius <= 0 || dist == 0 {
			continue
		}
		cos := u.Dot(c.Center.Div(dist))
		if cos < wedgeCos {
			continue
		}
		// Strongest on the constellation ring band, fading toward the hub and outer edge
		span := c.Radius + parameter.RingBaseRadius
		radial := 1 - math.Abs(d-dist)/span
		if radial <= 0 {
			return -1, 0
		}
		// Soften the wedge borders
		edge := vmath.Clamp((cos-wedgeCos)/(1-wedgeCos), 0, 1)
		return i, parameter.SectorTintAlpha * 4 * radial * radial * (0.5 + 0.5*edge)
	}
	return -1, 0
}

// Render implements SystemRenderer
func (r *SectorRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	l := ctx.Frame.Layout
	if l == nil {
		return
	}
	cons := l.Constellations()
	for y := 0; y < ctx.SceneHeight; y++ {
		for x := 0; x < ctx.ScreenWidth; x++ {
			i, alpha := sectorAt(cons, ctx.CellToWorld(x, y))
			if i < 0 {
				continue
			}
			buf.Set(x, y, 0, render.RGBBlack, visual.Tint(cons[i].Palette), render.BlendAlphaBg, alpha, terminal.AttrNone)
		}
	}
}
