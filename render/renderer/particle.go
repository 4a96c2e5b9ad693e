package renderer

import (
	"github.com/lixenwraith/constellation/fx"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/parameter/visual"
	"github.com/lixenwraith/constellation/render"
	"github.com/lixenwraith/constellation/terminal"
)

// ParticleRenderer draws live particles blended over whatever lies beneath
type ParticleRenderer struct{}

func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// Render implements SystemRenderer
func (r *ParticleRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for i := range ctx.Frame.Particles {
		p := &ctx.Frame.Particles[i]
		x, y, ok := ctx.WorldToCell(p.Pos)
		if !ok {
			continue
		}
		bg := buf.Get(x, y).Bg
		buf.SetFgOnly(x, y, particleChar(p.Size), render.Blend(bg, particleColor(p), p.Alpha()), terminal.AttrNone)
	}
}

func particleColor(p *fx.Particle) render.RGB {
	switch p.Kind {
	case fx.KindAmbient:
		return visual.AmbientMote
	case fx.KindConnection:
		return visual.ConnectionArc
	default:
		return visual.Accent(p.Palette)
	}
}

// particleChar buckets size into the particle glyph table
func particleChar(size float64) rune {
	span := parameter.ParticleSizeMax - parameter.ParticleSizeMin
	n := len(visual.ParticleChars)
	idx := int((size - parameter.ParticleSizeMin) / span * float64(n))
	return visual.ParticleChars[max(0, min(idx, n-1))]
}
