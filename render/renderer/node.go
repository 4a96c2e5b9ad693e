package renderer

import (
	"math"

	"github.com/lixenwraith/constellation/fx"
	"github.com/lixenwraith/constellation/layout"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/parameter/visual"
	"github.com/lixenwraith/constellation/render"
	"github.com/lixenwraith/constellation/skill"
	"github.com/lixenwraith/constellation/terminal"
	"github.com/lixenwraith/constellation/vmath"
)

const (
	// largeGlyphScale switches to the large glyph once scale times zoom reaches it
	largeGlyphScale = 2.0

	// ringRadius is the eligible ring distance from the node in screen units at scale 1
	ringRadius = 14.0

	// glowCore and glowHalo are background blend strengths at full glow
	glowCore = 0.45
	glowHalo = 0.18
)

// nodeStyle is the resolved appearance of a node before transition values apply
type nodeStyle struct {
	glyph rune
	fg    render.RGB
	attrs terminal.Attr
}

// styleFor resolves glyph and color by state, palette -1 selects the neutral fallback
func styleFor(palette int, st skill.State) nodeStyle {
	if palette < 0 {
		s := nodeStyle{glyph: visual.GlyphFallback, fg: visual.NodeFallback}
		if st == skill.StateLocked {
			s.attrs = terminal.AttrDim
		}
		return s
	}
	accent := visual.Accent(palette)
	switch st {
	case skill.StateUnlocked:
		return nodeStyle{glyph: visual.GlyphUnlocked, fg: render.Lerp(accent, visual.NodeUnlocked, 0.5), attrs: terminal.AttrBold}
	case skill.StateAvailable:
		return nodeStyle{glyph: visual.GlyphAvailable, fg: render.Lerp(accent, visual.NodeAvailable, 0.4), attrs: terminal.AttrBold}
	case skill.StateUnaffordable:
		return nodeStyle{glyph: visual.GlyphUnaffordable, fg: render.Lerp(accent, visual.NodeUnaffordable, 0.5)}
	default:
		return nodeStyle{glyph: visual.GlyphLocked, fg: render.Lerp(accent, visual.NodeLocked, 0.7)}
	}
}

// NodeRenderer draws every placed node with state styling, transition scale, glow and opacity
type NodeRenderer struct{}

func NewNodeRenderer() *NodeRenderer {
	return &NodeRenderer{}
}

// Render implements SystemRenderer
func (r *NodeRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	f := ctx.Frame
	if f.Layout == nil {
		return
	}
	for i, pl := range f.Layout.Placements() {
		screen := ctx.WorldToScreen(pl.Pos)
		x, y, ok := ctx.ScreenToCell(screen)
		if !ok {
			continue
		}
		st := f.State(pl.ID)
		v := f.NodeValues(pl.ID)
		palette := layout.ThemeFor(pl.Category).Palette
		style := styleFor(palette, st)

		if v.Glow > 0 {
			r.drawGlow(buf, x, y, visual.Accent(palette), v.Glow)
		}
		if st.Eligible() {
			r.drawRing(&ctx, buf, screen, v, i)
		}

		glyph := style.glyph
		if palette >= 0 && v.Scale*ctx.Zoom() >= largeGlyphScale {
			glyph = visual.GlyphLarge
		}
		bg := buf.Get(x, y).Bg
		fg := render.Blend(bg, style.fg, vmath.Clamp(v.Opacity, 0, 1))
		buf.SetFgOnly(x, y, glyph, fg, style.attrs)

		if pl.ID == f.View.Selected {
			buf.SetFgOnly(x-1, y, '‹', visual.NodeSelected, terminal.AttrBold)
			buf.SetFgOnly(x+1, y, '›', visual.NodeSelected, terminal.AttrBold)
		}
	}
}

func (r *NodeRenderer) drawGlow(buf *render.RenderBuffer, x, y int, accent render.RGB, glow float64) {
	glow = vmath.Clamp(glow, 0, 1)
	buf.Set(x, y, 0, accent, accent, render.BlendAlphaBg, glowCore*glow, terminal.AttrNone)
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		buf.Set(x+d[0], y+d[1], 0, accent, accent, render.BlendAlphaBg, glowHalo*glow, terminal.AttrNone)
	}
}

// drawRing pulses a ring of segments around an eligible node and orbits a sparkle
func (r *NodeRenderer) drawRing(ctx *render.RenderContext, buf *render.RenderBuffer, center vmath.Vec2, v fx.Values, i int) {
	pulse := 0.5 + 0.5*math.Sin(2*math.Pi*ctx.Elapsed/parameter.PulsePeriod)
	radius := math.Max(ringRadius*v.Scale*ctx.Zoom(), parameter.CellWidth*1.5)

	for k, ch := range visual.GlyphRing {
		a := -math.Pi/2 + float64(k)*math.Pi/4
		x, y, ok := ctx.ScreenToCell(center.Add(ringOffset(radius, a)))
		if !ok {
			continue
		}
		bg := buf.Get(x, y).Bg
		buf.SetFgOnly(x, y, ch, render.Blend(bg, visual.NodeRing, 0.25+0.55*pulse), terminal.AttrNone)
	}

	phase := vmath.Hash2(i, 1, 0x5A) * 2 * math.Pi
	a := ctx.Elapsed*parameter.SparkleOrbitSpeed + phase
	x, y, ok := ctx.ScreenToCell(center.Add(ringOffset(radius*1.3, a)))
	if !ok {
		return
	}
	frame := int(ctx.Elapsed*4) % len(visual.SparkleChars)
	buf.SetFgOnly(x, y, visual.SparkleChars[frame], visual.NodeSparkle, terminal.AttrBold)
}

// ringOffset stretches the vertical radius to at least one cell so the ring clears the glyph row
func ringOffset(radius, a float64) vmath.Vec2 {
	return vmath.V(math.Cos(a)*radius, math.Sin(a)*math.Max(radius, parameter.CellHeight*1.1))
}
