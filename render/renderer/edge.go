package renderer

import (
	"math"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/parameter/visual"
	"github.com/lixenwraith/constellation/render"
	"github.com/lixenwraith/constellation/skill"
	"github.com/lixenwraith/constellation/terminal"
	"github.com/lixenwraith/constellation/vmath"
)

// edgeStyle resolves rune, color and dash period for an edge
// A period of 1 draws every cell; prerequisite edges are solid once the child is unlocked or eligible
func edgeStyle(e skill.Edge, f *render.Frame) (rune, render.RGB, int) {
	lit := f.Highlight.HasEdge(e.Key())
	if e.Kind == skill.EdgeBridge {
		if lit {
			return visual.BridgeDot, visual.BridgeLit, 2
		}
		return visual.BridgeDot, visual.BridgeDim, 3
	}
	switch {
	case f.Unlocked.Has(e.From) && f.Unlocked.Has(e.To):
		return visual.EdgeDot, visual.EdgeUnlocked, 1
	case lit:
		return visual.EdgeDot, visual.EdgeLit, 1
	case f.Unlocked.Has(e.To) || f.State(e.To).Eligible():
		return visual.EdgeDot, visual.EdgeReady, 1
	default:
		return visual.EdgeDot, visual.EdgeDim, 2
	}
}

// endpoints projects both ends of e to cells, false when unplaced or off screen
func endpoints(ctx *render.RenderContext, e skill.Edge) (x0, y0, x1, y1 int, ok bool) {
	from, ok1 := ctx.Frame.Layout.Position(e.From)
	to, ok2 := ctx.Frame.Layout.Position(e.To)
	if !ok1 || !ok2 {
		return 0, 0, 0, 0, false
	}
	x0, y0, _ = ctx.WorldToCell(from)
	x1, y1, _ = ctx.WorldToCell(to)
	return x0, y0, x1, y1, lineVisible(x0, y0, x1, y1, ctx.ScreenWidth, ctx.SceneHeight)
}

// EdgeRenderer draws prerequisite and bridge edges, dashed into locked nodes unless highlighted
type EdgeRenderer struct{}

func NewEdgeRenderer() *EdgeRenderer {
	return &EdgeRenderer{}
}

// Render implements SystemRenderer
func (r *EdgeRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	f := ctx.Frame
	if f.Tree == nil || f.Layout == nil {
		return
	}
	for _, e := range f.Tree.Edges() {
		x0, y0, x1, y1, ok := endpoints(&ctx, e)
		if !ok {
			continue
		}
		ch, fg, period := edgeStyle(e, f)
		cellLine(x0, y0, x1, y1, func(x, y, i, n int) {
			// Endpoints belong to the node glyphs
			if i == 0 || i == n || i%period != 0 || !ctx.InScene(x, y) {
				return
			}
			buf.SetFgOnly(x, y, ch, fg, terminal.AttrNone)
		})
	}
}

// FlowRenderer moves orbs from unlocked parents toward their children
type FlowRenderer struct{}

func NewFlowRenderer() *FlowRenderer {
	return &FlowRenderer{}
}

// Render implements SystemRenderer
func (r *FlowRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	f := ctx.Frame
	if f.Tree == nil || f.Layout == nil {
		return
	}
	for i, e := range f.Tree.Edges() {
		if e.Kind != skill.EdgePrerequisite || !f.Unlocked.Has(e.From) {
			continue
		}
		if f.Unlocked.Has(e.To) && !f.Highlight.HasEdge(e.Key()) {
			continue
		}
		from, _ := f.Layout.Position(e.From)
		to, _ := f.Layout.Position(e.To)

		phase := vmath.Hash2(i, 0, 0xF10)
		t := vmath.Fract(ctx.Elapsed*parameter.FlowSpeed + phase)
		x, y, ok := ctx.WorldToCell(from.Lerp(to, t))
		if !ok {
			continue
		}
		// Fade at both ends so orbs emerge from and sink into nodes
		alpha := math.Sin(t * math.Pi)
		bg := buf.Get(x, y).Bg
		buf.SetFgOnly(x, y, visual.FlowOrbRun, render.Blend(bg, visual.FlowOrb, alpha), terminal.AttrBold)
	}
}
