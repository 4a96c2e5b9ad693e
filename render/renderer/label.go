package renderer

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/parameter/visual"
	"github.com/lixenwraith/constellation/render"
	"github.com/lixenwraith/constellation/terminal"
)

// LabelRenderer writes node titles under nodes when zoomed in, always for hover and selection
type LabelRenderer struct{}

func NewLabelRenderer() *LabelRenderer {
	return &LabelRenderer{}
}

// Render implements SystemRenderer
func (r *LabelRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	f := ctx.Frame
	if f.Layout == nil || f.Tree == nil {
		return
	}
	zoomed := ctx.Zoom() >= parameter.LabelMinZoom
	for _, pl := range f.Layout.Placements() {
		focused := pl.ID == f.View.Hover || pl.ID == f.View.Selected
		if !zoomed && !focused {
			continue
		}
		n := f.Tree.Node(pl.ID)
		if n == nil {
			continue
		}
		x, y, ok := ctx.WorldToCell(pl.Pos)
		if !ok || y+1 >= ctx.SceneHeight {
			continue
		}
		title := runewidth.Truncate(n.Title, parameter.LabelMaxWidth, "…")
		w := runewidth.StringWidth(title)

		fg, attrs := visual.LabelText, terminal.AttrNone
		if focused || f.Highlight.HasNode(pl.ID) {
			fg, attrs = visual.TooltipTitle, terminal.AttrBold
		}
		buf.SetString(x-w/2, y+1, title, fg, attrs)
	}
}
