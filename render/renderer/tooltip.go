package renderer

import (
	"fmt"
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/constellation/layout"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/parameter/visual"
	"github.com/lixenwraith/constellation/render"
	"github.com/lixenwraith/constellation/skill"
	"github.com/lixenwraith/constellation/terminal"
)

// tooltipLine is one row of tooltip content
type tooltipLine struct {
	text  string
	fg    render.RGB
	attrs terminal.Attr
}

// tooltipLines builds the content for node: header, cost, effects, ability, then state or reasons
func tooltipLines(n *skill.Node, f *render.Frame) []tooltipLine {
	th := layout.ThemeFor(n.Category)
	lines := []tooltipLine{
		{text: n.Title, fg: visual.TooltipTitle, attrs: terminal.AttrBold},
		{text: fmt.Sprintf("Tier %d · %s · %s/%s", n.Tier, th.Name, n.Rarity, n.Quality), fg: visual.TooltipText},
	}

	st := f.State(n.ID)
	cost := n.CostAt(len(f.Unlocked))
	if st != skill.StateUnlocked {
		fg := visual.TooltipGood
		if !skill.CanAfford(cost, f.Resources) {
			fg = visual.TooltipBad
		}
		lines = append(lines, tooltipLine{text: "Cost " + formatCost(cost), fg: fg})
	}

	for _, e := range n.Effects {
		lines = append(lines, tooltipLine{text: "+ " + e.Describe(), fg: visual.TooltipText})
	}
	if n.Ability != nil {
		lines = append(lines, tooltipLine{
			text:  printer.Sprintf("★ %s (%.2f)", n.Ability.Name, n.Ability.Power),
			fg:    visual.NodeUnlocked,
			attrs: terminal.AttrBold,
		})
	}

	switch st {
	case skill.StateUnlocked:
		lines = append(lines, tooltipLine{text: "Unlocked", fg: visual.TooltipGood})
	case skill.StateAvailable:
		lines = append(lines, tooltipLine{text: "Click to unlock", fg: visual.TooltipGood, attrs: terminal.AttrBold})
	case skill.StateUnaffordable:
		lines = append(lines, tooltipLine{text: "Need " + formatCost(skill.Shortfall(cost, f.Resources)), fg: visual.TooltipBad})
	default:
		for _, msg := range skill.Check(n, f.Unlocked, f.Tree).Messages() {
			lines = append(lines, tooltipLine{text: msg, fg: visual.TooltipBad})
		}
	}

	if len(lines) > parameter.TooltipMaxLines {
		lines = lines[:parameter.TooltipMaxLines]
	}
	return lines
}

// TooltipRenderer draws the placed tooltip box with fade-in
type TooltipRenderer struct{}

func NewTooltipRenderer() *TooltipRenderer {
	return &TooltipRenderer{}
}

// Render implements SystemRenderer
func (r *TooltipRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	f := ctx.Frame
	tip := f.View.Tooltip
	if !tip.Visible || f.Tree == nil {
		return
	}
	n := f.Tree.Node(tip.NodeID)
	if n == nil {
		return
	}
	alpha := tip.Opacity(ctx.Now)
	if alpha <= 0 {
		return
	}

	x0 := int(math.Floor(tip.Box.Min.X / parameter.CellWidth))
	y0 := int(math.Floor(tip.Box.Min.Y / parameter.CellHeight))
	w := int(math.Ceil(tip.Box.Width() / parameter.CellWidth))
	h := int(math.Ceil(tip.Box.Height() / parameter.CellHeight))
	if w < 4 || h < 3 {
		return
	}

	buf.FillRect(x0, y0, w, h, visual.TooltipBg, 0.92*alpha)
	r.drawFrame(buf, x0, y0, w, h, alpha)

	inner := w - 4
	for i, line := range tooltipLines(n, f) {
		y := y0 + 1 + i
		if y >= y0+h-1 {
			break
		}
		text := runewidth.Truncate(line.text, inner, "…")
		bg := buf.Get(x0+2, y).Bg
		buf.SetString(x0+2, y, text, render.Blend(bg, line.fg, alpha), line.attrs)
	}
}

func (r *TooltipRenderer) drawFrame(buf *render.RenderBuffer, x0, y0, w, h int, alpha float64) {
	x1, y1 := x0+w-1, y0+h-1
	put := func(x, y int, ch rune) {
		bg := buf.Get(x, y).Bg
		buf.SetFgOnly(x, y, ch, render.Blend(bg, visual.TooltipBorder, alpha), terminal.AttrNone)
	}
	for x := x0 + 1; x < x1; x++ {
		put(x, y0, visual.BoxHorizontal)
		put(x, y1, visual.BoxHorizontal)
	}
	for y := y0 + 1; y < y1; y++ {
		put(x0, y, visual.BoxVertical)
		put(x1, y, visual.BoxVertical)
	}
	put(x0, y0, visual.BoxTopLeft)
	put(x1, y0, visual.BoxTopRight)
	put(x0, y1, visual.BoxBottomLeft)
	put(x1, y1, visual.BoxBottomRight)
}
