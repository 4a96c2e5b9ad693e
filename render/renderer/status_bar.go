package renderer

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/constellation/parameter/visual"
	"github.com/lixenwraith/constellation/render"
	"github.com/lixenwraith/constellation/terminal"
)

// StatusBarRenderer draws resources, progress and the latest message on the bottom row
type StatusBarRenderer struct{}

func NewStatusBarRenderer() *StatusBarRenderer {
	return &StatusBarRenderer{}
}

// Render implements SystemRenderer
func (r *StatusBarRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	y := ctx.SceneHeight
	if y >= ctx.ScreenHeight {
		return
	}
	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.SetWithBg(x, y, ' ', visual.StatusText, visual.StatusBg)
	}

	f := ctx.Frame
	res := f.Resources
	resources := []struct {
		text string
		fg   render.RGB
	}{
		{printer.Sprintf(" ◆ %d coin ", int64(math.Floor(res.Coin))), visual.StatusCoin},
		{printer.Sprintf(" ✦ %d mana ", int64(math.Floor(res.Mana))), visual.StatusMana},
		{printer.Sprintf(" ❖ %d favor ", int64(math.Floor(res.Favor))), visual.StatusFavor},
	}

	x := 0
	for _, s := range resources {
		if x >= ctx.ScreenWidth {
			return
		}
		x += buf.SetString(x, y, runewidth.Truncate(s.text, ctx.ScreenWidth-x, ""), s.fg, terminal.AttrNone)
	}

	// Message is right aligned and wins over the progress segment when space is short
	end := ctx.ScreenWidth
	if f.Status != "" && ctx.ScreenWidth-x-2 > 0 {
		fg, attrs := visual.StatusText, terminal.AttrNone
		if f.StatusError {
			fg, attrs = visual.StatusDenied, terminal.AttrBold
		}
		msg := runewidth.Truncate(f.Status, ctx.ScreenWidth-x-2, "…")
		end = ctx.ScreenWidth - 1 - runewidth.StringWidth(msg)
		buf.SetString(end, y, msg, fg, attrs)
	}

	progress := printer.Sprintf(" │ %d/%d unlocked │ tiers 0-%d │ zoom %d%% ",
		len(f.Unlocked), f.Tree.Len(), f.Tree.MaxTier(), int(math.Round(ctx.Zoom()*100)))
	if x+runewidth.StringWidth(progress) < end {
		buf.SetString(x, y, progress, visual.StatusText, terminal.AttrNone)
	}
}
