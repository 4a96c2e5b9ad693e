package renderer

import (
	"math"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/parameter/visual"
	"github.com/lixenwraith/constellation/render"
	"github.com/lixenwraith/constellation/terminal"
	"github.com/lixenwraith/constellation/vmath"
)

const (
	// starParallax scales camera pan applied to the starfield
	starParallax = 0.25
	starSalt     = 0x57A2
)

// StarfieldRenderer scatters hashed, twinkling stars that drift slower than the scene
type StarfieldRenderer struct{}

func NewStarfieldRenderer() *StarfieldRenderer {
	return &StarfieldRenderer{}
}

// Render implements SystemRenderer
func (r *StarfieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	cam := ctx.Frame.View.Camera
	ox := int(math.Floor(-cam.PanX * starParallax / parameter.CellWidth))
	oy := int(math.Floor(-cam.PanY * starParallax / parameter.CellHeight))

	for y := 0; y < ctx.SceneHeight; y++ {
		for x := 0; x < ctx.ScreenWidth; x++ {
			h := vmath.Hash2(x+ox, y+oy, starSalt)
			if h >= parameter.StarDensity {
				continue
			}
			norm := h / parameter.StarDensity
			twinkle := 0.5 + 0.5*math.Sin(ctx.Elapsed*1.3+norm*40)
			ch := visual.StarChars[min(int(norm*float64(len(visual.StarChars))), len(visual.StarChars)-1)]
			bg := buf.Get(x, y).Bg
			fg := render.Blend(bg, render.Lerp(visual.StarDim, visual.StarBright, norm), 0.35+0.65*twinkle)
			buf.SetFgOnly(x, y, ch, fg, terminal.AttrNone)
		}
	}
}
