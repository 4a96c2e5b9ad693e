package visual

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/constellation/terminal"
)

// Constellation hues in degrees, indexed by palette index
// Aurum gold, Bastion red, Arcana violet, Forge teal, Concord blue, Hearth rose
var constellationHues = [6]float64{45, 5, 275, 170, 215, 330}

// ConstellationColors holds the saturated accent of each constellation
var ConstellationColors [6]terminal.RGB

// SectorTints holds the darkened wedge tint of each constellation
var SectorTints [6]terminal.RGB

func init() {
	for i, h := range constellationHues {
		ConstellationColors[i] = terminal.FromColorful(colorful.Hcl(h, 0.55, 0.72))
		SectorTints[i] = terminal.FromColorful(colorful.Hcl(h, 0.35, 0.25))
	}
}

// Accent returns the constellation color for a palette index, neutral gray when out of range
func Accent(palette int) terminal.RGB {
	if palette < 0 || palette >= len(ConstellationColors) {
		return NodeFallback
	}
	return ConstellationColors[palette]
}

// Tint returns the sector tint for a palette index, the sky color when out of range
func Tint(palette int) terminal.RGB {
	if palette < 0 || palette >= len(SectorTints) {
		return SkyHorizon
	}
	return SectorTints[palette]
}
