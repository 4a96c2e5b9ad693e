package render

import (
	"github.com/lixenwraith/constellation/parameter/visual"
	"github.com/lixenwraith/constellation/terminal"
)

// Cell is an alias to terminal.Cell to avoid copying
// Attributes are preserved directly
type Cell = terminal.Cell
type Attr = terminal.Attr

// DefaultBgRGB is the background of cells no pass touched
var DefaultBgRGB = visual.SkyDeep
