package interact

import (
	"time"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/vmath"
)

// Anchor is the side of the node the tooltip is drawn on
type Anchor uint8

const (
	AnchorTop Anchor = iota
	AnchorBottom
	AnchorLeft
)

func (a Anchor) String() string {
	switch a {
	case AnchorBottom:
		return "bottom"
	case AnchorLeft:
		return "left"
	default:
		return "top"
	}
}

// Tooltip is the placed tooltip box in screen units
type Tooltip struct {
	Visible bool
	NodeID  string
	Anchor  Anchor
	Box     vmath.Rect
	ShownAt time.Time
}

// Opacity returns the fade-in progress at now
func (t Tooltip) Opacity(now time.Time) float64 {
	if !t.Visible {
		return 0
	}
	return vmath.Clamp(float64(now.Sub(t.ShownAt))/float64(parameter.TooltipFadeDuration), 0, 1)
}

// pendingTooltip is a scheduled reveal, valid only while token matches the controller generation
type pendingTooltip struct {
	token uint64
	id    string
	due   time.Time
}

// PlaceTooltip positions a w×h box next to node, preferring top then bottom then left
func PlaceTooltip(node vmath.Vec2, w, h float64, vp Viewport) (vmath.Rect, Anchor) {
	off := parameter.TooltipOffset
	x := vmath.Clamp(node.X-w/2, 0, max(vp.W-w, 0))

	if top := node.Y - off - h; top >= 0 {
		return rectAt(x, top, w, h), AnchorTop
	}
	if bottom := node.Y + off; bottom+h <= vp.H {
		return rectAt(x, bottom, w, h), AnchorBottom
	}
	left := max(node.X-off-w, 0)
	y := vmath.Clamp(node.Y-h/2, 0, max(vp.H-h, 0))
	return rectAt(left, y, w, h), AnchorLeft
}

func rectAt(x, y, w, h float64) vmath.Rect {
	return vmath.Rect{Min: vmath.V(x, y), Max: vmath.V(x+w, y+h)}
}
