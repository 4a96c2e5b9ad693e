package interact

import (
	"math"
	"time"

	"github.com/lixenwraith/constellation/fx"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/skill"
	"github.com/lixenwraith/constellation/vmath"
)

// zoomAnimation eases zoom toward target keeping a screen anchor fixed
type zoomAnimation struct {
	target float64
	anchor vmath.Vec2 // Screen point held stationary
	last   time.Time
}

// View is a read-only copy of controller state for rendering
type View struct {
	Camera   Camera
	Viewport Viewport
	Hover    string
	Selected string
	Dragging bool
	Tooltip  Tooltip
}

// Controller owns camera, hover, selection and tooltip state
// All methods run on the frame goroutine, no locking
type Controller struct {
	scene   Scene
	hooks   Hooks
	effects Effects
	clock   Clock

	cam Camera
	vp  Viewport

	pointer     vmath.Vec2
	pointerDown bool
	dragMoved   bool
	lastDrag    vmath.Vec2

	hover    string
	selected string

	tooltip Tooltip
	token   uint64 // Hover generation, bumped on every hover change
	pending pendingTooltip

	zoom *zoomAnimation

	disposed bool
}

// NewController wires a controller to its host collaborators
func NewController(scene Scene, hooks Hooks, effects Effects, clock Clock) *Controller {
	if hooks == nil {
		hooks = NopHooks{}
	}
	return &Controller{
		scene:   scene,
		hooks:   hooks,
		effects: effects,
		clock:   clock,
		cam:     DefaultCamera(),
		vp:      Viewport{}.Clamped(),
	}
}

// View returns a snapshot for the renderer
func (c *Controller) View() View {
	return View{
		Camera:   c.cam,
		Viewport: c.vp,
		Hover:    c.hover,
		Selected: c.selected,
		Dragging: c.pointerDown && c.dragMoved,
		Tooltip:  c.tooltip,
	}
}

// Camera returns the current camera
func (c *Controller) Camera() Camera { return c.cam }

// Viewport returns the clamped viewport
func (c *Controller) Viewport() Viewport { return c.vp }

// Hover returns the hovered node id, empty when none
func (c *Controller) Hover() string { return c.hover }

// Selected returns the selected node id, empty when none
func (c *Controller) Selected() string { return c.selected }

// Zooming reports whether a wheel zoom animation is in flight
func (c *Controller) Zooming() bool { return c.zoom != nil }

// TooltipPending reports whether a reveal is scheduled
func (c *Controller) TooltipPending() bool { return c.pending.token != 0 }

// SetViewport resizes the surface, degenerate sizes are clamped
func (c *Controller) SetViewport(w, h float64) {
	if c.disposed {
		return
	}
	c.vp = Viewport{W: w, H: h}.Clamped()
}

// SetCamera replaces the camera, cancelling any zoom animation
func (c *Controller) SetCamera(cam Camera) {
	if c.disposed {
		return
	}
	c.zoom = nil
	cam.Zoom = ClampZoom(cam.Zoom)
	c.cam = cam
}

// HitTest returns the nearest node within the pick radius of a screen point
func (c *Controller) HitTest(screen vmath.Vec2) string {
	l := c.scene.Layout()
	if l == nil {
		return ""
	}
	world := c.cam.ToWorld(screen, c.vp)
	best := ""
	bestSq := parameter.PickRadius * parameter.PickRadius
	for _, p := range l.Placements() {
		if d := p.Pos.DistSq(world); d <= bestSq {
			best, bestSq = p.ID, d
		}
	}
	return best
}

// PointerMove tracks the pointer, panning while pressed and hit-testing otherwise
func (c *Controller) PointerMove(x, y float64) {
	if c.disposed {
		return
	}
	pos := vmath.V(x, y)
	c.pointer = pos

	if c.pointerDown {
		delta := pos.Sub(c.lastDrag)
		c.lastDrag = pos
		if delta.X == 0 && delta.Y == 0 {
			return
		}
		c.dragMoved = true
		c.zoom = nil
		c.cam.PanX += delta.X
		c.cam.PanY += delta.Y
		c.setHover("")
		return
	}

	c.setHover(c.HitTest(pos))
}

// PointerDown arms a drag or click
func (c *Controller) PointerDown(x, y float64) {
	if c.disposed {
		return
	}
	c.pointer = vmath.V(x, y)
	c.pointerDown = true
	c.dragMoved = false
	c.lastDrag = c.pointer
}

// PointerUp completes a click when no drag occurred
func (c *Controller) PointerUp(x, y float64) {
	if c.disposed {
		return
	}
	pos := vmath.V(x, y)
	c.pointer = pos
	wasClick := c.pointerDown && !c.dragMoved
	c.pointerDown = false
	c.dragMoved = false
	if wasClick {
		c.click(pos)
	}
	// Hit-test again so hover resumes after a drag ends over a node
	c.setHover(c.HitTest(pos))
}

// PointerLeave clears hover and any pending press
func (c *Controller) PointerLeave() {
	if c.disposed {
		return
	}
	c.pointerDown = false
	c.dragMoved = false
	c.setHover("")
}

// Wheel zooms by ±8% per notch around the pointer, positive notches zoom in
func (c *Controller) Wheel(x, y float64, notches int) {
	if c.disposed || notches == 0 {
		return
	}
	base := c.cam.Zoom
	if c.zoom != nil {
		base = c.zoom.target
	}
	target := ClampZoom(base * math.Pow(1+parameter.WheelZoomStep, float64(notches)))
	c.zoom = &zoomAnimation{
		target: target,
		anchor: vmath.V(x, y),
		last:   c.clock.Now(),
	}
}

// Update advances the tooltip debounce and zoom animation, called once per frame
func (c *Controller) Update(now time.Time) {
	if c.disposed {
		return
	}
	if c.pending.token != 0 && !now.Before(c.pending.due) {
		p := c.pending
		c.pending = pendingTooltip{}
		if p.token == c.token && p.id == c.hover {
			c.revealTooltip(p.id, now)
		}
	}
	if c.zoom != nil {
		c.stepZoom(now)
	}
	if c.tooltip.Visible {
		c.placeTooltip()
	}
}

func (c *Controller) stepZoom(now time.Time) {
	a := c.zoom
	elapsed := now.Sub(a.last)
	if elapsed <= 0 {
		return
	}
	a.last = now
	steps := float64(elapsed) / float64(parameter.ZoomAnimStep)
	k := 1 - math.Pow(1-parameter.ZoomAnimRate, steps)
	z := vmath.Lerp(c.cam.Zoom, a.target, k)
	if math.Abs(z-a.target) < parameter.ZoomAnimEpsilon {
		z = a.target
		c.zoom = nil
	}
	c.cam = c.cam.withZoomAt(z, a.anchor, c.vp)
}

// ZoomIn zooms 20% around the viewport center
func (c *Controller) ZoomIn() {
	c.zoomCentered(c.cam.Zoom * (1 + parameter.CommandZoomStep))
}

// ZoomOut zooms out 20% around the viewport center
func (c *Controller) ZoomOut() {
	c.zoomCentered(c.cam.Zoom / (1 + parameter.CommandZoomStep))
}

func (c *Controller) zoomCentered(z float64) {
	if c.disposed {
		return
	}
	c.zoom = nil
	c.cam = c.cam.withZoomAt(z, c.vp.Center(), c.vp)
}

// Reset restores zoom 1 and zero pan
func (c *Controller) Reset() {
	if c.disposed {
		return
	}
	c.zoom = nil
	c.cam = DefaultCamera()
}

// FitToView frames every node center plus padding, zoom capped at 2x
func (c *Controller) FitToView() {
	if c.disposed {
		return
	}
	c.zoom = nil
	l := c.scene.Layout()
	if l == nil || l.Bounds().Empty() {
		c.cam = DefaultCamera()
		return
	}
	b := l.Bounds().Pad(parameter.FitPadding)
	z := math.Min(c.vp.W/b.Width(), c.vp.H/b.Height())
	z = math.Min(z, parameter.FitMaxZoom)
	c.cam = centeredOn(b.Center(), z)
}

// FocusNode centers id at the focus zoom and selects it, false when id is unknown
func (c *Controller) FocusNode(id string) bool {
	if c.disposed {
		return false
	}
	pos, ok := c.scene.Layout().Position(id)
	if !ok {
		return false
	}
	c.zoom = nil
	c.cam = centeredOn(pos, parameter.FocusZoom)
	c.setSelected(id)
	return true
}

// FocusPoint centers a world point keeping the current zoom
func (c *Controller) FocusPoint(p vmath.Vec2) {
	if c.disposed {
		return
	}
	c.zoom = nil
	c.cam = centeredOn(p, c.cam.Zoom)
}

// Pan shifts the camera by a screen-space offset
func (c *Controller) Pan(dx, dy float64) {
	if c.disposed {
		return
	}
	c.zoom = nil
	c.cam.PanX += dx
	c.cam.PanY += dy
}

// ClearSelection deselects without touching the camera
func (c *Controller) ClearSelection() {
	if c.disposed {
		return
	}
	c.setSelected("")
}

// Dispose cancels pending work, later calls are no-ops
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.pending = pendingTooltip{}
	c.tooltip = Tooltip{}
	c.zoom = nil
	c.hover = ""
	c.pointerDown = false
	c.disposed = true
}

// Disposed reports whether Dispose was called
func (c *Controller) Disposed() bool { return c.disposed }

func (c *Controller) click(pos vmath.Vec2) {
	id := c.HitTest(pos)
	c.setSelected(id)
	if id == "" {
		return
	}
	world, _ := c.scene.Layout().Position(id)

	switch c.scene.State(id) {
	case skill.StateAvailable:
		c.burst(fx.KindUnlock, id, world, parameter.UnlockBurstCount)
		c.hooks.AttemptUnlock(id)
		c.pulse(id, parameter.UnlockPulseScale)
	case skill.StateUnlocked:
	default:
		c.pulse(id, parameter.DeniedPulseScale)
		c.hooks.OnDenied(id, c.scene.Reasons(id))
	}
}

func (c *Controller) setSelected(id string) {
	prev := c.selected
	if prev == id {
		return
	}
	c.selected = id
	if prev != "" && prev != c.hover {
		c.retarget(prev, fx.Rest)
	}
	if id != "" && id != c.hover {
		c.retarget(id, fx.Selected)
	}
	c.hooks.OnSelect(id)
}

func (c *Controller) setHover(id string) {
	if id == c.hover {
		return
	}
	prev := c.hover
	c.hover = id
	c.token++
	c.pending = pendingTooltip{}
	c.tooltip = Tooltip{}

	if prev != "" {
		c.retarget(prev, c.restingValues(prev))
	}
	if id != "" {
		if world, ok := c.scene.Layout().Position(id); ok {
			c.burst(fx.KindHover, id, world, parameter.HoverBurstCount)
		}
		c.retarget(id, fx.Hovered)
		c.pending = pendingTooltip{
			token: c.token,
			id:    id,
			due:   c.clock.Now().Add(parameter.TooltipDelay),
		}
	}
	c.hooks.OnHover(id)
}

func (c *Controller) restingValues(id string) fx.Values {
	if id == c.selected {
		return fx.Selected
	}
	return fx.Rest
}

func (c *Controller) revealTooltip(id string, now time.Time) {
	c.tooltip = Tooltip{Visible: true, NodeID: id, ShownAt: now}
	c.placeTooltip()
}

func (c *Controller) placeTooltip() {
	world, ok := c.scene.Layout().Position(c.tooltip.NodeID)
	if !ok {
		c.tooltip = Tooltip{}
		return
	}
	box, anchor := PlaceTooltip(c.cam.ToScreen(world, c.vp), parameter.TooltipWidth, parameter.TooltipHeight, c.vp)
	c.tooltip.Box = box
	c.tooltip.Anchor = anchor
}

func (c *Controller) palette(id string) int {
	l := c.scene.Layout()
	p, ok := l.Placement(id)
	if !ok {
		return -1
	}
	return l.Constellations()[p.Constellation].Palette
}

func (c *Controller) burst(kind fx.Kind, id string, world vmath.Vec2, count int) {
	if c.effects != nil {
		c.effects.Burst(kind, world, count, c.palette(id))
	}
}

func (c *Controller) retarget(id string, v fx.Values) {
	if c.effects != nil {
		c.effects.SetTarget(id, v)
	}
}

func (c *Controller) pulse(id string, peak float64) {
	if c.effects == nil {
		return
	}
	settle := fx.Selected
	if id == c.hover {
		settle = fx.Hovered
	}
	c.effects.Pulse(id, peak, settle)
}
