package parameter

import "time"

// Camera zoom bounds and steps
const (
	ZoomMin = 0.2
	ZoomMax = 4.0

	// WheelZoomStep is the per-notch zoom factor delta (±8%)
	WheelZoomStep = 0.08

	// CommandZoomStep is the zoom in/out command delta (±20%)
	CommandZoomStep = 0.2

	// FitMaxZoom caps fit-to-view so small trees are not blown up
	FitMaxZoom = 2.0

	// FitPadding is world units added around the node bounding box
	FitPadding = 80.0

	// FocusZoom is the zoom applied when focusing a node
	FocusZoom = 1.5

	// ZoomAnimRate is the fraction of remaining zoom distance covered per 16ms step
	ZoomAnimRate = 0.25

	// ZoomAnimEpsilon snaps the animation once this close to target
	ZoomAnimEpsilon = 0.001

	// ZoomAnimStep is the nominal frame step for the zoom animation
	ZoomAnimStep = 16 * time.Millisecond
)

// Picking & Hover
const (
	// PickRadius is hit-test distance in world units
	PickRadius = 20.0

	// TooltipDelay debounces tooltip reveal after hover enter
	TooltipDelay = 150 * time.Millisecond

	// TooltipFadeDuration is the fade-in time once revealed
	TooltipFadeDuration = 120 * time.Millisecond

	// MinViewportWidth and MinViewportHeight replace degenerate viewports
	MinViewportWidth  = 16.0
	MinViewportHeight = 16.0
)
