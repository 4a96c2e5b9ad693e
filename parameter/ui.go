package parameter

import "time"

// Screen space
const (
	// CellWidth and CellHeight map one terminal cell to screen units
	// Keeps world units roughly pixel-sized at zoom 1 with a 1:2 cell aspect
	CellWidth  = 8.0
	CellHeight = 16.0
)

// Frame loop
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFPS bounds the configurable frame rate
	MaxFPS = 240

	// EconomyTickInterval is how often the demo ledger accrues income
	EconomyTickInterval = 250 * time.Millisecond

	// FPSSmoothing is the weight of the newest frame in the reported frame rate
	FPSSmoothing = 0.1
)

// Tooltip geometry in screen units
const (
	TooltipWidth  = 36 * CellWidth
	TooltipHeight = 10 * CellHeight

	// TooltipOffset is the gap between node and tooltip box
	TooltipOffset = 2 * CellHeight

	// TooltipMaxLines bounds the content rows
	TooltipMaxLines = 8
)

// Labels & Decoration
const (
	// LabelMinZoom hides node titles below this zoom
	LabelMinZoom = 1.2

	// LabelMaxWidth truncates titles (cells)
	LabelMaxWidth = 18

	// StarDensity is the probability a cell hosts a background star
	StarDensity = 0.012

	// SectorTintAlpha is the blend strength of category sector wedges
	SectorTintAlpha = 0.07

	// FlowSpeed is orb travel in edge lengths per second
	FlowSpeed = 0.35

	// PulsePeriod is the eligible ring pulse period in seconds
	PulsePeriod = 1.4

	// SparkleOrbitSpeed is radians per second of the orbiting accent
	SparkleOrbitSpeed = 2.4
)

// Status Bar
const (
	StatusBarHeight = 1
	// DeniedMessageTimeout is how long ineligibility reasons stay in the status bar
	DeniedMessageTimeout = 2 * time.Second
)
