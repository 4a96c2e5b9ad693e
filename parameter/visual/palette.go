package visual

import "github.com/lixenwraith/constellation/terminal"

// TrueColor palette for the constellation view
// Ordered back to front: sky, structure, node states, UI

var (
	// --- Sky ---
	SkyDeep     = terminal.RGB{8, 10, 22}
	SkyHorizon  = terminal.RGB{18, 20, 40}
	StarDim     = terminal.RGB{70, 74, 100}
	StarBright  = terminal.RGB{190, 195, 220}
	AmbientMote = terminal.RGB{120, 130, 170}

	// --- Edges ---
	EdgeDim       = terminal.RGB{45, 50, 75}
	EdgeLit       = terminal.RGB{150, 170, 230}
	EdgeReady     = terminal.RGB{95, 110, 160}
	EdgeUnlocked  = terminal.RGB{230, 200, 120}
	BridgeDim     = terminal.RGB{55, 45, 70}
	BridgeLit     = terminal.RGB{190, 140, 220}
	FlowOrb       = terminal.RGB{255, 240, 190}
	ConnectionArc = terminal.RGB{255, 225, 140}

	// --- Node states ---
	NodeUnlocked     = terminal.RGB{255, 215, 110}
	NodeAvailable    = terminal.RGB{120, 230, 170}
	NodeUnaffordable = terminal.RGB{220, 150, 80}
	NodeLocked       = terminal.RGB{85, 88, 110}
	NodeFallback     = terminal.RGB{160, 160, 160}
	NodeRing         = terminal.RGB{140, 255, 200}
	NodeSparkle      = terminal.RGB{255, 255, 230}
	NodeSelected     = terminal.RGB{255, 255, 255}

	// --- UI ---
	TooltipBg     = terminal.RGB{22, 24, 44}
	TooltipBorder = terminal.RGB{90, 100, 150}
	TooltipTitle  = terminal.RGB{240, 240, 255}
	TooltipText   = terminal.RGB{180, 185, 205}
	TooltipGood   = terminal.RGB{120, 230, 170}
	TooltipBad    = terminal.RGB{240, 110, 100}
	LabelText     = terminal.RGB{170, 175, 200}
	StatusBg      = terminal.RGB{26, 27, 38}
	StatusText    = terminal.RGB{200, 200, 210}
	StatusCoin    = terminal.RGB{255, 205, 90}
	StatusMana    = terminal.RGB{120, 160, 255}
	StatusFavor   = terminal.RGB{230, 130, 200}
	StatusDenied  = terminal.RGB{240, 110, 100}
)
