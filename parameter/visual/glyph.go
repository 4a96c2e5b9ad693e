package visual

// Node glyphs by state, scaled variants drawn when zoomed in
const (
	GlyphUnlocked     = '●'
	GlyphAvailable    = '◉'
	GlyphUnaffordable = '◎'
	GlyphLocked       = '○'
	GlyphFallback     = '◌'
	GlyphLarge        = '⬤'
)

// GlyphRing is drawn around eligible nodes, clockwise from top
var GlyphRing = [8]rune{'╷', '╱', '─', '╲', '╵', '╱', '─', '╲'}

// Sparkle decorations orbiting eligible nodes
var SparkleChars = [4]rune{'✦', '✧', '·', '✧'}

// Stars by brightness
var StarChars = [3]rune{'.', '·', '+'}

// Particle glyphs by size bucket
var ParticleChars = [3]rune{'·', '•', '∗'}

// Edges
const (
	EdgeDot    = '·'
	EdgeDash   = '╌'
	BridgeDot  = '┄'
	FlowOrbRun = '•'
)

// Tooltip frame
const (
	BoxTopLeft     = '╭'
	BoxTopRight    = '╮'
	BoxBottomLeft  = '╰'
	BoxBottomRight = '╯'
	BoxHorizontal  = '─'
	BoxVertical    = '│'
)
