package parameter

// Constellation Layout
const (
	// RingBaseRadius is the radius of tier 0 around a constellation center
	RingBaseRadius = 80.0

	// RingGapMin and RingGapMax clamp the adaptive distance between tier rings
	RingGapMin = 60.0
	RingGapMax = 140.0

	// RingDepthBudget is divided by tier count to derive the ring gap
	RingDepthBudget = 600.0

	// ConstellationMinSpacing is the minimum distance from hub to constellation center
	ConstellationMinSpacing = 450.0

	// ConstellationMargin is added to twice the outer ring radius when deriving spacing
	ConstellationMargin = 160.0
)
