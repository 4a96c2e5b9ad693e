package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PrioritySectors
	PriorityStarfield
	PriorityEdges
	PriorityFlow
	PriorityParticles
	PriorityNodes
	PriorityLabels
	PriorityTooltip
	PriorityStatusBar
)
