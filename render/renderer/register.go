package renderer

import "github.com/lixenwraith/constellation/render"

// RegisterAll installs every pass at its priority
func RegisterAll(o *render.RenderOrchestrator) {
	passes := []struct {
		renderer render.SystemRenderer
		priority render.RenderPriority
	}{
		{NewBackgroundRenderer(), render.PriorityBackground},
		{NewSectorRenderer(), render.PrioritySectors},
		{NewStarfieldRenderer(), render.PriorityStarfield},
		{NewEdgeRenderer(), render.PriorityEdges},
		{NewFlowRenderer(), render.PriorityFlow},
		{NewParticleRenderer(), render.PriorityParticles},
		{NewNodeRenderer(), render.PriorityNodes},
		{NewLabelRenderer(), render.PriorityLabels},
		{NewTooltipRenderer(), render.PriorityTooltip},
		{NewStatusBarRenderer(), render.PriorityStatusBar},
	}
	for _, p := range passes {
		o.Register(p.renderer, p.priority)
	}
}
