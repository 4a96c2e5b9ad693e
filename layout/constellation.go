package layout

import (
	"math"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/skill"
	"github.com/lixenwraith/constellation/vmath"
)

// Theme is the fixed visual identity of a constellation
type Theme struct {
	Name    string
	Glyph   rune
	Palette int // Index into visual.ConstellationHues
}

// UnchartedTheme groups nodes whose category is unknown, placed at the hub origin
var UnchartedTheme = Theme{Name: "Uncharted", Glyph: '?', Palette: -1}

var themes = map[skill.Category]Theme{
	skill.CategoryEconomic:       {Name: "Aurum", Glyph: '$', Palette: 0},
	skill.CategoryMilitary:       {Name: "Bastion", Glyph: '#', Palette: 1},
	skill.CategoryMystical:       {Name: "Arcana", Glyph: '*', Palette: 2},
	skill.CategoryInfrastructure: {Name: "Forge", Glyph: '=', Palette: 3},
	skill.CategoryDiplomatic:     {Name: "Concord", Glyph: '&', Palette: 4},
	skill.CategorySocial:         {Name: "Hearth", Glyph: '~', Palette: 5},
}

// ThemeFor returns the theme of c, UnchartedTheme when c is unknown
func ThemeFor(c skill.Category) Theme {
	if th, ok := themes[c]; ok {
		return th
	}
	return UnchartedTheme
}

// directions are the six hex unit vectors, clockwise from straight up
var directions = func() [6]vmath.Vec2 {
	var d [6]vmath.Vec2
	for i := range d {
		a := -math.Pi/2 + float64(i)*math.Pi/3
		d[i] = vmath.Polar(1, a)
	}
	return d
}()

// Constellation is one placed category group
type Constellation struct {
	Theme
	Category skill.Category // Empty for Uncharted
	Center   vmath.Vec2
	Radius   float64 // Outer ring radius
	Count    int
}

// Placement is the world position of one node
type Placement struct {
	ID            string
	Category      skill.Category
	Tier          int
	Pos           vmath.Vec2
	Constellation int // Index into Layout.Constellations
}

// Metrics are the derived ring and spacing values of a layout
type Metrics struct {
	MaxTier   int
	RingGap   float64
	Spacing   float64
	MaxRadius float64
	Radii     []float64 // Radii[t] is the ring radius of tier t
}

// RingRadius returns the ring radius of tier, extrapolated beyond MaxTier
func (m Metrics) RingRadius(tier int) float64 {
	if tier >= 0 && tier < len(m.Radii) {
		return m.Radii[tier]
	}
	return parameter.RingBaseRadius + float64(max(tier, 0))*m.RingGap
}

// Layout is the immutable result of Compute
type Layout struct {
	metrics        Metrics
	constellations []Constellation
	placements     []Placement
	index          map[string]int
	bounds         vmath.Rect
}

// ComputeMetrics derives ring gap, radii and spacing for a max tier
func ComputeMetrics(maxTier int) Metrics {
	maxTier = max(maxTier, 0)
	gap := vmath.Clamp(parameter.RingDepthBudget/float64(max(1, maxTier)), parameter.RingGapMin, parameter.RingGapMax)
	radii := make([]float64, maxTier+1)
	for t := range radii {
		radii[t] = parameter.RingBaseRadius + float64(t)*gap
	}
	outer := radii[maxTier]
	return Metrics{
		MaxTier:   maxTier,
		RingGap:   gap,
		Spacing:   math.Max(parameter.ConstellationMinSpacing, 2*outer+parameter.ConstellationMargin),
		MaxRadius: outer,
		Radii:     radii,
	}
}

// Compute places every node of t, pure and deterministic in (id, category, tier) and tree order
func Compute(t *skill.Tree) *Layout {
	nodes := t.Nodes()
	maxTier := t.MaxTier()
	for _, n := range nodes {
		maxTier = max(maxTier, n.Tier)
	}
	m := ComputeMetrics(maxTier)

	l := &Layout{
		metrics:    m,
		placements: make([]Placement, 0, len(nodes)),
		index:      make(map[string]int, len(nodes)),
		bounds:     vmath.EmptyRect(),
	}

	// Six fixed constellations, Uncharted appended on demand
	for i, c := range skill.Categories {
		l.constellations = append(l.constellations, Constellation{
			Theme:    themes[c],
			Category: c,
			Center:   directions[i].Scale(m.Spacing),
			Radius:   m.MaxRadius,
		})
	}
	uncharted := -1

	type ringKey struct {
		constellation int
		tier          int
	}
	ringCount := make(map[ringKey]int)
	groupOf := make([]int, len(nodes))

	for i, n := range nodes {
		ci := n.Category.Index()
		if ci < 0 {
			if uncharted < 0 {
				uncharted = len(l.constellations)
				l.constellations = append(l.constellations, Constellation{
					Theme:  UnchartedTheme,
					Radius: m.MaxRadius,
				})
			}
			ci = uncharted
		}
		groupOf[i] = ci
		ringCount[ringKey{ci, n.Tier}]++
	}

	ringSeen := make(map[ringKey]int)
	for i, n := range nodes {
		ci := groupOf[i]
		key := ringKey{ci, n.Tier}
		slot := ringSeen[key]
		ringSeen[key] = slot + 1

		angle := float64(slot) / float64(ringCount[key]) * 2 * math.Pi
		pos := l.constellations[ci].Center.Add(vmath.Polar(m.RingRadius(n.Tier), angle))

		l.index[n.ID] = len(l.placements)
		l.placements = append(l.placements, Placement{
			ID:            n.ID,
			Category:      n.Category,
			Tier:          n.Tier,
			Pos:           pos,
			Constellation: ci,
		})
		l.constellations[ci].Count++
		l.bounds = l.bounds.Extend(pos)
	}
	return l
}

// Metrics returns the derived spacing values
func (l *Layout) Metrics() Metrics { return l.metrics }

// Constellations returns the placed groups, callers must not modify the slice
func (l *Layout) Constellations() []Constellation { return l.constellations }

// Placements returns node placements in tree order, callers must not modify the slice
func (l *Layout) Placements() []Placement { return l.placements }

// Position returns the world position of id
func (l *Layout) Position(id string) (vmath.Vec2, bool) {
	p, ok := l.Placement(id)
	return p.Pos, ok
}

// Placement returns the placement of id
func (l *Layout) Placement(id string) (Placement, bool) {
	if l == nil {
		return Placement{}, false
	}
	i, ok := l.index[id]
	if !ok {
		return Placement{}, false
	}
	return l.placements[i], true
}

// Bounds returns the bounding box of all node centers, Empty for an empty layout
func (l *Layout) Bounds() vmath.Rect {
	if l == nil {
		return vmath.EmptyRect()
	}
	return l.bounds
}

// Len returns the number of placed nodes
func (l *Layout) Len() int {
	if l == nil {
		return 0
	}
	return len(l.placements)
}
