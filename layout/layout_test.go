package layout

import (
	"math"
	"testing"

	"github.com/lixenwraith/constellation/skill"
)

func generate(t *testing.T, seed uint64, tiers int) *skill.Tree {
	t.Helper()
	p := skill.DefaultParams()
	p.Tiers = tiers
	tree, err := skill.Generate(seed, p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return tree
}

func TestComputeMetrics(t *testing.T) {
	tests := []struct {
		maxTier     int
		wantGap     float64
		wantSpacing float64
	}{
		{0, 140, 450},                    // 600/1 clamped to 140, outer 80
		{4, 140, 2*(80+4*140) + 160},     // 600/4 = 150 clamped
		{7, 600.0 / 7, 2*(80+600) + 160}, // within clamp
		{20, 60, 2*(80+20*60) + 160},     // 30 clamped up
	}
	for _, tt := range tests {
		m := ComputeMetrics(tt.maxTier)
		if math.Abs(m.RingGap-tt.wantGap) > 1e-9 {
			t.Errorf("maxTier %d: expected gap %f, got %f", tt.maxTier, tt.wantGap, m.RingGap)
		}
		if math.Abs(m.Spacing-tt.wantSpacing) > 1e-9 {
			t.Errorf("maxTier %d: expected spacing %f, got %f", tt.maxTier, tt.wantSpacing, m.Spacing)
		}
		if m.Radii[0] != 80 {
			t.Errorf("Expected base radius 80, got %f", m.Radii[0])
		}
	}
}

func TestConstellationsNeverOverlap(t *testing.T) {
	for _, tiers := range []int{1, 3, 8, 15, 30} {
		l := Compute(generate(t, uint64(tiers)*101, tiers))
		m := l.Metrics()
		cs := l.Constellations()
		for i := range cs {
			for j := i + 1; j < len(cs); j++ {
				d := cs[i].Center.Dist(cs[j].Center)
				if d < 2*m.MaxRadius-1e-6 {
					t.Errorf("tiers %d: %s and %s overlap, distance %f < %f", tiers, cs[i].Name, cs[j].Name, d, 2*m.MaxRadius)
				}
			}
		}
	}
}

func TestPlacementsOnRings(t *testing.T) {
	tree := generate(t, 77, 6)
	l := Compute(tree)
	if l.Len() != tree.Len() {
		t.Fatalf("Expected %d placements, got %d", tree.Len(), l.Len())
	}
	m := l.Metrics()
	for _, n := range tree.Nodes() {
		p, ok := l.Placement(n.ID)
		if !ok {
			t.Fatalf("Missing placement for %s", n.ID)
		}
		c := l.Constellations()[p.Constellation]
		if c.Category != n.Category {
			t.Errorf("%s: placed in %s constellation, expected %s", n.ID, c.Category, n.Category)
		}
		r := p.Pos.Dist(c.Center)
		if math.Abs(r-m.RingRadius(n.Tier)) > 1e-6 {
			t.Errorf("%s: expected ring radius %f, got %f", n.ID, m.RingRadius(n.Tier), r)
		}
		if !l.Bounds().Contains(p.Pos) {
			t.Errorf("%s outside layout bounds", n.ID)
		}
	}
}

func TestFirstDirectionPointsUp(t *testing.T) {
	l := Compute(generate(t, 1, 2))
	aurum := l.Constellations()[0]
	if aurum.Name != "Aurum" {
		t.Fatalf("Expected Aurum first, got %s", aurum.Name)
	}
	if math.Abs(aurum.Center.X) > 1e-9 || aurum.Center.Y >= 0 {
		t.Errorf("Expected Aurum straight above the hub, got %+v", aurum.Center)
	}
}

func TestLayoutIgnoresCostsAndEffects(t *testing.T) {
	tree := generate(t, 9, 4)
	a := Compute(tree)
	for _, n := range tree.Nodes() {
		n.BaseCost = skill.Cost{Coin: 9999}
		n.Effects = nil
	}
	b := Compute(tree)
	for i, p := range a.Placements() {
		if b.Placements()[i] != p {
			t.Fatalf("Placement %s changed after cost edits", p.ID)
		}
	}
}

func TestThemeFallback(t *testing.T) {
	if ThemeFor(skill.Category("pirate")).Name != "Uncharted" {
		t.Error("Expected unknown category to fall back to Uncharted")
	}
	names := []string{"Aurum", "Bastion", "Arcana", "Forge", "Concord", "Hearth"}
	for i, c := range skill.Categories {
		if got := ThemeFor(c).Name; got != names[i] {
			t.Errorf("%s: expected %s, got %s", c, names[i], got)
		}
	}
}

func TestEmptyTreeLayout(t *testing.T) {
	l := Compute(nil)
	if l.Len() != 0 || !l.Bounds().Empty() {
		t.Error("Expected empty layout for nil tree")
	}
	if _, ok := l.Position("t00-n00"); ok {
		t.Error("Expected no position in empty layout")
	}
}
