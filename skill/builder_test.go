package skill

import (
	"errors"
	"reflect"
	"testing"
)

func mustGenerate(t *testing.T, seed uint64, p Params) *Tree {
	t.Helper()
	tree, err := Generate(seed, p)
	if err != nil {
		t.Fatalf("Generate(%d) failed: %v", seed, err)
	}
	return tree
}

func TestGenerateDeterministic(t *testing.T) {
	p := DefaultParams()
	for seed := uint64(1); seed <= 64; seed++ {
		a := mustGenerate(t, seed*7919, p)
		b := mustGenerate(t, seed*7919, p)
		if !reflect.DeepEqual(a.Nodes(), b.Nodes()) {
			t.Fatalf("seed %d: expected identical nodes across runs", seed)
		}
		if !reflect.DeepEqual(a.Edges(), b.Edges()) {
			t.Fatalf("seed %d: expected identical edges across runs", seed)
		}
	}
}

func TestGenerateSeedsDiffer(t *testing.T) {
	a := mustGenerate(t, 1, DefaultParams())
	b := mustGenerate(t, 2, DefaultParams())
	if reflect.DeepEqual(a.Nodes(), b.Nodes()) {
		t.Error("Expected different seeds to produce different trees")
	}
}

func TestGenerateRejectsInvalidParams(t *testing.T) {
	tests := []struct {
		name string
		p    Params
	}{
		{"zero tiers", Params{Tiers: 0, BaseWidth: 6, WidthGrowth: 1, MaxWidth: 12}},
		{"negative tiers", Params{Tiers: -3, BaseWidth: 6, WidthGrowth: 1, MaxWidth: 12}},
		{"zero width", Params{Tiers: 4, BaseWidth: 0, WidthGrowth: 1, MaxWidth: 12}},
		{"negative growth", Params{Tiers: 4, BaseWidth: 6, WidthGrowth: -1, MaxWidth: 12}},
		{"max below base", Params{Tiers: 4, BaseWidth: 6, WidthGrowth: 1, MaxWidth: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, err := Generate(42, tt.p)
			if !errors.Is(err, ErrInvalidParams) {
				t.Errorf("Expected ErrInvalidParams, got %v", err)
			}
			if tree != nil {
				t.Error("Expected nil tree on invalid params")
			}
		})
	}
}

func TestGenerateShape(t *testing.T) {
	p := DefaultParams()
	tree := mustGenerate(t, 424242, p)

	if tree.MaxTier() != p.Tiers-1 {
		t.Errorf("Expected max tier %d, got %d", p.Tiers-1, tree.MaxTier())
	}

	total := 0
	for tier := 0; tier < p.Tiers; tier++ {
		if got, want := tree.TierCount(tier), p.Width(tier); got != want {
			t.Errorf("Tier %d: expected %d nodes, got %d", tier, want, got)
		}
		total += p.Width(tier)
	}
	if tree.Len() != total {
		t.Errorf("Expected %d nodes, got %d", total, tree.Len())
	}

	// Tier 0 holds one root per category
	for i, n := range tree.TierNodes(0) {
		if n.Category != Categories[i%len(Categories)] {
			t.Errorf("Root %s: expected category %s, got %s", n.ID, Categories[i%len(Categories)], n.Category)
		}
		if len(n.Requires) != 0 {
			t.Errorf("Root %s: expected no prerequisites", n.ID)
		}
	}

	catTotal := 0
	for _, c := range Categories {
		catTotal += tree.CategoryCount(c)
	}
	if catTotal != tree.Len() {
		t.Errorf("Expected category counts to sum to %d, got %d", tree.Len(), catTotal)
	}
}

func TestGenerateStructure(t *testing.T) {
	tree := mustGenerate(t, 99, DefaultParams())
	seen := make(map[string]bool)

	for _, n := range tree.Nodes() {
		if seen[n.ID] {
			t.Fatalf("Duplicate id %s", n.ID)
		}
		seen[n.ID] = true

		if n.Tier > 0 && (len(n.Requires) < 1 || len(n.Requires) > 2) {
			t.Errorf("%s: expected 1-2 prerequisites, got %d", n.ID, len(n.Requires))
		}
		for _, req := range n.Requires {
			p := tree.Node(req)
			if p == nil {
				t.Fatalf("%s requires unknown %s", n.ID, req)
			}
			if p.Tier != n.Tier-1 {
				t.Errorf("%s (tier %d) requires %s of tier %d", n.ID, n.Tier, req, p.Tier)
			}
		}
		if len(n.Effects) < 1 || len(n.Effects) > 2 {
			t.Errorf("%s: expected 1-2 effects, got %d", n.ID, len(n.Effects))
		}
		if n.Tier < 2 && (n.ExclusiveGroup != "" || len(n.Conditions) > 0) {
			t.Errorf("%s: expected no gates below tier 2", n.ID)
		}
	}

	for _, e := range tree.Edges() {
		from, to := tree.Node(e.From), tree.Node(e.To)
		if from == nil || to == nil {
			t.Fatalf("Edge %s references unknown node", e.Key())
		}
		if e.Kind == EdgePrerequisite && !requires(to, from.ID) {
			t.Errorf("Prerequisite edge %s not mirrored in requires", e.Key())
		}
		if e.Kind == EdgeBridge && from.Category == to.Category {
			t.Errorf("Bridge %s joins same category", e.Key())
		}
	}
}

func TestDependentsMirrorRequires(t *testing.T) {
	tree := mustGenerate(t, 7, DefaultParams())
	for _, n := range tree.Nodes() {
		for _, req := range n.Requires {
			found := false
			for _, dep := range tree.Dependents(req) {
				if dep == n.ID {
					found = true
				}
			}
			if !found {
				t.Errorf("Expected %s in dependents of %s", n.ID, req)
			}
		}
	}
}

func TestEffectRangesByCategory(t *testing.T) {
	tree := mustGenerate(t, 31337, Params{Tiers: 10, BaseWidth: 6, WidthGrowth: 2, MaxWidth: 14})
	for _, n := range tree.Nodes() {
		for _, e := range n.Effects {
			if n.Category != CategoryEconomic {
				continue
			}
			switch e.Kind {
			case EffectResourceMultiplier:
				if e.Target != string(ResourceCoin) || e.Value < 1.06 || e.Value > 1.14 {
					t.Errorf("%s: coin multiplier out of range: %+v", n.ID, e)
				}
			case EffectRouteBonus:
				if e.Value < 5 || e.Value > 14 {
					t.Errorf("%s: route bonus out of range: %+v", n.ID, e)
				}
			default:
				t.Errorf("%s: unexpected economic effect %s", n.ID, e.Kind)
			}
		}
	}
}

func TestQualityBiasesWithTier(t *testing.T) {
	c0, r0, e0 := qualityThresholds(0)
	c9, r9, e9 := qualityThresholds(9)
	if !(c9 < c0 && r9 < r0 && e9 < e0) {
		t.Errorf("Expected deeper tiers to lower quality thresholds, got tier0=(%f,%f,%f) tier9=(%f,%f,%f)", c0, r0, e0, c9, r9, e9)
	}
	cMax, _, _ := qualityThresholds(1000)
	if cMax < c0-0.25-1e-9 {
		t.Errorf("Expected shift to be capped, got common threshold %f", cMax)
	}
}
