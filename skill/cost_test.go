package skill

import "testing"

var allRarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityLegendary, Rarity("bogus")}

func TestCostMonotonicInUnlockedCount(t *testing.T) {
	base := Cost{Coin: 50, Mana: 11, Favor: 8}
	for _, r := range allRarities {
		for tier := 0; tier < 12; tier++ {
			n := &Node{Tier: tier, Rarity: r, BaseCost: base}
			prev := n.CostAt(0)
			for k := 1; k <= 200; k++ {
				c := n.CostAt(k)
				if c.Coin < prev.Coin || c.Mana < prev.Mana || c.Favor < prev.Favor {
					t.Fatalf("rarity %s tier %d: cost dropped from %+v to %+v at k=%d", r, tier, prev, c, k)
				}
				prev = c
			}
		}
	}
}

func TestFactorsNonDecreasing(t *testing.T) {
	for i := 0; i < 50; i++ {
		if TierFactor(i+1) < TierFactor(i) {
			t.Errorf("TierFactor decreased at %d", i)
		}
		if ProgressiveFactor(i+1) < ProgressiveFactor(i) {
			t.Errorf("ProgressiveFactor decreased at %d", i)
		}
	}
	order := []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityLegendary}
	for i := 1; i < len(order); i++ {
		if RarityFactor(order[i]) < RarityFactor(order[i-1]) {
			t.Errorf("RarityFactor decreased from %s to %s", order[i-1], order[i])
		}
	}
	if ProgressiveFactor(-5) != ProgressiveFactor(0) {
		t.Error("Expected negative unlocked count to be treated as 0")
	}
}

func TestCommonRootCostRange(t *testing.T) {
	checked := 0
	for seed := uint64(1); seed <= 200; seed++ {
		tree := mustGenerate(t, seed, Params{Tiers: 1, BaseWidth: 6, WidthGrowth: 0, MaxWidth: 6})
		for _, n := range tree.Nodes() {
			if n.Rarity != RarityCommon {
				continue
			}
			c := n.CostAt(0)
			if c.Coin < 15 || c.Coin > 50 {
				t.Errorf("%s seed %d: coin %d outside [15,50]", n.ID, seed, c.Coin)
			}
			if c.Mana < 3 || c.Mana > 11 {
				t.Errorf("%s seed %d: mana %d outside [3,11]", n.ID, seed, c.Mana)
			}
			if c.Favor < 2 || c.Favor > 8 {
				t.Errorf("%s seed %d: favor %d outside [2,8]", n.ID, seed, c.Favor)
			}
			checked++
		}
	}
	if checked == 0 {
		t.Fatal("Expected at least one common root node")
	}
}

func TestScenarioSeed424242CostsNeverDrop(t *testing.T) {
	p := DefaultParams()
	p.Tiers = 8
	tree := mustGenerate(t, 424242, p)
	for _, n := range tree.Nodes() {
		prev := n.CostAt(0)
		for k := 1; k <= 25; k++ {
			c := n.CostAt(k)
			if c.Coin < prev.Coin || c.Mana < prev.Mana || c.Favor < prev.Favor {
				t.Fatalf("%s: cost dropped at k=%d: %+v -> %+v", n.ID, k, prev, c)
			}
			prev = c
		}
	}
}

func TestAffordability(t *testing.T) {
	c := Cost{Coin: 30, Mana: 5, Favor: 2}
	tests := []struct {
		name string
		res  Resources
		want bool
	}{
		{"exact", Resources{Coin: 30, Mana: 5, Favor: 2}, true},
		{"surplus", Resources{Coin: 100, Mana: 50, Favor: 20}, true},
		{"short coin", Resources{Coin: 29.9, Mana: 5, Favor: 2}, false},
		{"short favor", Resources{Coin: 30, Mana: 5, Favor: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAfford(c, tt.res); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}

	short := Shortfall(c, Resources{Coin: 10.5, Mana: 5, Favor: 0})
	if short != (Cost{Coin: 20, Mana: 0, Favor: 2}) {
		t.Errorf("Expected shortfall {20 0 2}, got %+v", short)
	}
}

func TestShortfallMessage(t *testing.T) {
	tests := []struct {
		c    Cost
		want string
	}{
		{Cost{Coin: 20, Favor: 2}, "Need 20 coin, 2 favor more"},
		{Cost{Mana: 7}, "Need 7 mana more"},
		{Cost{}, "Affordable"},
	}
	for _, tt := range tests {
		if got := ShortfallMessage(tt.c); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
