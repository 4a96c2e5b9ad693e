package skill

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/vmath"
)

// ErrInvalidParams is returned for generation input rejected at the boundary
var ErrInvalidParams = errors.New("invalid generation params")

// Params shapes a generated tree
type Params struct {
	Tiers       int `json:"tiers" yaml:"tiers" toml:"tiers"`
	BaseWidth   int `json:"base_width" yaml:"base_width" toml:"base_width"`
	WidthGrowth int `json:"width_growth" yaml:"width_growth" toml:"width_growth"`
	MaxWidth    int `json:"max_width" yaml:"max_width" toml:"max_width"`
}

// DefaultParams returns the standard tree shape
func DefaultParams() Params {
	return Params{
		Tiers:       parameter.DefaultTiers,
		BaseWidth:   parameter.DefaultBaseWidth,
		WidthGrowth: parameter.DefaultWidthGrowth,
		MaxWidth:    parameter.DefaultMaxWidth,
	}
}

// Validate rejects malformed shapes without clamping
func (p Params) Validate() error {
	switch {
	case p.Tiers < 1:
		return fmt.Errorf("%w: tiers must be >= 1, got %d", ErrInvalidParams, p.Tiers)
	case p.BaseWidth < 1:
		return fmt.Errorf("%w: base width must be >= 1, got %d", ErrInvalidParams, p.BaseWidth)
	case p.WidthGrowth < 0:
		return fmt.Errorf("%w: width growth must be >= 0, got %d", ErrInvalidParams, p.WidthGrowth)
	case p.MaxWidth < p.BaseWidth:
		return fmt.Errorf("%w: max width %d below base width %d", ErrInvalidParams, p.MaxWidth, p.BaseWidth)
	}
	return nil
}

// Width returns the node count of a tier
func (p Params) Width(tier int) int {
	return min(p.MaxWidth, p.BaseWidth+tier*p.WidthGrowth)
}

// Generate builds a tree deterministically from seed and params
func Generate(seed uint64, p Params) (*Tree, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	t := newTree(seed, p)
	for tier := 0; tier < p.Tiers; tier++ {
		buildTier(t, seed, tier)
	}
	t.rebuildDependents()
	return t, nil
}

// tierStream derives the PRNG of a single tier so appended tiers match full generation
func tierStream(seed uint64, tier int) *vmath.FastRand {
	return vmath.NewFastRand(vmath.Mix(seed, uint64(tier)+1))
}

// buildTier generates one tier from the previous one and appends it
func buildTier(t *Tree, seed uint64, tier int) {
	rng := tierStream(seed, tier)
	factory := NewFactory(rng)
	prev := t.TierNodes(tier - 1)
	width := t.params.Width(tier)

	nodes := make([]*Node, 0, width)
	edges := make([]Edge, 0, width*2)

	for i := 0; i < width; i++ {
		var c Category
		if tier == 0 {
			c = Categories[i%len(Categories)]
		} else {
			c = Categories[rng.Intn(len(Categories))]
		}
		n := factory.Node(tier, i, c)
		for _, parent := range pickParents(rng, n, prev) {
			n.Requires = append(n.Requires, parent.ID)
			edges = append(edges, Edge{From: parent.ID, To: n.ID, Kind: EdgePrerequisite})
		}
		nodes = append(nodes, n)
	}

	if tier >= parameter.GatedTierStart {
		assignExclusiveGroups(rng, tier, nodes)
		for _, n := range nodes {
			n.Conditions = rollConditions(rng, n)
		}
	}

	if tier > 0 {
		edges = append(edges, rollBridges(rng, nodes, prev)...)
	}

	t.appendTier(tier, nodes, edges)
}

// pickParents selects 1-2 distinct prerequisites from the previous tier
func pickParents(rng *vmath.FastRand, n *Node, prev []*Node) []*Node {
	if len(prev) == 0 {
		return nil
	}
	count := 1
	if rng.Chance(parameter.SecondPrereqChance) && len(prev) > 1 {
		count = 2
	}

	chosen := make([]*Node, 0, count)
	taken := func(p *Node) bool {
		for _, c := range chosen {
			if c == p {
				return true
			}
		}
		return false
	}

	for len(chosen) < count {
		same := make([]*Node, 0, len(prev))
		open := make([]*Node, 0, len(prev))
		for _, p := range prev {
			if taken(p) {
				continue
			}
			open = append(open, p)
			if p.Category == n.Category {
				same = append(same, p)
			}
		}
		if len(open) == 0 {
			break
		}
		pool := open
		if rng.Chance(parameter.SameCategoryParentChance) && len(same) > 0 {
			pool = same
		}
		chosen = append(chosen, pool[rng.Intn(len(pool))])
	}
	return chosen
}

func assignExclusiveGroups(rng *vmath.FastRand, tier int, nodes []*Node) {
	for i := 0; i+1 < len(nodes); i += 2 {
		if !rng.Chance(parameter.ExclusivePairChance) {
			continue
		}
		group := fmt.Sprintf("x%02d-%d", tier, i/2)
		nodes[i].ExclusiveGroup = group
		nodes[i+1].ExclusiveGroup = group
	}
}

func rollConditions(rng *vmath.FastRand, n *Node) []UnlockCondition {
	var conds []UnlockCondition
	if rng.Chance(parameter.MinUnlockedChance) {
		conds = append(conds, UnlockCondition{Kind: ConditionMinUnlocked, Value: 2 * n.Tier})
	}
	if rng.Chance(parameter.CategoryAtLeastChance) {
		conds = append(conds, UnlockCondition{Kind: ConditionCategoryAtLeast, Category: n.Category, Value: n.Tier/2 + 1})
	}
	if rng.Chance(parameter.TierBeforeChance) {
		conds = append(conds, UnlockCondition{Kind: ConditionTierBeforeRequired, Value: n.Tier - 1})
	}
	capRoll := rng.Chance(parameter.MysticalCapChance)
	if n.Category == CategoryMystical && capRoll {
		conds = append(conds, UnlockCondition{
			Kind:     ConditionMaxInCategory,
			Category: CategoryMystical,
			Value:    parameter.MysticalCapBase + n.Tier,
		})
	}
	return conds
}

// rollBridges links nodes to a different-category neighbor in the same or previous tier
func rollBridges(rng *vmath.FastRand, nodes, prev []*Node) []Edge {
	var bridges []Edge
	linked := make(map[[2]string]bool)
	for _, n := range nodes {
		if !rng.Chance(parameter.BridgeChance) {
			continue
		}
		candidates := make([]*Node, 0, len(nodes)+len(prev))
		for _, pool := range [][]*Node{prev, nodes} {
			for _, c := range pool {
				if c == n || c.Category == n.Category || requires(n, c.ID) {
					continue
				}
				if linked[[2]string{c.ID, n.ID}] || linked[[2]string{n.ID, c.ID}] {
					continue
				}
				candidates = append(candidates, c)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		other := candidates[rng.Intn(len(candidates))]
		linked[[2]string{other.ID, n.ID}] = true
		bridges = append(bridges, Edge{From: other.ID, To: n.ID, Kind: EdgeBridge})
	}
	return bridges
}

func requires(n *Node, id string) bool {
	for _, r := range n.Requires {
		if r == id {
			return true
		}
	}
	return false
}
