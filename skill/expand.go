package skill

import "fmt"

// Expand appends additionalTiers tiers after the current max tier
// Returns the input unchanged for 0 tiers or a tree without bookkeeping
// The result shares existing nodes, which are never mutated
func Expand(t *Tree, seed uint64, additionalTiers int) (*Tree, error) {
	if additionalTiers < 0 {
		return t, fmt.Errorf("%w: additional tiers must be >= 0, got %d", ErrInvalidParams, additionalTiers)
	}
	if additionalTiers == 0 || !t.hasBookkeeping() {
		return t, nil
	}
	return ExpandTo(t, seed, t.maxTier+additionalTiers)
}

// ExpandTo grows the tree until targetMaxTier is generated
// A target at or below the current max tier is a no-op
func ExpandTo(t *Tree, seed uint64, targetMaxTier int) (*Tree, error) {
	if !t.hasBookkeeping() || targetMaxTier <= t.maxTier {
		return t, nil
	}
	next := t.clone()
	for tier := t.maxTier + 1; tier <= targetMaxTier; tier++ {
		buildTier(next, seed, tier)
	}
	next.params.Tiers = targetMaxTier + 1
	next.rebuildDependents()
	return next, nil
}

// FrontierPolicy decides when a selection is close enough to the frontier to grow the tree
// Owned by the caller; fires at most once per max tier value
type FrontierPolicy struct {
	Buffer int
	Tiers  int

	lastMax   int
	triggered bool
}

// ShouldExpand reports whether selecting a node of selectedTier must trigger expansion
func (p *FrontierPolicy) ShouldExpand(selectedTier, maxTier int) bool {
	if p.Tiers <= 0 {
		return false
	}
	if p.triggered && p.lastMax == maxTier {
		return false
	}
	if selectedTier < maxTier-p.Buffer {
		return false
	}
	p.triggered = true
	p.lastMax = maxTier
	return true
}
