package skill

import (
	"fmt"
	"strings"
)

// EffectKind classifies what an unlocked node modifies
type EffectKind string

const (
	EffectResourceMultiplier EffectKind = "resource_multiplier"
	EffectBuildingMultiplier EffectKind = "building_multiplier"
	EffectUpkeepDelta        EffectKind = "upkeep_delta"
	EffectRouteBonus         EffectKind = "route_bonus"
	EffectLogisticsBonus     EffectKind = "logistics_bonus"
)

// Effect is one typed modifier granted by a node
// Multipliers are factors (1.08), deltas and bonuses are percent (-5.0, 9.0)
type Effect struct {
	Kind   EffectKind `json:"kind" yaml:"kind"`
	Target string     `json:"target,omitempty" yaml:"target,omitempty"`
	Value  float64    `json:"value" yaml:"value"`
}

// Describe returns a short human readable summary
func (e Effect) Describe() string {
	switch e.Kind {
	case EffectResourceMultiplier:
		return fmt.Sprintf("%s income x%.3g", titleCase(e.Target), e.Value)
	case EffectBuildingMultiplier:
		return fmt.Sprintf("%s output x%.3g", titleCase(e.Target), e.Value)
	case EffectUpkeepDelta:
		return fmt.Sprintf("Upkeep %+.1f%%", e.Value)
	case EffectRouteBonus:
		return fmt.Sprintf("Trade routes %+.1f%%", e.Value)
	case EffectLogisticsBonus:
		return fmt.Sprintf("Logistics %+.1f%%", e.Value)
	default:
		return string(e.Kind)
	}
}

// SpecialAbility is a rarer, stronger bonus rolled from the ability catalog
type SpecialAbility struct {
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Power       float64 `json:"power" yaml:"power"`
	Quality     Quality `json:"quality" yaml:"quality"`
}

// ConditionKind names a quantitative unlock gate
type ConditionKind string

const (
	ConditionMinUnlocked        ConditionKind = "min_unlocked"
	ConditionCategoryAtLeast    ConditionKind = "category_unlocked_at_least"
	ConditionMaxInCategory      ConditionKind = "max_unlocked_in_category"
	ConditionTierBeforeRequired ConditionKind = "tier_before_required"
)

// UnlockCondition is a quantitative gate, Category only applies to category kinds
type UnlockCondition struct {
	Kind     ConditionKind `json:"kind" yaml:"kind"`
	Category Category      `json:"category,omitempty" yaml:"category,omitempty"`
	Value    int           `json:"value" yaml:"value"`
}

// Cost is a per-resource price in whole units
type Cost struct {
	Coin  int `json:"coin" yaml:"coin"`
	Mana  int `json:"mana" yaml:"mana"`
	Favor int `json:"favor" yaml:"favor"`
}

// Resources is a read-only balance snapshot from the economy
type Resources struct {
	Coin  float64 `json:"coin" yaml:"coin" toml:"coin"`
	Mana  float64 `json:"mana" yaml:"mana" toml:"mana"`
	Favor float64 `json:"favor" yaml:"favor" toml:"favor"`
}

// Node is one unlockable skill
// Immutable once appended to a tree, scaled cost is derived on demand via CostAt
type Node struct {
	ID             string            `json:"id" yaml:"id"`
	Title          string            `json:"title" yaml:"title"`
	Category       Category          `json:"category" yaml:"category"`
	Rarity         Rarity            `json:"rarity" yaml:"rarity"`
	Quality        Quality           `json:"quality" yaml:"quality"`
	Tier           int               `json:"tier" yaml:"tier"`
	Index          int               `json:"index" yaml:"index"`
	BaseCost       Cost              `json:"base_cost" yaml:"base_cost"`
	Effects        []Effect          `json:"effects" yaml:"effects"`
	Ability        *SpecialAbility   `json:"special_ability,omitempty" yaml:"special_ability,omitempty"`
	Requires       []string          `json:"requires,omitempty" yaml:"requires,omitempty"`
	ExclusiveGroup string            `json:"exclusive_group,omitempty" yaml:"exclusive_group,omitempty"`
	Conditions     []UnlockCondition `json:"unlock_conditions,omitempty" yaml:"unlock_conditions,omitempty"`
}

// CostAt returns the scaled cost for the given number of already unlocked nodes
func (n *Node) CostAt(unlockedCount int) Cost {
	return ScaleCost(n.BaseCost, CostMultiplier(n.Tier, n.Rarity, unlockedCount))
}

// NodeID builds the stable id of the index-th node in a tier
func NodeID(tier, index int) string {
	return fmt.Sprintf("t%02d-n%02d", tier, index)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
