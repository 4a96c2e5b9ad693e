package skill

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/constellation/parameter"
)

// TierFactor grows linearly with depth, negative tiers count as 0
func TierFactor(tier int) float64 {
	if tier < 0 {
		tier = 0
	}
	return 1 + parameter.TierCostStep*float64(tier)
}

// RarityFactor is the premium applied on top of the rarity-scaled base cost
// Unknown rarities fall back to the common factor
func RarityFactor(r Rarity) float64 {
	switch r {
	case RarityUncommon:
		return parameter.RarityFactorUncommon
	case RarityRare:
		return parameter.RarityFactorRare
	case RarityLegendary:
		return parameter.RarityFactorLegendary
	default:
		return parameter.RarityFactorCommon
	}
}

// ProgressiveFactor grows with the number of unlocked nodes
func ProgressiveFactor(unlockedCount int) float64 {
	if unlockedCount < 0 {
		unlockedCount = 0
	}
	return 1 + parameter.ProgressiveCostStep*float64(unlockedCount)
}

// CostMultiplier combines the three factors, non-decreasing in each input
func CostMultiplier(tier int, r Rarity, unlockedCount int) float64 {
	return TierFactor(tier) * RarityFactor(r) * ProgressiveFactor(unlockedCount)
}

// ScaleCost rounds every resource of base scaled by m
func ScaleCost(base Cost, m float64) Cost {
	return Cost{
		Coin:  int(math.Round(float64(base.Coin) * m)),
		Mana:  int(math.Round(float64(base.Mana) * m)),
		Favor: int(math.Round(float64(base.Favor) * m)),
	}
}

// rarityCostMultiplier scales rolled base cost at generation time
func rarityCostMultiplier(r Rarity) float64 {
	switch r {
	case RarityUncommon:
		return parameter.RarityCostUncommon
	case RarityRare:
		return parameter.RarityCostRare
	case RarityLegendary:
		return parameter.RarityCostLegendary
	default:
		return parameter.RarityCostCommon
	}
}

// CanAfford reports whether every resource covers the cost
// Independent of eligibility
func CanAfford(c Cost, r Resources) bool {
	return r.Coin >= float64(c.Coin) && r.Mana >= float64(c.Mana) && r.Favor >= float64(c.Favor)
}

// Shortfall returns the missing amount per resource, zero where covered
func Shortfall(c Cost, r Resources) Cost {
	missing := func(need int, have float64) int {
		d := float64(need) - have
		if d <= 0 {
			return 0
		}
		return int(math.Ceil(d))
	}
	return Cost{
		Coin:  missing(c.Coin, r.Coin),
		Mana:  missing(c.Mana, r.Mana),
		Favor: missing(c.Favor, r.Favor),
	}
}

// Sub returns the balance left after paying c
func (r Resources) Sub(c Cost) Resources {
	return Resources{
		Coin:  r.Coin - float64(c.Coin),
		Mana:  r.Mana - float64(c.Mana),
		Favor: r.Favor - float64(c.Favor),
	}
}

// ShortfallMessage formats a shortfall for display, covered resources omitted
func ShortfallMessage(c Cost) string {
	parts := make([]string, 0, 3)
	if c.Coin > 0 {
		parts = append(parts, fmt.Sprintf("%d coin", c.Coin))
	}
	if c.Mana > 0 {
		parts = append(parts, fmt.Sprintf("%d mana", c.Mana))
	}
	if c.Favor > 0 {
		parts = append(parts, fmt.Sprintf("%d favor", c.Favor))
	}
	if len(parts) == 0 {
		return "Affordable"
	}
	return "Need " + strings.Join(parts, ", ") + " more"
}
