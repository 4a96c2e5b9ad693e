package skill

import (
	"math"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/vmath"
)

// Factory rolls individual nodes from a shared PRNG stream
// Roll order is part of the reproducibility contract, do not reorder
type Factory struct {
	rng *vmath.FastRand
}

// NewFactory wraps a seeded stream
func NewFactory(rng *vmath.FastRand) *Factory {
	return &Factory{rng: rng}
}

// Node builds the index-th node of tier in category c, without structural gates
func (f *Factory) Node(tier, index int, c Category) *Node {
	rarity := f.rollRarity()
	quality := f.rollQuality(tier)
	n := &Node{
		ID:       NodeID(tier, index),
		Category: c,
		Rarity:   rarity,
		Quality:  quality,
		Tier:     tier,
		Index:    index,
	}
	n.Title = f.rollTitle(c)
	n.Effects = f.rollEffects(c)
	n.BaseCost = f.rollBaseCost(rarity)
	n.Ability = f.rollAbility(c, quality)
	return n
}

func (f *Factory) rollRarity() Rarity {
	r := f.rng.Float64()
	switch {
	case r <= parameter.RarityCommonThreshold:
		return RarityCommon
	case r <= parameter.RarityUncommonThreshold:
		return RarityUncommon
	case r <= parameter.RarityRareThreshold:
		return RarityRare
	default:
		return RarityLegendary
	}
}

// qualityThresholds returns the tier-shifted cumulative thresholds
func qualityThresholds(tier int) (common, rare, epic float64) {
	shift := math.Min(parameter.QualityMaxShift, parameter.QualityTierShift*float64(max(tier, 0)))
	return parameter.QualityCommonThreshold - shift,
		parameter.QualityRareThreshold - 0.6*shift,
		parameter.QualityEpicThreshold - 0.3*shift
}

func (f *Factory) rollQuality(tier int) Quality {
	common, rare, epic := qualityThresholds(tier)
	r := f.rng.Float64()
	switch {
	case r <= common:
		return QualityCommon
	case r <= rare:
		return QualityRare
	case r <= epic:
		return QualityEpic
	default:
		return QualityLegendary
	}
}

func (f *Factory) rollTitle(c Category) string {
	words, ok := titleWords[c]
	if !ok {
		return "Uncharted Insight"
	}
	prefix := words.prefixes[f.rng.Intn(len(words.prefixes))]
	noun := words.nouns[f.rng.Intn(len(words.nouns))]
	return prefix + " " + noun
}

// effectTemplate describes one roll option of a category
type effectTemplate struct {
	kind     EffectKind
	target   string
	lo, hi   float64
	decimals int
}

var effectTemplates = map[Category][2]effectTemplate{
	CategoryEconomic: {
		{EffectResourceMultiplier, string(ResourceCoin), 1.06, 1.14, 3},
		{EffectRouteBonus, "", 5, 14, 1},
	},
	CategoryMilitary: {
		{EffectBuildingMultiplier, "barracks", 1.05, 1.12, 3},
		{EffectUpkeepDelta, "", -8, -3, 1},
	},
	CategoryMystical: {
		{EffectResourceMultiplier, string(ResourceMana), 1.06, 1.15, 3},
		{EffectBuildingMultiplier, "shrine", 1.05, 1.12, 3},
	},
	CategoryInfrastructure: {
		{EffectLogisticsBonus, "", 4, 12, 1},
		{EffectUpkeepDelta, "", -8, -3, 1},
	},
	CategoryDiplomatic: {
		{EffectResourceMultiplier, string(ResourceFavor), 1.05, 1.12, 3},
		{EffectRouteBonus, "", 5, 14, 1},
	},
	CategorySocial: {
		{EffectResourceMultiplier, string(ResourceFavor), 1.04, 1.10, 3},
		{EffectLogisticsBonus, "", 4, 12, 1},
	},
}

func (f *Factory) rollEffects(c Category) []Effect {
	count := 1
	if f.rng.Chance(parameter.SecondEffectChance) {
		count = 2
	}
	tmpl, ok := effectTemplates[c]
	if !ok {
		// Still consume the rolls so the stream stays aligned
		for i := 0; i < count; i++ {
			f.rng.Float64()
			f.rng.Float64()
		}
		return nil
	}
	effects := make([]Effect, 0, count)
	for i := 0; i < count; i++ {
		t := tmpl[1]
		if f.rng.Chance(parameter.EffectPrimaryChance) {
			t = tmpl[0]
		}
		effects = append(effects, Effect{
			Kind:   t.kind,
			Target: t.target,
			Value:  vmath.Round(f.rng.FloatRange(t.lo, t.hi), t.decimals),
		})
	}
	return effects
}

func (f *Factory) rollBaseCost(r Rarity) Cost {
	coin := f.rng.IntRange(parameter.CoinCostMin, parameter.CoinCostMax)
	mana := f.rng.IntRange(parameter.ManaCostMin, parameter.ManaCostMax)
	favor := f.rng.IntRange(parameter.FavorCostMin, parameter.FavorCostMax)
	return ScaleCost(Cost{Coin: coin, Mana: mana, Favor: favor}, rarityCostMultiplier(r))
}

func (f *Factory) rollAbility(c Category, q Quality) *SpecialAbility {
	hit := f.rng.Chance(abilityChance(q))
	jitter := f.rng.Float64()
	pick := f.rng.Next()
	if !hit {
		return nil
	}
	candidates := abilityCandidates(c, q)
	if len(candidates) == 0 {
		return nil
	}
	a := candidates[pick%uint64(len(candidates))]
	return &SpecialAbility{
		Name:        a.Name,
		Description: a.Description,
		Power:       vmath.Round(abilityPower(q)*(1+parameter.AbilityPowerJitter*jitter), 2),
		Quality:     q,
	}
}

type wordTable struct {
	prefixes []string
	nouns    []string
}

var titleWords = map[Category]wordTable{
	CategoryEconomic: {
		prefixes: []string{"Gilded", "Mercantile", "Thrifty", "Prosperous", "Lucrative", "Minted"},
		nouns:    []string{"Ledger", "Bazaar", "Coffers", "Exchange", "Tariffs", "Guildhall"},
	},
	CategoryMilitary: {
		prefixes: []string{"Iron", "Vigilant", "Tempered", "Steadfast", "Martial", "Bladed"},
		nouns:    []string{"Phalanx", "Garrison", "Bulwark", "Doctrine", "Arsenal", "Watch"},
	},
	CategoryMystical: {
		prefixes: []string{"Arcane", "Veiled", "Astral", "Runic", "Eldritch", "Lunar"},
		nouns:    []string{"Sigil", "Conduit", "Grimoire", "Rite", "Nexus", "Oracle"},
	},
	CategoryInfrastructure: {
		prefixes: []string{"Paved", "Masoned", "Engineered", "Sturdy", "Vaulted", "Terraced"},
		nouns:    []string{"Roads", "Aqueduct", "Granary", "Foundry", "Bridges", "Cisterns"},
	},
	CategoryDiplomatic: {
		prefixes: []string{"Courtly", "Sealed", "Honored", "Allied", "Sworn", "Gracious"},
		nouns:    []string{"Envoys", "Treaty", "Embassy", "Accord", "Charter", "Concord"},
	},
	CategorySocial: {
		prefixes: []string{"Festive", "Neighborly", "Learned", "Common", "Bustling", "Kindred"},
		nouns:    []string{"Square", "Festival", "Schools", "Hearths", "Guilds", "Commons"},
	},
}
