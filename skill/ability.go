package skill

import "github.com/lixenwraith/constellation/parameter"

// abilityTemplate is a catalog entry, only offered at or above MinQuality
type abilityTemplate struct {
	Name        string
	Description string
	MinQuality  Quality
}

// abilityCatalog is keyed by category, entries ordered by minimum quality
var abilityCatalog = map[Category][]abilityTemplate{
	CategoryEconomic: {
		{"Windfall", "Occasionally doubles a coin payout", QualityCommon},
		{"Compound Interest", "Idle coin accrues a small yield", QualityRare},
		{"Golden Touch", "Market sales ignore the first tax bracket", QualityEpic},
		{"Midas Ledger", "All coin income scales with unlocked economic skills", QualityLegendary},
	},
	CategoryMilitary: {
		{"Drill Sergeant", "Barracks train slightly faster", QualityCommon},
		{"Iron Discipline", "Garrisons cost no upkeep while idle", QualityRare},
		{"Vanguard", "First engagement each day is always won", QualityEpic},
		{"Warlord's Banner", "Military output scales with constellation size", QualityLegendary},
	},
	CategoryMystical: {
		{"Ley Whisper", "Mana regenerates during idle ticks", QualityCommon},
		{"Astral Conduit", "Shrines channel surplus mana into favor", QualityRare},
		{"Starfall Rite", "Rituals refund part of their mana cost", QualityEpic},
		{"Eclipse Sigil", "Doubles the power of every mystical effect", QualityLegendary},
	},
	CategoryInfrastructure: {
		{"Paved Roads", "Caravans travel a little faster", QualityCommon},
		{"Aqueducts", "Buildings ignore drought penalties", QualityRare},
		{"Master Plan", "Construction costs fall as districts grow", QualityEpic},
		{"Wonder of the Age", "Every building produces an extra tick", QualityLegendary},
	},
	CategoryDiplomatic: {
		{"Silver Tongue", "Negotiations open with improved terms", QualityCommon},
		{"Envoy Network", "Trade partners share route bonuses", QualityRare},
		{"Grand Accord", "Rival factions occasionally gift favor", QualityEpic},
		{"Pax Stellaris", "Favor income never decays", QualityLegendary},
	},
	CategorySocial: {
		{"Festival Day", "Periodic boost to citizen happiness", QualityCommon},
		{"Guild Charter", "Guilds reduce building upkeep", QualityRare},
		{"Golden Age", "Population growth accelerates favor gains", QualityEpic},
		{"Cultural Zenith", "Every social skill grants a second effect", QualityLegendary},
	},
}

func abilityChance(q Quality) float64 {
	switch q {
	case QualityRare:
		return parameter.AbilityChanceRare
	case QualityEpic:
		return parameter.AbilityChanceEpic
	case QualityLegendary:
		return parameter.AbilityChanceLegendary
	default:
		return parameter.AbilityChanceCommon
	}
}

func abilityPower(q Quality) float64 {
	switch q {
	case QualityRare:
		return parameter.AbilityPowerRare
	case QualityEpic:
		return parameter.AbilityPowerEpic
	case QualityLegendary:
		return parameter.AbilityPowerLegendary
	default:
		return parameter.AbilityPowerCommon
	}
}

// abilityCandidates returns templates of a category unlocked by quality q
func abilityCandidates(c Category, q Quality) []abilityTemplate {
	all := abilityCatalog[c]
	out := make([]abilityTemplate, 0, len(all))
	for _, a := range all {
		if a.MinQuality.Rank() <= q.Rank() {
			out = append(out, a)
		}
	}
	return out
}
