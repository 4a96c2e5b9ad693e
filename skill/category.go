package skill

// Category is the thematic branch a node belongs to, one constellation per category
type Category string

const (
	CategoryEconomic       Category = "economic"
	CategoryMilitary       Category = "military"
	CategoryMystical       Category = "mystical"
	CategoryInfrastructure Category = "infrastructure"
	CategoryDiplomatic     Category = "diplomatic"
	CategorySocial         Category = "social"
)

// Categories lists every category in declaration order
// Order drives tier 0 root assignment and constellation placement
var Categories = [...]Category{
	CategoryEconomic,
	CategoryMilitary,
	CategoryMystical,
	CategoryInfrastructure,
	CategoryDiplomatic,
	CategorySocial,
}

// Valid reports whether c is one of the fixed categories
func (c Category) Valid() bool {
	return c.Index() >= 0
}

// Index returns the position in Categories, -1 when unknown
func (c Category) Index() int {
	for i, k := range Categories {
		if k == c {
			return i
		}
	}
	return -1
}

// Rarity drives the base cost multiplier
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// Quality is independent of rarity and drives special ability odds and power
type Quality string

const (
	QualityCommon    Quality = "common"
	QualityRare      Quality = "rare"
	QualityEpic      Quality = "epic"
	QualityLegendary Quality = "legendary"
)

// Rank orders qualities, unknown values rank as common
func (q Quality) Rank() int {
	switch q {
	case QualityRare:
		return 1
	case QualityEpic:
		return 2
	case QualityLegendary:
		return 3
	default:
		return 0
	}
}

// Resource names a spendable currency
type Resource string

const (
	ResourceCoin  Resource = "coin"
	ResourceMana  Resource = "mana"
	ResourceFavor Resource = "favor"
)
