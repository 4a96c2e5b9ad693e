package parameter

// Tree Shape
const (
	// DefaultTiers is the depth generated for a fresh tree
	DefaultTiers = 8

	// DefaultBaseWidth is the node count of tier 0, one root per category
	DefaultBaseWidth = 6

	// DefaultWidthGrowth is the node count added per tier
	DefaultWidthGrowth = 1

	// DefaultMaxWidth caps nodes per tier
	DefaultMaxWidth = 12
)

// Rarity cumulative thresholds, legendary takes the remainder
const (
	RarityCommonThreshold   = 0.55
	RarityUncommonThreshold = 0.85
	RarityRareThreshold     = 0.97
)

// Quality thresholds before tier shift, legendary takes the remainder
const (
	QualityCommonThreshold = 0.60
	QualityRareThreshold   = 0.85
	QualityEpicThreshold   = 0.96

	// QualityTierShift is subtracted from thresholds per tier, biasing deep nodes upward
	QualityTierShift = 0.03

	// QualityMaxShift caps the accumulated shift
	QualityMaxShift = 0.25
)

// Base cost rolls per resource, inclusive
const (
	CoinCostMin  = 15
	CoinCostMax  = 50
	ManaCostMin  = 3
	ManaCostMax  = 11
	FavorCostMin = 2
	FavorCostMax = 8
)

// Rarity multipliers applied to rolled base cost
const (
	RarityCostCommon    = 1.0
	RarityCostUncommon  = 1.5
	RarityCostRare      = 2.0
	RarityCostLegendary = 3.0
)

// Cost scaling factors, each non-decreasing in its input
const (
	// TierCostStep is added to the tier factor per tier
	TierCostStep = 0.35

	// ProgressiveCostStep is added to the progressive factor per unlocked node
	ProgressiveCostStep = 0.04

	// Premium rarity factor on top of base cost scaling
	RarityFactorCommon    = 1.0
	RarityFactorUncommon  = 1.1
	RarityFactorRare      = 1.25
	RarityFactorLegendary = 1.5
)

// Effects
const (
	// SecondEffectChance is the probability a node carries two effects
	SecondEffectChance = 0.35

	// EffectPrimaryChance selects the first template entry of a category
	EffectPrimaryChance = 0.5
)

// Special abilities by quality
const (
	AbilityChanceCommon    = 0.02
	AbilityChanceRare      = 0.08
	AbilityChanceEpic      = 0.20
	AbilityChanceLegendary = 0.45

	AbilityPowerCommon    = 1.0
	AbilityPowerRare      = 1.4
	AbilityPowerEpic      = 1.9
	AbilityPowerLegendary = 2.5

	// AbilityPowerJitter is the max relative bonus rolled on top of base power
	AbilityPowerJitter = 0.25
)

// Structural gates
const (
	// SecondPrereqChance is the probability of a second prerequisite
	SecondPrereqChance = 0.3

	// SameCategoryParentChance prefers a parent of the node's own category
	SameCategoryParentChance = 0.7

	// BridgeChance is the probability a tier >= 1 node gets a bridge edge
	BridgeChance = 0.2

	// GatedTierStart is the first tier receiving exclusive groups and unlock conditions
	GatedTierStart = 2

	// ExclusivePairChance groups an adjacent same-tier pair
	ExclusivePairChance = 0.15

	MinUnlockedChance     = 0.25
	CategoryAtLeastChance = 0.20
	TierBeforeChance      = 0.15
	MysticalCapChance     = 0.25
	MysticalCapBase       = 6
)

// Frontier expansion trigger
const (
	// FrontierBuffer is how close (in tiers) a selection must be to max tier to expand
	FrontierBuffer = 2

	// FrontierTiers is appended per expansion
	FrontierTiers = 3
)

// DefaultSeed is used when no seed is configured
const DefaultSeed uint64 = 0x5EED_C0DE
