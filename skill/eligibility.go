package skill

import "fmt"

// UnlockedSet is a read-only snapshot of unlocked node ids
type UnlockedSet map[string]struct{}

// NewUnlockedSet builds a set from ids
func NewUnlockedSet(ids ...string) UnlockedSet {
	s := make(UnlockedSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership, nil-safe
func (s UnlockedSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Clone returns an independent copy
func (s UnlockedSet) Clone() UnlockedSet {
	c := make(UnlockedSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// ReasonKind classifies a failing unlock rule
type ReasonKind uint8

const (
	ReasonMissingPrerequisite ReasonKind = iota
	ReasonExclusiveGroup
	ReasonMinUnlocked
	ReasonCategoryMinimum
	ReasonCategoryCap
	ReasonTierRequired
)

// Reason is one failing rule, NodeID names the related node where applicable
type Reason struct {
	Kind    ReasonKind
	NodeID  string
	Message string
}

// Result lists every failing rule, OK iff none
type Result struct {
	OK      bool
	Reasons []Reason
}

// Messages flattens reasons for display
func (r Result) Messages() []string {
	out := make([]string, len(r.Reasons))
	for i, reason := range r.Reasons {
		out[i] = reason.Message
	}
	return out
}

// unlockStats are aggregates over the unlocked set
type unlockStats struct {
	total      int
	byCategory map[Category]int
	maxTier    int
}

func collectStats(unlocked UnlockedSet, all Lookup) unlockStats {
	st := unlockStats{byCategory: make(map[Category]int), maxTier: -1}
	for id := range unlocked {
		st.total++
		n := all.Node(id)
		if n == nil {
			continue
		}
		st.byCategory[n.Category]++
		if n.Tier > st.maxTier {
			st.maxTier = n.Tier
		}
	}
	return st
}

// Check evaluates every gating rule of node against the unlocked set
// Pure: identical inputs always produce an identical result
func Check(node *Node, unlocked UnlockedSet, all Lookup) Result {
	if node == nil {
		return Result{OK: false, Reasons: []Reason{{Kind: ReasonMissingPrerequisite, Message: "Unknown skill"}}}
	}
	var reasons []Reason

	for _, req := range node.Requires {
		if unlocked.Has(req) {
			continue
		}
		title := req
		if p := all.Node(req); p != nil {
			title = p.Title
		}
		reasons = append(reasons, Reason{
			Kind:    ReasonMissingPrerequisite,
			NodeID:  req,
			Message: "Requires " + title,
		})
	}

	if node.ExclusiveGroup != "" {
		for _, other := range all.Nodes() {
			if other.ID == node.ID || other.ExclusiveGroup != node.ExclusiveGroup || !unlocked.Has(other.ID) {
				continue
			}
			reasons = append(reasons, Reason{
				Kind:    ReasonExclusiveGroup,
				NodeID:  other.ID,
				Message: "Exclusive with " + other.Title,
			})
		}
	}

	if len(node.Conditions) > 0 {
		st := collectStats(unlocked, all)
		for _, c := range node.Conditions {
			if r, failed := checkCondition(c, st); failed {
				reasons = append(reasons, r)
			}
		}
	}

	return Result{OK: len(reasons) == 0, Reasons: reasons}
}

func checkCondition(c UnlockCondition, st unlockStats) (Reason, bool) {
	switch c.Kind {
	case ConditionMinUnlocked:
		if st.total < c.Value {
			return Reason{Kind: ReasonMinUnlocked, Message: fmt.Sprintf("Requires %d unlocked skills", c.Value)}, true
		}
	case ConditionCategoryAtLeast:
		if st.byCategory[c.Category] < c.Value {
			return Reason{Kind: ReasonCategoryMinimum, Message: fmt.Sprintf("Requires %d %s skills", c.Value, c.Category)}, true
		}
	case ConditionMaxInCategory:
		if st.byCategory[c.Category] >= c.Value {
			return Reason{Kind: ReasonCategoryCap, Message: fmt.Sprintf("Too many in %s: max %d", c.Category, c.Value)}, true
		}
	case ConditionTierBeforeRequired:
		if st.maxTier < c.Value {
			return Reason{Kind: ReasonTierRequired, Message: fmt.Sprintf("Requires tier %d reached", c.Value)}, true
		}
	}
	return Reason{}, false
}

// State is the display classification of a node
type State uint8

const (
	StateLocked State = iota
	StateUnaffordable
	StateAvailable
	StateUnlocked
)

func (s State) String() string {
	switch s {
	case StateUnlocked:
		return "unlocked"
	case StateAvailable:
		return "available"
	case StateUnaffordable:
		return "unaffordable"
	default:
		return "locked"
	}
}

// Eligible reports whether the node passes its gates, affordable or not
func (s State) Eligible() bool {
	return s == StateAvailable || s == StateUnaffordable
}

// Classify combines eligibility and affordability without conflating them
func Classify(node *Node, unlocked UnlockedSet, all Lookup, res Resources) State {
	if node == nil {
		return StateLocked
	}
	if unlocked.Has(node.ID) {
		return StateUnlocked
	}
	if !Check(node, unlocked, all).OK {
		return StateLocked
	}
	if !CanAfford(node.CostAt(len(unlocked)), res) {
		return StateUnaffordable
	}
	return StateAvailable
}
