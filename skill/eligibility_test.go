package skill

import (
	"reflect"
	"testing"
)

// nodeList is a minimal Lookup for hand-built fixtures
type nodeList []*Node

func (l nodeList) Node(id string) *Node {
	for _, n := range l {
		if n.ID == id {
			return n
		}
	}
	return nil
}

func (l nodeList) Nodes() []*Node { return l }

func TestCheckReportsEveryReason(t *testing.T) {
	a := &Node{ID: "a", Title: "Gilded Ledger", Category: CategoryEconomic}
	b := &Node{ID: "b", Title: "Iron Phalanx", Category: CategoryMilitary}
	sibling := &Node{ID: "s", Title: "Sworn Treaty", Category: CategoryDiplomatic, ExclusiveGroup: "x02-0"}
	target := &Node{
		ID:             "t",
		Title:          "Courtly Envoys",
		Category:       CategoryDiplomatic,
		Tier:           2,
		Requires:       []string{"a", "b"},
		ExclusiveGroup: "x02-0",
	}
	all := nodeList{a, b, sibling, target}

	res := Check(target, NewUnlockedSet("s"), all)
	if res.OK {
		t.Fatal("Expected node to be ineligible")
	}
	want := []string{"Requires Gilded Ledger", "Requires Iron Phalanx", "Exclusive with Sworn Treaty"}
	if got := res.Messages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected reasons %v, got %v", want, got)
	}
	if res.Reasons[2].NodeID != "s" || res.Reasons[2].Kind != ReasonExclusiveGroup {
		t.Errorf("Expected exclusive reason naming sibling s, got %+v", res.Reasons[2])
	}
}

func TestCheckIdempotent(t *testing.T) {
	tree := mustGenerate(t, 2024, DefaultParams())
	unlocked := NewUnlockedSet()
	for _, n := range tree.TierNodes(0) {
		unlocked[n.ID] = struct{}{}
	}
	for _, n := range tree.TierNodes(1)[:3] {
		unlocked[n.ID] = struct{}{}
	}
	for _, n := range tree.Nodes() {
		first := Check(n, unlocked, tree)
		for i := 0; i < 3; i++ {
			if again := Check(n, unlocked, tree); !reflect.DeepEqual(first, again) {
				t.Fatalf("%s: result changed on re-evaluation", n.ID)
			}
		}
		if first.OK != (len(first.Reasons) == 0) {
			t.Fatalf("%s: OK inconsistent with reasons", n.ID)
		}
	}
}

func TestCheckMysticalCapScenario(t *testing.T) {
	var all nodeList
	unlocked := NewUnlockedSet()
	for i := 0; i < 6; i++ {
		n := &Node{ID: NodeID(0, i), Title: "Arcane Sigil", Category: CategoryMystical}
		all = append(all, n)
		unlocked[n.ID] = struct{}{}
	}
	target := &Node{
		ID:         "cap",
		Title:      "Eldritch Nexus",
		Category:   CategoryMystical,
		Tier:       3,
		Conditions: []UnlockCondition{{Kind: ConditionMaxInCategory, Category: CategoryMystical, Value: 6}},
	}
	all = append(all, target)

	res := Check(target, unlocked, all)
	if res.OK {
		t.Fatal("Expected node to be ineligible at the category cap")
	}
	if len(res.Reasons) != 1 || res.Reasons[0].Message != "Too many in mystical: max 6" {
		t.Errorf("Expected single reason %q, got %v", "Too many in mystical: max 6", res.Messages())
	}

	// One below the cap passes
	delete(unlocked, NodeID(0, 5))
	if res := Check(target, unlocked, all); !res.OK {
		t.Errorf("Expected eligibility below cap, got %v", res.Messages())
	}
}

func TestCheckConditions(t *testing.T) {
	var all nodeList
	for i := 0; i < 4; i++ {
		all = append(all, &Node{ID: NodeID(i, 0), Title: "Paved Roads", Category: CategoryInfrastructure, Tier: i})
	}
	all = append(all, &Node{ID: "soc", Title: "Festive Square", Category: CategorySocial, Tier: 0})

	tests := []struct {
		name     string
		cond     UnlockCondition
		unlocked []string
		wantOK   bool
		wantMsg  string
	}{
		{"min unlocked failing", UnlockCondition{Kind: ConditionMinUnlocked, Value: 3}, []string{"t00-n00", "soc"}, false, "Requires 3 unlocked skills"},
		{"min unlocked passing", UnlockCondition{Kind: ConditionMinUnlocked, Value: 2}, []string{"t00-n00", "soc"}, true, ""},
		{"category minimum failing", UnlockCondition{Kind: ConditionCategoryAtLeast, Category: CategorySocial, Value: 2}, []string{"soc", "t00-n00"}, false, "Requires 2 social skills"},
		{"category minimum passing", UnlockCondition{Kind: ConditionCategoryAtLeast, Category: CategoryInfrastructure, Value: 2}, []string{"t00-n00", "t01-n00"}, true, ""},
		{"tier failing", UnlockCondition{Kind: ConditionTierBeforeRequired, Value: 2}, []string{"t00-n00", "t01-n00"}, false, "Requires tier 2 reached"},
		{"tier passing", UnlockCondition{Kind: ConditionTierBeforeRequired, Value: 2}, []string{"t02-n00"}, true, ""},
		{"cap below", UnlockCondition{Kind: ConditionMaxInCategory, Category: CategoryInfrastructure, Value: 3}, []string{"t00-n00", "t01-n00"}, true, ""},
		{"tier with empty set", UnlockCondition{Kind: ConditionTierBeforeRequired, Value: 0}, nil, false, "Requires tier 0 reached"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := &Node{ID: "target", Title: "Target", Category: CategorySocial, Conditions: []UnlockCondition{tt.cond}}
			res := Check(target, NewUnlockedSet(tt.unlocked...), all)
			if res.OK != tt.wantOK {
				t.Fatalf("Expected OK=%v, got %v (%v)", tt.wantOK, res.OK, res.Messages())
			}
			if !tt.wantOK && res.Reasons[0].Message != tt.wantMsg {
				t.Errorf("Expected %q, got %q", tt.wantMsg, res.Reasons[0].Message)
			}
		})
	}
}

func TestClassifySeparatesAffordability(t *testing.T) {
	root := &Node{ID: "r", Title: "Root", Category: CategoryEconomic, BaseCost: Cost{Coin: 20, Mana: 4, Favor: 2}}
	child := &Node{ID: "c", Title: "Child", Category: CategoryEconomic, Tier: 1, Requires: []string{"r"}, BaseCost: Cost{Coin: 20, Mana: 4, Favor: 2}}
	all := nodeList{root, child}

	rich := Resources{Coin: 1000, Mana: 1000, Favor: 1000}
	poor := Resources{}

	if s := Classify(root, nil, all, rich); s != StateAvailable {
		t.Errorf("Expected available root, got %s", s)
	}
	if s := Classify(root, nil, all, poor); s != StateUnaffordable || !s.Eligible() {
		t.Errorf("Expected eligible-but-unaffordable root, got %s", s)
	}
	if s := Classify(child, nil, all, rich); s != StateLocked {
		t.Errorf("Expected locked child, got %s", s)
	}
	if s := Classify(root, NewUnlockedSet("r"), all, poor); s != StateUnlocked {
		t.Errorf("Expected unlocked root, got %s", s)
	}
	if s := Classify(nil, nil, all, rich); s != StateLocked {
		t.Errorf("Expected nil node to classify as locked, got %s", s)
	}
}
