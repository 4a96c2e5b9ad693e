// Package economy is an in-process demo economy: balances, income and unlock settlement
// The constellation view only observes it through snapshots
package economy

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/skill"
)

// ErrUnknownNode is returned when an attempt names an id absent from the tree
var ErrUnknownNode = errors.New("unknown node")

// Snapshot is a copied view of the ledger
type Snapshot struct {
	Unlocked  skill.UnlockedSet
	Resources skill.Resources
	Income    skill.Resources
}

// Outcome reports how an unlock attempt settled
// A rejected attempt is a value, not an error
type Outcome struct {
	NodeID  string
	OK      bool
	Paid    skill.Cost
	Reasons []string
}

// Ledger owns balances and the unlocked set
type Ledger struct {
	mu        sync.Mutex
	resources skill.Resources
	unlocked  skill.UnlockedSet
	order     []string // Unlock order, for dumps
	base      skill.Resources
	income    skill.Resources
}

// NewLedger creates a ledger with a starting balance and base income per second
func NewLedger(start, income skill.Resources) *Ledger {
	return &Ledger{
		resources: start,
		unlocked:  skill.NewUnlockedSet(),
		base:      income,
		income:    income,
	}
}

// DefaultLedger uses the demo starting balance and income
func DefaultLedger() *Ledger {
	return NewLedger(
		skill.Resources{Coin: parameter.StartCoin, Mana: parameter.StartMana, Favor: parameter.StartFavor},
		skill.Resources{Coin: parameter.IncomeCoin, Mana: parameter.IncomeMana, Favor: parameter.IncomeFavor},
	)
}

// Attempt re-checks eligibility and affordability, then debits the scaled cost and records the id
func (l *Ledger) Attempt(id string, tree *skill.Tree) (Outcome, error) {
	n := tree.Node(id)
	if n == nil {
		return Outcome{NodeID: id}, fmt.Errorf("attempt %q: %w", id, ErrUnknownNode)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.unlocked.Has(id) {
		return Outcome{NodeID: id, Reasons: []string{"Already unlocked"}}, nil
	}
	if res := skill.Check(n, l.unlocked, tree); !res.OK {
		return Outcome{NodeID: id, Reasons: res.Messages()}, nil
	}
	cost := n.CostAt(len(l.unlocked))
	if !skill.CanAfford(cost, l.resources) {
		short := skill.Shortfall(cost, l.resources)
		return Outcome{NodeID: id, Reasons: []string{skill.ShortfallMessage(short)}}, nil
	}

	l.resources = l.resources.Sub(cost)
	l.unlocked[id] = struct{}{}
	l.order = append(l.order, id)
	l.income = scaledIncome(l.base, l.unlocked, tree)
	log.Printf("economy: unlocked %s for %+v", id, cost)
	return Outcome{NodeID: id, OK: true, Paid: cost}, nil
}

// Tick accrues income for dt
func (l *Ledger) Tick(dt time.Duration) {
	if dt <= 0 {
		return
	}
	s := dt.Seconds()
	l.mu.Lock()
	l.resources.Coin += l.income.Coin * s
	l.resources.Mana += l.income.Mana * s
	l.resources.Favor += l.income.Favor * s
	l.mu.Unlock()
}

// Grant adds to the balance, used by tests and the demo cheat key
func (l *Ledger) Grant(r skill.Resources) {
	l.mu.Lock()
	l.resources.Coin += r.Coin
	l.resources.Mana += r.Mana
	l.resources.Favor += r.Favor
	l.mu.Unlock()
}

// Snapshot returns copies safe to hand to the view
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Snapshot{
		Unlocked:  l.unlocked.Clone(),
		Resources: l.resources,
		Income:    l.income,
	}
}

// Order returns unlocked ids in unlock order
func (l *Ledger) Order() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.order...)
}

// scaledIncome multiplies base income by every unlocked resource multiplier
func scaledIncome(base skill.Resources, unlocked skill.UnlockedSet, tree *skill.Tree) skill.Resources {
	out := base
	for id := range unlocked {
		n := tree.Node(id)
		if n == nil {
			continue
		}
		for _, e := range n.Effects {
			if e.Kind != skill.EffectResourceMultiplier {
				continue
			}
			switch skill.Resource(e.Target) {
			case skill.ResourceCoin:
				out.Coin *= e.Value
			case skill.ResourceMana:
				out.Mana *= e.Value
			case skill.ResourceFavor:
				out.Favor *= e.Value
			}
		}
	}
	return out
}
