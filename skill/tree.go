package skill

// EdgeKind separates gating edges from display-only ones
type EdgeKind uint8

const (
	EdgePrerequisite EdgeKind = iota
	EdgeBridge
)

func (k EdgeKind) String() string {
	if k == EdgeBridge {
		return "bridge"
	}
	return "prerequisite"
}

// MarshalText renders the kind by name for dump output
func (k EdgeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Edge is directed From -> To; prerequisite edges point from requirement to dependent
type Edge struct {
	From string   `json:"from" yaml:"from"`
	To   string   `json:"to" yaml:"to"`
	Kind EdgeKind `json:"kind" yaml:"kind"`
}

// EdgeKey identifies an edge in highlight sets
type EdgeKey string

// Key returns "From->To" for prerequisites and "From~To" for bridges
func (e Edge) Key() EdgeKey {
	if e.Kind == EdgeBridge {
		return BridgeKey(e.From, e.To)
	}
	return PrereqKey(e.From, e.To)
}

// PrereqKey builds the key of a prerequisite edge
func PrereqKey(from, to string) EdgeKey { return EdgeKey(from + "->" + to) }

// BridgeKey builds the key of a bridge edge
func BridgeKey(from, to string) EdgeKey { return EdgeKey(from + "~" + to) }

// Lookup resolves nodes by id, implemented by Tree
type Lookup interface {
	Node(id string) *Node
	Nodes() []*Node
}

// Tree is an append-only prerequisite graph with layout bookkeeping
type Tree struct {
	seed   uint64
	params Params

	nodes []*Node
	edges []Edge

	index          map[string]*Node
	byTier         [][]*Node
	categoryCounts map[Category]int
	dependents     map[string][]string
	maxTier        int
}

func newTree(seed uint64, p Params) *Tree {
	return &Tree{
		seed:           seed,
		params:         p,
		index:          make(map[string]*Node),
		categoryCounts: make(map[Category]int),
		dependents:     make(map[string][]string),
		maxTier:        -1,
	}
}

// hasBookkeeping reports whether the tree came from Generate
func (t *Tree) hasBookkeeping() bool {
	return t != nil && t.index != nil && t.categoryCounts != nil && t.byTier != nil
}

// clone copies containers, nodes are shared since they are immutable
func (t *Tree) clone() *Tree {
	c := &Tree{
		seed:           t.seed,
		params:         t.params,
		nodes:          append([]*Node(nil), t.nodes...),
		edges:          append([]Edge(nil), t.edges...),
		index:          make(map[string]*Node, len(t.index)),
		byTier:         make([][]*Node, len(t.byTier)),
		categoryCounts: make(map[Category]int, len(t.categoryCounts)),
		maxTier:        t.maxTier,
	}
	for k, v := range t.index {
		c.index[k] = v
	}
	for i, tier := range t.byTier {
		c.byTier[i] = append([]*Node(nil), tier...)
	}
	for k, v := range t.categoryCounts {
		c.categoryCounts[k] = v
	}
	return c
}

// appendTier records nodes and edges of a freshly built tier
func (t *Tree) appendTier(tier int, nodes []*Node, edges []Edge) {
	for len(t.byTier) <= tier {
		t.byTier = append(t.byTier, nil)
	}
	t.byTier[tier] = nodes
	for _, n := range nodes {
		t.nodes = append(t.nodes, n)
		t.index[n.ID] = n
		t.categoryCounts[n.Category]++
	}
	t.edges = append(t.edges, edges...)
	if tier > t.maxTier {
		t.maxTier = tier
	}
}

// rebuildDependents recomputes the reverse-requires map, called once per generation or expansion
func (t *Tree) rebuildDependents() {
	deps := make(map[string][]string, len(t.nodes))
	for _, n := range t.nodes {
		for _, req := range n.Requires {
			deps[req] = append(deps[req], n.ID)
		}
	}
	t.dependents = deps
}

// Seed returns the seed the tree was generated from
func (t *Tree) Seed() uint64 { return t.seed }

// Params returns the generation parameters, Tiers reflects expansions
func (t *Tree) Params() Params { return t.params }

// Nodes returns nodes in generation order, callers must not modify the slice
func (t *Tree) Nodes() []*Node {
	if t == nil {
		return nil
	}
	return t.nodes
}

// Edges returns all edges including bridges, callers must not modify the slice
func (t *Tree) Edges() []Edge {
	if t == nil {
		return nil
	}
	return t.edges
}

// Node returns the node with id, nil when absent
func (t *Tree) Node(id string) *Node {
	if t == nil || t.index == nil {
		return nil
	}
	return t.index[id]
}

// Dependents returns ids that directly require id
func (t *Tree) Dependents(id string) []string {
	if t == nil {
		return nil
	}
	return t.dependents[id]
}

// TierNodes returns the nodes of a tier in index order
func (t *Tree) TierNodes(tier int) []*Node {
	if t == nil || tier < 0 || tier >= len(t.byTier) {
		return nil
	}
	return t.byTier[tier]
}

// TierCount returns the number of nodes in tier
func (t *Tree) TierCount(tier int) int {
	return len(t.TierNodes(tier))
}

// CategoryCount returns the number of nodes in category c
func (t *Tree) CategoryCount(c Category) int {
	if t == nil {
		return 0
	}
	return t.categoryCounts[c]
}

// MaxTier returns the deepest generated tier, -1 for an empty tree
func (t *Tree) MaxTier() int {
	if t == nil {
		return -1
	}
	return t.maxTier
}

// Len returns the node count
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.nodes)
}
