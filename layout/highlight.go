package layout

import "github.com/lixenwraith/constellation/skill"

// Highlight is the lineage of a target node
type Highlight struct {
	Target string
	Nodes  map[string]struct{}
	Edges  map[skill.EdgeKey]struct{}
}

// Empty reports whether nothing is highlighted
func (h Highlight) Empty() bool { return len(h.Nodes) == 0 }

// HasNode reports whether id is part of the lineage
func (h Highlight) HasNode(id string) bool {
	_, ok := h.Nodes[id]
	return ok
}

// HasEdge reports whether the edge key is part of the lineage
func (h Highlight) HasEdge(k skill.EdgeKey) bool {
	_, ok := h.Edges[k]
	return ok
}

// Resolve collects transitive ancestors and dependents of targetID with traversed edges
// Bridges are included when they touch the target or join two highlighted nodes
func Resolve(targetID string, t *skill.Tree) Highlight {
	h := Highlight{
		Target: targetID,
		Nodes:  make(map[string]struct{}),
		Edges:  make(map[skill.EdgeKey]struct{}),
	}
	if t.Node(targetID) == nil {
		h.Target = ""
		return h
	}
	h.Nodes[targetID] = struct{}{}

	// Ancestors
	stack := []string{targetID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.Node(id)
		if n == nil {
			continue
		}
		for _, req := range n.Requires {
			h.Edges[skill.PrereqKey(req, id)] = struct{}{}
			if _, seen := h.Nodes[req]; seen {
				continue
			}
			h.Nodes[req] = struct{}{}
			stack = append(stack, req)
		}
	}

	// Dependents, separate visited set so shared ancestors do not block the walk
	down := map[string]struct{}{targetID: {}}
	stack = append(stack[:0], targetID)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, dep := range t.Dependents(id) {
			h.Edges[skill.PrereqKey(id, dep)] = struct{}{}
			if _, seen := down[dep]; seen {
				continue
			}
			down[dep] = struct{}{}
			h.Nodes[dep] = struct{}{}
			stack = append(stack, dep)
		}
	}

	for _, e := range t.Edges() {
		if e.Kind != skill.EdgeBridge {
			continue
		}
		touches := e.From == targetID || e.To == targetID
		_, fromLit := h.Nodes[e.From]
		_, toLit := h.Nodes[e.To]
		if touches || (fromLit && toLit) {
			h.Edges[e.Key()] = struct{}{}
		}
	}
	return h
}
