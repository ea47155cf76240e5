// Package evolution flattens evolution-chain trees into ordered nodes and
// labeled edges.
package evolution

import (
	"github.com/rcliao/dexcache/internal/model"
)

// Placeholder labels an edge that carries no details and no trigger.
const Placeholder = "—"

// Edge is one evolution step.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// Graph is a flattened evolution chain. Nodes are in pre-order.
type Graph struct {
	Nodes []string `json:"nodes"`
	Edges []Edge   `json:"edges"`
}

type frame struct {
	link   *model.ChainLink
	parent string
}

// Build walks root depth-first in pre-order using an explicit stack.
// A species seen twice is listed once; every edge is kept.
func Build(root model.ChainLink) Graph {
	g := Graph{Nodes: []string{}, Edges: []Edge{}}
	seen := map[string]bool{}

	stack := []frame{{link: &root}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		name := f.link.Species.Name
		if !seen[name] {
			seen[name] = true
			g.Nodes = append(g.Nodes, name)
		}
		if f.parent != "" {
			g.Edges = append(g.Edges, Edge{
				From:  f.parent,
				To:    name,
				Label: EdgeLabel(f.link.EvolutionDetails),
			})
		}

		// Push children in reverse so the first child is visited first.
		for i := len(f.link.EvolvesTo) - 1; i >= 0; i-- {
			stack = append(stack, frame{link: &f.link.EvolvesTo[i], parent: name})
		}
	}
	return g
}
