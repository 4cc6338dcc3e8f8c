// Package depgraph models the dependency structure of the layout solver.
//
// Every derived quantity in a rack layout depends on a small set of upstream
// parameters: vertical levels depend on top clearance, beam size, and tier
// heights; tier envelopes depend on the levels and the rack cross-section;
// duct and pipe placement depend on their tier's envelope and the member
// sizes. The graph makes that flow explicit so it can be inspected or
// rendered, which is the fastest way to answer "why did this value move
// when I changed that one".
package depgraph

import (
	"fmt"
	"sort"

	"github.com/rackworks/rackplan/pkg/params"
)

// NodeKind classifies graph nodes by their role in the solver.
type NodeKind string

const (
	// KindParam is a user-supplied input parameter.
	KindParam NodeKind = "param"
	// KindDerived is a quantity computed from upstream nodes.
	KindDerived NodeKind = "derived"
	// KindGeometry is an emitted geometric element.
	KindGeometry NodeKind = "geometry"
)

// Node is a single quantity in the dependency graph.
type Node struct {
	ID   string
	Kind NodeKind
	// Tier is the 1-based tier index for per-tier nodes, 0 for global nodes.
	Tier int
}

// Edge is a directed dependency: To is computed from From.
type Edge struct {
	From string
	To   string
}

// Graph is the dependency graph for one parameter aggregate.
// Node and edge order is deterministic for a given aggregate.
type Graph struct {
	nodes []Node
	edges []Edge
	index map[string]int
}

// Nodes returns the nodes in insertion order.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns the edges in insertion order.
func (g *Graph) Edges() []Edge { return g.edges }

// Node looks up a node by ID.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Dependencies returns the IDs of the nodes that feed into id, sorted.
func (g *Graph) Dependencies(id string) []string {
	var deps []string
	for _, e := range g.edges {
		if e.To == id {
			deps = append(deps, e.From)
		}
	}
	sort.Strings(deps)
	return deps
}

// Dependents returns the IDs of the nodes computed from id, sorted.
func (g *Graph) Dependents(id string) []string {
	var deps []string
	for _, e := range g.edges {
		if e.From == id {
			deps = append(deps, e.To)
		}
	}
	sort.Strings(deps)
	return deps
}

func (g *Graph) addNode(id string, kind NodeKind, tier int) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.nodes)
	g.nodes = append(g.nodes, Node{ID: id, Kind: kind, Tier: tier})
}

func (g *Graph) addEdge(from, to string) {
	g.edges = append(g.edges, Edge{From: from, To: to})
}

// Global node IDs.
const (
	NodeCorridorWidth  = "corridor.width"
	NodeCorridorHeight = "corridor.height"
	NodeCeilingHeight  = "corridor.ceilingHeight"
	NodeBayCount       = "rack.bayCount"
	NodeBayWidth       = "rack.bayWidth"
	NodeDepth          = "rack.depth"
	NodePostSize       = "rack.postSize"
	NodeBeamSize       = "rack.beamSize"
	NodeTopClearance   = "rack.topClearance"
	NodeLevels         = "levels"
	NodeFrame          = "frame"
)

// New builds the dependency graph for a normalized aggregate. Per-tier nodes
// are created for every tier; duct and pipe nodes appear only where the tier
// enables them.
func New(a *params.Aggregate) *Graph {
	g := &Graph{index: make(map[string]int)}

	for _, id := range []string{NodeCorridorWidth, NodeCorridorHeight, NodeCeilingHeight} {
		g.addNode(id, KindParam, 0)
	}
	for _, id := range []string{NodeBayCount, NodeBayWidth, NodeDepth, NodePostSize, NodeBeamSize, NodeTopClearance} {
		g.addNode(id, KindParam, 0)
	}

	// Upstream clamps tie the rack cross-section to the corridor.
	g.addEdge(NodeCorridorHeight, NodeCeilingHeight)
	g.addEdge(NodeCorridorWidth, NodeDepth)
	g.addEdge(NodeCorridorHeight, NodeTopClearance)
	g.addEdge(NodeCeilingHeight, NodeTopClearance)

	g.addNode(NodeLevels, KindDerived, 0)
	g.addEdge(NodeTopClearance, NodeLevels)
	g.addEdge(NodeBeamSize, NodeLevels)

	g.addNode(NodeFrame, KindGeometry, 0)
	g.addEdge(NodeLevels, NodeFrame)
	g.addEdge(NodeBayCount, NodeFrame)
	g.addEdge(NodeBayWidth, NodeFrame)
	g.addEdge(NodeDepth, NodeFrame)
	g.addEdge(NodePostSize, NodeFrame)
	g.addEdge(NodeBeamSize, NodeFrame)

	for i, t := range a.Tiers {
		tier := i + 1

		heightID := TierNode(tier, "height")
		g.addNode(heightID, KindParam, tier)
		g.addEdge(heightID, NodeLevels)

		envID := TierNode(tier, "envelope")
		g.addNode(envID, KindDerived, tier)
		g.addEdge(NodeLevels, envID)
		g.addEdge(NodeBeamSize, envID)
		g.addEdge(NodeDepth, envID)
		g.addEdge(NodePostSize, envID)

		if t.Duct.Enabled {
			ductID := TierNode(tier, "duct")
			g.addNode(ductID, KindGeometry, tier)
			g.addEdge(envID, ductID)
		}
		if t.PipesEnabled {
			for p := range t.Pipes {
				pipeID := PipeNode(tier, p+1)
				g.addNode(pipeID, KindGeometry, tier)
				g.addEdge(envID, pipeID)
			}
		}
	}

	return g
}

// TierNode returns the node ID for a per-tier quantity, e.g. "tier[2].envelope".
func TierNode(tier int, name string) string {
	return fmt.Sprintf("tier[%d].%s", tier, name)
}

// PipeNode returns the node ID for a pipe, e.g. "tier[2].pipe[1]".
func PipeNode(tier, pipe int) string {
	return fmt.Sprintf("tier[%d].pipe[%d]", tier, pipe)
}
