// Package callgraph builds the directed may-call graph over the declaration
// store and provides the deterministic reverse-postorder traversal the
// scheduler walks.
package callgraph

import (
	"fmt"

	"fortio.org/safecast"

	"scour/internal/decl"
)

// NodeID indexes into a Graph. Index 0 is the synthetic root: it has no
// declaration and must never be dispatched.
type NodeID uint32

const Root NodeID = 0

// Node is one vertex of the call graph.
type Node struct {
	Decl    decl.ID // NoID for the synthetic root
	Callees []NodeID
}

// Graph is the may-call graph of one translation unit.
type Graph struct {
	nodes []Node
	index map[decl.ID]NodeID
}

func newGraph(capacity int) *Graph {
	g := &Graph{
		nodes: make([]Node, 1, capacity+1),
		index: make(map[decl.ID]NodeID, capacity),
	}
	return g
}

// Len reports the number of nodes including the root.
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node or nil for an out-of-range ID.
func (g *Graph) Node(id NodeID) *Node {
	if int(id) >= len(g.nodes) {
		return nil
	}
	return &g.nodes[id]
}

// DeclOf returns the declaration behind a node, NoID for the root.
func (g *Graph) DeclOf(id NodeID) decl.ID {
	if n := g.Node(id); n != nil {
		return n.Decl
	}
	return decl.NoID
}

// NodeOf resolves a declaration to its node.
func (g *Graph) NodeOf(id decl.ID) (NodeID, bool) {
	n, ok := g.index[id]
	return n, ok
}

func (g *Graph) ensure(id decl.ID) NodeID {
	if n, ok := g.index[id]; ok {
		return n
	}
	value, err := safecast.Conv[uint32](len(g.nodes))
	if err != nil {
		panic(fmt.Errorf("call graph overflow: %w", err))
	}
	n := NodeID(value)
	g.nodes = append(g.nodes, Node{Decl: id})
	g.index[id] = n
	return n
}

func (g *Graph) addEdge(from, to NodeID) {
	callees := g.nodes[from].Callees
	for _, c := range callees {
		if c == to {
			return
		}
	}
	g.nodes[from].Callees = append(callees, to)
}

// Build constructs the graph from the current top-level sequence of the
// store. Every recorded declaration becomes a node reachable from the root;
// resolving a body's callees may materialize and record more declarations,
// and the live index-based cursor picks those up in the same sweep. Callers
// that need to distinguish directly observed declarations from discovered
// ones capture store.RecordedLen() before calling Build.
func Build(store *decl.Store, src decl.Source) *Graph {
	g := newGraph(store.RecordedLen())
	for i := 0; i < store.RecordedLen(); i++ {
		id := store.RecordedAt(i)
		d := store.Get(id)
		if d == nil {
			continue
		}
		n := g.ensure(id)
		g.addEdge(Root, n)
		if !d.HasBody || src == nil {
			continue
		}
		for _, callee := range src.Callees(store, id) {
			if !callee.IsValid() || callee == id {
				continue
			}
			g.addEdge(n, g.ensure(callee))
		}
	}
	return g
}
