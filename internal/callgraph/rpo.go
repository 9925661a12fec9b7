package callgraph

// ReversePostorder returns every node reachable from the synthetic root,
// callers before callees along each dependency edge. The order is a pure
// function of the graph: two calls on an unchanged graph yield identical
// slices, which is what makes the scheduler's dispatch order reproducible.
func (g *Graph) ReversePostorder() []NodeID {
	visited := make([]bool, len(g.nodes))
	post := make([]NodeID, 0, len(g.nodes))

	type frame struct {
		node NodeID
		next int
	}
	stack := []frame{{node: Root}}
	visited[Root] = true

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		callees := g.nodes[top.node].Callees
		if top.next < len(callees) {
			c := callees[top.next]
			top.next++
			if !visited[c] {
				visited[c] = true
				stack = append(stack, frame{node: c})
			}
			continue
		}
		post = append(post, top.node)
		stack = stack[:len(stack)-1]
	}

	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}
	return post
}
