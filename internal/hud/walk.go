package hud

// Walk visits every node of the document in depth-first declaration order,
// parents before children. Returning false from fn stops the walk.
func (d *Document) Walk(fn func(*Node) bool) {
	if d.Root == nil {
		return
	}
	walkNode(d.Root, fn)
}

func walkNode(n *Node, fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !walkNode(child, fn) {
			return false
		}
	}
	return true
}

// Find returns the first node with the given id, or nil. Validated documents
// have unique ids, so "first" is also "only".
func (d *Document) Find(id string) *Node {
	var found *Node
	d.Walk(func(n *Node) bool {
		if n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// CollectIDs returns every non-empty id in depth-first declaration order.
func (d *Document) CollectIDs() []string {
	var ids []string
	d.Walk(func(n *Node) bool {
		if id := n.ID(); id != "" {
			ids = append(ids, id)
		}
		return true
	})
	return ids
}

// Count returns the total number of nodes in the document.
func (d *Document) Count() int {
	count := 0
	d.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}
