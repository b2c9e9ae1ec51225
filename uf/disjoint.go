// Package uf implements a disjoint-set (union-find) data structure using
// path splitting and union by priority then size.
package uf

// Node is an element of a disjoint set. A root Node's parent is itself;
// create Nodes with NewNode, since the zero value (nil parent) is not a
// valid set element.
type Node struct {
	parent   *Node
	size     int
	priority int
}

// NewNode returns a fresh singleton Node with the given priority. A
// priority of 0 is the default and should be used unless the caller has
// a specific reason to force one root to win unions against another.
func NewNode(priority int) *Node {
	n := &Node{size: 1, priority: priority}
	n.parent = n
	return n
}

// Find returns the root of the set containing n, compressing the path
// by path splitting: every traversed node is re-pointed to its
// grandparent, halving the path length on each traversal.
func Find(n *Node) *Node {
	for n.parent != n {
		n.parent, n = n.parent.parent, n.parent
	}
	return n
}

// Size returns the size of the set containing n (the number of nodes
// reachable through repeated union), valid for any n regardless of
// whether it is currently a root.
func Size(n *Node) int {
	return Find(n).size
}

// Priority returns the union priority of the set containing n.
func Priority(n *Node) int {
	return Find(n).priority
}

// Connected reports whether a and b belong to the same set.
func Connected(a, b *Node) bool {
	return Find(a) == Find(b)
}

// Unite merges the sets containing a and b, reporting whether a merge
// actually occurred (false if they were already connected). The new
// root is chosen by higher priority; ties are broken by larger size;
// remaining ties keep a's root. Priority override is a hint that can
// degrade the amortised inverse-Ackermann complexity of the default
// (all-priority-0) case and should only be used deliberately.
func Unite(a, b *Node) bool {
	ra, rb := Find(a), Find(b)
	if ra == rb {
		return false
	}
	var keep, lose *Node
	switch {
	case ra.priority > rb.priority:
		keep, lose = ra, rb
	case rb.priority > ra.priority:
		keep, lose = rb, ra
	case ra.size >= rb.size:
		keep, lose = ra, rb
	default:
		keep, lose = rb, ra
	}
	lose.parent = keep
	keep.size += lose.size
	return true
}
