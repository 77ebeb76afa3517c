package bintree

import "iter"

// Order selects a depth-first traversal order.
type Order uint8

// Traversal orders.
const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case InOrder:
		return "in-order"
	}
	return "post-order"
}

// Traverse applies visit to every record, in the given order.
// In-order traversal yields records in ascending key order.
func (t *Tree[K, R]) Traverse(order Order, visit func(R)) {
	if t.IsEmpty() || visit == nil {
		return
	}
	var walk func(n *Node[R])
	walk = func(n *Node[R]) {
		if n == nil {
			return
		}
		if order == PreOrder {
			visit(n.rec)
		}
		walk(n.left)
		if order == InOrder {
			visit(n.rec)
		}
		walk(n.right)
		if order == PostOrder {
			visit(n.rec)
		}
	}
	walk(t.root)
}

// All returns an iterator over all records in ascending key order.
func (t *Tree[K, R]) All() iter.Seq[R] {
	return func(yield func(R) bool) {
		if t.IsEmpty() {
			return
		}
		for n := t.root.leftmost(); n != nil; n = n.next() {
			if !yield(n.rec) {
				return
			}
		}
	}
}

// Backward returns an iterator over all records in descending key order.
func (t *Tree[K, R]) Backward() iter.Seq[R] {
	return func(yield func(R) bool) {
		if t.IsEmpty() {
			return
		}
		for n := t.root.rightmost(); n != nil; n = n.prev() {
			if !yield(n.rec) {
				return
			}
		}
	}
}

// Side tells which child of its parent a node is.
type Side uint8

// Sides; the root has SideNone.
const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// NodeInfo describes a record's node during EachNode.
type NodeInfo[R any] struct {
	Record R
	Depth  int    // 0 for the root
	Role   Role   // root, leaf or internal
	Side   Side   // which child of its parent
	Path   []Side // sides from the root's child down to this node; valid during the callback only
	Red    bool   // RedBlack only
	Height int    // AVL only
}

// EachNode iterates over all nodes in-order, ascending or descending,
// reporting structural information for debugging and rendering.
// Iteration stops at the first error returned by f and returns that error.
func (t *Tree[K, R]) EachNode(dir Direction, f func(NodeInfo[R]) error) error {
	if t.IsEmpty() || f == nil {
		return nil
	}
	var path []Side
	var walk func(n *Node[R], depth int) error
	descend := func(n *Node[R], side Side, depth int) error {
		if n == nil {
			return nil
		}
		path = append(path, side)
		err := walk(n, depth)
		path = path[:len(path)-1]
		return err
	}
	walk = func(n *Node[R], depth int) error {
		first, second := n.left, n.right
		firstSide, secondSide := SideLeft, SideRight
		if dir == Descending {
			first, second = second, first
			firstSide, secondSide = secondSide, firstSide
		}
		if err := descend(first, firstSide, depth+1); err != nil {
			return err
		}
		info := t.nodeInfo(n, depth)
		info.Path = path
		if err := f(info); err != nil {
			return err
		}
		return descend(second, secondSide, depth+1)
	}
	return walk(t.root, 0)
}

func (t *Tree[K, R]) nodeInfo(n *Node[R], depth int) NodeInfo[R] {
	info := NodeInfo[R]{
		Record: n.rec,
		Depth:  depth,
		Role:   n.role(),
	}
	switch {
	case n.isLeftChild():
		info.Side = SideLeft
	case n.isRightChild():
		info.Side = SideRight
	}
	switch t.cfg.Discipline {
	case RedBlack:
		info.Red = n.color == red
	case AVL:
		info.Height = n.height
	}
	return info
}
