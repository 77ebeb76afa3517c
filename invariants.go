package bintree

import "fmt"

// Check validates structural tree invariants:
//
//   - in-order keys are non-decreasing, parent links are consistent and every
//     node is owned by this tree,
//   - the node count matches Len,
//   - RedBlack: the root is black, no red node has a red child, and all paths
//     to an absent child carry the same number of black nodes,
//   - AVL: cached heights are exact and sibling heights differ by at most 1.
//
// Check is intended for tests and debugging.
func (t *Tree[K, R]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree must have count=0, has %d", ErrCorrupted, t.count)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrCorrupted)
	}
	if t.cfg.Discipline == RedBlack && t.root.color != black {
		return fmt.Errorf("%w: root is red", ErrCorrupted)
	}
	stats, err := t.checkNode(t.root)
	if err != nil {
		T().Errorf("bintree: %v", err)
		return err
	}
	if stats.count != t.count {
		return fmt.Errorf("%w: count mismatch (%d != %d)", ErrCorrupted, stats.count, t.count)
	}
	return t.checkOrder()
}

type subtreeStats struct {
	count       int
	height      int
	blackHeight int
}

func (t *Tree[K, R]) checkNode(n *Node[R]) (subtreeStats, error) {
	if n == nil {
		return subtreeStats{}, nil
	}
	if !t.contains(n) {
		return subtreeStats{}, fmt.Errorf("%w: node %p not owned by tree", ErrCorrupted, n)
	}
	if n.left != nil && n.left.parent != n {
		return subtreeStats{}, fmt.Errorf("%w: broken parent link below %p", ErrCorrupted, n)
	}
	if n.right != nil && n.right.parent != n {
		return subtreeStats{}, fmt.Errorf("%w: broken parent link below %p", ErrCorrupted, n)
	}
	l, err := t.checkNode(n.left)
	if err != nil {
		return l, err
	}
	r, err := t.checkNode(n.right)
	if err != nil {
		return r, err
	}
	stats := subtreeStats{
		count:       l.count + r.count + 1,
		height:      1 + max(l.height, r.height),
		blackHeight: l.blackHeight,
	}
	switch t.cfg.Discipline {
	case RedBlack:
		if isRed(n) && (isRed(n.left) || isRed(n.right)) {
			return stats, fmt.Errorf("%w: red node %p has a red child", ErrCorrupted, n)
		}
		if l.blackHeight != r.blackHeight {
			return stats, fmt.Errorf("%w: black-height mismatch at %p (%d != %d)",
				ErrCorrupted, n, l.blackHeight, r.blackHeight)
		}
		if n.color == black {
			stats.blackHeight++
		}
	case AVL:
		if n.height != stats.height {
			return stats, fmt.Errorf("%w: cached height %d at %p, should be %d",
				ErrCorrupted, n.height, n, stats.height)
		}
		if d := l.height - r.height; d > 1 || d < -1 {
			return stats, fmt.Errorf("%w: unbalanced node %p (%d vs %d)",
				ErrCorrupted, n, l.height, r.height)
		}
	}
	return stats, nil
}

func (t *Tree[K, R]) checkOrder() error {
	n := t.root.leftmost()
	for next := n.next(); next != nil; n, next = next, next.next() {
		if t.compare(t.key(n), t.key(next)) > 0 {
			return fmt.Errorf("%w: keys out of order at %p", ErrCorrupted, next)
		}
	}
	return nil
}

// Height returns the height of the tree, where 0 means empty and 1 a lone root.
func (t *Tree[K, R]) Height() int {
	if t.IsEmpty() {
		return 0
	}
	var h func(n *Node[R]) int
	h = func(n *Node[R]) int {
		if n == nil {
			return 0
		}
		return 1 + max(h(n.left), h(n.right))
	}
	return h(t.root)
}
