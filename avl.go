package bintree

// rebalanceAVL walks from n up to the root, recomputing cached heights and
// rotating wherever the heights of two sibling subtrees differ by 2.
//
// Insertion needs at most one (single or double) rotation, whereas removal
// may rotate at several levels of the path.
func (t *Tree[K, R]) rebalanceAVL(n *Node[R]) {
	for n != nil {
		n.height = 0
		lh, rh := heightOf(n.left), heightOf(n.right)
		switch {
		case lh >= rh+2:
			l := n.left
			if heightOf(l.right) > heightOf(l.left) { // left-right zigzag
				t.rotateLeft(l)
				l.height = 0
				l.parent.height = 0
			}
			t.rotateRight(n)
			n.height = 0
			n = n.parent
			n.height = 0
		case rh >= lh+2:
			r := n.right
			if heightOf(r.left) > heightOf(r.right) { // right-left zigzag
				t.rotateRight(r)
				r.height = 0
				r.parent.height = 0
			}
			t.rotateLeft(n)
			n.height = 0
			n = n.parent
			n.height = 0
		}
		heightOf(n)
		n = n.parent
	}
}
