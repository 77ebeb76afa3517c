package bintree

// fixInsertRB restores the Red-Black rules after a red node n has been
// placed as a leaf.
func (t *Tree[K, R]) fixInsertRB(n *Node[R]) {
	for {
		p := n.parent
		if p == nil || p.color == black {
			break
		}
		g := p.parent
		assert(g != nil, "red node must not be the root")
		uncle := g.left
		if p.isLeftChild() {
			uncle = g.right
		}
		if isRed(uncle) {
			p.color = black
			uncle.color = black
			g.color = red
			n = g
			continue
		}
		// uncle is black: turn a zigzag into a straight line first
		if n.isRightChild() && p.isLeftChild() {
			t.rotateLeft(p)
			n = p
			continue
		}
		if n.isLeftChild() && p.isRightChild() {
			t.rotateRight(p)
			n = p
			continue
		}
		p.color = black
		g.color = red
		if n.isLeftChild() {
			t.rotateRight(g)
		} else {
			t.rotateLeft(g)
		}
		break
	}
	t.root.color = black
}

// fixRemoveRB resolves the double-black deficiency at position x, which is
// a child slot of parent (x may be nil). It is called after a black node
// has been detached.
func (t *Tree[K, R]) fixRemoveRB(x, parent *Node[R]) {
	for x != t.root && isBlack(x) {
		if x == parent.left {
			s := parent.right
			if isRed(s) {
				s.color = black
				parent.color = red
				t.rotateLeft(parent)
				s = parent.right
			}
			if isBlack(s.left) && isBlack(s.right) {
				s.color = red
				x = parent
				parent = x.parent
				continue
			}
			if isBlack(s.right) {
				s.left.color = black
				s.color = red
				t.rotateRight(s)
				s = parent.right
			}
			s.color = parent.color
			parent.color = black
			s.right.color = black
			t.rotateLeft(parent)
		} else {
			s := parent.left
			if isRed(s) {
				s.color = black
				parent.color = red
				t.rotateRight(parent)
				s = parent.left
			}
			if isBlack(s.left) && isBlack(s.right) {
				s.color = red
				x = parent
				parent = x.parent
				continue
			}
			if isBlack(s.left) {
				s.right.color = black
				s.color = red
				t.rotateLeft(s)
				s = parent.left
			}
			s.color = parent.color
			parent.color = black
			s.left.color = black
			t.rotateRight(parent)
		}
		x = t.root
	}
	if x != nil {
		x.color = black
	}
}
