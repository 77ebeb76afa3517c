package bintree

// replaceChild makes repl take the slot of old below parent. A nil parent
// denotes the root slot.
func (t *Tree[K, R]) replaceChild(parent, old, repl *Node[R]) {
	switch {
	case parent == nil:
		t.root = repl
	case parent.left == old:
		parent.left = repl
	default:
		assert(parent.right == old, "replaceChild: node is not a child of parent")
		parent.right = repl
	}
	if repl != nil {
		repl.parent = parent
	}
}

//	  A                      B
//	 / \                    / \
//	W   B     left         A   C
//	   / \    ----->      / \
//	  X   C              W   X
//
// Colors and heights are left untouched.
func (t *Tree[K, R]) rotateLeft(a *Node[R]) {
	b := a.right
	assert(b != nil, "rotateLeft requires a right child")
	t.replaceChild(a.parent, a, b)
	a.right = b.left
	if b.left != nil {
		b.left.parent = a
	}
	b.left = a
	a.parent = b
}

//	    A                  B
//	   / \                / \
//	  B   W    right     C   A
//	 / \       ----->       / \
//	C   X                  X   W
func (t *Tree[K, R]) rotateRight(a *Node[R]) {
	b := a.left
	assert(b != nil, "rotateRight requires a left child")
	t.replaceChild(a.parent, a, b)
	a.left = b.right
	if b.right != nil {
		b.right.parent = a
	}
	b.right = a
	a.parent = b
}
