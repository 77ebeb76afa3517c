package bintree

/*
BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Tree is an intrusive binary search tree over records of type R, ordered by
// keys of type K.
//
// Operations and their cost, for n records in the tree:
//
//	Operation       |  Unbalanced  |  AVL / RedBlack
//	----------------+--------------+----------------
//	Insert          |  O(n)        |  O(log n)
//	Remove          |  O(n)        |  O(log n)
//	Find/Floor/…    |  O(n)        |  O(log n)
//	RangeQuery      |  O(n)        |  O(log n + k)
//	Len             |  O(1)        |  O(1)
//
// A Tree must be created with New.
type Tree[K any, R Linked[R]] struct {
	cfg   Config[K, R]
	root  *Node[R]
	count int
}

// New creates an empty tree with validated configuration.
func New[K any, R Linked[R]](cfg Config[K, R]) (*Tree[K, R], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K, R]{cfg: cfg}, nil
}

// Discipline returns the balancing discipline of the tree.
func (t *Tree[K, R]) Discipline() Discipline {
	return t.cfg.Discipline
}

// Len returns the number of records in the tree.
func (t *Tree[K, R]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// IsEmpty reports whether the tree holds no records.
func (t *Tree[K, R]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// IsNew reports whether rec may be inserted into t: its node has no parent,
// no children, no owning tree, and it is not the lone root of t.
func (t *Tree[K, R]) IsNew(rec R) bool {
	return t.isNew(rec.link())
}

func (t *Tree[K, R]) isNew(n *Node[R]) bool {
	return n.parent == nil && n.left == nil && n.right == nil &&
		n.owner == nil && t.root != n
}

// Contains reports whether rec is currently linked into t.
func (t *Tree[K, R]) Contains(rec R) bool {
	return t.contains(rec.link())
}

func (t *Tree[K, R]) contains(n *Node[R]) bool {
	return n.owner != nil && n.owner == treeOwner(t)
}

func (t *Tree[K, R]) key(n *Node[R]) K {
	return t.cfg.Key(n.rec)
}

func (t *Tree[K, R]) compare(a, b K) int {
	return t.cfg.Compare(a, b)
}

// Insert links rec into the tree. If rec's node is not new, i.e. it is
// attached to this or another tree, Insert returns ErrNodeAttached and leaves
// the tree unmodified.
func (t *Tree[K, R]) Insert(rec R) error {
	n := rec.link()
	if !t.isNew(n) {
		T().Debugf("bintree: refusing to insert attached node %p", n)
		return ErrNodeAttached
	}
	n.rec = rec
	n.owner = t
	t.place(n)
	switch t.cfg.Discipline {
	case AVL:
		n.height = 0
		t.rebalanceAVL(n)
	case RedBlack:
		n.color = red
		t.fixInsertRB(n)
	}
	t.count++
	return nil
}

// place links a fresh node as a leaf, ties going to the left.
func (t *Tree[K, R]) place(n *Node[R]) {
	if t.root == nil {
		t.root = n
		return
	}
	k := t.key(n)
	cur := t.root
	for {
		if t.compare(k, t.key(cur)) <= 0 {
			if cur.left == nil {
				cur.left = n
				break
			}
			cur = cur.left
		} else {
			if cur.right == nil {
				cur.right = n
				break
			}
			cur = cur.right
		}
	}
	n.parent = cur
}

// Remove unlinks rec from the tree. If rec is not linked into this tree,
// Remove returns ErrNodeNotAttached and leaves the tree unmodified.
// On success rec's node is re-initialized and may be inserted again.
func (t *Tree[K, R]) Remove(rec R) error {
	n := rec.link()
	if !t.contains(n) {
		T().Debugf("bintree: refusing to remove foreign node %p", n)
		return ErrNodeNotAttached
	}
	if n.left != nil && n.right != nil {
		t.swapWithSuccessor(n)
	}
	parent, child := t.detach(n)
	switch t.cfg.Discipline {
	case AVL:
		if parent != nil {
			t.rebalanceAVL(parent)
		}
	case RedBlack:
		if n.color == black {
			t.fixRemoveRB(child, parent)
		}
	}
	n.reset()
	t.count--
	return nil
}

// detach unlinks a node with at most one child, handing the child to n's
// parent. It returns the former parent of n and the child taking n's place.
func (t *Tree[K, R]) detach(n *Node[R]) (parent, child *Node[R]) {
	assert(n.left == nil || n.right == nil, "detach called for node with two children")
	parent = n.parent
	child = n.left
	if n.hasOnlyRight() {
		child = n.right
	}
	t.replaceChild(parent, n, child)
	return parent, child
}

// swapWithSuccessor exchanges the structural positions of n and its in-order
// successor s. Records stay with their nodes; positions, colors and heights
// are swapped. Afterwards n has no left child.
//
// The tree order is temporarily broken between n and s, and restored as soon
// as n is detached.
func (t *Tree[K, R]) swapWithSuccessor(n *Node[R]) {
	s := n.right.leftmost()
	np, nl, nr := n.parent, n.left, n.right
	sp, sr := s.parent, s.right
	t.replaceChild(np, n, s)
	s.left = nl
	nl.parent = s
	if sp == n {
		s.right = n
		n.parent = s
	} else {
		s.right = nr
		nr.parent = s
		sp.left = n
		n.parent = sp
	}
	n.left = nil
	n.right = sr
	if sr != nil {
		sr.parent = n
	}
	n.color, s.color = s.color, n.color
	n.height, s.height = s.height, n.height
}

// Clear unlinks all records, visiting nodes in post-order. If release is
// non-nil, it is called for every record after its node has been reset.
func (t *Tree[K, R]) Clear(release func(R)) {
	var teardown func(n *Node[R])
	teardown = func(n *Node[R]) {
		if n == nil {
			return
		}
		teardown(n.left)
		teardown(n.right)
		rec := n.rec
		n.reset()
		if release != nil {
			release(rec)
		}
	}
	T().Debugf("bintree: clearing tree of %d nodes", t.count)
	teardown(t.root)
	t.root = nil
	t.count = 0
}
