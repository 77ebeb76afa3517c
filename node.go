package bintree

// color is the node color under the Red-Black discipline.
type color uint8

const (
	red   color = 0
	black color = 1
)

// Node is the tree linkage embedded into client records. R is the record
// pointer type, i.e. a record type Item embeds Node[*Item].
//
// The zero value is a new, unattached node. Clients must not copy a Node
// while it is attached.
type Node[R any] struct {
	parent, left, right *Node[R]
	owner               treeOwner // tree the node is linked into, nil if unattached
	rec                 R         // record embedding this node, valid while attached
	color               color     // RedBlack only
	height              int       // AVL only; 0 means "needs recomputation"
}

// Linked is implemented by record pointer types embedding a Node.
// As the method set is unexported, embedding is the only way to satisfy it.
type Linked[R any] interface {
	link() *Node[R]
}

func (n *Node[R]) link() *Node[R] {
	return n
}

// treeOwner identifies the tree a node is linked into.
type treeOwner interface {
	Discipline() Discipline
}

// Attached reports whether the node is currently linked into any tree.
func (n *Node[R]) Attached() bool {
	return n.owner != nil
}

func (n *Node[R]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *Node[R]) isRoot() bool {
	return n.parent == nil
}

func (n *Node[R]) isInternal() bool {
	return !(n.isLeaf() || n.isRoot())
}

func (n *Node[R]) isLeftChild() bool {
	return !n.isRoot() && n.parent.left == n
}

func (n *Node[R]) isRightChild() bool {
	return !n.isRoot() && n.parent.right == n
}

func (n *Node[R]) hasOnlyLeft() bool {
	return n.left != nil && n.right == nil
}

func (n *Node[R]) hasOnlyRight() bool {
	return n.left == nil && n.right != nil
}

func (n *Node[R]) leftmost() *Node[R] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *Node[R]) rightmost() *Node[R] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns the in-order successor of n, or nil.
func (n *Node[R]) next() *Node[R] {
	if n.right != nil {
		return n.right.leftmost()
	}
	for n.isRightChild() {
		n = n.parent
	}
	return n.parent
}

// prev returns the in-order predecessor of n, or nil.
func (n *Node[R]) prev() *Node[R] {
	if n.left != nil {
		return n.left.rightmost()
	}
	for n.isLeftChild() {
		n = n.parent
	}
	return n.parent
}

// reset clears all references, making n eligible for insertion again.
func (n *Node[R]) reset() {
	var zero R
	n.parent, n.left, n.right = nil, nil, nil
	n.owner = nil
	n.rec = zero
	n.color = red
	n.height = 0
}

func isRed[R any](n *Node[R]) bool {
	return n != nil && n.color == red
}

// isBlack treats absent children as black.
func isBlack[R any](n *Node[R]) bool {
	return n == nil || n.color == black
}

// heightOf returns the cached AVL height of n, recomputing it (and the heights
// of invalidated descendants) if it is marked as unresolved.
func heightOf[R any](n *Node[R]) int {
	if n == nil {
		return 0
	}
	if n.height == 0 {
		n.height = 1 + max(heightOf(n.left), heightOf(n.right))
	}
	return n.height
}

// Role describes the structural position of a node.
type Role uint8

// Node roles. A lone root is reported as RoleRoot.
const (
	RoleRoot Role = iota
	RoleLeaf
	RoleInternal
)

func (r Role) String() string {
	switch r {
	case RoleRoot:
		return "ROOT"
	case RoleLeaf:
		return "LEAF"
	}
	return "INTER"
}

func (n *Node[R]) role() Role {
	switch {
	case n.isRoot():
		return RoleRoot
	case n.isInternal():
		return RoleInternal
	}
	return RoleLeaf
}
