package bintree

import "iter"

// Direction is the order in which a range query reports records.
type Direction uint8

// Directions for range queries.
const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

func (t *Tree[K, R]) record(n *Node[R]) (R, bool) {
	if n == nil {
		var zero R
		return zero, false
	}
	return n.rec, true
}

func (t *Tree[K, R]) find(key K) *Node[R] {
	n := t.root
	for n != nil {
		c := t.compare(key, t.key(n))
		switch {
		case c == 0:
			return n
		case c < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return nil
}

// Find returns a record with a key equal to key. If duplicates are present,
// any one of them may be returned.
func (t *Tree[K, R]) Find(key K) (R, bool) {
	return t.record(t.find(key))
}

// Floor returns a record with the greatest key less than or equal to key.
func (t *Tree[K, R]) Floor(key K) (R, bool) {
	var candidate *Node[R]
	n := t.root
	for n != nil {
		c := t.compare(key, t.key(n))
		switch {
		case c == 0:
			return n.rec, true
		case c < 0:
			n = n.left
		default:
			candidate = n
			n = n.right
		}
	}
	return t.record(candidate)
}

// Ceiling returns a record with the least key greater than or equal to key.
func (t *Tree[K, R]) Ceiling(key K) (R, bool) {
	var candidate *Node[R]
	n := t.root
	for n != nil {
		c := t.compare(key, t.key(n))
		switch {
		case c == 0:
			return n.rec, true
		case c < 0:
			candidate = n
			n = n.left
		default:
			n = n.right
		}
	}
	return t.record(candidate)
}

// Min returns the record with the smallest key.
func (t *Tree[K, R]) Min() (R, bool) {
	if t.root == nil {
		return t.record(nil)
	}
	return t.record(t.root.leftmost())
}

// Max returns the record with the greatest key.
func (t *Tree[K, R]) Max() (R, bool) {
	if t.root == nil {
		return t.record(nil)
	}
	return t.record(t.root.rightmost())
}

// Next returns the in-order successor of rec, which must be linked into t.
func (t *Tree[K, R]) Next(rec R) (R, bool) {
	n := rec.link()
	if !t.contains(n) {
		return t.record(nil)
	}
	return t.record(n.next())
}

// Prev returns the in-order predecessor of rec, which must be linked into t.
func (t *Tree[K, R]) Prev(rec R) (R, bool) {
	n := rec.link()
	if !t.contains(n) {
		return t.record(nil)
	}
	return t.record(n.prev())
}

// RangeQuery calls visit for records with keys in [lower, upper], in the
// given direction, for at most maxResults records. A nil bound leaves the range
// open on that side. If visit returns false, the scan stops.
//
// RangeQuery returns the number of records visited, including the one for
// which visit returned false. If both bounds are given and lower is greater
// than upper, no record is visited and ErrInvalidRange is returned.
//
// visit must not modify the tree.
func (t *Tree[K, R]) RangeQuery(lower, upper *K, dir Direction, maxResults int,
	visit func(R) bool) (int, error) {
	//
	if lower != nil && upper != nil && t.compare(*lower, *upper) > 0 {
		T().Debugf("bintree: invalid range query")
		return 0, ErrInvalidRange
	}
	if visit == nil {
		return 0, ErrIllegalArguments
	}
	scan := rangeScan[K, R]{
		tree:  t,
		lower: lower,
		upper: upper,
		dir:   dir,
		max:   maxResults,
		visit: visit,
	}
	scan.walk(t.root)
	return scan.count, nil
}

type rangeScan[K any, R Linked[R]] struct {
	tree         *Tree[K, R]
	lower, upper *K
	dir          Direction
	max          int
	visit        func(R) bool
	count        int
	stopped      bool
}

func (s *rangeScan[K, R]) done() bool {
	return s.stopped || s.count >= s.max
}

// walk visits n's subtree. The left subtree may hold in-range keys unless n
// is below the lower bound, the right one unless n is above the upper bound.
// Rotations may move keys equal to n to either side, so equality does not
// prune.
func (s *rangeScan[K, R]) walk(n *Node[R]) {
	if n == nil || s.done() {
		return
	}
	k := s.tree.key(n)
	aboveLower := s.lower == nil || s.tree.compare(*s.lower, k) <= 0
	belowUpper := s.upper == nil || s.tree.compare(*s.upper, k) >= 0
	first, second := n.left, n.right
	descendFirst, descendSecond := aboveLower, belowUpper
	if s.dir == Descending {
		first, second = second, first
		descendFirst, descendSecond = descendSecond, descendFirst
	}
	if descendFirst {
		s.walk(first)
	}
	if aboveLower && belowUpper && !s.done() {
		s.count++
		if !s.visit(n.rec) {
			s.stopped = true
		}
	}
	if descendSecond {
		s.walk(second)
	}
}

// Range returns an iterator over the records with keys in [lower, upper], in
// the given direction. Nil bounds leave the range open; an invalid range, an
// empty tree or a nil tree yield nothing.
func (t *Tree[K, R]) Range(lower, upper *K, dir Direction) iter.Seq[R] {
	return func(yield func(R) bool) {
		if t.IsEmpty() {
			return
		}
		_, _ = t.RangeQuery(lower, upper, dir, t.Len(), yield)
	}
}
