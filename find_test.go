package bintree

import (
	"errors"
	"slices"
	"testing"
)

func ptr[K any](k K) *K { return &k }

func TestFloorCeiling(t *testing.T) {
	teardown := traceTo(t)
	defer teardown()
	//
	for _, d := range disciplines {
		tree := newIntTree(t, d)
		if _, ok := tree.Floor(4); ok {
			t.Errorf("%s: floor in empty tree should be absent", d)
		}
		if _, ok := tree.Ceiling(4); ok {
			t.Errorf("%s: ceiling in empty tree should be absent", d)
		}
		fill(t, tree, 1, 3, 5, 7)
		if it, ok := tree.Floor(4); !ok || it.key != 3 {
			t.Errorf("%s: expected floor(4) = 3", d)
		}
		if it, ok := tree.Ceiling(4); !ok || it.key != 5 {
			t.Errorf("%s: expected ceiling(4) = 5", d)
		}
		if it, ok := tree.Floor(5); !ok || it.key != 5 {
			t.Errorf("%s: expected floor(5) = 5", d)
		}
		if _, ok := tree.Floor(0); ok {
			t.Errorf("%s: expected no floor below minimum", d)
		}
		if _, ok := tree.Ceiling(8); ok {
			t.Errorf("%s: expected no ceiling above maximum", d)
		}
		if it, ok := tree.Ceiling(-10); !ok || it.key != 1 {
			t.Errorf("%s: expected ceiling(-10) = 1", d)
		}
	}
}

func TestFindMinMax(t *testing.T) {
	for _, d := range disciplines {
		tree := newIntTree(t, d)
		if _, ok := tree.Min(); ok {
			t.Errorf("%s: min of empty tree should be absent", d)
		}
		if _, ok := tree.Max(); ok {
			t.Errorf("%s: max of empty tree should be absent", d)
		}
		items := fill(t, tree, 9, 4, 17, 1, 6)
		if it, ok := tree.Find(6); !ok || it != items[4] {
			t.Errorf("%s: expected to find record 6", d)
		}
		if _, ok := tree.Find(7); ok {
			t.Errorf("%s: did not expect to find 7", d)
		}
		if it, _ := tree.Min(); it.key != 1 {
			t.Errorf("%s: expected min 1, have %d", d, it.key)
		}
		if it, _ := tree.Max(); it.key != 17 {
			t.Errorf("%s: expected max 17, have %d", d, it.key)
		}
	}
}

func TestNextPrev(t *testing.T) {
	tree := newIntTree(t, AVL)
	items := fill(t, tree, 1, 2, 3, 4, 5, 6, 7)
	var keys []int
	for it, ok := tree.Min(); ok; it, ok = tree.Next(it) {
		keys = append(keys, it.key)
	}
	if !slices.Equal(keys, []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("forward walk yields %v", keys)
	}
	if it, ok := tree.Prev(items[0]); ok {
		t.Errorf("expected no predecessor of minimum, have %d", it.key)
	}
	if it, ok := tree.Prev(items[4]); !ok || it.key != 4 {
		t.Errorf("expected predecessor of 5 to be 4")
	}
	if _, ok := tree.Next(&item{key: 3}); ok {
		t.Errorf("Next of an unattached record must fail")
	}
}

func collectRange(t *testing.T, tree *Tree[int, *item], lower, upper *int,
	dir Direction, maxResults int) ([]int, int) {
	//
	t.Helper()
	var keys []int
	n, err := tree.RangeQuery(lower, upper, dir, maxResults, func(it *item) bool {
		keys = append(keys, it.key)
		return true
	})
	if err != nil {
		t.Fatalf("range query failed: %v", err)
	}
	return keys, n
}

func TestRangeQuery(t *testing.T) {
	teardown := traceTo(t)
	defer teardown()
	//
	for _, d := range disciplines {
		tree := newIntTree(t, d)
		fill(t, tree, 1, 3, 5, 7, 9)
		keys, n := collectRange(t, tree, ptr(3), ptr(7), Ascending, 100)
		if !slices.Equal(keys, []int{3, 5, 7}) || n != 3 {
			t.Errorf("%s: ascending [3,7] yields %v (%d)", d, keys, n)
		}
		keys, n = collectRange(t, tree, ptr(3), ptr(7), Ascending, 2)
		if !slices.Equal(keys, []int{3, 5}) || n != 2 {
			t.Errorf("%s: ascending [3,7] max 2 yields %v (%d)", d, keys, n)
		}
		keys, n = collectRange(t, tree, ptr(3), ptr(7), Descending, 100)
		if !slices.Equal(keys, []int{7, 5, 3}) || n != 3 {
			t.Errorf("%s: descending [3,7] yields %v (%d)", d, keys, n)
		}
		keys, _ = collectRange(t, tree, nil, ptr(4), Ascending, 100)
		if !slices.Equal(keys, []int{1, 3}) {
			t.Errorf("%s: (-inf,4] yields %v", d, keys)
		}
		keys, _ = collectRange(t, tree, ptr(4), nil, Descending, 100)
		if !slices.Equal(keys, []int{9, 7, 5}) {
			t.Errorf("%s: [4,inf) descending yields %v", d, keys)
		}
		keys, _ = collectRange(t, tree, nil, nil, Ascending, 100)
		if !slices.Equal(keys, []int{1, 3, 5, 7, 9}) {
			t.Errorf("%s: unbounded yields %v", d, keys)
		}
		keys, n = collectRange(t, tree, ptr(4), ptr(4), Ascending, 100)
		if len(keys) != 0 || n != 0 {
			t.Errorf("%s: empty range yields %v", d, keys)
		}
		if keys, n = collectRange(t, tree, nil, nil, Ascending, 0); n != 0 {
			t.Errorf("%s: max=0 yields %v", d, keys)
		}
	}
}

func TestRangeQueryDeepPruning(t *testing.T) {
	// in-range keys hidden below out-of-range subtree roots
	for _, d := range disciplines {
		tree := newIntTree(t, d)
		for k := range 200 {
			fill(t, tree, (k*37)%200)
		}
		keys, n := collectRange(t, tree, ptr(57), ptr(143), Ascending, 1000)
		if n != 87 || len(keys) != 87 || keys[0] != 57 || keys[86] != 143 || !slices.IsSorted(keys) {
			t.Errorf("%s: expected 87 keys 57…143, have %d", d, n)
		}
	}
}

func TestRangeQueryStop(t *testing.T) {
	tree := newIntTree(t, RedBlack)
	fill(t, tree, 1, 3, 5, 7, 9)
	var keys []int
	n, err := tree.RangeQuery(nil, nil, Descending, 10, func(it *item) bool {
		keys = append(keys, it.key)
		return it.key > 5
	})
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 || !slices.Equal(keys, []int{9, 7, 5}) {
		t.Errorf("expected scan to stop at 5, visited %v (%d)", keys, n)
	}
}

func TestRangeQueryInvalid(t *testing.T) {
	teardown := traceTo(t)
	defer teardown()
	//
	tree := newIntTree(t, AVL)
	fill(t, tree, 1, 2, 3)
	n, err := tree.RangeQuery(ptr(3), ptr(1), Ascending, 10, func(*item) bool {
		t.Errorf("visitor called for invalid range")
		return true
	})
	if n != 0 || !errors.Is(err, ErrInvalidRange) {
		t.Errorf("expected ErrInvalidRange, have %d, %v", n, err)
	}
}

func TestRangeWithDuplicates(t *testing.T) {
	for _, d := range disciplines {
		tree := newIntTree(t, d)
		fill(t, tree, 5, 5, 5, 5, 5, 3, 7, 5)
		keys, n := collectRange(t, tree, ptr(5), ptr(5), Ascending, 100)
		if n != 6 || len(keys) != 6 {
			t.Errorf("%s: expected 6 duplicates of 5, have %v", d, keys)
		}
		if err := tree.Check(); err != nil {
			t.Errorf("%s: %v", d, err)
		}
	}
}

func TestRangeIterator(t *testing.T) {
	tree := newIntTree(t, AVL)
	fill(t, tree, 1, 3, 5, 7, 9)
	var keys []int
	for it := range tree.Range(ptr(2), nil, Ascending) {
		if it.key > 7 {
			break
		}
		keys = append(keys, it.key)
	}
	if !slices.Equal(keys, []int{3, 5, 7}) {
		t.Errorf("range iterator yields %v", keys)
	}
	var back []int
	for it := range tree.Backward() {
		back = append(back, it.key)
	}
	if !slices.Equal(back, []int{9, 7, 5, 3, 1}) {
		t.Errorf("backward iterator yields %v", back)
	}
}

func TestRangeOnNilOrEmptyTree(t *testing.T) {
	var none *Tree[int, *item]
	for it := range none.Range(ptr(1), ptr(0), Ascending) {
		t.Errorf("nil tree yields %d", it.key)
	}
	empty := newIntTree(t, RedBlack)
	for it := range empty.Range(nil, nil, Descending) {
		t.Errorf("empty tree yields %d", it.key)
	}
}
