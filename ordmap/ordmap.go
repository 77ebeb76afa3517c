/*
Package ordmap provides an ordered map on top of package bintree.

Other than a bintree.Tree, which is an ordered multi-set of client records,
a Map owns its entries and holds at most one entry per key: putting an
existing key updates the value in place.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package ordmap

import (
	"fmt"
	"iter"

	"github.com/npillmayer/bintree"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bintree'
func tracer() tracing.Trace {
	return tracing.Select("bintree")
}

type entry[K, V any] struct {
	bintree.Node[*entry[K, V]]
	key   K
	value V
}

// Map is an ordered map from keys K to values V.
type Map[K, V any] struct {
	tree *bintree.Tree[K, *entry[K, V]]
}

// New creates an empty map, balanced by discipline d and ordered by compare.
func New[K, V any](d bintree.Discipline, compare func(a, b K) int) (*Map[K, V], error) {
	tree, err := bintree.New(bintree.Config[K, *entry[K, V]]{
		Discipline: d,
		Key:        func(e *entry[K, V]) K { return e.key },
		Compare:    compare,
	})
	if err != nil {
		return nil, fmt.Errorf("ordmap: %w", err)
	}
	return &Map[K, V]{tree: tree}, nil
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Put stores value for key. If key is already present, its value is replaced
// and the previous value is returned with replaced=true.
func (m *Map[K, V]) Put(key K, value V) (old V, replaced bool) {
	if e, ok := m.tree.Find(key); ok {
		old, e.value = e.value, value
		return old, true
	}
	e := &entry[K, V]{key: key, value: value}
	if err := m.tree.Insert(e); err != nil {
		// cannot happen for a freshly allocated entry
		panic(fmt.Sprintf("ordmap: insert of fresh entry failed: %v", err))
	}
	return old, false
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	e, ok := m.tree.Find(key)
	if !ok {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Delete removes key and returns the value it held.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	var zero V
	e, ok := m.tree.Find(key)
	if !ok {
		return zero, false
	}
	if err := m.tree.Remove(e); err != nil {
		tracer().Errorf("ordmap: cannot remove entry: %v", err)
		return zero, false
	}
	return e.value, true
}

func unpack[K, V any](e *entry[K, V], ok bool) (K, V, bool) {
	if !ok {
		var k K
		var v V
		return k, v, false
	}
	return e.key, e.value, true
}

// Floor returns the entry with the greatest key less than or equal to key.
func (m *Map[K, V]) Floor(key K) (K, V, bool) {
	return unpack(m.tree.Floor(key))
}

// Ceiling returns the entry with the least key greater than or equal to key.
func (m *Map[K, V]) Ceiling(key K) (K, V, bool) {
	return unpack(m.tree.Ceiling(key))
}

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (K, V, bool) {
	return unpack(m.tree.Min())
}

// Max returns the entry with the greatest key.
func (m *Map[K, V]) Max() (K, V, bool) {
	return unpack(m.tree.Max())
}

// All returns an iterator over all entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.tree.All() {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Range returns an iterator over entries with keys in [lower, upper], in the
// given direction. Nil bounds leave the range open.
func (m *Map[K, V]) Range(lower, upper *K, dir bintree.Direction) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := range m.tree.Range(lower, upper, dir) {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.tree.Clear(nil)
}

// Check validates the underlying tree (for tests and debugging).
func (m *Map[K, V]) Check() error {
	return m.tree.Check()
}
