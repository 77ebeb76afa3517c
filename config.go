package bintree

import (
	"cmp"
	"fmt"
	"strings"
)

// Discipline is the balancing strategy of a tree.
type Discipline uint8

// Balancing disciplines.
const (
	Unbalanced Discipline = iota
	AVL
	RedBlack
)

func (d Discipline) String() string {
	switch d {
	case Unbalanced:
		return "unbalanced"
	case AVL:
		return "avl"
	case RedBlack:
		return "red-black"
	}
	return fmt.Sprintf("Discipline(%d)", uint8(d))
}

// ParseDiscipline returns the discipline for a name as produced by
// Discipline.String. Matching is case-insensitive and accepts "redblack" and
// "rb" as aliases.
func ParseDiscipline(s string) (Discipline, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unbalanced", "none":
		return Unbalanced, nil
	case "avl":
		return AVL, nil
	case "red-black", "redblack", "rb":
		return RedBlack, nil
	}
	return Unbalanced, fmt.Errorf("%w: unknown discipline %q", ErrIllegalArguments, s)
}

// Config configures a tree.
//
// Key extracts the ordering key from a record, Compare is a three-way
// comparison of keys (negative, zero or positive), e.g. cmp.Compare.
type Config[K any, R Linked[R]] struct {
	Discipline Discipline
	Key        func(R) K
	Compare    func(a, b K) int
}

func (cfg Config[K, R]) validate() error {
	if cfg.Discipline > RedBlack {
		return fmt.Errorf("%w: invalid discipline %d", ErrIllegalArguments, cfg.Discipline)
	}
	if cfg.Key == nil {
		return fmt.Errorf("%w: key function is required", ErrIllegalArguments)
	}
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrIllegalArguments)
	}
	return nil
}

// Ordered returns a configuration for keys with a natural order, compared
// by cmp.Compare.
func Ordered[K cmp.Ordered, R Linked[R]](d Discipline, key func(R) K) Config[K, R] {
	return Config[K, R]{Discipline: d, Key: key, Compare: cmp.Compare[K]}
}
