/*
Package bintree implements an intrusive binary search tree which may operate
under one of three balancing disciplines: unbalanced, AVL (height-balanced)
and Red-Black (color-balanced).

Intrusive Trees

Records stored in a tree carry their tree linkage themselves. A client type
embeds a Node, parameterized with a pointer to the client type:

	type Employee struct {
		bintree.Node[*Employee]
		ID   int
		Name string
	}

	tree, err := bintree.New(bintree.Config[int, *Employee]{
		Discipline: bintree.RedBlack,
		Key:        func(e *Employee) int { return e.ID },
		Compare:    cmp.Compare[int],
	})

The tree never allocates or frees records; it manages the linkage fields of
the embedded node only. A record may be linked into at most one tree at a
time. After removal its node is re-initialized and the record may be
inserted into any tree again.

Disciplines

All three disciplines share search, range-query and traversal. They differ
in the fixup performed after the structural part of insertion and removal:

	Discipline   | Insert fixup            | Remove fixup
	-------------+-------------------------+-------------------------------
	Unbalanced   | none                    | none
	AVL          | height walk, rotations  | height walk, rotations
	RedBlack     | recolor / rotate        | double-black resolution

Duplicate keys are admitted; ties are placed to the left on insertion.
For a map-like companion that updates values of existing keys, see package
ordmap.

Trees are not safe for concurrent use. Visitor callbacks must not mutate the
tree they are called from.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package bintree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// TreeError is an error type for the bintree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrNodeAttached is flagged when inserting a record whose node is already
// linked into a tree (this one or another one).
const ErrNodeAttached = TreeError("node is already attached to a tree")

// ErrNodeNotAttached is flagged when removing a record which is not linked
// into the tree.
const ErrNodeNotAttached = TreeError("node is not attached to this tree")

// ErrInvalidRange signals a range query with lower bound greater than upper bound.
const ErrInvalidRange = TreeError("lower bound is greater than upper bound")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrCorrupted is flagged by Check when a structural invariant is violated.
const ErrCorrupted = TreeError("tree structure corrupted")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
