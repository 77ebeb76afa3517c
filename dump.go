package bintree

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Dump writes a structural listing of the tree to w, in-order, one block per
// node: its role, the record (rendered by sprint), its color or height, and
// the ids of its parent and children. Ids are assigned in pre-order, starting
// with 1 for the root; 0 denotes an absent node.
//
// Dump is meant for debugging only.
func (t *Tree[K, R]) Dump(w io.Writer, sprint func(R) string) error {
	var bf bytes.Buffer
	fmt.Fprintf(&bf, "bst (%s) :\n", strings.ToUpper(t.cfg.Discipline.String()))
	fmt.Fprintf(&bf, "\tcount : [%d]\n", t.count)
	ids := newtable[R]()
	t.Traverse(PreOrder, func(rec R) {
		ids.alloc(rec.link())
	})
	fmt.Fprintf(&bf, "\troot : [%d]\n", ids.find(t.root))
	t.Traverse(InOrder, func(rec R) {
		n := rec.link()
		fmt.Fprintf(&bf, "\t\tnode %-5s : [%d]\n", n.role(), ids.find(n))
		bf.WriteString("\t\t\tdata : ")
		if sprint != nil {
			bf.WriteString(sprint(rec))
		} else {
			fmt.Fprintf(&bf, "%v", rec)
		}
		fmt.Fprintf(&bf, " (%s)\n", t.propertyTag(n))
		fmt.Fprintf(&bf, "\t\t\tparent : [%d]\n", ids.find(n.parent))
		fmt.Fprintf(&bf, "\t\t\tleft   : [%d]\n", ids.find(n.left))
		fmt.Fprintf(&bf, "\t\t\tright  : [%d]\n\n", ids.find(n.right))
	})
	_, err := w.Write(bf.Bytes())
	return err
}

// String renders a one-line summary of the tree.
func (t *Tree[K, R]) String() string {
	if t == nil {
		return "bst(nil)"
	}
	return fmt.Sprintf("bst(%s, len=%d, height=%d)", t.cfg.Discipline, t.count, t.Height())
}

func (t *Tree[K, R]) propertyTag(n *Node[R]) string {
	switch t.cfg.Discipline {
	case RedBlack:
		if n.color == red {
			return "red"
		}
		return "black"
	case AVL:
		return fmt.Sprintf("h=%d", n.height)
	}
	return "-"
}
