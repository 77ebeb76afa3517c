package bintree

import (
	"fmt"
	"io"
)

type nodeids[R any] struct {
	idTable map[*Node[R]]int
	max     int
}

func newtable[R any]() nodeids[R] {
	return nodeids[R]{
		idTable: make(map[*Node[R]]int),
		max:     1,
	}
}

func (ids nodeids[R]) find(node *Node[R]) int {
	return ids.idTable[node]
}

func (ids *nodeids[R]) alloc(node *Node[R]) int {
	if node == nil {
		return 0
	}
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). label renders a record; if it is nil, nodes are
// labeled by their id.
func Tree2Dot[K any, R Linked[R]](tree *Tree[K, R], w io.Writer, label func(R) string) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[R]()
	nodelist, edgelist := "", ""
	var walk func(node *Node[R])
	walk = func(node *Node[R]) {
		ID := ids.alloc(node)
		text := fmt.Sprintf("%d", ID)
		if label != nil {
			text = label(node.rec)
		}
		if tree.cfg.Discipline == AVL {
			text = fmt.Sprintf("%s\\nh=%d", text, node.height)
		}
		styles := nodeDotStyles(node, tree.cfg.Discipline)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\"%s];\n", ID, text, styles)
		for i, child := range [2]*Node[R]{node.left, node.right} {
			if child == nil {
				if node.isLeaf() {
					continue
				}
				nilid := 10000 + 2*ID + i
				nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			walk(child)
		}
	}
	if !tree.IsEmpty() {
		walk(tree.root)
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles[R any](node *Node[R], d Discipline) string {
	s := ",style=filled"
	if d == RedBlack {
		if node.color == red {
			s += ",color=\"#aa0000\",fillcolor=\"#ff6666\",fontcolor=white"
		} else {
			s += ",color=black,fillcolor=\"#333333\",fontcolor=white"
		}
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
	}
	if node.isLeaf() {
		s += ",shape=box"
	} else {
		s += ",shape=circle"
	}
	return s
}
