package console

import (
	"io"
	"strconv"

	"github.com/npillmayer/bintree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PrintHTML writes tree as nested HTML lists, e.g. for a Red-Black tree
//
//	<ul class="bst red-black"><li class="root black">2<ul>
//	  <li class="left red">1</li><li class="right red">3</li></ul></li></ul>
//
// (without the line breaks). AVL items carry their height in attribute
// data-height. Labels are escaped.
func PrintHTML[K any, R bintree.Linked[R]](w io.Writer, tree *bintree.Tree[K, R],
	label func(R) string) error {
	//
	if tree == nil || label == nil {
		return bintree.ErrIllegalArguments
	}
	d := tree.Discipline()
	list := element(atom.Ul, "bst "+d.String())
	items := make(map[string]*html.Node, tree.Len())
	var paths []string
	err := tree.EachNode(bintree.Ascending, func(info bintree.NodeInfo[R]) error {
		li := element(atom.Li, itemClass(d, info))
		if d == bintree.AVL {
			li.Attr = append(li.Attr, html.Attribute{Key: "data-height", Val: strconv.Itoa(info.Height)})
		}
		li.AppendChild(&html.Node{Type: html.TextNode, Data: label(info.Record)})
		p := pathKey(info.Path)
		items[p] = li
		paths = append(paths, p)
		return nil
	})
	if err != nil {
		return err
	}
	for _, p := range paths {
		var sub *html.Node
		for _, side := range []string{"L", "R"} {
			if child, ok := items[p+side]; ok {
				if sub == nil {
					sub = element(atom.Ul, "")
					items[p].AppendChild(sub)
				}
				sub.AppendChild(child)
			}
		}
	}
	if root, ok := items[""]; ok {
		list.AppendChild(root)
	}
	tracer().P("format", "html").Debugf("rendering %d tree nodes", len(paths))
	return html.Render(w, list)
}

func element(a atom.Atom, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}

func itemClass[R any](d bintree.Discipline, info bintree.NodeInfo[R]) string {
	class := "root"
	switch info.Side {
	case bintree.SideLeft:
		class = "left"
	case bintree.SideRight:
		class = "right"
	}
	if d == bintree.RedBlack {
		if info.Red {
			return class + " red"
		}
		return class + " black"
	}
	return class
}

func pathKey(path []bintree.Side) string {
	b := make([]byte, len(path))
	for i, s := range path {
		b[i] = 'L'
		if s == bintree.SideRight {
			b[i] = 'R'
		}
	}
	return string(b)
}
