package ordset

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ordset/btree"
	"github.com/valyala/bytebufferpool"
)

// Set2Dot outputs the internal node structure of a Set in Graphviz DOT
// format (for debugging purposes).
func Set2Dot[K cmp.Ordered](set *Set[K], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist := bytebufferpool.Get()
	edgelist := bytebufferpool.Get()
	defer bytebufferpool.Put(nodelist)
	defer bytebufferpool.Put(edgelist)
	set.ensure().EachNode(func(info btree.NodeInfo[K]) {
		fmt.Fprintf(nodelist, "\"%d\" [label=\"%s\"%s];\n",
			info.ID, keyLabel(info.Keys), nodeDotStyles(info.Leaf))
		if info.Parent >= 0 {
			fmt.Fprintf(edgelist, "\"%d\" -> \"%d\";\n", info.Parent, info.ID)
		}
	})
	if _, err := w.Write(nodelist.B); err != nil {
		T().Errorf("set DOT: %s", err.Error())
	}
	if _, err := w.Write(edgelist.B); err != nil {
		T().Errorf("set DOT: %s", err.Error())
	}
	io.WriteString(w, "}\n")
}

func keyLabel[K cmp.Ordered](keys []K) string {
	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteString(" | ")
		}
		fmt.Fprintf(&b, "%v", key)
	}
	return b.String()
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\",shape=record"
	}
	return s
}
