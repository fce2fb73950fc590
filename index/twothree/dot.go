package twothree

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDOT renders the node structure as a Graphviz digraph, one record per
// node with a port per child slot. Render it with `dot -Tpng`.
func (t *Tree[K, V]) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph TwoThree {")
	fmt.Fprintln(bw, "  graph [ranksep=0.8, nodesep=0.5, rankdir=TB];")
	fmt.Fprintln(bw, "  node [shape=record, fontname=\"Helvetica\", fontsize=10];")
	fmt.Fprintln(bw, "  edge [arrowsize=0.8, color=\"#444444\"];")

	if t.root != nil {
		counter := 0
		var export func(n *node[K, V]) string
		export = func(n *node[K, V]) string {
			name := fmt.Sprintf("node%d", counter)
			counter++

			label := ""
			for i, e := range n.entries {
				if !n.leaf() {
					label += fmt.Sprintf("<f%d> |", i)
				}
				label += escapeRecord(fmt.Sprint(e.key))
				if i < len(n.entries)-1 || !n.leaf() {
					label += "|"
				}
			}
			if !n.leaf() {
				label += fmt.Sprintf("<f%d> ", len(n.entries))
			}
			fill := "#D5E8D4"
			if !n.leaf() {
				fill = "#DAE8FC"
			}
			fmt.Fprintf(bw, "  %s [label=\"%s\", style=filled, fillcolor=\"%s\"];\n", name, label, fill)

			for i, c := range n.children {
				fmt.Fprintf(bw, "  %s:f%d -> %s;\n", name, i, export(c))
			}
			return name
		}
		export(t.root)
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// escapeRecord quotes characters that are special inside a record label.
func escapeRecord(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\', '{', '}', '|', '<', '>':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
