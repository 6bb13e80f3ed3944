// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ipbdd

import (
	"fmt"
	"io"

	"github.com/emicklei/dot"
)

// WriteDot renders the BDD rooted at id as a GraphViz graph, with solid
// edges for the high branch and dashed edges for the low branch, matching
// the usual BDD rendering convention. Reachable terminals are drawn as
// boxes labeled with their value; nonterminals keep GraphViz's default node
// shape and are labeled with their variable.
func (e *Engine) WriteDot(w io.Writer, id NodeID) error {
	g := dot.NewGraph(dot.Directed)
	seen := make(map[NodeID]dot.Node)

	var visit func(NodeID) dot.Node
	visit = func(n NodeID) dot.Node {
		if gn, ok := seen[n]; ok {
			return gn
		}
		if n.IsTerminal() {
			gn := g.Node(fmt.Sprintf("T%d", e.terminalValue(n))).
				Box().
				Attr("label", fmt.Sprintf("%d", e.terminalValue(n)))
			seen[n] = gn
			return gn
		}

		v, low, high := e.node(n)
		gn := g.Node(fmt.Sprintf("N%d", n)).
			Attr("label", fmt.Sprintf("v%d", v))
		seen[n] = gn

		lowNode := visit(low)
		highNode := visit(high)
		g.Edge(gn, lowNode).Attr("style", "dashed")
		g.Edge(gn, highNode).Attr("style", "solid")
		return gn
	}

	visit(id)
	_, err := io.WriteString(w, g.String())
	return err
}
