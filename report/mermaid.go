package report

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/thuemorse/symbolgraph"
)

// Mermaid produces a flowchart ("graph LR") of g restricted to kinds
// (all kinds when none are given).
//
// Nodes are drawn as [label<br/>bits]. Slide edges are solid and carry the
// incoming bit; morph edges are dotted and carry their child slot.
func Mermaid(g *symbolgraph.Graph, kinds ...symbolgraph.EdgeKind) string {
	if len(kinds) == 0 {
		kinds = symbolgraph.AllKinds
	}

	var sb strings.Builder
	sb.WriteString("graph LR\n")

	nodes := g.Nodes()
	for _, n := range nodes {
		sb.WriteString(fmt.Sprintf("    %s[\"%s<br/>%s\"]\n", mermaidID(n.Label), n.Label, n.Bits))
	}
	for _, n := range nodes {
		for _, k := range kinds {
			to := n.Target(k)
			if to == symbolgraph.None {
				continue
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", mermaidID(n.Label), mermaidArrow(k), mermaidID(to)))
		}
	}

	if containsMorph(kinds) {
		sb.WriteString("\n    %% dotted edges: morph children\n")
	}

	return sb.String()
}

// mermaidArrow returns the arrow syntax for an edge kind.
func mermaidArrow(k symbolgraph.EdgeKind) string {
	switch k {
	case symbolgraph.SlideZero:
		return `-- "0" -->`
	case symbolgraph.SlideOne:
		return `-- "1" -->`
	case symbolgraph.MorphZero:
		return `-. "c0" .->`
	default:
		return `-. "c1" .->`
	}
}

// mermaidID prefixes labels so digit and lowercase labels stay valid,
// distinct Mermaid identifiers.
func mermaidID(label string) string {
	return "s_" + label
}

func containsMorph(kinds []symbolgraph.EdgeKind) bool {
	for _, k := range kinds {
		if k.IsMorph() {
			return true
		}
	}
	return false
}
