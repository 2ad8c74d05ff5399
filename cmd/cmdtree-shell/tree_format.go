package main

import (
	"fmt"
	"io"

	"github.com/cmdtree/cmdtree/pkg/cmdtree"
	"github.com/cmdtree/cmdtree/pkg/indent"
)

func init() {
	register(&formatter{
		name: "tree",
		f:    doTree,
		help: "display the sample command tree",
	})
}

func doTree(w io.Writer, g *cmdtree.TreeGraph, _ string) {
	writeNode(w, g, g.Root())
}

// writeNode prints n and recurses into its children, indenting each
// level two spaces.
func writeNode(w io.Writer, g *cmdtree.TreeGraph, n *cmdtree.Node) {
	switch n.Kind() {
	case cmdtree.KindLiteral:
		fmt.Fprintf(w, "%s", n.Literal())
	case cmdtree.KindArgument:
		fmt.Fprintf(w, "<%s: %T>", n.Name(), n.ArgumentType())
	}
	if n.Command() != nil {
		fmt.Fprintf(w, " (executable)")
	}
	if target, ok := n.Redirect(); ok {
		fmt.Fprintf(w, " -> redirects to node %d", target)
	}
	if n.Kind() != cmdtree.KindRoot {
		fmt.Fprintln(w)
	}

	children := n.ChildrenIds()
	if len(children) == 0 {
		return
	}
	iw := indent.NewWriter(w, "  ")
	for _, id := range children {
		writeNode(iw, g, g.Get(id))
	}
}
