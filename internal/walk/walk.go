// Package walk is a minimal, illustrative tree walker used only by the
// demo binary in cmd/cmdtree-shell. It exercises the reader, argument
// type, and node/graph pieces end to end so a human can see a
// tree-shaped command parsed and suggested against; it is NOT a
// dispatcher (execution, forking, and ambiguity reporting at dispatch
// time are out of scope, same as the library it walks).
package walk

import (
	"unicode/utf8"

	"github.com/cmdtree/cmdtree/pkg/cmdtree"
)

// Result is what Walk found: the path of nodes it descended through,
// the parsed argument values keyed by name, and whatever input text was
// left over (a partial token being typed, or trailing garbage).
type Result struct {
	Path            []*cmdtree.Node
	Arguments       map[string]any
	Remaining       string
	RemainingOffset int
}

// Walk descends g from its root, consuming input greedily: at each
// node it first tries literal children (exact keyword match followed by
// whitespace or end of input), then argument children (first one whose
// ArgumentType.Parse succeeds), following any redirect before
// continuing. It stops, without error, the moment nothing in g matches
// the next token - the caller inspects Result.Remaining to see what was
// left.
func Walk(g *cmdtree.TreeGraph, input string, source any) *Result {
	reader := cmdtree.NewStringReader(input)
	result := &Result{Arguments: make(map[string]any)}
	node := g.Root()

	for {
		reader.SkipWhitespace()
		if !reader.CanRead() {
			break
		}

		child, ok := matchLiteral(g, node, reader, source)
		if !ok {
			child, ok = matchArgument(g, node, reader, source, result.Arguments)
		}
		if !ok {
			break
		}

		result.Path = append(result.Path, child)
		if target, has := child.Redirect(); has {
			node = g.Get(target)
		} else {
			node = child
		}
	}

	result.Remaining = reader.Remaining()
	result.RemainingOffset = reader.Cursor()
	return result
}

func matchLiteral(g *cmdtree.TreeGraph, node *cmdtree.Node, reader *cmdtree.StringReader, source any) (*cmdtree.Node, bool) {
	for _, id := range node.LiteralChildIds() {
		child := g.Get(id)
		if !child.CanUse(source) {
			continue
		}
		start := reader.Cursor()
		text := reader.Remaining()
		lit := child.Literal()
		if len(text) < len(lit) || text[:len(lit)] != lit {
			continue
		}
		rest := text[len(lit):]
		if rest != "" {
			r, _ := utf8.DecodeRuneInString(rest)
			if !isBoundary(r) {
				continue
			}
		}
		reader.SetCursor(start + len(lit))
		return child, true
	}
	return nil, false
}

func matchArgument(g *cmdtree.TreeGraph, node *cmdtree.Node, reader *cmdtree.StringReader, source any, into map[string]any) (*cmdtree.Node, bool) {
	for _, id := range node.ArgumentChildIds() {
		child := g.Get(id)
		if !child.CanUse(source) {
			continue
		}
		before := reader.Cursor()
		val, err := child.ArgumentType().Parse(reader)
		if err != nil {
			reader.SetCursor(before)
			continue
		}
		into[child.Name()] = val
		return child, true
	}
	return nil, false
}

func isBoundary(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
