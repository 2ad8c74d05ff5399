package cmdtree

// AmbiguityVisitor receives one report per ambiguous sibling pair found
// by FindAmbiguities: the shared parent, the two siblings, and the
// overlapping example strings that drove the finding.
type AmbiguityVisitor func(parent, siblingA, siblingB *Node, overlap []string)

// FindAmbiguities walks every internal node of g reachable from root,
// and for each unordered pair of siblings computes the set of example
// strings of one that the other's argument type (or literal text) would
// also accept. Non-empty intersections are reported to visitor.
func FindAmbiguities(g *TreeGraph, visitor AmbiguityVisitor) {
	walkAmbiguities(g, g.Root(), visitor)
}

func walkAmbiguities(g *TreeGraph, node *Node, visitor AmbiguityVisitor) {
	children := node.ChildrenIds()
	for i := 0; i < len(children); i++ {
		a := g.Get(children[i])
		for j := i + 1; j < len(children); j++ {
			b := g.Get(children[j])
			if overlap := exampleOverlap(a, b); len(overlap) > 0 {
				visitor(node, a, b, overlap)
			}
		}
	}
	for _, id := range children {
		walkAmbiguities(g, g.Get(id), visitor)
	}
}

func exampleOverlap(a, b *Node) []string {
	seen := make(map[string]bool)
	var overlap []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			overlap = append(overlap, s)
		}
	}
	for _, ex := range examplesOf(a) {
		if nodeAccepts(b, ex) {
			add(ex)
		}
	}
	for _, ex := range examplesOf(b) {
		if nodeAccepts(a, ex) {
			add(ex)
		}
	}
	return overlap
}

func examplesOf(n *Node) []string {
	switch n.kind {
	case KindLiteral:
		return []string{n.literal}
	case KindArgument:
		if n.argumentType != nil {
			return n.argumentType.Examples()
		}
	}
	return nil
}

func nodeAccepts(n *Node, text string) bool {
	switch n.kind {
	case KindLiteral:
		return text == n.literal
	case KindArgument:
		if n.argumentType == nil {
			return false
		}
		reader := NewStringReader(text)
		_, err := n.argumentType.Parse(reader)
		return err == nil
	default:
		return false
	}
}
