package cmdtree

import "testing"

func TestFindAmbiguitiesReportsOverlappingLiteralAndArgument(t *testing.T) {
	g := NewTreeGraph()
	// A literal "1" and an integer argument both accept the text "1":
	// an ambiguous pair of siblings.
	litID := Literal(g, "1").Build()
	argID := Argument(g, "n", Int32()).Build()
	g.AddChild(g.RootId(), litID)
	g.AddChild(g.RootId(), argID)

	var reports int
	FindAmbiguities(g, func(parent, a, b *Node, overlap []string) {
		reports++
		if parent.Kind() != KindRoot {
			t.Errorf("reported parent kind = %v, want KindRoot", parent.Kind())
		}
		if len(overlap) == 0 {
			t.Errorf("reported ambiguity with empty overlap")
		}
	})
	if reports != 1 {
		t.Fatalf("FindAmbiguities reported %d pairs, want 1", reports)
	}
}

func TestFindAmbiguitiesIgnoresDisjointSiblings(t *testing.T) {
	g := NewTreeGraph()
	fooID := Literal(g, "foo").Build()
	barID := Literal(g, "bar").Build()
	g.AddChild(g.RootId(), fooID)
	g.AddChild(g.RootId(), barID)

	reports := 0
	FindAmbiguities(g, func(parent, a, b *Node, overlap []string) {
		reports++
	})
	if reports != 0 {
		t.Fatalf("FindAmbiguities reported %d pairs for disjoint literals, want 0", reports)
	}
}

func TestFindAmbiguitiesRecursesIntoChildren(t *testing.T) {
	g := NewTreeGraph()
	innerA := Literal(g, "1").Build()
	innerB := Argument(g, "n", Int32()).Build()
	parent := Literal(g, "set").Build()
	g.AddChild(parent, innerA)
	g.AddChild(parent, innerB)
	g.AddChild(g.RootId(), parent)

	var sawDeepParent bool
	FindAmbiguities(g, func(p, a, b *Node, overlap []string) {
		if p.Kind() == KindLiteral && p.Literal() == "set" {
			sawDeepParent = true
		}
	})
	if !sawDeepParent {
		t.Fatalf("FindAmbiguities did not recurse into \"set\"'s children")
	}
}
