package cmdtree

import (
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestTreeGraphRootIsPinned(t *testing.T) {
	g := NewTreeGraph()
	root := g.Root()
	if root.Kind() != KindRoot {
		t.Fatalf("Root().Kind() = %v, want KindRoot", root.Kind())
	}
	if root.IsValidInput() {
		t.Fatalf("Root().IsValidInput() = true, want false")
	}
}

func TestAddChildAttachesAndOrders(t *testing.T) {
	g := NewTreeGraph()
	a := g.literalNode("a")
	aID := g.insert(a)
	b := g.literalNode("b")
	bID := g.insert(b)

	g.AddChild(g.RootId(), aID)
	g.AddChild(g.RootId(), bID)

	got := g.Root().ChildNames()
	want := []string{"a", "b"}
	if diff := pretty.Compare(got, want); diff != "" {
		t.Fatalf("ChildNames() mismatch (-got +want):\n%s", diff)
	}
}

func TestAddChildMergesSameName(t *testing.T) {
	g := NewTreeGraph()

	first := g.literalNode("foo")
	first.command = "first"
	firstID := g.insert(first)
	g.AddChild(g.RootId(), firstID)

	grandchild := g.literalNode("bar")
	grandchildID := g.insert(grandchild)

	second := g.literalNode("foo")
	second.command = "second"
	secondID := g.insert(second)
	g.AddChild(secondID, grandchildID)
	g.AddChild(g.RootId(), secondID)

	// The merge must leave exactly one "foo" child under root, carrying
	// the newest command and the grandchild moved over.
	if len(g.Root().ChildNames()) != 1 {
		t.Fatalf("ChildNames() = %v, want a single merged child", g.Root().ChildNames())
	}
	fooID, ok := g.Root().ChildByName("foo")
	if !ok {
		t.Fatalf("ChildByName(\"foo\") not found after merge")
	}
	foo := g.Get(fooID)
	if foo.Command() != "second" {
		t.Fatalf("Command() = %v, want %q (the merged-in value)", foo.Command(), "second")
	}
	if _, ok := foo.ChildByName("bar"); !ok {
		t.Fatalf("merged node is missing grandchild %q", "bar")
	}
	if g.ContainsNode(secondID) {
		t.Fatalf("merged-away node %d is still present in the graph", secondID)
	}
}

func TestAddChildPanicsOnRootAsChild(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("AddChild with a root-kind node as a child: want panic, got none")
		}
	}()
	g := NewTreeGraph()
	rogueRoot := g.insert(newNode(KindRoot))
	g.AddChild(g.RootId(), rogueRoot)
}

func TestNodeUsageText(t *testing.T) {
	g := NewTreeGraph()
	lit := g.literalNode("say")
	arg := g.argumentNode("message", GreedyString())
	if lit.UsageText() != "say" {
		t.Fatalf("Literal UsageText() = %q, want %q", lit.UsageText(), "say")
	}
	if arg.UsageText() != "<message>" {
		t.Fatalf("Argument UsageText() = %q, want %q", arg.UsageText(), "<message>")
	}
	if g.Root().UsageText() != "" {
		t.Fatalf("Root UsageText() = %q, want empty", g.Root().UsageText())
	}
}

func TestLiteralAndArgumentChildIdsSplitByKind(t *testing.T) {
	g := NewTreeGraph()
	argID := g.insert(g.argumentNode("x", Word()))
	litID := g.insert(g.literalNode("fixed"))
	g.AddChild(g.RootId(), argID)
	g.AddChild(g.RootId(), litID)

	lits := g.Root().LiteralChildIds()
	args := g.Root().ArgumentChildIds()
	if len(lits) != 1 || lits[0] != litID {
		t.Fatalf("LiteralChildIds() = %v, want [%d]", lits, litID)
	}
	if len(args) != 1 || args[0] != argID {
		t.Fatalf("ArgumentChildIds() = %v, want [%d]", args, argID)
	}
}

func TestLowercaseCacheOnlySetWhenNeeded(t *testing.T) {
	g := NewTreeGraph()
	lower := g.literalNode("already-lower")
	if lower.LiteralLower() != "" {
		t.Fatalf("LiteralLower() = %q, want empty for an already-lowercase literal", lower.LiteralLower())
	}
	mixed := g.literalNode("MixedCase")
	if mixed.LiteralLower() != "mixedcase" {
		t.Fatalf("LiteralLower() = %q, want %q", mixed.LiteralLower(), "mixedcase")
	}
}
