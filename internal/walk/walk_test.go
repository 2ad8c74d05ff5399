package walk

import (
	"testing"

	"github.com/cmdtree/cmdtree/pkg/cmdtree"
)

func sampleGraph() *cmdtree.TreeGraph {
	g := cmdtree.NewTreeGraph()
	say := cmdtree.Literal(g, "say").
		Then(cmdtree.Argument(g, "message", cmdtree.GreedyString()).Executes("say"))
	volume := cmdtree.Literal(g, "volume").
		Then(cmdtree.Argument(g, "level", cmdtree.Int32().WithRange(0, 100)).Executes("set-volume"))
	g.AddChild(g.RootId(), say.Build())
	g.AddChild(g.RootId(), volume.Build())
	return g
}

func TestWalkMatchesLiteralThenArgument(t *testing.T) {
	g := sampleGraph()
	result := Walk(g, "say hello there", nil)

	if len(result.Path) != 2 {
		t.Fatalf("Path has %d nodes, want 2: %+v", len(result.Path), result.Path)
	}
	if result.Path[0].Kind() != cmdtree.KindLiteral || result.Path[0].Literal() != "say" {
		t.Fatalf("Path[0] = %+v, want the \"say\" literal", result.Path[0])
	}
	if result.Path[1].Kind() != cmdtree.KindArgument || result.Path[1].Name() != "message" {
		t.Fatalf("Path[1] = %+v, want the \"message\" argument", result.Path[1])
	}
	if got, want := result.Arguments["message"], "hello there"; got != want {
		t.Fatalf("Arguments[\"message\"] = %q, want %q", got, want)
	}
	if result.Remaining != "" {
		t.Fatalf("Remaining = %q, want empty", result.Remaining)
	}
}

func TestWalkStopsAtUnmatchedToken(t *testing.T) {
	g := sampleGraph()
	result := Walk(g, "volume 50 extra-junk", nil)

	if len(result.Path) != 2 {
		t.Fatalf("Path has %d nodes, want 2: %+v", len(result.Path), result.Path)
	}
	if got, want := result.Arguments["level"], int32(50); got != want {
		t.Fatalf("Arguments[\"level\"] = %v, want %v", got, want)
	}
	if result.Remaining != "extra-junk" {
		t.Fatalf("Remaining = %q, want %q", result.Remaining, "extra-junk")
	}
}

func TestWalkStopsImmediatelyOnNoMatch(t *testing.T) {
	g := sampleGraph()
	result := Walk(g, "unknown-command", nil)

	if len(result.Path) != 0 {
		t.Fatalf("Path = %+v, want empty", result.Path)
	}
	if result.Remaining != "unknown-command" {
		t.Fatalf("Remaining = %q, want the whole input unmatched", result.Remaining)
	}
}

func TestWalkHonorsRequirementPredicate(t *testing.T) {
	g := cmdtree.NewTreeGraph()
	gated := cmdtree.Literal(g, "admin").
		Requires(func(source any) bool { return source == "root" }).
		Executes("admin-only")
	g.AddChild(g.RootId(), gated.Build())

	if result := Walk(g, "admin", "guest"); len(result.Path) != 0 {
		t.Fatalf("Walk with a disallowed source matched: %+v", result.Path)
	}
	if result := Walk(g, "admin", "root"); len(result.Path) != 1 {
		t.Fatalf("Walk with an allowed source did not match: %+v", result.Path)
	}
}
