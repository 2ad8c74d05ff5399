package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cmdtree/cmdtree/internal/walk"
	"github.com/cmdtree/cmdtree/pkg/cmdtree"
)

func init() {
	register(&formatter{
		name: "suggest",
		f:    doSuggest,
		help: "walk --input against the sample tree and list completions for what's left",
	})
}

func doSuggest(w io.Writer, g *cmdtree.TreeGraph, input string) {
	result := walk.Walk(g, input, nil)

	node := g.Root()
	if len(result.Path) > 0 {
		node = result.Path[len(result.Path)-1]
		if target, ok := node.Redirect(); ok {
			node = g.Get(target)
		}
	}

	builder := cmdtree.NewSuggestionsBuilder(input, result.RemainingOffset)
	var all []cmdtree.Suggestions

	for _, id := range node.LiteralChildIds() {
		child := g.Get(id)
		if !child.CanUse(nil) {
			continue
		}
		builder.SuggestText(child.Literal())
	}
	all = append(all, builder.Build())

	for _, id := range node.ArgumentChildIds() {
		child := g.Get(id)
		if !child.CanUse(nil) {
			continue
		}
		var suggestions cmdtree.Suggestions
		var err error
		if child.SuggestionProvider() != nil {
			suggestions, err = child.SuggestionProvider().ListSuggestions(context.Background(), builder.Restart())
		} else {
			suggestions, err = child.ArgumentType().ListSuggestions(context.Background(), builder.Restart())
		}
		if err != nil {
			fmt.Fprintf(w, "error computing suggestions for <%s>: %v\n", child.Name(), err)
			continue
		}
		all = append(all, suggestions)
	}

	merged := cmdtree.Merge(input, all)
	if merged.IsEmpty() {
		fmt.Fprintln(w, "(no suggestions)")
		return
	}
	for _, s := range merged.List {
		fmt.Fprintf(w, "%s\n", s.Apply(input))
	}
}
