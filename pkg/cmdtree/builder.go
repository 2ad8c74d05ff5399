package cmdtree

// Buildable is satisfied by both concrete builders; Then accepts it so a
// child can be registered as `parent.Then(Literal(tree, "bar").Executes(cmd))`
// without the caller threading NodeIds by hand.
type Buildable interface {
	Build() NodeId
}

// ArgumentBuilder is the transient construction record shared by
// LiteralArgumentBuilder and RequiredArgumentBuilder: a mutable
// reference to the graph, pending child ids, and the
// command/requirement/redirect state that Build() materializes onto the
// new node.
type ArgumentBuilder struct {
	graph       *TreeGraph
	children    []NodeId
	command     Command
	requirement Requirement
	redirect    NodeId
	modifier    RedirectModifier
	forks       bool
}

func newArgumentBuilder(g *TreeGraph) ArgumentBuilder {
	return ArgumentBuilder{graph: g, requirement: AlwaysRequirement, redirect: invalidNodeId}
}

// ThenNode asserts id belongs to the builder's graph and appends it as a
// pending child.
func (b *ArgumentBuilder) ThenNode(id NodeId) *ArgumentBuilder {
	if !b.graph.ContainsNode(id) {
		panic("cmdtree: then: node does not belong to this builder's graph")
	}
	if _, ok := b.Redirect(); ok {
		panic("cmdtree: cannot add children to a node that redirects")
	}
	b.children = append(b.children, id)
	return b
}

// Then calls child.Build() and appends the resulting node id as a
// pending child. Each call builds child again, inserting a new node.
func (b *ArgumentBuilder) Then(child Buildable) *ArgumentBuilder {
	return b.ThenNode(child.Build())
}

// Executes sets the terminal command invoked when this node completes a
// parse.
func (b *ArgumentBuilder) Executes(command Command) *ArgumentBuilder {
	b.command = command
	return b
}

// Requires sets the predicate gating this node's visibility/use.
func (b *ArgumentBuilder) Requires(fn Requirement) *ArgumentBuilder {
	b.requirement = fn
	return b
}

// RedirectTo is a convenience alias for forward(target, nil, false).
func (b *ArgumentBuilder) RedirectTo(target NodeId) *ArgumentBuilder {
	return b.forward(target, nil, false)
}

// RedirectWithModifier is a convenience alias for
// forward(target, modifier, false).
func (b *ArgumentBuilder) RedirectWithModifier(target NodeId, modifier RedirectModifier) *ArgumentBuilder {
	return b.forward(target, modifier, false)
}

// Fork is a convenience alias for forward(target, modifier, true).
func (b *ArgumentBuilder) Fork(target NodeId, modifier RedirectModifier) *ArgumentBuilder {
	return b.forward(target, modifier, true)
}

// forward records redirect intent. It panics if the builder already has
// pending children (a redirecting node may not also branch locally: the
// precondition is "no pending children", not "must have children") or if
// target does not belong to the builder's graph.
func (b *ArgumentBuilder) forward(target NodeId, modifier RedirectModifier, fork bool) *ArgumentBuilder {
	if len(b.children) != 0 {
		panic("cmdtree: cannot forward a node with children")
	}
	if !b.graph.ContainsNode(target) {
		panic("cmdtree: forward: redirect target does not belong to this builder's graph")
	}
	b.redirect = target
	b.modifier = modifier
	b.forks = fork
	return b
}

// Redirect returns the pending redirect target, if forward was called.
func (b *ArgumentBuilder) Redirect() (NodeId, bool) {
	if b.redirect == invalidNodeId {
		return invalidNodeId, false
	}
	return b.redirect, true
}

// build materializes n (already carrying its kind-specific fields: the
// literal text or the name/type/provider) by inserting it, copying over
// the shared builder state, attaching every pending child, and
// returning its new id.
func (b *ArgumentBuilder) build(n *Node) NodeId {
	n.command = b.command
	n.requirement = b.requirement
	n.redirect = b.redirect
	n.modifier = b.modifier
	n.forks = b.forks
	id := b.graph.insert(n)
	for _, childID := range b.children {
		b.graph.AddChild(id, childID)
	}
	return id
}

// LiteralArgumentBuilder builds a Literal node.
type LiteralArgumentBuilder struct {
	ArgumentBuilder
	literal string
}

// Literal starts building a Literal node for the fixed keyword l.
func Literal(g *TreeGraph, l string) *LiteralArgumentBuilder {
	return &LiteralArgumentBuilder{ArgumentBuilder: newArgumentBuilder(g), literal: l}
}

// Build materializes the Literal node and returns its id.
func (b *LiteralArgumentBuilder) Build() NodeId {
	return b.ArgumentBuilder.build(b.ArgumentBuilder.graph.literalNode(b.literal))
}

func (b *LiteralArgumentBuilder) Then(child Buildable) *LiteralArgumentBuilder {
	b.ArgumentBuilder.Then(child)
	return b
}
func (b *LiteralArgumentBuilder) Executes(command Command) *LiteralArgumentBuilder {
	b.ArgumentBuilder.Executes(command)
	return b
}
func (b *LiteralArgumentBuilder) Requires(fn Requirement) *LiteralArgumentBuilder {
	b.ArgumentBuilder.Requires(fn)
	return b
}
func (b *LiteralArgumentBuilder) RedirectTo(target NodeId) *LiteralArgumentBuilder {
	b.ArgumentBuilder.RedirectTo(target)
	return b
}
func (b *LiteralArgumentBuilder) RedirectWithModifier(target NodeId, modifier RedirectModifier) *LiteralArgumentBuilder {
	b.ArgumentBuilder.RedirectWithModifier(target, modifier)
	return b
}
func (b *LiteralArgumentBuilder) Fork(target NodeId, modifier RedirectModifier) *LiteralArgumentBuilder {
	b.ArgumentBuilder.Fork(target, modifier)
	return b
}

// RequiredArgumentBuilder builds an Argument node.
type RequiredArgumentBuilder struct {
	ArgumentBuilder
	name               string
	argType            ArgumentType
	suggestionProvider SuggestionProvider
}

// Argument starts building an Argument node named name, parsed by t.
func Argument(g *TreeGraph, name string, t ArgumentType) *RequiredArgumentBuilder {
	return &RequiredArgumentBuilder{ArgumentBuilder: newArgumentBuilder(g), name: name, argType: t}
}

// Suggests attaches a custom SuggestionProvider, overriding the
// argument type's own ListSuggestions for this node.
func (b *RequiredArgumentBuilder) Suggests(p SuggestionProvider) *RequiredArgumentBuilder {
	b.suggestionProvider = p
	return b
}

// Build materializes the Argument node and returns its id.
func (b *RequiredArgumentBuilder) Build() NodeId {
	n := b.ArgumentBuilder.graph.argumentNode(b.name, b.argType)
	n.suggestionProvider = b.suggestionProvider
	return b.ArgumentBuilder.build(n)
}

func (b *RequiredArgumentBuilder) Then(child Buildable) *RequiredArgumentBuilder {
	b.ArgumentBuilder.Then(child)
	return b
}
func (b *RequiredArgumentBuilder) Executes(command Command) *RequiredArgumentBuilder {
	b.ArgumentBuilder.Executes(command)
	return b
}
func (b *RequiredArgumentBuilder) Requires(fn Requirement) *RequiredArgumentBuilder {
	b.ArgumentBuilder.Requires(fn)
	return b
}
func (b *RequiredArgumentBuilder) RedirectTo(target NodeId) *RequiredArgumentBuilder {
	b.ArgumentBuilder.RedirectTo(target)
	return b
}
func (b *RequiredArgumentBuilder) RedirectWithModifier(target NodeId, modifier RedirectModifier) *RequiredArgumentBuilder {
	b.ArgumentBuilder.RedirectWithModifier(target, modifier)
	return b
}
func (b *RequiredArgumentBuilder) Fork(target NodeId, modifier RedirectModifier) *RequiredArgumentBuilder {
	b.ArgumentBuilder.Fork(target, modifier)
	return b
}
