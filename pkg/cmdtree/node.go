package cmdtree

import "strings"

// NodeKind tags the three shapes a Node can take. Shared fields
// (requirement, redirect, modifier, forks, command, edges) live outside
// the variant, following a sum-type-over-node-kinds design.
type NodeKind int

const (
	KindRoot NodeKind = iota
	KindLiteral
	KindArgument
)

func (k NodeKind) String() string {
	switch k {
	case KindRoot:
		return "Root"
	case KindLiteral:
		return "Literal"
	case KindArgument:
		return "Argument"
	default:
		return "Unknown"
	}
}

// NodeId is a stable handle into a TreeGraph's arena. Redirect targets
// are stored as plain NodeIds rather than owning references so that
// redirect cycles need no special-casing.
type NodeId int

// invalidNodeId marks "no node" (e.g. a builder with no redirect set).
const invalidNodeId NodeId = -1

// Requirement gates visibility/executability of a node over an opaque
// command source. The bundled AlwaysRequirement is the default for
// every node a builder produces.
type Requirement func(source any) bool

// AlwaysRequirement is the default requirement: every source may use
// the node.
func AlwaysRequirement(any) bool { return true }

// RedirectModifier transforms a command source before a parse descends
// into a redirect's target, producing zero or more derived sources (a
// fork). A nil modifier means "use the source unchanged."
type RedirectModifier func(source any) ([]any, error)

// Command is the terminal action attached to a node with Executes. Its
// execution semantics belong to the external dispatcher; the core
// only stores and returns it.
type Command any

// Node is one vertex of a TreeGraph: Root, Literal, or Argument,
// carrying the fields common to all three kinds.
type Node struct {
	id   NodeId
	kind NodeKind

	// Literal-only.
	literal      string
	literalLower string // set only if literal has non-lowercase ASCII

	// Argument-only.
	name               string
	argumentType       ArgumentType
	suggestionProvider SuggestionProvider

	// Shared.
	childOrder  []string
	children    map[string]NodeId
	literals    map[string]NodeId
	arguments   map[string]NodeId
	requirement Requirement
	redirect    NodeId
	modifier    RedirectModifier
	forks       bool
	command     Command
}

func newNode(kind NodeKind) *Node {
	return &Node{
		kind:        kind,
		children:    make(map[string]NodeId),
		literals:    make(map[string]NodeId),
		arguments:   make(map[string]NodeId),
		requirement: AlwaysRequirement,
		redirect:    invalidNodeId,
	}
}

// Id returns the node's stable id within its graph.
func (n *Node) Id() NodeId { return n.id }

// Kind returns which of the three shapes n is.
func (n *Node) Kind() NodeKind { return n.kind }

// Literal returns the literal text for a Literal node (empty otherwise).
func (n *Node) Literal() string { return n.literal }

// LiteralLower returns the lowercased literal cache, or "" if the
// literal was already all-lowercase ASCII. Only
// meaningful for Literal nodes.
func (n *Node) LiteralLower() string { return n.literalLower }

// Name returns the argument name for an Argument node (empty otherwise).
func (n *Node) Name() string { return n.name }

// ArgumentType returns the parser for an Argument node (nil otherwise).
func (n *Node) ArgumentType() ArgumentType { return n.argumentType }

// SuggestionProvider returns the custom suggestion provider for an
// Argument node, if one was set.
func (n *Node) SuggestionProvider() SuggestionProvider { return n.suggestionProvider }

// Requirement returns the predicate gating this node.
func (n *Node) Requirement() Requirement { return n.requirement }

// CanUse reports whether source satisfies the node's requirement
// predicate.
func (n *Node) CanUse(source any) bool { return n.requirement(source) }

// Redirect returns the node's redirect target and whether one is set.
func (n *Node) Redirect() (NodeId, bool) {
	if n.redirect == invalidNodeId {
		return invalidNodeId, false
	}
	return n.redirect, true
}

// RedirectModifier returns the node's redirect modifier, if any.
func (n *Node) RedirectModifier() RedirectModifier { return n.modifier }

// Forks reports whether a redirect through this node may fan out into
// multiple execution contexts.
func (n *Node) Forks() bool { return n.forks }

// Command returns the terminal command attached to this node, if any.
func (n *Node) Command() Command { return n.command }

// IsValidInput reports whether this node kind is a sink a dispatcher may
// match real input text against: true for Literal and Argument, false
// for Root.
func (n *Node) IsValidInput() bool { return n.kind != KindRoot }

// UsageText returns the name/usage text used for error messages and
// help rendering: empty for Root, the literal text for Literal, and
// "<name>" for Argument.
func (n *Node) UsageText() string {
	switch n.kind {
	case KindLiteral:
		return n.literal
	case KindArgument:
		return "<" + n.name + ">"
	default:
		return ""
	}
}

// ChildrenIds returns the node's children in stable insertion order.
func (n *Node) ChildrenIds() []NodeId {
	ids := make([]NodeId, 0, len(n.childOrder))
	for _, name := range n.childOrder {
		ids = append(ids, n.children[name])
	}
	return ids
}

// ChildNames returns the node's child names in insertion order.
func (n *Node) ChildNames() []string {
	out := make([]string, len(n.childOrder))
	copy(out, n.childOrder)
	return out
}

// ChildByName looks up a direct child by name, regardless of kind.
func (n *Node) ChildByName(name string) (NodeId, bool) {
	id, ok := n.children[name]
	return id, ok
}

// LiteralChildIds returns the ids of this node's literal children, in
// insertion order.
func (n *Node) LiteralChildIds() []NodeId {
	return filterOrdered(n.childOrder, n.literals)
}

// ArgumentChildIds returns the ids of this node's argument children, in
// insertion order.
func (n *Node) ArgumentChildIds() []NodeId {
	return filterOrdered(n.childOrder, n.arguments)
}

func filterOrdered(order []string, index map[string]NodeId) []NodeId {
	var ids []NodeId
	for _, name := range order {
		if id, ok := index[name]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func lowercaseCacheFor(literal string) string {
	for _, c := range literal {
		if c >= 'A' && c <= 'Z' {
			return strings.ToLower(literal)
		}
	}
	return ""
}

// TreeGraph owns a slot-allocated map of NodeId -> Node. Exactly
// one Root node exists, pinned at construction.
type TreeGraph struct {
	nodes  map[NodeId]*Node
	nextID NodeId
	rootID NodeId
}

// NewTreeGraph allocates a graph containing a single Root node whose
// requirement is AlwaysRequirement.
func NewTreeGraph() *TreeGraph {
	g := &TreeGraph{nodes: make(map[NodeId]*Node)}
	root := newNode(KindRoot)
	g.rootID = g.insert(root)
	return g
}

// RootId returns the id of the graph's single Root node.
func (g *TreeGraph) RootId() NodeId { return g.rootID }

// Root returns the graph's Root node.
func (g *TreeGraph) Root() *Node { return g.nodes[g.rootID] }

// ContainsNode reports whether id names a live node in this graph.
func (g *TreeGraph) ContainsNode(id NodeId) bool {
	_, ok := g.nodes[id]
	return ok
}

// Get returns the node for id, or nil if it does not exist (e.g. it was
// removed by a merge).
func (g *TreeGraph) Get(id NodeId) *Node { return g.nodes[id] }

// insert allocates a stable id for n, writes it back into n, and
// registers it in the arena. It does not attach n to any parent.
func (g *TreeGraph) insert(n *Node) NodeId {
	id := g.nextID
	g.nextID++
	n.id = id
	g.nodes[id] = n
	return id
}

// literalNode creates a new Literal node for literal l, independent of
// any parent. It does not insert the node; callers pass it to insert.
func (g *TreeGraph) literalNode(l string) *Node {
	n := newNode(KindLiteral)
	n.literal = l
	n.literalLower = lowercaseCacheFor(l)
	return n
}

// argumentNode creates a new Argument node. It does not insert the
// node; callers pass it to insert.
func (g *TreeGraph) argumentNode(name string, t ArgumentType) *Node {
	n := newNode(KindArgument)
	n.name = name
	n.argumentType = t
	return n
}

func childName(n *Node) string {
	switch n.kind {
	case KindLiteral:
		return n.literal
	case KindArgument:
		return n.name
	default:
		panic("cmdtree: root node has no name")
	}
}

// AddChild attaches child under parent, merging onto any existing child
// of the same name. It panics if child is Root or parent does not
// exist.
//
// Merge is destructive on child (its id becomes invalid once merged:
// the node is removed from the graph) and additive on the existing
// node: the existing node's Command is overwritten if child carries one,
// and every grandchild of child is recursively attached under the
// existing node, applying the same rule at each level. This keeps
// child names unique per parent while preserving each surviving
// child's original insertion position.
func (g *TreeGraph) AddChild(parentID NodeId, childID NodeId) {
	parent, ok := g.nodes[parentID]
	if !ok {
		panic("cmdtree: add_child: unknown parent node")
	}
	child, ok := g.nodes[childID]
	if !ok {
		panic("cmdtree: add_child: unknown child node")
	}
	if child.kind == KindRoot {
		panic("cmdtree: the root node cannot be a child")
	}

	name := childName(child)
	if existingID, ok := parent.children[name]; ok {
		g.mergeInto(existingID, child)
		return
	}

	parent.childOrder = append(parent.childOrder, name)
	parent.children[name] = childID
	switch child.kind {
	case KindLiteral:
		parent.literals[name] = childID
	case KindArgument:
		parent.arguments[name] = childID
	}
}

// mergeInto absorbs child's command and grandchildren into existing,
// then deletes child from the graph.
func (g *TreeGraph) mergeInto(existingID NodeId, child *Node) {
	existing := g.nodes[existingID]
	if child.command != nil {
		existing.command = child.command
	}
	for _, grandchildID := range child.ChildrenIds() {
		g.AddChild(existingID, grandchildID)
	}
	delete(g.nodes, child.id)
}
