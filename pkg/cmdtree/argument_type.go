package cmdtree

import "context"

// ArgumentType is the contract an argument node's typed parser must
// satisfy. Parse advances the reader on success; on failure it must
// leave the reader rewound to its pre-call cursor so sibling
// alternatives can be tried against the same input position.
type ArgumentType interface {
	// Parse consumes as much of reader as this type requires and
	// returns the parsed value, or a *CommandSyntaxError on failure.
	Parse(reader *StringReader) (any, error)

	// ListSuggestions computes completions for the current input. It
	// may suspend on external lookups; cancellation is via ctx.
	// The default behavior (no override) is EmptySuggestions.
	ListSuggestions(ctx context.Context, src *SuggestionsBuilder) (Suggestions, error)

	// Examples returns short exemplar literals, used by ambiguity
	// detection. The default ListSuggestions does not consult them.
	Examples() []string
}

// baseArgumentType supplies the default ListSuggestions/Examples so
// bundled types only need to implement Parse plus whatever override
// they require.
type baseArgumentType struct{}

func (baseArgumentType) ListSuggestions(_ context.Context, _ *SuggestionsBuilder) (Suggestions, error) {
	return EmptySuggestions, nil
}

func (baseArgumentType) Examples() []string { return nil }
