package cmdtree

import "context"

// SuggestionProvider lets an Argument node override the completions its
// ArgumentType would otherwise produce. Implementations follow the same
// suspension rules as ArgumentType.ListSuggestions.
type SuggestionProvider interface {
	ListSuggestions(ctx context.Context, src *SuggestionsBuilder) (Suggestions, error)
}

// SuggestionProviderFunc adapts a plain function to a SuggestionProvider.
type SuggestionProviderFunc func(ctx context.Context, src *SuggestionsBuilder) (Suggestions, error)

func (f SuggestionProviderFunc) ListSuggestions(ctx context.Context, src *SuggestionsBuilder) (Suggestions, error) {
	return f(ctx, src)
}
