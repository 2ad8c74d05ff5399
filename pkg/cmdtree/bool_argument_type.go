package cmdtree

import (
	"context"
	"strings"
)

// BoolArgumentType parses "true"/"false".
type BoolArgumentType struct {
	baseArgumentType
}

// Bool returns a BoolArgumentType.
func Bool() BoolArgumentType { return BoolArgumentType{} }

func (BoolArgumentType) Parse(reader *StringReader) (any, error) {
	return reader.ReadBoolean()
}

func (BoolArgumentType) ListSuggestions(_ context.Context, b *SuggestionsBuilder) (Suggestions, error) {
	remaining := b.RemainingLowerCase()
	if strings.HasPrefix("true", remaining) {
		b.SuggestText("true")
	}
	if strings.HasPrefix("false", remaining) {
		b.SuggestText("false")
	}
	return b.Build(), nil
}

func (BoolArgumentType) Examples() []string { return []string{"true", "false"} }
