package cmdtree

import "sort"

// Suggestions is a range plus an ordered list of suggestions, all
// normalized to that same range.
type Suggestions struct {
	Range StringRange
	List  []Suggestion
}

// EmptySuggestions is the canonical empty result, returned by
// ArgumentType.ListSuggestions default implementations and by
// Suggestions.Create when given no candidates.
var EmptySuggestions = Suggestions{Range: StringRange{}, List: nil}

// Create builds a Suggestions value from an unordered slice of
// candidates sharing the same command string:
//  1. empty input yields EmptySuggestions;
//  2. the tightest containing range across all candidates is computed;
//  3. each candidate is expanded to that range;
//  4. expanded candidates are deduplicated by value;
//  5. survivors are sorted by case-insensitive text.
func Create(command string, suggestions []Suggestion) Suggestions {
	if len(suggestions) == 0 {
		return EmptySuggestions
	}
	target := suggestions[0].Range
	for _, s := range suggestions[1:] {
		target = Encompassing(target, s.Range)
	}

	seen := make(map[string]bool, len(suggestions))
	texts := make([]Suggestion, 0, len(suggestions))
	for _, s := range suggestions {
		expanded := s.expand(command, target)
		k := expanded.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		texts = append(texts, expanded)
	}

	sort.SliceStable(texts, func(i, j int) bool {
		return texts[i].lessCaseInsensitive(texts[j])
	})

	return Suggestions{Range: target, List: texts}
}

// Merge combines any number of Suggestions results that may carry
// different ranges into a single normalized result, re-running Create
// over the union (used when multiple argument types each contribute
// suggestions for the same position).
func Merge(command string, all []Suggestions) Suggestions {
	var combined []Suggestion
	for _, s := range all {
		combined = append(combined, s.List...)
	}
	return Create(command, combined)
}

// IsEmpty reports whether s carries no suggestions.
func (s Suggestions) IsEmpty() bool { return len(s.List) == 0 }

// SuggestionsBuilder accumulates candidates over the implicit range
// [start, len(input)).
type SuggestionsBuilder struct {
	input         string
	inputLower    string
	start         int
	remaining     string
	remainingLower string
	result        []Suggestion
}

// NewSuggestionsBuilder creates a builder over input starting at start.
func NewSuggestionsBuilder(input string, start int) *SuggestionsBuilder {
	return &SuggestionsBuilder{
		input:          input,
		inputLower:     toLowerASCIIAware(input),
		start:          start,
		remaining:      input[start:],
		remainingLower: toLowerASCIIAware(input)[start:],
	}
}

// NewSuggestionsBuilderWithLowerCase creates a builder when the
// lower-cased input has already been computed by the caller, threading
// a precomputed lowercase form through a parse context rather than
// recomputing it per node.
func NewSuggestionsBuilderWithLowerCase(input, inputLowerCase string, start int) *SuggestionsBuilder {
	return &SuggestionsBuilder{
		input:          input,
		inputLower:     inputLowerCase,
		start:          start,
		remaining:      input[start:],
		remainingLower: inputLowerCase[start:],
	}
}

func toLowerASCIIAware(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// Input returns the full command string the builder was created over.
func (b *SuggestionsBuilder) Input() string { return b.input }

// Start returns the builder's range start.
func (b *SuggestionsBuilder) Start() int { return b.start }

// Remaining returns the unconsumed suffix of Input() from Start().
func (b *SuggestionsBuilder) Remaining() string { return b.remaining }

// RemainingLowerCase returns Remaining(), lower-cased.
func (b *SuggestionsBuilder) RemainingLowerCase() string { return b.remainingLower }

func (b *SuggestionsBuilder) fullRange() StringRange {
	return StringRange{Start: b.start, End: len(b.input)}
}

// SuggestText appends t as a candidate over the builder's full range,
// unless t exactly equals the remaining text (no suggestion needed).
func (b *SuggestionsBuilder) SuggestText(t string) *SuggestionsBuilder {
	if t == b.remaining {
		return b
	}
	b.result = append(b.result, NewSuggestion(b.fullRange(), t))
	return b
}

// SuggestTextWithTooltip is SuggestText with an attached tooltip.
func (b *SuggestionsBuilder) SuggestTextWithTooltip(t, tooltip string) *SuggestionsBuilder {
	if t == b.remaining {
		return b
	}
	b.result = append(b.result, NewSuggestionWithTooltip(b.fullRange(), t, tooltip))
	return b
}

// SuggestInt appends the decimal text of i as a candidate with its Int
// field set, driving numeric sort order.
func (b *SuggestionsBuilder) SuggestInt(i int32) *SuggestionsBuilder {
	b.result = append(b.result, NewIntSuggestion(b.fullRange(), i))
	return b
}

// Add concatenates another builder's accumulated results into b.
func (b *SuggestionsBuilder) Add(other *SuggestionsBuilder) *SuggestionsBuilder {
	b.result = append(b.result, other.result...)
	return b
}

// Restart returns a fresh builder over the same input and start,
// discarding any results accumulated so far.
func (b *SuggestionsBuilder) Restart() *SuggestionsBuilder {
	return NewSuggestionsBuilderWithLowerCase(b.input, b.inputLower, b.start)
}

// CreateOffset returns a derived builder sharing the same input but
// anchored at a new start offset.
func (b *SuggestionsBuilder) CreateOffset(start int) *SuggestionsBuilder {
	return NewSuggestionsBuilderWithLowerCase(b.input, b.inputLower, start)
}

// Build finalizes the accumulated candidates via Create.
func (b *SuggestionsBuilder) Build() Suggestions {
	return Create(b.input, b.result)
}
