package cmdtree

import (
	"fmt"
	"strings"
)

// Suggestion is an immutable candidate completion bound to a range of the
// command text it replaces.
type Suggestion struct {
	Range   StringRange
	Text    string
	Int     *int32
	Tooltip string
}

// NewSuggestion returns a plain text suggestion over r.
func NewSuggestion(r StringRange, text string) Suggestion {
	return Suggestion{Range: r, Text: text}
}

// NewSuggestionWithTooltip returns a text suggestion carrying a tooltip.
func NewSuggestionWithTooltip(r StringRange, text, tooltip string) Suggestion {
	return Suggestion{Range: r, Text: text, Tooltip: tooltip}
}

// NewIntSuggestion returns a suggestion whose Int field is set, used to
// drive numeric sort order ahead of text comparison.
func NewIntSuggestion(r StringRange, value int32) Suggestion {
	v := value
	return Suggestion{Range: r, Text: fmt.Sprintf("%d", value), Int: &v}
}

// Equal reports whether s and other are the same suggestion by value:
// (range, text, int, tooltip).
func (s Suggestion) Equal(other Suggestion) bool {
	if s.Range != other.Range || s.Text != other.Text || s.Tooltip != other.Tooltip {
		return false
	}
	if (s.Int == nil) != (other.Int == nil) {
		return false
	}
	if s.Int != nil && *s.Int != *other.Int {
		return false
	}
	return true
}

// key returns a comparable value for deduplication, since Suggestion
// itself contains a pointer field.
func (s Suggestion) key() string {
	i := "-"
	if s.Int != nil {
		i = fmt.Sprintf("%d", *s.Int)
	}
	return s.Range.key() + "\x00" + s.Text + "\x00" + i + "\x00" + s.Tooltip
}

func (r StringRange) key() string {
	return fmt.Sprintf("%d:%d", r.Start, r.End)
}

// Less implements the natural order: if both suggestions carry
// an Int, compare those; otherwise compare Text lexicographically.
func (s Suggestion) Less(other Suggestion) bool {
	if s.Int != nil && other.Int != nil {
		return *s.Int < *other.Int
	}
	return s.Text < other.Text
}

// lessCaseInsensitive is the distinct comparator used at finalization
// time by Suggestions.Create.
func (s Suggestion) lessCaseInsensitive(other Suggestion) bool {
	return strings.ToLower(s.Text) < strings.ToLower(other.Text)
}

// Apply inserts s's text at its range within input, producing the
// patched command string. The range must lie within [0, len(input)];
// violating that is a programmer error and panics.
func (s Suggestion) Apply(input string) string {
	if s.Range.Start == 0 && s.Range.End == len(input) {
		return s.Text
	}
	if s.Range.Start < 0 || s.Range.End > len(input) || s.Range.Start > s.Range.End {
		panic(fmt.Sprintf("cmdtree: suggestion range %v out of bounds of input of length %d", s.Range, len(input)))
	}
	if s.Range.Start == 0 {
		return s.Text + input[s.Range.End:]
	}
	if s.Range.End == len(input) {
		return input[:s.Range.Start] + s.Text
	}
	return input[:s.Range.Start] + s.Text + input[s.Range.End:]
}

// expand recomputes s's range to cover target, padding its text with the
// surrounding command text and clearing Int.
func (s Suggestion) expand(command string, target StringRange) Suggestion {
	if target == s.Range {
		return s
	}
	var b strings.Builder
	if target.Start < s.Range.Start {
		b.WriteString(command[target.Start:s.Range.Start])
	}
	b.WriteString(s.Text)
	if target.End > s.Range.End {
		b.WriteString(command[s.Range.End:target.End])
	}
	return Suggestion{Range: target, Text: b.String(), Tooltip: s.Tooltip}
}
