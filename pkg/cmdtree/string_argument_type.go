package cmdtree

// stringType selects which StringReader primitive a StringArgumentType
// delegates to: greedy, quotable, or single-word.
type stringType int

const (
	// StringTypeSingleWord delegates to ReadUnquotedString.
	StringTypeSingleWord stringType = iota
	// StringTypeQuotable delegates to ReadString (quoted-or-unquoted).
	StringTypeQuotable
	// StringTypeGreedy consumes the remainder of the input verbatim.
	StringTypeGreedy
)

// StringArgumentType implements the greedy/quotable/single-word string
// variants.
type StringArgumentType struct {
	baseArgumentType
	Kind stringType
}

// Word returns a single-word string argument type (ReadUnquotedString).
func Word() StringArgumentType { return StringArgumentType{Kind: StringTypeSingleWord} }

// QuotableString returns a string argument type that accepts either a
// quoted or unquoted string (ReadString).
func QuotableString() StringArgumentType { return StringArgumentType{Kind: StringTypeQuotable} }

// GreedyString returns a string argument type that consumes the rest of
// the input verbatim, unprocessed.
func GreedyString() StringArgumentType { return StringArgumentType{Kind: StringTypeGreedy} }

func (t StringArgumentType) Parse(reader *StringReader) (any, error) {
	switch t.Kind {
	case StringTypeGreedy:
		text := reader.Remaining()
		reader.SetCursor(reader.TotalLength())
		return text, nil
	case StringTypeSingleWord:
		return reader.ReadUnquotedString(), nil
	default:
		return reader.ReadString()
	}
}

func (t StringArgumentType) Examples() []string {
	switch t.Kind {
	case StringTypeGreedy:
		return []string{"word", "words with spaces"}
	case StringTypeQuotable:
		return []string{"word", `"quoted phrase"`, `word`, `"\"quoted phrase\""`}
	default:
		return []string{"word"}
	}
}

// EscapeIfRequired quotes and escapes t if it contains anything that
// would not round-trip through ReadUnquotedString, otherwise returns it
// unchanged. It is a convenience for producers that need to print a
// value back as valid command input.
func EscapeIfRequired(t string) string {
	for _, c := range t {
		if !isAllowedInUnquotedString(c) {
			return escapeString(t)
		}
	}
	return t
}

func escapeString(t string) string {
	result := make([]byte, 0, len(t)+2)
	result = append(result, '"')
	for _, c := range t {
		if c == '\\' || c == '"' {
			result = append(result, '\\')
		}
		result = append(result, string(c)...)
	}
	result = append(result, '"')
	return string(result)
}
