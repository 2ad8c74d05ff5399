package cmdtree

// ParsedArgument holds a parsed value of a successful argument match: the
// byte range it was read from plus the value itself. The dispatcher
// keys these by argument name in its own parse context; the core only
// defines the carrier type.
type ParsedArgument[V any] struct {
	Range StringRange
	Value V
}

// NewParsedArgument returns a ParsedArgument over r with value v.
func NewParsedArgument[V any](r StringRange, v V) ParsedArgument[V] {
	return ParsedArgument[V]{Range: r, Value: v}
}
