package cmdtree

import (
	"strings"
	"testing"
)

func TestCommandSyntaxErrorWithoutContext(t *testing.T) {
	err := errReaderExpectedInt()
	if err.Error() != "Expected integer" {
		t.Fatalf("Error() = %q, want %q", err.Error(), "Expected integer")
	}
}

func TestCommandSyntaxErrorWithContext(t *testing.T) {
	r := NewStringReader("foo 123xyz")
	r.SetCursor(7)
	err := errReaderInvalidInt("123xyz").withContext(r.Context())
	got := err.Error()
	if !strings.Contains(got, "at position 7") {
		t.Fatalf("Error() = %q, want it to mention position 7", got)
	}
	if !strings.HasSuffix(got, "<--[HERE]") {
		t.Fatalf("Error() = %q, want a <--[HERE] suffix", got)
	}
}

func TestContextStringTruncatesLongInput(t *testing.T) {
	input := strings.Repeat("x", ContextAmount+20)
	ctx := StringReaderContext{Input: input, Cursor: len(input)}
	got := ctx.contextString()
	if !strings.HasPrefix(got, "...") {
		t.Fatalf("contextString() = %q, want a leading ... for truncated input", got)
	}
}

func TestContextStringShortInputNoEllipsis(t *testing.T) {
	ctx := StringReaderContext{Input: "abc", Cursor: 3}
	got := ctx.contextString()
	if strings.HasPrefix(got, "...") {
		t.Fatalf("contextString() = %q, want no leading ... for short input", got)
	}
	if got != "abc<--[HERE]" {
		t.Fatalf("contextString() = %q, want %q", got, "abc<--[HERE]")
	}
}

func TestDispatcherErrorConstructors(t *testing.T) {
	tests := []struct {
		err  *CommandSyntaxError
		want string
	}{
		{NewDispatcherUnknownCommandError(), "Unknown command"},
		{NewDispatcherUnknownArgumentError(), "Incorrect argument for command"},
		{NewDispatcherExpectedArgumentSeparatorError(), "Expected whitespace to end one argument, but found trailing data"},
		{NewDispatcherParseException("boom"), "Could not parse command: boom"},
	}
	for _, tt := range tests {
		if tt.err.Error() != tt.want {
			t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.want)
		}
	}
}
