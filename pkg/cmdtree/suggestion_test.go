package cmdtree

import "testing"

func TestSuggestionApply(t *testing.T) {
	tests := []struct {
		desc  string
		s     Suggestion
		input string
		want  string
	}{
		{desc: "whole string", s: NewSuggestion(NewStringRange(0, 5), "howdy"), input: "hello", want: "howdy"},
		{desc: "prefix insert", s: NewSuggestion(StringRangeAt(0), "pre"), input: "fix", want: "prefix"},
		{desc: "suffix insert", s: NewSuggestion(StringRangeAt(3), "fix"), input: "pre", want: "prefix"},
		{desc: "middle replace", s: NewSuggestion(NewStringRange(2, 4), "XY"), input: "abcdef", want: "abXYef"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := tt.s.Apply(tt.input); got != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSuggestionApplyPanicsOutOfBounds(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Apply() out of bounds: want panic, got none")
		}
	}()
	NewSuggestion(NewStringRange(0, 50), "x").Apply("short")
}

func TestSuggestionLessCaseInsensitive(t *testing.T) {
	a := NewSuggestion(StringRangeAt(0), "Banana")
	b := NewSuggestion(StringRangeAt(0), "apple")
	if a.lessCaseInsensitive(b) {
		t.Fatalf("lessCaseInsensitive: %q should not sort before %q", a.Text, b.Text)
	}
	if !b.lessCaseInsensitive(a) {
		t.Fatalf("lessCaseInsensitive: %q should sort before %q", b.Text, a.Text)
	}
}

func TestSuggestionEqual(t *testing.T) {
	a := NewSuggestion(NewStringRange(0, 3), "abc")
	b := NewSuggestion(NewStringRange(0, 3), "abc")
	if !a.Equal(b) {
		t.Fatalf("Equal(): expected equal suggestions to compare equal")
	}
	c := NewIntSuggestion(NewStringRange(0, 3), 5)
	d := NewIntSuggestion(NewStringRange(0, 3), 5)
	if !c.Equal(d) {
		t.Fatalf("Equal(): expected equal int suggestions to compare equal")
	}
	if a.Equal(c) {
		t.Fatalf("Equal(): text suggestion should not equal int suggestion")
	}
}
