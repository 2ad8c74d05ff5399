package cmdtree

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// syntaxCharQuoteDouble, syntaxCharQuoteSingle and syntaxCharEscape are
// the characters quoted-string reading must special-case.
const (
	syntaxCharQuoteDouble = '"'
	syntaxCharQuoteSingle = '\''
	syntaxCharEscape      = '\\'
)

// StringReaderContext is a cheap snapshot of a StringReader's input and
// cursor, used to anchor error messages.
type StringReaderContext struct {
	Input  string
	Cursor int
}

// StringReader is a cursor-based scanner over a UTF-8 input string.
// It holds (input, cursor); the unconsumed suffix is input[cursor:].
type StringReader struct {
	input  string
	cursor int
}

// NewStringReader creates a reader positioned at the start of input.
func NewStringReader(input string) *StringReader {
	return &StringReader{input: input}
}

// String returns the full input the reader was created with.
func (r *StringReader) String() string { return r.input }

// Remaining returns the unconsumed suffix of the input.
func (r *StringReader) Remaining() string { return r.input[r.cursor:] }

// TotalLength returns the byte length of the full input.
func (r *StringReader) TotalLength() int { return len(r.input) }

// RemainingLength returns the number of unconsumed bytes.
func (r *StringReader) RemainingLength() int { return len(r.input) - r.cursor }

// Cursor returns the current byte offset into the input.
func (r *StringReader) Cursor() int { return r.cursor }

// SetCursor repositions the reader. Callers are responsible for only
// setting valid offsets (typically via a previously observed Cursor()).
func (r *StringReader) SetCursor(cursor int) { r.cursor = cursor }

// Context snapshots the reader's input and cursor for error attribution.
func (r *StringReader) Context() StringReaderContext {
	return StringReaderContext{Input: r.input, Cursor: r.cursor}
}

// CanRead reports whether at least one more byte remains.
func (r *StringReader) CanRead() bool { return r.CanReadLength(1) }

// CanReadLength reports whether at least n more bytes remain.
func (r *StringReader) CanReadLength(n int) bool { return r.cursor+n <= len(r.input) }

// Peek returns the next rune without consuming it. It returns
// utf8.RuneError at end of input.
func (r *StringReader) Peek() rune {
	if !r.CanRead() {
		return utf8.RuneError
	}
	ru, _ := utf8.DecodeRuneInString(r.input[r.cursor:])
	return ru
}

// Skip advances the cursor past the next rune, if any.
func (r *StringReader) Skip() {
	if !r.CanRead() {
		return
	}
	_, size := utf8.DecodeRuneInString(r.input[r.cursor:])
	r.cursor += size
}

func (r *StringReader) next() (rune, bool) {
	if !r.CanRead() {
		return 0, false
	}
	ru, size := utf8.DecodeRuneInString(r.input[r.cursor:])
	r.cursor += size
	return ru, true
}

// SkipWhitespace consumes the maximal prefix of runes classified as
// whitespace by the Java Character.isWhitespace(int) rule.
func (r *StringReader) SkipWhitespace() {
	for r.CanRead() && isJavaWhitespace(r.Peek()) {
		r.Skip()
	}
}

func isAllowedNumber(c rune) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-'
}

func isAllowedInUnquotedString(c rune) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= 'a' && c <= 'z') ||
		c == '_' || c == '-' || c == '.' || c == '+'
}

// readNumberText consumes the maximal prefix matching [0-9.-].
func (r *StringReader) readNumberText() string {
	start := r.cursor
	for r.CanRead() && isAllowedNumber(r.Peek()) {
		r.Skip()
	}
	return r.input[start:r.cursor]
}

// ReadInt reads an integer, failing ReaderExpectedInt/ReaderInvalidInt.
func (r *StringReader) ReadInt() (int32, error) {
	start := r.cursor
	text := r.readNumberText()
	if text == "" {
		r.cursor = start
		return 0, errReaderExpectedInt().withContext(r.Context())
	}
	v, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		r.cursor = start
		return 0, errReaderInvalidInt(text).withContext(r.Context())
	}
	return int32(v), nil
}

// ReadLong reads a 64-bit integer, failing ReaderExpectedLong/ReaderInvalidLong.
func (r *StringReader) ReadLong() (int64, error) {
	start := r.cursor
	text := r.readNumberText()
	if text == "" {
		r.cursor = start
		return 0, errReaderExpectedLong().withContext(r.Context())
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		r.cursor = start
		return 0, errReaderInvalidLong(text).withContext(r.Context())
	}
	return v, nil
}

// ReadFloat reads a float32, failing ReaderExpectedFloat/ReaderInvalidFloat.
func (r *StringReader) ReadFloat() (float32, error) {
	start := r.cursor
	text := r.readNumberText()
	if text == "" {
		r.cursor = start
		return 0, errReaderExpectedFloat().withContext(r.Context())
	}
	v, err := strconv.ParseFloat(text, 32)
	if err != nil {
		r.cursor = start
		return 0, errReaderInvalidFloat(text).withContext(r.Context())
	}
	return float32(v), nil
}

// ReadDouble reads a float64, failing ReaderExpectedDouble/ReaderInvalidDouble.
func (r *StringReader) ReadDouble() (float64, error) {
	start := r.cursor
	text := r.readNumberText()
	if text == "" {
		r.cursor = start
		return 0, errReaderExpectedDouble().withContext(r.Context())
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		r.cursor = start
		return 0, errReaderInvalidDouble(text).withContext(r.Context())
	}
	return v, nil
}

// ReadUnquotedString consumes the maximal prefix of
// [0-9A-Za-z_\-.+]. It never fails; an empty result is allowed.
func (r *StringReader) ReadUnquotedString() string {
	start := r.cursor
	for r.CanRead() && isAllowedInUnquotedString(r.Peek()) {
		r.Skip()
	}
	return r.input[start:r.cursor]
}

// ReadQuotedString reads a '...'/"..."-delimited string, honoring \\ and
// \<quote> escapes. An empty remaining input yields an empty string
// (never an error). The non-escaping fast path returns a slice of the
// original input directly; any escape forces the result to be built up
// separately, following an allocate-only-when-needed discipline.
func (r *StringReader) ReadQuotedString() (string, error) {
	if !r.CanRead() {
		return "", nil
	}
	start := r.cursor
	next := r.Peek()
	if next != syntaxCharQuoteDouble && next != syntaxCharQuoteSingle {
		return "", errReaderExpectedStartOfQuote().withContext(r.Context())
	}
	r.Skip()
	s, err := r.readStringUntil(next)
	if err != nil {
		r.cursor = start
		return "", err
	}
	return s, nil
}

// readStringUntil reads until the terminator rune is found (consuming
// it), applying escape handling. Called with the opening quote already
// consumed.
func (r *StringReader) readStringUntil(terminator rune) (string, error) {
	var b strings.Builder
	escaped := false
	contentStart := r.cursor
	for r.CanRead() {
		c, _ := r.next()
		if escaped {
			if c == terminator || c == syntaxCharEscape {
				b.WriteRune(c)
				escaped = false
			} else {
				return "", errReaderInvalidEscape(c).withContext(r.Context())
			}
		} else if c == syntaxCharEscape {
			if !escaped {
				// Lazily materialize the builder with everything read
				// so far the moment we hit the first escape.
				if b.Len() == 0 {
					b.WriteString(r.input[contentStart : r.cursor-1])
				}
			}
			escaped = true
		} else if c == terminator {
			if b.Len() == 0 {
				// Fast path: no escapes were ever seen, return a
				// borrowed slice of the original input.
				return r.input[contentStart : r.cursor-1], nil
			}
			return b.String(), nil
		} else if b.Len() > 0 {
			b.WriteRune(c)
		}
	}
	return "", errReaderExpectedEndOfQuote().withContext(r.Context())
}

// ReadString reads a quoted string if the next character starts a
// quote, otherwise an unquoted string.
func (r *StringReader) ReadString() (string, error) {
	if !r.CanRead() {
		return "", nil
	}
	next := r.Peek()
	if next == syntaxCharQuoteDouble || next == syntaxCharQuoteSingle {
		return r.ReadQuotedString()
	}
	return r.ReadUnquotedString(), nil
}

// ReadBoolean reads "true"/"false", failing ReaderInvalidBool on any
// other text and rewinding the reader.
func (r *StringReader) ReadBoolean() (bool, error) {
	start := r.cursor
	text, err := r.ReadString()
	if err != nil {
		r.cursor = start
		return false, err
	}
	if text == "" {
		r.cursor = start
		return false, errReaderExpectedBool().withContext(r.Context())
	}
	switch text {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		r.cursor = start
		return false, errReaderInvalidBool(text).withContext(r.Context())
	}
}

// Expect consumes c if it is the next rune, else fails
// ReaderExpectedSymbol without consuming anything.
func (r *StringReader) Expect(c rune) error {
	if !r.CanRead() {
		return errReaderExpectedSymbol(c).withContext(r.Context())
	}
	if r.Peek() != c {
		return errReaderExpectedSymbol(c).withContext(r.Context())
	}
	r.Skip()
	return nil
}
