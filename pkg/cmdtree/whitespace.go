package cmdtree

// isJavaWhitespace classifies r the way Java's Character.isWhitespace(int)
// does, which is the policy SkipWhitespace follows. Notably
// U+00A0 (NBSP), U+2007 (figure space) and U+202F (narrow NBSP) are NOT
// whitespace under this classification, unlike Unicode's general
// White_Space property.
func isJavaWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r',
		0x1c, 0x1d, 0x1e, 0x1f, // FS, GS, RS, US
		' ',
		0x2028, // LINE SEPARATOR
		0x2029, // PARAGRAPH SEPARATOR
		0x1680:
		return true
	}
	switch {
	case r >= 0x2000 && r <= 0x2006:
		return true
	case r >= 0x2008 && r <= 0x200a:
		return true
	case r == 0x205f:
		return true
	case r == 0x3000:
		return true
	}
	return false
}
