package rvn

// skipSpace consumes a maximal prefix of whitespace and line comments.
// Spaces count one column of indentation and tabs two; a newline or a
// comment resets the count. The returned indent is the indentation
// accumulated after the last newline, or from the start of b if none
// occurred.
func skipSpace(b []byte) (indent int, rest []byte) {
	i := 0
	for i < len(b) {
		switch b[i] {
		case ' ':
			indent++
			i++
		case '\t':
			indent += 2
			i++
		case '\n':
			indent = 0
			i++
		case '#':
			// Comment runs through the newline, or to the end of input.
			for i < len(b) && b[i] != '\n' {
				i++
			}
			if i < len(b) {
				i++
			}
			indent = 0
		default:
			return indent, b[i:]
		}
	}
	return indent, b[i:]
}

// Digit predicates. Underscores are digit separators and may appear anywhere
// in a run; they are removed before conversion.

func isDecDigit(c byte) bool {
	return c == '_' || '0' <= c && c <= '9'
}

func isBinDigit(c byte) bool {
	return c == '_' || c == '0' || c == '1'
}

func isHexDigit(c byte) bool {
	return c == '_' || '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

// scanKey consumes a record key: a maximal run of bytes that cannot begin
// whitespace, a comment, or the key-value separator. A '#' ends the key;
// the comment itself is consumed by the whitespace skip that follows.
func scanKey(b []byte) (key string, rest []byte) {
	i := 0
	for i < len(b) {
		switch b[i] {
		case ' ', '\t', '\n', '#', ':':
			return string(b[:i]), b[i:]
		}
		i++
	}
	return string(b), b[i:]
}
