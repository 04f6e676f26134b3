package scanner

/* ---------- character predicates (ASCII model) ---------- */

func isNewline(b byte) bool {
	return b == '\r' || b == '\n'
}

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || isNewline(b)
}

func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isUnderscore(b byte) bool {
	return b == '_'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOctalDigit(b byte) bool {
	return b >= '0' && b <= '7'
}

// decodeEscape maps the character following a backslash to its value.
// Unrecognized escapes decode to the character itself, unchanged.
func decodeEscape(b byte) byte {
	switch b {
	case 'a':
		return 0x07
	case 'b':
		return 0x08
	case 'e':
		return 0x1B
	case 'f':
		return 0x0C
	case 'n':
		return 0x0A
	case 'r':
		return 0x0D
	case 't':
		return 0x09
	case 'v':
		return 0x0B
	case '\\':
		return 0x5C
	case '\'':
		return 0x27
	case '"':
		return 0x22
	case '?':
		return 0x3F
	default:
		return b
	}
}
