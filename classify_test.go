package scanner

import "testing"

func Test_Classify_Whitespace(t *testing.T) {
	for _, b := range []byte{' ', '\t', '\r', '\n'} {
		if !isWhitespace(b) {
			t.Fatalf("%q should be whitespace", b)
		}
	}
	for _, b := range []byte{'a', '0', '_', 0} {
		if isWhitespace(b) {
			t.Fatalf("%q should not be whitespace", b)
		}
	}
	if !isNewline('\r') || !isNewline('\n') || isNewline(' ') {
		t.Fatal("newline classification wrong")
	}
}

func Test_Classify_AlphaDigitHex(t *testing.T) {
	if !isAlpha('a') || !isAlpha('Z') || isAlpha('1') || isAlpha('_') {
		t.Fatal("alpha classification wrong")
	}
	if !isDigit('0') || !isDigit('9') || isDigit('a') {
		t.Fatal("digit classification wrong")
	}
	if !isUnderscore('_') || isUnderscore('-') {
		t.Fatal("underscore classification wrong")
	}
	for _, b := range []byte{'0', '9', 'a', 'f', 'A', 'F'} {
		if !isHexDigit(b) {
			t.Fatalf("%q should be a hex digit", b)
		}
	}
	for _, b := range []byte{'g', 'G', 'x', ' '} {
		if isHexDigit(b) {
			t.Fatalf("%q should not be a hex digit", b)
		}
	}
	if !isOctalDigit('0') || !isOctalDigit('7') || isOctalDigit('8') {
		t.Fatal("octal classification wrong")
	}
}

func Test_Classify_DecodeEscape(t *testing.T) {
	want := map[byte]byte{
		'a': 0x07, 'b': 0x08, 'e': 0x1B, 'f': 0x0C,
		'n': 0x0A, 'r': 0x0D, 't': 0x09, 'v': 0x0B,
		'\\': 0x5C, '\'': 0x27, '"': 0x22, '?': 0x3F,
	}
	for in, out := range want {
		if got := decodeEscape(in); got != out {
			t.Fatalf("decodeEscape(%q) = %#x, want %#x", in, got, out)
		}
	}
	// unrecognized escapes decode to themselves
	for _, b := range []byte{'q', 'z', '0', ' '} {
		if got := decodeEscape(b); got != b {
			t.Fatalf("decodeEscape(%q) = %q, want identity", b, got)
		}
	}
}
