// errors.go: user-facing error wrapping and caret-snippet rendering
//
// A *LexError is the scanner's recoverable diagnostic for a byte no
// recognizer accepts: by the time it is returned the offending byte has
// already been consumed, so the caller can report it and keep scanning.
// An *IncompleteError is only produced in interactive mode and means the
// input ended inside an unterminated construct (string, char literal,
// multi-line comment) — the REPL uses it to prompt for a continuation line.
//
// WrapErrorWithSource turns a *LexError into a readable snippet with a caret
// pointing at the offending column, when the full source text is available:
//
//	LEXICAL ERROR at 3:7: unrecognized character '@'
//
//	   2 | int x;
//	   3 | int y @ 1;
//	     |       ^
//	   4 | int z;
//
// Other error kinds pass through unchanged.
package scanner

import (
	"fmt"
	"strings"
)

// LexError reports a byte that no recognizer accepts. Off is the byte offset
// of the offending byte in the input; the byte itself has been consumed.
type LexError struct {
	Line int
	Off  int
	Byte byte
}

func (e *LexError) Error() string {
	return fmt.Sprintf("LEXICAL ERROR at line %d: unrecognized character %q", e.Line, e.Byte)
}

// IncompleteError marks input that ended inside an unterminated construct.
// It is returned instead of an error-annotated token when the scanner runs
// in interactive mode.
type IncompleteError struct {
	What string // "string literal", "char literal", "comment"
}

func (e *IncompleteError) Error() string {
	return "incomplete input: unterminated " + e.What
}

// IsIncomplete reports whether err is an *IncompleteError.
func IsIncomplete(err error) bool {
	_, ok := err.(*IncompleteError)
	return ok
}

// WrapErrorWithSource returns err augmented with a caret-annotated snippet of
// src when err is a *LexError; any other error is returned unchanged. The
// caret column is derived from the error's byte offset, so src must be the
// exact text that was scanned.
func WrapErrorWithSource(err error, src string) error {
	le, ok := err.(*LexError)
	if !ok {
		return err
	}
	line, col := lineColAt(src, le.Off)
	msg := fmt.Sprintf("unrecognized character %q", le.Byte)
	return fmt.Errorf("%s", prettyErrorString(src, "LEXICAL ERROR", line, col, msg))
}

// lineColAt converts a byte offset into 1-based line and column numbers.
// Out-of-range offsets are clamped so rendering is always safe.
func lineColAt(src string, off int) (line, col int) {
	if off < 0 {
		off = 0
	}
	if off > len(src) {
		off = len(src)
	}
	line, col = 1, 1
	for i := 0; i < off; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// prettyErrorString builds the snippet: a header, up to one line of context
// before and after, and a caret under the 1-based column.
func prettyErrorString(src, header string, line, col int, msg string) string {
	lines := strings.Split(src, "\n")
	if line < 1 {
		line = 1
	}
	if col < 1 {
		col = 1
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	if line > len(lines) {
		line = len(lines)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s at %d:%d: %s\n\n", header, line, col, msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col-1))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
