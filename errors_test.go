package scanner

import (
	"errors"
	"strings"
	"testing"
)

func mustContain(t *testing.T, s, sub string) {
	t.Helper()
	if !strings.Contains(s, sub) {
		t.Fatalf("expected output to contain %q\n--- output ---\n%s", sub, s)
	}
}

func Test_ErrorWrap_Lex_ShowsCaretAndContext(t *testing.T) {
	src := "int x;\nint y @ 1;\nint z;"
	_, diags, err := NewString(src).ScanAll()
	if err != nil {
		t.Fatalf("ScanAll error: %v", err)
	}
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %v", diags)
	}

	msg := WrapErrorWithSource(diags[0], src).Error()
	mustContain(t, msg, "LEXICAL ERROR at 2:7:")
	mustContain(t, msg, "unrecognized character '@'")
	mustContain(t, msg, "   1 | int x;")
	mustContain(t, msg, "   2 | int y @ 1;")
	mustContain(t, msg, "   3 | int z;")

	// caret under column 7
	caretLine := ""
	for _, ln := range strings.Split(msg, "\n") {
		if strings.Contains(ln, "^") {
			caretLine = ln
		}
	}
	if caretLine == "" {
		t.Fatalf("no caret line in:\n%s", msg)
	}
	if got := strings.Index(caretLine, "^"); got != len("     | ")+6 {
		t.Fatalf("caret at wrong column in %q", caretLine)
	}
}

func Test_ErrorWrap_FirstLine_NoPreviousContext(t *testing.T) {
	src := "@"
	_, diags, _ := NewString(src).ScanAll()
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %v", diags)
	}
	msg := WrapErrorWithSource(diags[0], src).Error()
	mustContain(t, msg, "LEXICAL ERROR at 1:1:")
	if strings.Contains(msg, "   0 |") {
		t.Fatalf("rendered a line 0:\n%s", msg)
	}
}

func Test_ErrorWrap_OtherErrors_PassThrough(t *testing.T) {
	plain := errors.New("boom")
	if got := WrapErrorWithSource(plain, "src"); got != plain {
		t.Fatalf("non-lex error should pass through, got %v", got)
	}
}

func Test_LexError_Message(t *testing.T) {
	e := &LexError{Line: 4, Off: 12, Byte: '~'}
	mustContain(t, e.Error(), "line 4")
	mustContain(t, e.Error(), "'~'")
}

func Test_IsIncomplete(t *testing.T) {
	if !IsIncomplete(&IncompleteError{What: "comment"}) {
		t.Fatal("IncompleteError not recognized")
	}
	if IsIncomplete(errors.New("other")) {
		t.Fatal("plain error misclassified as incomplete")
	}
	mustContain(t, (&IncompleteError{What: "string literal"}).Error(), "unterminated string literal")
}
