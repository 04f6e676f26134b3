package scanner

import (
	"strings"
	"testing"
)

func Test_Cursor_PeekDoesNotConsume(t *testing.T) {
	c := newCursor(strings.NewReader("ab"))
	if c.peek() != 'a' || c.peek() != 'a' {
		t.Fatal("peek consumed input")
	}
	if c.read() != 'a' || c.read() != 'b' {
		t.Fatal("read out of order after peek")
	}
	if c.read() != eof {
		t.Fatal("expected eof")
	}
}

func Test_Cursor_EOFSentinelIsSticky(t *testing.T) {
	c := newCursor(strings.NewReader(""))
	for i := 0; i < 3; i++ {
		if c.peek() != eof || c.read() != eof {
			t.Fatal("eof should repeat forever")
		}
	}
}

func Test_Cursor_MultiByteUnread_RestoresOrder(t *testing.T) {
	c := newCursor(strings.NewReader("include"))
	var got []byte
	for i := 0; i < 4; i++ {
		got = append(got, byte(c.read()))
	}
	if string(got) != "incl" {
		t.Fatalf("read %q", got)
	}
	c.unread(got)
	var again []byte
	for b := c.read(); b != eof; b = c.read() {
		again = append(again, byte(b))
	}
	if string(again) != "include" {
		t.Fatalf("after unread, stream is %q", again)
	}
}

func Test_Cursor_NestedUnread(t *testing.T) {
	c := newCursor(strings.NewReader("xyz"))
	a := byte(c.read())
	b := byte(c.read())
	c.unread([]byte{a, b})
	// partial re-read, then unread again
	a2 := byte(c.read())
	c.unreadByte(a2)
	var out []byte
	for b := c.read(); b != eof; b = c.read() {
		out = append(out, byte(b))
	}
	if string(out) != "xyz" {
		t.Fatalf("stream corrupted by nested unread: %q", out)
	}
}

func Test_Cursor_OffsetTracksUnread(t *testing.T) {
	c := newCursor(strings.NewReader("abcd"))
	c.read()
	c.read()
	if c.off != 2 {
		t.Fatalf("off = %d, want 2", c.off)
	}
	c.unread([]byte{'a', 'b'})
	if c.off != 0 {
		t.Fatalf("off after unread = %d, want 0", c.off)
	}
}

func Test_Cursor_LexemeRecording(t *testing.T) {
	c := newCursor(strings.NewReader("hello world"))
	c.read() // 'h' before recording starts
	c.begin()
	for i := 0; i < 4; i++ {
		c.read()
	}
	off, lex := c.lexeme()
	if off != 1 || lex != "ello" {
		t.Fatalf("lexeme = (%d, %q), want (1, %q)", off, lex, "ello")
	}
}

func Test_Cursor_LexemeRecording_UnreadTruncates(t *testing.T) {
	c := newCursor(strings.NewReader("abcdef"))
	c.begin()
	var buf []byte
	for i := 0; i < 4; i++ {
		buf = append(buf, byte(c.read()))
	}
	c.unread(buf[2:]) // give back "cd"
	off, lex := c.lexeme()
	if off != 0 || lex != "ab" {
		t.Fatalf("lexeme = (%d, %q), want (0, %q)", off, lex, "ab")
	}
	if c.read() != 'c' {
		t.Fatal("unread bytes lost")
	}
}
