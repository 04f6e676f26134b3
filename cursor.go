package scanner

import (
	"bufio"
	"io"
)

// eof is the end-of-input sentinel returned by read/peek. It is outside the
// byte range so it can never be confused with input data.
const eof = -1

// cursor is a position-addressable byte source with multi-byte pushback.
//
// The underlying reader only guarantees single-byte unreads, so pushback is
// buffered explicitly: pend holds bytes returned by unread, consulted before
// the reader on every read. Pushback depth is unbounded, which is what lets
// recognizers read several bytes ahead (a keyword, a two-byte operator) and
// fully undo the read when the match fails.
type cursor struct {
	r    *bufio.Reader
	pend []byte // pend[0] is the next byte to read
	off  int    // absolute offset of the next byte

	// lexeme recording, so committed tokens carry their exact consumed span
	rec    []byte
	recOn  bool
	recOff int
}

func newCursor(r io.Reader) *cursor {
	return &cursor{r: bufio.NewReader(r)}
}

// peek returns the next byte without consuming it, or eof.
func (c *cursor) peek() int {
	if len(c.pend) > 0 {
		return int(c.pend[0])
	}
	b, err := c.r.ReadByte()
	if err != nil {
		return eof
	}
	c.pend = append(c.pend, b)
	return int(b)
}

// read consumes and returns the next byte, or eof.
func (c *cursor) read() int {
	var b byte
	if len(c.pend) > 0 {
		b = c.pend[0]
		c.pend = c.pend[1:]
	} else {
		var err error
		b, err = c.r.ReadByte()
		if err != nil {
			return eof
		}
	}
	c.off++
	if c.recOn {
		c.rec = append(c.rec, b)
	}
	return int(b)
}

// unread pushes s back so that subsequent reads reproduce it in order.
// s must be the bytes most recently read, in the order they were read.
func (c *cursor) unread(s []byte) {
	if len(s) == 0 {
		return
	}
	pend := make([]byte, 0, len(s)+len(c.pend))
	pend = append(pend, s...)
	pend = append(pend, c.pend...)
	c.pend = pend
	c.off -= len(s)
	if c.recOn {
		n := len(s)
		if n > len(c.rec) {
			n = len(c.rec)
		}
		c.rec = c.rec[:len(c.rec)-n]
	}
}

func (c *cursor) unreadByte(b byte) {
	c.unread([]byte{b})
}

// begin starts lexeme recording at the current position.
func (c *cursor) begin() {
	c.recOn = true
	c.rec = c.rec[:0]
	c.recOff = c.off
}

// lexeme stops recording and returns the offset and literal text of the
// bytes consumed since begin.
func (c *cursor) lexeme() (int, string) {
	c.recOn = false
	return c.recOff, string(c.rec)
}
