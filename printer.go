package scanner

import (
	"bufio"
	"fmt"
	"io"
)

// Record returns the token's output record without the trailing newline,
// e.g. `REWD: if` or `MC: ERROR: missing */`.
func Record(t *Token) string {
	return fmt.Sprintf("%s: %s", t.Class, t.Payload())
}

// WriteToken appends one record line to w.
func WriteToken(w io.Writer, t *Token) error {
	_, err := fmt.Fprintf(w, "%s\n", Record(t))
	return err
}

// WriteTokens writes one record line per token through a buffered writer.
func WriteTokens(w io.Writer, toks []Token) error {
	bw := bufio.NewWriter(w)
	for i := range toks {
		if err := WriteToken(bw, &toks[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}
