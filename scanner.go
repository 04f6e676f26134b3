// scanner.go converts a sequence of characters into a sequence of tokens.
//
// There is one dedicated recognizer per token class. During an attempt, if
// the current character is accepted the cursor advances by one byte; when a
// partial match turns out not to be accepted, the recognizer pushes the read
// bytes back until the cursor is at the exact position it held on entry. A
// recognizer therefore either commits a token or leaves the input untouched.
//
// To get the next token the dispatcher tries the recognizers one by one in a
// fixed priority order. The order is load-bearing: comments and preprocessor
// directives must win before '/' and '#' are claimed by the operator rule,
// reserved words come before identifiers, and floats before integers (so
// "3.14" is not consumed as the integer 3).
package scanner

import (
	"io"
	"strings"
)

// Scanner is the driver loop: it skips inter-token whitespace while tracking
// line numbers and invokes the dispatcher for everything else.
type Scanner struct {
	cur         *cursor
	line        int
	interactive bool
}

// New returns a Scanner reading from r.
func New(r io.Reader) *Scanner {
	return &Scanner{cur: newCursor(r), line: 1}
}

// NewInteractive returns a Scanner for REPL use: input that ends inside an
// unterminated string, char literal or multi-line comment yields an
// *IncompleteError instead of an error-annotated token, so the caller can
// ask for a continuation line.
func NewInteractive(r io.Reader) *Scanner {
	s := New(r)
	s.interactive = true
	return s
}

// NewString returns a Scanner over an in-memory source.
func NewString(src string) *Scanner {
	return New(strings.NewReader(src))
}

/* ---------- driver loop ---------- */

// Scan returns the next token. It returns io.EOF at end of input, a
// recoverable *LexError when no recognizer accepts the current byte (the
// byte has been consumed, so calling Scan again makes progress), and an
// *IncompleteError in interactive mode.
func (s *Scanner) Scan() (*Token, error) {
	for {
		c := s.cur.peek()
		if c == eof {
			return nil, io.EOF
		}
		if !isWhitespace(byte(c)) {
			break
		}
		s.cur.read()
		// CR and LF each count, so a CRLF pair increments twice.
		// See DESIGN.md.
		if isNewline(byte(c)) {
			s.line++
		}
	}

	line := s.line
	s.cur.begin()
	for _, try := range recognizers {
		tok, err := try(s)
		if err != nil {
			return nil, err
		}
		if tok != nil {
			tok.Line = line
			tok.Off, tok.Raw = s.cur.lexeme()
			return tok, nil
		}
	}

	// Unrecognized byte. Consume it so the loop cannot stall.
	off := s.cur.off
	b := s.cur.read()
	return nil, &LexError{Line: line, Off: off, Byte: byte(b)}
}

// ScanAll scans the entire input, collecting tokens and the recoverable
// diagnostics encountered along the way. The returned error is nil unless
// the scanner runs in interactive mode and the input is incomplete.
func (s *Scanner) ScanAll() ([]Token, []*LexError, error) {
	var toks []Token
	var diags []*LexError
	for {
		tok, err := s.Scan()
		if err == io.EOF {
			return toks, diags, nil
		}
		if err != nil {
			if le, ok := err.(*LexError); ok {
				diags = append(diags, le)
				continue
			}
			return toks, diags, err
		}
		toks = append(toks, *tok)
	}
}

/* ---------- dispatcher ---------- */

// recognizers is the dispatch priority list. Each entry consumes from the
// shared cursor and either commits a token or restores the cursor unchanged.
var recognizers = []func(*Scanner) (*Token, error){
	(*Scanner).scanSingleComment,
	(*Scanner).scanMultiComment,
	(*Scanner).scanPreprocessor,
	(*Scanner).scanSpecialSymbol,
	(*Scanner).scanReservedWord,
	(*Scanner).scanCharLiteral,
	(*Scanner).scanStringLiteral,
	(*Scanner).scanFloatLiteral,
	(*Scanner).scanOperator,
	(*Scanner).scanIdentifier,
	(*Scanner).scanIntegerLiteral,
}

// matchWord reads exactly len(w) bytes and compares them to w. On any
// mismatch or short read everything consumed is pushed back.
func (s *Scanner) matchWord(w string) bool {
	buf := make([]byte, 0, len(w))
	for i := 0; i < len(w); i++ {
		c := s.cur.read()
		if c == eof {
			s.cur.unread(buf)
			return false
		}
		buf = append(buf, byte(c))
		if byte(c) != w[i] {
			s.cur.unread(buf)
			return false
		}
	}
	return true
}

/* ---------- comments ---------- */

func (s *Scanner) scanSingleComment() (*Token, error) {
	if !s.matchWord("//") {
		return nil, nil
	}
	var text []byte
	for {
		c := s.cur.peek()
		if c == eof || isNewline(byte(c)) {
			// The newline stays in the stream so the driver loop
			// counts it.
			break
		}
		s.cur.read()
		text = append(text, byte(c))
	}
	return &Token{Class: SC, Text: string(text)}, nil
}

func (s *Scanner) scanMultiComment() (*Token, error) {
	if !s.matchWord("/*") {
		return nil, nil
	}
	for {
		c := s.cur.read()
		if c == eof {
			if s.interactive {
				return nil, &IncompleteError{What: "comment"}
			}
			return &Token{Class: MC, Err: "missing */"}, nil
		}
		if byte(c) == '*' && s.cur.peek() == '/' {
			s.cur.read()
			return &Token{Class: MC}, nil
		}
	}
}

/* ---------- preprocessor directive ---------- */

const includeWord = "include"

// scanPreprocessor matches '#', optional whitespace, the word "include",
// optional whitespace, then a <...> or "..." header name. Only the
// word-is-not-include case fails the recognizer; every later deviation
// commits an error-annotated directive instead.
func (s *Scanner) scanPreprocessor() (*Token, error) {
	if s.cur.peek() != '#' {
		return nil, nil
	}
	consumed := []byte{'#'}
	s.cur.read()
	for {
		c := s.cur.peek()
		if c == eof || !isWhitespace(byte(c)) {
			break
		}
		s.cur.read()
		consumed = append(consumed, byte(c))
	}
	for i := 0; i < len(includeWord); i++ {
		c := s.cur.read()
		if c == eof {
			s.cur.unread(consumed)
			return nil, nil
		}
		consumed = append(consumed, byte(c))
		if byte(c) != includeWord[i] {
			s.cur.unread(consumed)
			return nil, nil
		}
	}
	for {
		c := s.cur.peek()
		if c == eof || !isWhitespace(byte(c)) {
			break
		}
		s.cur.read()
	}

	var close byte
	switch s.cur.peek() {
	case '<':
		close = '>'
	case '"':
		close = '"'
	default:
		return &Token{Class: PREP, Err: "missing opening delimiter"}, nil
	}
	s.cur.read()

	var content []byte
	for {
		c := s.cur.read()
		if c == eof || isNewline(byte(c)) {
			if c != eof {
				s.cur.unreadByte(byte(c))
			}
			return &Token{Class: PREP, Text: string(content), Err: "missing closing delimiter"}, nil
		}
		if byte(c) == close {
			return &Token{Class: PREP, Text: string(content)}, nil
		}
		content = append(content, byte(c))
	}
}

/* ---------- special symbols, reserved words, operators ---------- */

func (s *Scanner) scanSpecialSymbol() (*Token, error) {
	switch c := s.cur.peek(); c {
	case '{', '}', '(', ')', ';':
		s.cur.read()
		return &Token{Class: SPEC, Text: string(byte(c))}, nil
	}
	return nil, nil
}

// reservedWords is tried in order by exact-length read and byte comparison.
// There is no trailing-boundary check, so "iffy" lexes as the reserved word
// "if" followed by the identifier "fy", and "double" as "do" + "uble".
// See DESIGN.md.
var reservedWords = []string{
	"if", "else", "while", "for", "do", "switch", "case", "default",
	"continue", "int", "float", "double", "char", "break", "static",
	"extern", "auto", "register", "sizeof", "union", "struct", "enum",
	"return", "goto", "const",
}

func (s *Scanner) scanReservedWord() (*Token, error) {
	for _, w := range reservedWords {
		if s.matchWord(w) {
			return &Token{Class: REWD, Text: w}, nil
		}
	}
	return nil, nil
}

// operators is ordered longest-pattern-first so that ">>" wins over ">".
var operators = []string{
	">>", "<<", "++", "--", "+=", "-=", "*=", "/=", "%=", "&&", "||",
	"->", "==", ">=", "<=", "!=",
	"+", "-", "*", "/", "=", ",", "%", "!", "&", "[", "]", "|", "^",
	".", ">", "<", ":", "?",
}

func (s *Scanner) scanOperator() (*Token, error) {
	for _, op := range operators {
		if s.matchWord(op) {
			return &Token{Class: OPER, Text: op}, nil
		}
	}
	return nil, nil
}

/* ---------- char and string literals ---------- */

func (s *Scanner) scanCharLiteral() (*Token, error) {
	return s.scanQuoted('\'', CHAR, "char literal")
}

func (s *Scanner) scanStringLiteral() (*Token, error) {
	return s.scanQuoted('"', STR, "string literal")
}

// scanQuoted reads a delimited literal, decoding backslash escapes. A
// backslash immediately followed by a newline is a line continuation: the
// newline and any following whitespace are dropped from the content. A bare
// newline or end of input before the closing delimiter commits an
// error-annotated token rather than failing, so an unterminated literal is
// never retried as an operator.
func (s *Scanner) scanQuoted(delim byte, class TokenClass, what string) (*Token, error) {
	if s.cur.peek() != int(delim) {
		return nil, nil
	}
	s.cur.read()
	var text []byte
	for {
		c := s.cur.read()
		if c == eof {
			if s.interactive {
				return nil, &IncompleteError{What: what}
			}
			return &Token{Class: class, Text: string(text), Err: "missing closing " + string(delim)}, nil
		}
		if isNewline(byte(c)) {
			s.cur.unreadByte(byte(c))
			return &Token{Class: class, Text: string(text), Err: "missing closing " + string(delim)}, nil
		}
		if byte(c) == delim {
			tok := &Token{Class: class, Text: string(text)}
			if class == CHAR && len(text) == 0 {
				tok.Err = "empty char literal"
			}
			return tok, nil
		}
		if byte(c) == '\\' {
			n := s.cur.read()
			if n == eof {
				if s.interactive {
					return nil, &IncompleteError{What: what}
				}
				return &Token{Class: class, Text: string(text), Err: "missing closing " + string(delim)}, nil
			}
			if isNewline(byte(n)) {
				for {
					p := s.cur.peek()
					if p == eof || !isWhitespace(byte(p)) {
						break
					}
					s.cur.read()
				}
				continue
			}
			text = append(text, decodeEscape(byte(n)))
			continue
		}
		text = append(text, byte(c))
	}
}

/* ---------- numeric literals ---------- */

// scanFloatLiteral matches [+|-]? ( D+ '.' D* | D* '.' D+ ) with an optional
// (E|e) [+|-]? D+ suffix. Without the mandatory '.' the whole attempt is
// backtracked so the integer recognizer gets its turn. An exponent marker
// not followed by a digit is pushed back along with its sign, leaving the
// accepted mantissa as the token ("3.e" commits the float "3.").
func (s *Scanner) scanFloatLiteral() (*Token, error) {
	var lex []byte
	take := func() {
		c := s.cur.read()
		lex = append(lex, byte(c))
	}
	fail := func() (*Token, error) {
		s.cur.unread(lex)
		return nil, nil
	}

	c := s.cur.peek()
	if c == '+' || c == '-' {
		take()
		c = s.cur.peek()
	}
	intDigits := 0
	for c != eof && isDigit(byte(c)) {
		take()
		intDigits++
		c = s.cur.peek()
	}
	if c != '.' {
		return fail()
	}
	take()
	fracDigits := 0
	for {
		c = s.cur.peek()
		if c == eof || !isDigit(byte(c)) {
			break
		}
		take()
		fracDigits++
	}
	if intDigits == 0 && fracDigits == 0 {
		return fail()
	}

	if c == 'e' || c == 'E' {
		exp := []byte{byte(c)}
		s.cur.read()
		c = s.cur.peek()
		if c == '+' || c == '-' {
			s.cur.read()
			exp = append(exp, byte(c))
		}
		c = s.cur.peek()
		if c == eof || !isDigit(byte(c)) {
			s.cur.unread(exp)
		} else {
			lex = append(lex, exp...)
			for {
				c = s.cur.peek()
				if c == eof || !isDigit(byte(c)) {
					break
				}
				s.cur.read()
				lex = append(lex, byte(c))
			}
		}
	}
	return &Token{Class: FLOT, Text: string(lex)}, nil
}

// scanIntegerLiteral matches "0" alone, "0x"/"0X" with hex digits, "0" with
// octal digits, or a non-zero digit with a decimal run. A bare "0x" commits
// the integer 0 and pushes the 'x' back.
func (s *Scanner) scanIntegerLiteral() (*Token, error) {
	c := s.cur.peek()
	if c == eof || !isDigit(byte(c)) {
		return nil, nil
	}
	if c == '0' {
		s.cur.read()
		n := s.cur.peek()
		if n == 'x' || n == 'X' {
			x := byte(n)
			s.cur.read()
			var hex []byte
			for {
				p := s.cur.peek()
				if p == eof || !isHexDigit(byte(p)) {
					break
				}
				s.cur.read()
				hex = append(hex, byte(p))
			}
			if len(hex) == 0 {
				s.cur.unreadByte(x)
				return &Token{Class: INTE, Text: "0"}, nil
			}
			return &Token{Class: INTE, Text: "0" + string(x) + string(hex)}, nil
		}
		var oct []byte
		for {
			p := s.cur.peek()
			if p == eof || !isOctalDigit(byte(p)) {
				break
			}
			s.cur.read()
			oct = append(oct, byte(p))
		}
		return &Token{Class: INTE, Text: "0" + string(oct)}, nil
	}
	var dec []byte
	for {
		p := s.cur.peek()
		if p == eof || !isDigit(byte(p)) {
			break
		}
		s.cur.read()
		dec = append(dec, byte(p))
	}
	return &Token{Class: INTE, Text: string(dec)}, nil
}

/* ---------- identifiers ---------- */

func (s *Scanner) scanIdentifier() (*Token, error) {
	c := s.cur.peek()
	if c == eof || !(isAlpha(byte(c)) || isUnderscore(byte(c))) {
		return nil, nil
	}
	var text []byte
	for {
		c = s.cur.peek()
		if c == eof || !(isAlpha(byte(c)) || isDigit(byte(c)) || isUnderscore(byte(c))) {
			break
		}
		s.cur.read()
		text = append(text, byte(c))
	}
	return &Token{Class: IDEN, Text: string(text)}, nil
}
