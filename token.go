package scanner

// TokenClass is the lexical class of a token.
type TokenClass int

const (
	IDEN TokenClass = iota // identifier
	REWD                   // reserved word
	INTE                   // integer literal
	FLOT                   // float literal
	CHAR                   // char literal
	STR                    // string literal
	OPER                   // operator
	SPEC                   // special symbol
	SC                     // single-line comment
	MC                     // multi-line comment
	PREP                   // preprocessor directive
)

var classTags = [...]string{
	IDEN: "IDEN",
	REWD: "REWD",
	INTE: "INTE",
	FLOT: "FLOT",
	CHAR: "CHAR",
	STR:  "STR",
	OPER: "OPER",
	SPEC: "SPEC",
	SC:   "SC",
	MC:   "MC",
	PREP: "PREP",
}

// String returns the output tag for the class, e.g. "REWD", "FLOT".
func (c TokenClass) String() string {
	if c < 0 || int(c) >= len(classTags) {
		return "???"
	}
	return classTags[c]
}

// Token is one classified lexeme. Tokens are created once, on recognizer
// commit, and never mutated afterwards.
//
// Text is the payload: decoded content for char/string literals, the content
// minus delimiters for comments and preprocessor directives, the literal
// lexeme otherwise. Err, when non-empty, marks an error-annotated token
// (unterminated literal, malformed directive, ...); scanning still continues
// after such a token.
//
// Off and Raw record the exact consumed span of the source: Raw is the
// literal byte run the recognizer consumed and Off its starting byte offset.
// Concatenating every Raw plus the skipped whitespace reproduces the input.
type Token struct {
	Line  int
	Class TokenClass
	Text  string
	Err   string
	Off   int
	Raw   string
}

// Payload is the text written after "CLASS: " in the output record. For an
// error-annotated token the description is appended after the payload, or
// stands alone when the payload is empty (e.g. "MC: ERROR: missing */").
func (t *Token) Payload() string {
	if t.Err == "" {
		return t.Text
	}
	if t.Text == "" {
		return "ERROR: " + t.Err
	}
	return t.Text + " ERROR: " + t.Err
}
