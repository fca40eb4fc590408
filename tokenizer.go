package simdsql

import (
	"github.com/biggeezerdevelopment/simdsql-go/internal/simd"
)

// Tokenizer turns a SQL byte buffer into an ordered token stream. It
// borrows the input for its lifetime; the buffer must stay valid and
// unchanged while the tokenizer and any produced tokens are in use.
// A Tokenizer is single-use and not safe for concurrent use, but
// independent tokenizers run fully in parallel.
type Tokenizer struct {
	input []byte
	pos   int
	line  uint32
	col   uint32
	proc  simd.Processor
}

// New creates a tokenizer over the given input.
func New(input []byte) *Tokenizer {
	return newWithProcessor(input, simd.Active())
}

// newWithProcessor pins the tokenizer to a specific vector strategy.
// Consistency tests use it to run every level over the same input.
func newWithProcessor(input []byte, p simd.Processor) *Tokenizer {
	return &Tokenizer{input: input, line: 1, col: 1, proc: p}
}

// SimdLevel returns the name of the vector strategy in use, one of
// "AVX-512", "AVX2", "SSE4.2", "NEON", "Scalar". Diagnostic only; the
// token stream is identical across levels.
func (t *Tokenizer) SimdLevel() string {
	return t.proc.Level().String()
}

// Tokenize produces the full token sequence for the input. It never
// fails: unterminated strings and comments, unknown bytes, and invalid
// operator sequences all resolve to well-defined tokens. Whitespace is
// skipped, never emitted. The returned tokens borrow the input buffer.
func (t *Tokenizer) Tokenize() []Token {
	tokens := getTokenSlice(len(t.input)/8 + 1)

	for t.pos < len(t.input) {
		if skip := t.proc.SkipWhitespace(t.input[t.pos:]); skip > 0 {
			t.advance(skip)
		}
		if t.pos >= len(t.input) {
			break
		}

		tok := t.next()
		if tok.Type == TokenEOF {
			break
		}
		if tok.Type != TokenWhitespace {
			tokens = append(tokens, tok)
		}
	}

	return tokens
}

// advance consumes count bytes, maintaining the line/column invariant:
// a newline bumps the line and resets the column, any other byte bumps
// the column.
func (t *Tokenizer) advance(count int) {
	for i := 0; i < count; i++ {
		if t.input[t.pos] == '\n' {
			t.line++
			t.col = 1
		} else {
			t.col++
		}
		t.pos++
	}
}

func (t *Tokenizer) next() Token {
	if t.pos >= len(t.input) {
		return Token{Type: TokenEOF, Keyword: KwUnknown, Line: t.line, Column: t.col}
	}

	start, line, col := t.pos, t.line, t.col
	c := t.input[t.pos]

	switch {
	case isIdentStart(c):
		return t.scanIdentOrKeyword(start, line, col)
	case isDigit(c):
		return t.scanNumber(start, line, col)
	case isQuote(c):
		return t.scanString(start, line, col, c)
	case c == '-' && t.pos+1 < len(t.input) && t.input[t.pos+1] == '-':
		return t.scanLineComment(start, line, col)
	case c == '/' && t.pos+1 < len(t.input) && t.input[t.pos+1] == '*':
		return t.scanBlockComment(start, line, col)
	}
	return t.scanOperatorOrDelimiter(start, line, col)
}

func (t *Tokenizer) scanIdentOrKeyword(start int, line, col uint32) Token {
	for t.pos < len(t.input) && isIdentCont(t.input[t.pos]) {
		t.pos++
		t.col++
	}

	value := t.input[start:t.pos]
	kw := lookupKeyword(value)
	typ := TokenIdentifier
	if kw != KwUnknown {
		typ = TokenKeyword
	}
	return Token{Type: typ, Value: value, Keyword: kw, Line: line, Column: col}
}

// scanNumber consumes a digit run with at most one decimal point and
// at most one exponent marker. It is deliberately lax: "1.", "1e" and
// "1e+" are single Number tokens; the parser validates.
func (t *Tokenizer) scanNumber(start int, line, col uint32) Token {
	hasDot := false
	hasExp := false

	for t.pos < len(t.input) {
		c := t.input[t.pos]
		switch {
		case isDigit(c):
			t.pos++
			t.col++
		case c == '.' && !hasDot && !hasExp:
			hasDot = true
			t.pos++
			t.col++
		case (c == 'e' || c == 'E') && !hasExp:
			hasExp = true
			t.pos++
			t.col++
			if t.pos < len(t.input) {
				if s := t.input[t.pos]; s == '+' || s == '-' {
					t.pos++
					t.col++
				}
			}
		default:
			return Token{Type: TokenNumber, Value: t.input[start:t.pos], Keyword: KwUnknown, Line: line, Column: col}
		}
	}
	return Token{Type: TokenNumber, Value: t.input[start:t.pos], Keyword: KwUnknown, Line: line, Column: col}
}

// scanString consumes a quoted literal delimited by quote. A doubled
// quote stays inside the string. An unterminated string runs to end of
// input and is still emitted. The value keeps both delimiters when
// present.
func (t *Tokenizer) scanString(start int, line, col uint32, quote byte) Token {
	t.pos++
	t.col++

	for t.pos < len(t.input) {
		c := t.input[t.pos]
		if c == quote {
			if t.pos+1 < len(t.input) && t.input[t.pos+1] == quote {
				t.pos += 2
				t.col += 2
				continue
			}
			t.pos++
			t.col++
			break
		}
		if c == '\n' {
			t.pos++
			t.line++
			t.col = 1
		} else {
			t.pos++
			t.col++
		}
	}

	return Token{Type: TokenString, Value: t.input[start:t.pos], Keyword: KwUnknown, Line: line, Column: col}
}

// scanLineComment consumes "--" through the next newline inclusive, or
// to end of input.
func (t *Tokenizer) scanLineComment(start int, line, col uint32) Token {
	t.pos += 2
	t.col += 2

	for t.pos < len(t.input) {
		if t.input[t.pos] == '\n' {
			t.pos++
			t.line++
			t.col = 1
			break
		}
		t.pos++
		t.col++
	}

	return Token{Type: TokenComment, Value: t.input[start:t.pos], Keyword: KwUnknown, Line: line, Column: col}
}

// scanBlockComment consumes "/*" through the next "*/" inclusive.
// Block comments do not nest. An unterminated comment runs to end of
// input and is still emitted.
func (t *Tokenizer) scanBlockComment(start int, line, col uint32) Token {
	t.pos += 2
	t.col += 2

	for t.pos < len(t.input) {
		if t.input[t.pos] == '*' && t.pos+1 < len(t.input) && t.input[t.pos+1] == '/' {
			t.pos += 2
			t.col += 2
			break
		}
		if t.input[t.pos] == '\n' {
			t.pos++
			t.line++
			t.col = 1
		} else {
			t.pos++
			t.col++
		}
	}

	return Token{Type: TokenComment, Value: t.input[start:t.pos], Keyword: KwUnknown, Line: line, Column: col}
}

// scanOperatorOrDelimiter consumes one byte and extends to exactly two
// when the pair is in the recognized set. Longer runs split greedily:
// "===" is "==" then "=", "<<<" is "<<" then "<".
func (t *Tokenizer) scanOperatorOrDelimiter(start int, line, col uint32) Token {
	c := t.input[t.pos]
	t.pos++
	t.col++

	typ := TokenOperator
	if isDelimiter(c) {
		typ = TokenDelimiter
	}

	if t.pos < len(t.input) && isOperatorPair(c, t.input[t.pos]) {
		t.pos++
		t.col++
	}

	return Token{Type: typ, Value: t.input[start:t.pos], Keyword: KwUnknown, Line: line, Column: col}
}

// isOperatorPair reports whether the two bytes form one of the
// recognized two-byte operators: <= <> << >= >> != == || && ::
func isOperatorPair(c, next byte) bool {
	switch c {
	case '<':
		return next == '=' || next == '>' || next == '<'
	case '>':
		return next == '=' || next == '>'
	case '!', '=':
		return next == '='
	case '|':
		return next == '|'
	case '&':
		return next == '&'
	case ':':
		return next == ':'
	}
	return false
}
