// Package simdsql is a SIMD-accelerated SQL tokenizer.
//
// It consumes an immutable byte buffer and produces an ordered stream
// of tokens annotated with a category, a zero-copy slice of the input,
// a 1-based line/column position, and, for reserved words, a keyword
// id. Whitespace skipping runs on the widest vector strategy the host
// CPU supports, selected once per process at first use.
//
// The tokenizer is total: every byte sequence yields a well-defined
// token stream and there is no error path.
package simdsql

import (
	"github.com/biggeezerdevelopment/simdsql-go/internal/simd"
)

// Tokenize returns the full token sequence for data. Tokens borrow
// data; they are valid only while it is.
func Tokenize(data []byte) []Token {
	return New(data).Tokenize()
}

// SimdLevel returns the name of the vector strategy active for this
// process.
func SimdLevel() string {
	return simd.Active().Level().String()
}
