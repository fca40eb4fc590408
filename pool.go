package simdsql

import "sync"

var tokenPool = sync.Pool{
	New: func() interface{} {
		return make([]Token, 0, 64)
	},
}

// getTokenSlice returns an empty token slice with at least the given
// capacity, reusing a pooled backing array when it is large enough.
func getTokenSlice(capacity int) []Token {
	tokens := tokenPool.Get().([]Token)
	if cap(tokens) < capacity {
		return make([]Token, 0, capacity)
	}
	return tokens[:0]
}

// PutTokens returns a slice obtained from Tokenize to the pool once
// the caller is done with the tokens. Optional; very large slices are
// not retained.
func PutTokens(tokens []Token) {
	if cap(tokens) > 4096 {
		return
	}
	tokenPool.Put(tokens[:0])
}
