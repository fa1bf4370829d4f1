package scanner

import "sync"

// Slices grown past this are left to the garbage collector.
const maxPooledTokens = 1024

var tokenPool = sync.Pool{
	New: func() any {
		s := make([]Token, 0, 64)
		return &s
	},
}

func getTokenSlice(hint int) []Token {
	p := tokenPool.Get().(*[]Token)
	if cap(*p) < hint {
		tokenPool.Put(p)
		return make([]Token, 0, hint)
	}
	return (*p)[:0]
}

// PutTokenSlice hands a slice returned by Tokenize back for reuse. Neither
// the slice nor its tokens may be used afterwards.
func PutTokenSlice(tokens []Token) {
	if tokens == nil || cap(tokens) > maxPooledTokens {
		return
	}
	tokens = tokens[:0]
	tokenPool.Put(&tokens)
}
