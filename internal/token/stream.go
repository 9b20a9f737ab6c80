package token

// Stream is a forward cursor over a pre-lexed token slice with arbitrary
// lookahead. Reads past the end keep returning the final EOF token.
type Stream struct {
	tokens []Token
	pos    int
}

func NewStream(tokens []Token) *Stream {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		tokens = append(tokens, Token{Type: EOF})
	}
	return &Stream{tokens: tokens}
}

// Next consumes and returns the next token.
func (s *Stream) Next() Token {
	tok := s.tokens[s.pos]
	if s.pos < len(s.tokens)-1 {
		s.pos++
	}
	return tok
}

// Peek returns up to n upcoming tokens without consuming them. The slice is
// padded with the EOF token when fewer than n remain.
func (s *Stream) Peek(n int) []Token {
	out := make([]Token, 0, n)
	for i := 0; i < n; i++ {
		idx := s.pos + i
		if idx >= len(s.tokens) {
			idx = len(s.tokens) - 1
		}
		out = append(out, s.tokens[idx])
	}
	return out
}

// Len reports the number of tokens remaining, including the trailing EOF.
func (s *Stream) Len() int {
	return len(s.tokens) - s.pos
}
