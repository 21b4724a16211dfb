package masterfile

// TokenCursor is a bidirectional, read-only view over the whitespace-delimited
// tokens of one logical line. Field classification never moves the cursor
// (the predicates in classify.go are pure functions over the token slice);
// RDATA decoding consumes tokens by advancing it.
type TokenCursor struct {
	tokens []string
	pos    int
}

// NewTokenCursor returns a cursor positioned at the first token.
func NewTokenCursor(tokens []string) *TokenCursor {
	return &TokenCursor{tokens: tokens}
}

// Valid reports whether the cursor points at a token.
func (c *TokenCursor) Valid() bool {
	return c.pos >= 0 && c.pos < len(c.tokens)
}

// Current returns the token under the cursor, or "" when invalid.
func (c *TokenCursor) Current() string {
	if !c.Valid() {
		return ""
	}
	return c.tokens[c.pos]
}

// Next advances the cursor one token and reports whether it is still valid.
func (c *TokenCursor) Next() bool {
	c.pos++
	return c.Valid()
}

// Prev steps the cursor back one token and reports whether it is still valid.
func (c *TokenCursor) Prev() bool {
	c.pos--
	return c.Valid()
}

// Take returns the current token and advances past it.
func (c *TokenCursor) Take() (string, bool) {
	if !c.Valid() {
		return "", false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}

// Pos returns the cursor's position within the line.
func (c *TokenCursor) Pos() int {
	return c.pos
}

// Len returns the total number of tokens in the line.
func (c *TokenCursor) Len() int {
	return len(c.tokens)
}

// Remaining returns the number of tokens from the cursor to end of line.
func (c *TokenCursor) Remaining() int {
	if c.pos >= len(c.tokens) {
		return 0
	}
	return len(c.tokens) - c.pos
}

// Rest returns a copy of the tokens from the cursor to end of line and
// advances the cursor past them.
func (c *TokenCursor) Rest() []string {
	if !c.Valid() {
		return nil
	}
	rest := append([]string(nil), c.tokens[c.pos:]...)
	c.pos = len(c.tokens)
	return rest
}
