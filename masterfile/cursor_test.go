package masterfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenCursorNavigation(t *testing.T) {
	t.Parallel()

	c := NewTokenCursor([]string{"www", "3600", "IN", "A", "192.0.2.1"})

	assert.True(t, c.Valid())
	assert.Equal(t, "www", c.Current())
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, 5, c.Remaining())

	assert.True(t, c.Next())
	assert.Equal(t, "3600", c.Current())
	assert.Equal(t, 1, c.Pos())

	assert.True(t, c.Prev())
	assert.Equal(t, "www", c.Current())

	assert.False(t, c.Prev())
	assert.False(t, c.Valid())
	assert.Equal(t, "", c.Current())
}

func TestTokenCursorTake(t *testing.T) {
	t.Parallel()

	c := NewTokenCursor([]string{"10", "mail.example.com."})

	tok, ok := c.Take()
	assert.True(t, ok)
	assert.Equal(t, "10", tok)

	tok, ok = c.Take()
	assert.True(t, ok)
	assert.Equal(t, "mail.example.com.", tok)

	_, ok = c.Take()
	assert.False(t, ok)
}

func TestTokenCursorRest(t *testing.T) {
	t.Parallel()

	c := NewTokenCursor([]string{"FUTURETYPE", "foo", "bar"})
	c.Next()

	rest := c.Rest()
	assert.Equal(t, []string{"foo", "bar"}, rest)
	assert.False(t, c.Valid())
	assert.Nil(t, c.Rest())
}

func TestTokenCursorEmpty(t *testing.T) {
	t.Parallel()

	c := NewTokenCursor(nil)
	assert.False(t, c.Valid())
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Next())
}
