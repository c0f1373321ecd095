package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuffer(t *testing.T) {
	b := NewBuffer([]byte("abc"))
	assert.Equal(t, []byte("ab"), b.Peek(2))
	assert.Equal(t, []byte("abc"), b.Peek(5))
	assert.Equal(t, 0, b.Offset())
	assert.True(t, b.Complete())
	assert.False(t, b.IsEmpty())

	cp := b.Checkpoint()
	b.Advance(2)
	assert.Equal(t, 2, b.Offset())
	assert.Equal(t, []byte("c"), b.Rest())

	b.Restore(cp)
	assert.Equal(t, 0, b.Offset())
	assert.Equal(t, []byte("abc"), b.Rest())

	b.Advance(3)
	assert.True(t, b.IsEmpty())
	assert.Empty(t, b.Peek(1))
}

func TestBufferAdvancePastEnd(t *testing.T) {
	b := NewBuffer([]byte("ab"))
	assert.Panics(t, func() { b.Advance(3) })
}

func TestPartialBuffer(t *testing.T) {
	b := NewPartial([]byte("ab"))
	assert.False(t, b.Complete())
	b.Advance(2)
	// Exhausted but not empty: more input may arrive.
	assert.False(t, b.IsEmpty())

	b.Feed([]byte("cd")...)
	assert.Equal(t, []byte("cd"), b.Rest())

	b.Close()
	assert.True(t, b.Complete())
	b.Advance(2)
	assert.True(t, b.IsEmpty())
}
