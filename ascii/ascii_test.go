package ascii

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	p "github.com/robbert229/parsing"
)

func TestHexDigit1(t *testing.T) {
	s := p.NewBuffer([]byte("1a2b Hello"))
	out, err := p.Apply(HexDigit1, s)
	require.NoError(t, err)
	assert.Equal(t, []byte("1a2b"), out)
	assert.Equal(t, []byte(" Hello"), s.Rest())

	s = p.NewBuffer([]byte("Z"))
	_, err = p.Apply(HexDigit1, s)
	assert.True(t, p.IsRecoverable(err))
	assert.Equal(t, []byte("Z"), s.Rest())
}

func TestDigits(t *testing.T) {
	s := p.NewBuffer([]byte("123abc"))
	out, err := p.Apply(Digit1, s)
	require.NoError(t, err)
	assert.Equal(t, []byte("123"), out)

	out, err = p.Apply(Digit0, s)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, []byte("abc"), s.Rest())
}

func TestBytesAndByte(t *testing.T) {
	s := p.NewBuffer([]byte("0x1a2b Hello"))
	out, err := p.Apply(Bytes("0x"), s)
	require.NoError(t, err)
	assert.Equal(t, []byte("0x"), out)

	b, err := p.Apply(Byte('1'), s)
	require.NoError(t, err)
	assert.Equal(t, byte('1'), b)
	assert.Equal(t, []byte("a2b Hello"), s.Rest())
}

func TestLineEnding(t *testing.T) {
	s := p.NewBuffer([]byte("\r\nx"))
	out, err := p.Apply(LineEnding, s)
	require.NoError(t, err)
	assert.Equal(t, []byte("\r\n"), out)

	s = p.NewBuffer([]byte("\nx"))
	out, err = p.Apply(LineEnding, s)
	require.NoError(t, err)
	assert.Equal(t, []byte("\n"), out)

	// A lone carriage return on a growing stream could still become a
	// "\r\n".
	partial := p.NewPartial([]byte("\r"))
	_, err = p.Apply(LineEnding, partial)
	_, ok := p.NeedMore(err)
	assert.True(t, ok)
}

func TestMultispace(t *testing.T) {
	s := p.NewBuffer([]byte(" \t\r\n end"))
	out, err := p.Apply(Multispace1, s)
	require.NoError(t, err)
	assert.Equal(t, []byte(" \t\r\n "), out)
	assert.Equal(t, []byte("end"), s.Rest())
}

func TestBytesFold(t *testing.T) {
	s := p.NewBuffer([]byte("HeLLo!"))
	out, err := p.Apply(BytesFold("hello"), s)
	require.NoError(t, err)
	assert.Equal(t, []byte("HeLLo"), out)
	assert.Equal(t, []byte("!"), s.Rest())

	s = p.NewBuffer([]byte("help"))
	_, err = p.Apply(BytesFold("hello"), s)
	assert.True(t, p.IsRecoverable(err))
	assert.Equal(t, 0, s.Offset())
}

func TestLocation(t *testing.T) {
	input := []byte("ab\ncde\nf")
	line, col := Location(input, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = Location(input, 4)
	assert.Equal(t, 2, line)
	assert.Equal(t, 2, col)

	line, col = Location(input, len(input))
	assert.Equal(t, 3, line)
	assert.Equal(t, 2, col)

	// Out of range clamps to the end.
	line, col = Location(input, 100)
	assert.Equal(t, 3, line)
	assert.Equal(t, 2, col)
}
