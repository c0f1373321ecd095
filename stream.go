package parsing

// Stream is a cursor over an ordered sequence of tokens. (Not necessarily
// just bytes.) Parsers advance it past whatever prefix they recognize;
// backtracking goes through Checkpoint/Restore only.
type Stream[T Token] interface {
	// Peek returns up to n leading tokens without advancing the cursor.
	// Fewer than n come back when the remaining input is shorter; whether
	// that is final is answered by Complete.
	Peek(n int) []T
	// Advance moves the cursor past n tokens. Advancing past input that
	// was never confirmed via Peek is a programmer error and panics.
	Advance(n int)
	// Checkpoint snapshots the cursor in O(1).
	Checkpoint() Checkpoint
	// Restore rewinds the cursor to a snapshot taken on this stream.
	Restore(cp Checkpoint)
	// Offset is the absolute cursor position from the start of input.
	Offset() int
	// Complete reports that no further input will ever arrive.
	Complete() bool
	// IsEmpty reports that no tokens remain and none will arrive.
	IsEmpty() bool
}

// Checkpoint is an opaque snapshot of a stream's cursor.
type Checkpoint struct {
	off int
}

// Buffer is a slice-backed Stream. A complete Buffer holds the whole
// input up front; a partial one may still grow via Feed, and matchers
// running out of tokens on it report Incomplete instead of failing.
type Buffer[T Token] struct {
	tokens  []T
	off     int
	partial bool
}

// NewBuffer returns a Buffer over a complete input.
func NewBuffer[T Token](tokens []T) *Buffer[T] {
	return &Buffer[T]{tokens: tokens}
}

// NewPartial returns a Buffer whose input may still grow. Append with
// Feed, then mark the end with Close once the source is drained.
func NewPartial[T Token](tokens []T) *Buffer[T] {
	return &Buffer[T]{tokens: tokens, partial: true}
}

func (b *Buffer[T]) Peek(n int) []T {
	rest := b.tokens[b.off:]
	if n > len(rest) {
		n = len(rest)
	}
	return rest[:n:n]
}

func (b *Buffer[T]) Advance(n int) {
	if n > len(b.tokens)-b.off {
		panic("advance past end of input")
	}
	b.off += n
}

func (b *Buffer[T]) Checkpoint() Checkpoint {
	return Checkpoint{off: b.off}
}

func (b *Buffer[T]) Restore(cp Checkpoint) {
	b.off = cp.off
}

func (b *Buffer[T]) Offset() int {
	return b.off
}

func (b *Buffer[T]) Complete() bool {
	return !b.partial
}

func (b *Buffer[T]) IsEmpty() bool {
	return b.off == len(b.tokens) && !b.partial
}

// Feed appends more input to a partial Buffer. The usual loop is: parse,
// get Incomplete, Feed, Restore the pre-parse checkpoint, parse again.
func (b *Buffer[T]) Feed(tokens ...T) {
	b.tokens = append(b.tokens, tokens...)
}

// Close marks the end of input. After Close an exhausted Buffer fails
// parsers instead of asking for more.
func (b *Buffer[T]) Close() {
	b.partial = false
}

// Rest returns the unconsumed suffix.
func (b *Buffer[T]) Rest() []T {
	return b.tokens[b.off:]
}
