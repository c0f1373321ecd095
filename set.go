package parsing

import "cmp"

// Token is the constraint on stream items. Ordering is required so that
// Range sets work; bytes and runes both qualify.
type Token interface {
	cmp.Ordered
}

// TokenSet classifies a single token as acceptable or not. Membership
// must be a pure function of the token value.
type TokenSet[T Token] interface {
	Contains(t T) bool
}

// Pred adapts a predicate function into a TokenSet.
type Pred[T Token] func(T) bool

func (p Pred[T]) Contains(t T) bool {
	return p(t)
}

type single[T Token] struct {
	t T
}

func (s single[T]) Contains(t T) bool {
	return t == s.t
}

// One is the TokenSet holding exactly one token.
func One[T Token](t T) TokenSet[T] {
	return single[T]{t: t}
}

type span[T Token] struct {
	lo, hi T
}

func (s span[T]) Contains(t T) bool {
	return s.lo <= t && t <= s.hi
}

// Range is the inclusive TokenSet [lo, hi].
func Range[T Token](lo, hi T) TokenSet[T] {
	return span[T]{lo: lo, hi: hi}
}

type union[T Token] []TokenSet[T]

func (u union[T]) Contains(t T) bool {
	for _, s := range u {
		if s.Contains(t) {
			return true
		}
	}
	return false
}

// Union combines sets. Union of nothing is valid and matches no token.
func Union[T Token](sets ...TokenSet[T]) TokenSet[T] {
	return union[T](sets)
}
