package parsing

import "fmt"

// Tag matches the exact token sequence tag at the head of the stream and
// yields it. Shorter-than-tag input asks for the missing count while the
// stream may grow, and fails recoverably once it cannot.
func Tag[T Token](tag []T) Parser[T, []T] {
	return ParseFunc[T, []T](func(s Stream[T]) ([]T, error) {
		got := s.Peek(len(tag))
		if len(got) < len(tag) {
			if !s.Complete() {
				return nil, &Incomplete{Needed: len(tag) - len(got)}
			}
			return nil, &Failure{Offset: s.Offset(), Expected: tokensLabel(tag)}
		}
		for i := range tag {
			if got[i] != tag[i] {
				return nil, &Failure{Offset: s.Offset(), Expected: tokensLabel(tag)}
			}
		}
		s.Advance(len(tag))
		return got, nil
	})
}

// OneOf matches a single leading token belonging to set and yields it.
// An empty set is valid and never matches.
func OneOf[T Token](set TokenSet[T]) Parser[T, T] {
	return ParseFunc[T, T](func(s Stream[T]) (T, error) {
		var zero T
		got := s.Peek(1)
		if len(got) == 0 {
			if !s.Complete() {
				return zero, &Incomplete{Needed: 1}
			}
			return zero, &Failure{Offset: s.Offset(), Expected: "a matching token"}
		}
		if !set.Contains(got[0]) {
			return zero, &Failure{
				Offset:   s.Offset(),
				Expected: fmt.Sprintf("a matching token, got %s", tokenLabel(got[0])),
			}
		}
		s.Advance(1)
		return got[0], nil
	})
}

// TakeWhile matches a run of min to max tokens from set, maximal munch:
// scanning stops at the first token outside the set, at max, or at end
// of input, and never backs up within the run. max == 0 means unbounded.
// Reaching a finite max exactly as input runs out is a match, not a
// request for more input; an unbounded run cut short by a stream that
// may still grow is.
func TakeWhile[T Token](min, max int, set TokenSet[T]) Parser[T, []T] {
	if min < 0 || (max != 0 && max < min) {
		panic("take while bounds must satisfy 0 <= min <= max")
	}
	return ParseFunc[T, []T](func(s Stream[T]) ([]T, error) {
		k := 0
		for max == 0 || k < max {
			window := s.Peek(k + 1)
			if len(window) <= k {
				if !s.Complete() {
					return nil, &Incomplete{Needed: 1}
				}
				break
			}
			if !set.Contains(window[k]) {
				break
			}
			k++
		}
		if k < min {
			return nil, &Failure{
				Offset:   s.Offset(),
				Expected: fmt.Sprintf("at least %d matching tokens", min),
			}
		}
		out := s.Peek(k)
		s.Advance(k)
		return out, nil
	})
}

// TakeWhile1 is TakeWhile with min 1, the usual "one or more of a class".
func TakeWhile1[T Token](set TokenSet[T]) Parser[T, []T] {
	return TakeWhile(1, 0, set)
}

func tokensLabel[T Token](ts []T) string {
	if bs, ok := any(ts).([]byte); ok {
		return fmt.Sprintf("%q", bs)
	}
	return fmt.Sprintf("%v", ts)
}

func tokenLabel[T Token](t T) string {
	if b, ok := any(t).(byte); ok {
		return fmt.Sprintf("%q", b)
	}
	return fmt.Sprintf("%v", t)
}
