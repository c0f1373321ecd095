package parsing

import (
	"strings"

	"github.com/pkg/errors"
)

// Seq applies each parser in order and collects the outputs. A
// recoverable or incomplete failure anywhere in the sequence rewinds the
// stream to where the sequence began.
func Seq[T Token, O any](ps ...Parser[T, O]) Parser[T, []O] {
	return ParseFunc[T, []O](func(s Stream[T]) ([]O, error) {
		cp := s.Checkpoint()
		out := make([]O, 0, len(ps))
		for _, p := range ps {
			o, err := Apply(p, s)
			if err != nil {
				if !IsFatal(err) {
					s.Restore(cp)
				}
				return nil, err
			}
			out = append(out, o)
		}
		return out, nil
	})
}

// Alt tries each alternative from the same position, returning the first
// match. Fatal and incomplete outcomes propagate without trying further
// alternatives. Each alternative rewinds its own recoverable failure, so
// every attempt starts from the same position.
func Alt[T Token, O any](ps ...Parser[T, O]) Parser[T, O] {
	return ParseFunc[T, O](func(s Stream[T]) (O, error) {
		var zero O
		expected := make([]string, 0, len(ps))
		for _, p := range ps {
			o, err := Apply(p, s)
			if err == nil || IsFatal(err) {
				return o, err
			}
			if _, ok := NeedMore(err); ok {
				return zero, err
			}
			var f *Failure
			if !errors.As(err, &f) {
				return zero, err
			}
			expected = append(expected, f.Expected)
		}
		return zero, &Failure{Offset: s.Offset(), Expected: strings.Join(expected, " or ")}
	})
}

// Opt turns a recoverable failure of p into a nil output.
func Opt[T Token, O any](p Parser[T, O]) Parser[T, *O] {
	return ParseFunc[T, *O](func(s Stream[T]) (*O, error) {
		o, err := Apply(p, s)
		switch {
		case err == nil:
			return &o, nil
		case IsRecoverable(err):
			return nil, nil
		}
		return nil, err
	})
}

// Repeat applies p between min and max times, collecting outputs.
// max == 0 means unbounded. Fewer than min matches is recoverable and
// rewinds everything; an unbounded p that matches without consuming
// panics rather than loop forever.
func Repeat[T Token, O any](min, max int, p Parser[T, O]) Parser[T, []O] {
	return ParseFunc[T, []O](func(s Stream[T]) ([]O, error) {
		cp := s.Checkpoint()
		var out []O
		for i := 0; max == 0 || i < max; i++ {
			before := s.Offset()
			o, err := Apply(p, s)
			if err != nil {
				if IsFatal(err) {
					return nil, err
				}
				if _, ok := NeedMore(err); ok {
					s.Restore(cp)
					return nil, err
				}
				var f *Failure
				if !errors.As(err, &f) {
					return nil, err
				}
				if i < min {
					s.Restore(cp)
					return nil, f
				}
				break
			}
			if max == 0 && s.Offset() == before {
				panic("no advance")
			}
			out = append(out, o)
		}
		return out, nil
	})
}

func Star[T Token, O any](p Parser[T, O]) Parser[T, []O] {
	return Repeat(0, 0, p)
}

func Plus[T Token, O any](p Parser[T, O]) Parser[T, []O] {
	return Repeat(1, 0, p)
}

// Map transforms the output of p with f.
func Map[T Token, A, B any](p Parser[T, A], f func(A) B) Parser[T, B] {
	return ParseFunc[T, B](func(s Stream[T]) (B, error) {
		var zero B
		a, err := Apply(p, s)
		if err != nil {
			return zero, err
		}
		return f(a), nil
	})
}

// Preceded matches pre then p, yielding only p's output.
func Preceded[T Token, O1, O2 any](pre Parser[T, O1], p Parser[T, O2]) Parser[T, O2] {
	return ParseFunc[T, O2](func(s Stream[T]) (O2, error) {
		var zero O2
		cp := s.Checkpoint()
		if _, err := Apply(pre, s); err != nil {
			if !IsFatal(err) {
				s.Restore(cp)
			}
			return zero, err
		}
		o, err := Apply(p, s)
		if err != nil {
			if !IsFatal(err) {
				s.Restore(cp)
			}
			return zero, err
		}
		return o, nil
	})
}

// Terminated matches p then post, yielding only p's output.
func Terminated[T Token, O1, O2 any](p Parser[T, O1], post Parser[T, O2]) Parser[T, O1] {
	return ParseFunc[T, O1](func(s Stream[T]) (O1, error) {
		var zero O1
		cp := s.Checkpoint()
		o, err := Apply(p, s)
		if err != nil {
			if !IsFatal(err) {
				s.Restore(cp)
			}
			return zero, err
		}
		if _, err := Apply(post, s); err != nil {
			if !IsFatal(err) {
				s.Restore(cp)
			}
			return zero, err
		}
		return o, nil
	})
}

// Delimited matches open, p, end, yielding only p's output.
func Delimited[T Token, A, O, B any](open Parser[T, A], p Parser[T, O], end Parser[T, B]) Parser[T, O] {
	return Preceded(open, Terminated(p, end))
}

// Cut promotes a recoverable failure of p into a fatal one: once the
// input has committed to this branch, no alternative should be tried.
func Cut[T Token, O any](p Parser[T, O]) Parser[T, O] {
	return ParseFunc[T, O](func(s Stream[T]) (O, error) {
		o, err := Apply(p, s)
		if err != nil {
			var f *Failure
			if errors.As(err, &f) {
				return o, NewSyntaxError(f.Offset, errors.Errorf("expected %s", f.Expected))
			}
		}
		return o, err
	})
}

// Named gives p a descriptive name, used as the expected-input text on
// recoverable failures and in the trail of fatal ones.
func Named[T Token, O any](name string, p Parser[T, O]) Parser[T, O] {
	return namedParser[T, O]{name: name, p: p}
}

type namedParser[T Token, O any] struct {
	name string
	p    Parser[T, O]
}

func (np namedParser[T, O]) Name() string {
	return np.name
}

func (np namedParser[T, O]) Parse(s Stream[T]) (O, error) {
	o, err := Apply(np.p, s)
	if err != nil {
		var f *Failure
		if errors.As(err, &f) {
			return o, &Failure{Offset: f.Offset, Expected: np.name}
		}
	}
	return o, err
}
