// Package parsing provides small, composable parsers over generic token
// streams. A Parser recognizes some prefix of a Stream and yields a typed
// output; failures are classified as recoverable, fatal, or incomplete so
// that alternation, backtracking, and streaming input compose correctly.
package parsing

import (
	"reflect"

	"github.com/pkg/errors"
)

// Parser consumes some prefix of a stream and produces an output value.
// On success exactly the reported prefix has been consumed. On a
// recoverable or incomplete outcome the stream is back where it started;
// the parser does its own rollback.
type Parser[T Token, O any] interface {
	Parse(s Stream[T]) (O, error)
}

type ParseFunc[T Token, O any] func(Stream[T]) (O, error)

func (pf ParseFunc[T, O]) Parse(s Stream[T]) (O, error) {
	return pf(s)
}

// Namer is an optional interface for Parsers with custom names.
type Namer interface {
	Name() string
}

func ParserName(p any) string {
	if n, ok := p.(Namer); ok {
		return n.Name()
	}
	t := reflect.ValueOf(p).Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

// contextName is ParserName restricted to parsers worth mentioning in a
// fatal error trail. Anonymous ParseFunc values identify themselves via
// Named instead.
func contextName(p any) string {
	if n, ok := p.(Namer); ok {
		return n.Name()
	}
	t := reflect.ValueOf(p).Type()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() == reflect.Func {
		return ""
	}
	return t.Name()
}

// Apply invokes p on s. This is the one invocation path; combinators go
// through it so that fatal errors pick up their "while parsing" trail on
// the way out.
func Apply[T Token, O any](p Parser[T, O], s Stream[T]) (O, error) {
	o, err := p.Parse(s)
	if err != nil {
		var se *SyntaxError
		if errors.As(err, &se) {
			if name := contextName(p); name != "" {
				se.addContext(name)
			}
		}
	}
	return o, err
}

// Finish runs p against s and resolves the outcome for a top-level
// caller. Over a complete stream every non-success becomes a terminal
// *SyntaxError; an Incomplete over a partial stream passes through so
// the caller can feed more input and retry.
func Finish[T Token, O any](p Parser[T, O], s Stream[T]) (O, error) {
	o, err := Apply(p, s)
	if err == nil || IsFatal(err) {
		return o, err
	}
	if n, ok := NeedMore(err); ok {
		if !s.Complete() {
			return o, err
		}
		if n > 0 {
			return o, NewSyntaxError(s.Offset(), errors.Errorf("unexpected end of input, need at least %d more tokens", n))
		}
		return o, NewSyntaxError(s.Offset(), errors.New("unexpected end of input"))
	}
	var f *Failure
	if errors.As(err, &f) {
		return o, NewSyntaxError(f.Offset, errors.Errorf("expected %s", f.Expected))
	}
	return o, err
}
