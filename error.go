package parsing

import (
	"fmt"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/pkg/errors"
)

// Parse attempts have three non-success outcomes, each a distinct error
// type: *Failure (recoverable, alternatives may be tried), *SyntaxError
// (fatal, stop trying alternatives), and *Incomplete (more input needed).
// A parser returning *Failure or *Incomplete has restored the stream to
// where it started; one returning *SyntaxError may leave it anywhere.

// Failure is a recoverable parse failure.
type Failure struct {
	Offset   int
	Expected string
}

func (e *Failure) Error() string {
	return fmt.Sprintf("expected %s at offset %d", e.Expected, e.Offset)
}

// Incomplete reports that the stream ran out of tokens before the parser
// could decide, and that more input may still arrive. It never escapes a
// parse over a complete stream.
type Incomplete struct {
	// Needed is the minimum number of further tokens required before the
	// parser could possibly succeed, or 0 when no bound is derivable.
	Needed int
}

func (e *Incomplete) Error() string {
	if e.Needed > 0 {
		return fmt.Sprintf("need at least %d more tokens", e.Needed)
	}
	return "need more input"
}

// SyntaxError is a definite syntax violation. It propagates past
// alternation up to the nearest recovery point, collecting a trail of
// the parsers it unwound through.
type SyntaxError struct {
	Offset int
	Err    error
	trail  []string
}

func NewSyntaxError(offset int, err error) *SyntaxError {
	return &SyntaxError{Offset: offset, Err: err}
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func (e *SyntaxError) addContext(name string) {
	e.trail = append(e.trail, name)
}

func (e *SyntaxError) Error() string {
	lines := []string{fmt.Sprintf("syntax error at offset %d", e.Offset)}
	if e.Err != nil {
		lines = append(lines, e.Err.Error())
	}
	for _, name := range e.trail {
		lines = append(lines, "while parsing "+name)
	}
	pad := ""
	for range iter.N(2) {
		pad += " "
	}
	for i := 1; i < len(lines); i++ {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

// IsRecoverable reports whether err allows trying another alternative.
func IsRecoverable(err error) bool {
	var f *Failure
	return errors.As(err, &f)
}

// IsFatal reports whether err forbids trying another alternative.
func IsFatal(err error) bool {
	var se *SyntaxError
	return errors.As(err, &se)
}

// NeedMore reports whether err is a request for more input, and the
// minimum token count requested (0 when unknown).
func NeedMore(err error) (int, bool) {
	var inc *Incomplete
	if errors.As(err, &inc) {
		return inc.Needed, true
	}
	return 0, false
}
