// Package ascii provides named byte-stream parsers for common ASCII
// classes. Everything here is a thin wrapper over the core matchers; no
// new engine semantics live in this package.
package ascii

import (
	"fmt"
	"unicode"

	p "github.com/robbert229/parsing"
)

var (
	digit    = p.Range[byte]('0', '9')
	hexDigit = p.Union(digit, p.Range[byte]('a', 'f'), p.Range[byte]('A', 'F'))
	alpha    = p.Union(p.Range[byte]('a', 'z'), p.Range[byte]('A', 'Z'))
	alnum    = p.Union(alpha, digit)
	inline   = p.Union(p.One[byte](' '), p.One[byte]('\t'))
	anySpace = p.Pred[byte](func(b byte) bool {
		return unicode.IsSpace(rune(b))
	})
)

var (
	// Digit1 matches one or more ASCII decimal digits; Digit0 allows none.
	Digit1 = p.Named("digits", p.TakeWhile1(digit))
	Digit0 = p.TakeWhile(0, 0, digit)

	// HexDigit1 matches one or more hex digits of either case.
	HexDigit1 = p.Named("hex digits", p.TakeWhile1(hexDigit))
	HexDigit0 = p.TakeWhile(0, 0, hexDigit)

	Alpha1 = p.Named("letters", p.TakeWhile1(alpha))
	Alpha0 = p.TakeWhile(0, 0, alpha)

	AlphaNumeric1 = p.Named("letters or digits", p.TakeWhile1(alnum))
	AlphaNumeric0 = p.TakeWhile(0, 0, alnum)

	// Space matches spaces and tabs only; Multispace any whitespace,
	// newlines included.
	Space1      = p.Named("whitespace", p.TakeWhile1(inline))
	Space0      = p.TakeWhile(0, 0, inline)
	Multispace1 = p.Named("whitespace", p.TakeWhile1(anySpace))
	Multispace0 = p.TakeWhile(0, 0, anySpace)

	Newline = p.OneOf(p.One[byte]('\n'))
	Tab     = p.OneOf(p.One[byte]('\t'))
	Crlf    = p.Tag([]byte("\r\n"))

	// LineEnding matches "\r\n" or "\n".
	LineEnding = p.Named("line ending", p.Alt(p.Tag([]byte("\r\n")), p.Tag([]byte("\n"))))
)

// Bytes matches the literal string bs.
func Bytes(bs string) p.Parser[byte, []byte] {
	return p.Tag([]byte(bs))
}

// Byte matches the single byte b.
func Byte(b byte) p.Parser[byte, byte] {
	return p.OneOf(p.One(b))
}

// BytesFold matches bs ignoring ASCII case, yielding the input as seen.
func BytesFold(bs string) p.Parser[byte, []byte] {
	ref := []byte(bs)
	expected := fmt.Sprintf("%q (any case)", bs)
	return p.ParseFunc[byte, []byte](func(s p.Stream[byte]) ([]byte, error) {
		got := s.Peek(len(ref))
		if len(got) < len(ref) {
			if !s.Complete() {
				return nil, &p.Incomplete{Needed: len(ref) - len(got)}
			}
			return nil, &p.Failure{Offset: s.Offset(), Expected: expected}
		}
		for i, b := range ref {
			if lower(got[i]) != lower(b) {
				return nil, &p.Failure{Offset: s.Offset(), Expected: expected}
			}
		}
		s.Advance(len(ref))
		return got, nil
	})
}

func lower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// Location converts a byte offset into 1-based line and column, counting
// '\n' as the line terminator. Handy for rendering SyntaxError offsets.
func Location(input []byte, off int) (line, col int) {
	line, col = 1, 1
	if off > len(input) {
		off = len(input)
	}
	for _, b := range input[:off] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}
