package scene

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// newlines maps CR and CRLF line endings to LF, the only line break the
// lexer accepts.
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// scanner walks the input with the same token rules as the lexer, to find
// the first rune the lexer would stop at. The lexer reports such a stop as
// a plain end of input.
type scanner struct {
	src   string
	pos   int
	width int
}

const eof rune = -1

func (s *scanner) next() rune {
	if s.pos >= len(s.src) {
		s.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(s.src[s.pos:])
	s.pos += w
	s.width = w
	return r
}

func (s *scanner) accept(valid string) bool {
	if strings.ContainsRune(valid, s.next()) {
		return true
	}
	s.pos -= s.width
	return false
}

func (s *scanner) acceptRun(valid string) {
	for s.accept(valid) {
	}
}

// number consumes the rest of a number whose first rune was read.
func (s *scanner) number() {
	s.accept("+-")
	digits := "0123456789"
	if s.accept("0") && s.accept("xX") {
		digits = "0123456789abcdefABCDEF"
	}
	s.acceptRun(digits)
	if s.accept(".") {
		s.acceptRun(digits)
	}
	if s.accept("e") {
		s.accept("+-")
		s.acceptRun(digits)
	}
}

// stop returns the byte offset of the first rune that cannot start a
// token, or -1 when the whole input tokenizes.
func (s *scanner) stop() int {
	for {
		start := s.pos
		r := s.next()
		switch {
		case r == eof:
			return -1
		case r == ' ' || r == '\t' || r == '\n':
			s.accept(" \t\r\n\f")
		case unicode.IsLetter(r):
		case r == '+' || r == '-' || unicode.IsNumber(r):
			s.number()
		case r == ',':
			s.accept(",")
		case r == '(' || r == ')':
			s.accept("()")
		default:
			return start
		}
	}
}

// checkInput fails with ErrSyntax, naming line and column, when src holds a
// rune the lexer cannot tokenize.
func checkInput(name, src string) error {
	s := scanner{src: src}
	off := s.stop()
	if off < 0 {
		return nil
	}

	lineStart := strings.LastIndexByte(src[:off], '\n') + 1
	line := strings.Count(src[:off], "\n") + 1
	col := utf8.RuneCountInString(src[lineStart:off]) + 1
	r, _ := utf8.DecodeRuneInString(src[off:])
	return fmt.Errorf("%w: %s: line %d, column %d: unexpected %q", ErrSyntax, name, line, col, r)
}
