package codec

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// Token codes (start at 1 to avoid clash with parsly.EOF).
const (
	blankCode = iota + 1
	integerCode
	newlineCode
)

var (
	blankToken   = parsly.NewToken(blankCode, "Blank", &blankMatcher{})
	integerToken = parsly.NewToken(integerCode, "Integer", &integerMatcher{})
	newlineToken = parsly.NewToken(newlineCode, "Newline", matcher.NewByte('\n'))
)

// blankMatcher matches in-line whitespace; newlines are significant.
type blankMatcher struct{}

func (m *blankMatcher) Match(cursor *parsly.Cursor) int {
	matched := 0
	for i := cursor.Pos; i < cursor.InputSize; i++ {
		switch cursor.Input[i] {
		case ' ', '\t', '\r', '\v', '\f':
			matched++
			continue
		}
		break
	}
	return matched
}

// integerMatcher matches an optionally signed decimal integer.
type integerMatcher struct{}

func (m *integerMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize
	if pos >= size {
		return 0
	}
	matched := 0
	if input[pos] == '-' || input[pos] == '+' {
		matched++
	}
	digits := 0
	for i := pos + matched; i < size; i++ {
		if !isDigit(input[i]) {
			break
		}
		digits++
	}
	if digits == 0 {
		return 0
	}
	return matched + digits
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
