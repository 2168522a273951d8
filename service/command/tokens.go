package command

import (
	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

const (
	whitespaceCode = iota
	wordCode
	semicolonCode
	ampersandCode
)

var (
	whitespaceToken = parsly.NewToken(whitespaceCode, "Whitespace", matcher.NewWhiteSpace())
	wordToken       = parsly.NewToken(wordCode, "Word", &wordMatcher{})
	semicolonToken  = parsly.NewToken(semicolonCode, ";", matcher.NewByte(';'))
	ampersandToken  = parsly.NewToken(ampersandCode, "&", matcher.NewByte('&'))
)

// wordMatcher matches a run of bytes up to whitespace or a separator
type wordMatcher struct{}

func (m *wordMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	matched := 0
	for i := cursor.Pos; i < cursor.InputSize; i++ {
		if isSeparator(input[i]) || isWhitespace(input[i]) {
			break
		}
		matched++
	}
	return matched
}

func isSeparator(c byte) bool {
	return c == ';' || c == '&'
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
