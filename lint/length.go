package lint

import (
	"fmt"
	"unicode/utf8"
)

const DefaultMaxLength = 72

// Length checks that the summary line is at most maxLen characters long. A
// maxLen less than one means DefaultMaxLength.
func Length(msg string, maxLen int) error {
	if maxLen < 1 {
		maxLen = DefaultMaxLength
	}
	n := SummaryLength(msg)
	if n <= maxLen {
		return nil
	}
	return &Violation{
		Rule:   RuleLength,
		Length: n,
		Msg:    fmt.Sprintf("Commit message summary must not exceed %d characters.", maxLen),
	}
}

// SummaryLength counts the code points of the summary line. A combining
// accent counts on its own.
func SummaryLength(msg string) int {
	return utf8.RuneCountInString(Summary(msg))
}
