// Package lint contains the commit message formatting rules. Rules are pure
// functions over a message string: they return nil when the message passes
// and a *Violation describing the problem otherwise.
package lint

import (
	"strings"
)

type Rule int

const (
	_ Rule = iota

	RuleLength
	RuleScope
	RuleAllowedScope
)

func (r Rule) String() string {
	switch r {
	case RuleLength:
		return "length"
	case RuleScope:
		return "scope"
	case RuleAllowedScope:
		return "allowed-scope"
	case 0:
		return "<INVALID>"
	default:
		return "<UNKNOWN>"
	}
}

// Violation is returned by a rule that did not pass.
type Violation struct {
	Rule Rule
	Msg  string

	// Token is the offending scope token group, if any.
	Token string
	// Length is the measured summary length for RuleLength.
	Length int
}

func (v *Violation) Error() string {
	return v.Msg
}

// Summary returns the first line of a commit message.
func Summary(msg string) string {
	summary, _, _ := strings.Cut(msg, "\n")
	return summary
}
