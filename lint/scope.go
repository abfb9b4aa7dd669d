package lint

import (
	"fmt"
	"strings"
)

// Scope checks the scope token groups of the summary line: everything before
// the last colon, split on colons. Each group of N words must join them with
// exactly N-1 commas, so "api, core: fix" passes and "api core: fix" does
// not. Only the cardinality is checked; any word is accepted as a scope.
func Scope(msg string) error {
	groups, ok := scopeGroups(msg)
	if !ok {
		return &Violation{Rule: RuleScope, Msg: "Commit message does not include scope"}
	}

	for _, group := range groups {
		words := len(strings.Fields(group))
		commas := strings.Count(group, ",")
		if words == 0 && commas == 0 {
			continue
		}
		if words != commas+1 {
			return &Violation{
				Rule:  RuleScope,
				Token: group,
				Msg:   fmt.Sprintf("Same-level scopes must be comma-separated. Bad token: '%s'", group),
			}
		}
	}
	return nil
}

// Scopes returns the individual scope names of the summary line, in order.
func Scopes(msg string) []string {
	groups, _ := scopeGroups(msg)
	var scopes []string
	for _, group := range groups {
		for _, s := range strings.Split(group, ",") {
			if s = strings.TrimSpace(s); s != "" {
				scopes = append(scopes, s)
			}
		}
	}
	return scopes
}

// AllowedScopes checks every scope name against allowed. An empty allowed
// list accepts any scope.
func AllowedScopes(msg string, allowed []string) error {
	if len(allowed) == 0 {
		return nil
	}
	for _, scope := range Scopes(msg) {
		if !inStrs(scope, allowed) {
			return &Violation{
				Rule:  RuleAllowedScope,
				Token: scope,
				Msg:   fmt.Sprintf("scope %q is disallowed", scope),
			}
		}
	}
	return nil
}

// scopeGroups splits the trimmed summary on colons and drops the title.
func scopeGroups(msg string) ([]string, bool) {
	summary := strings.TrimSpace(Summary(msg))
	if !strings.Contains(summary, ":") {
		return nil, false
	}
	parts := strings.Split(summary, ":")
	return parts[:len(parts)-1], true
}

func inStrs(s string, cands []string) bool {
	for _, cand := range cands {
		if s == cand {
			return true
		}
	}
	return false
}
