package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jeffrom/msgcheck/lint"
	"github.com/jeffrom/msgcheck/model"
)

type CheckFailure struct {
	Failures []FailureEntry
}

type FailureEntry struct {
	commitID    string
	commitTitle string
	err         error
}

func (f FailureEntry) Err() error { return f.err }

func (cf CheckFailure) Error() string {
	return fmt.Sprintf("%d check(s) failed", len(cf.Failures))
}

func (cf CheckFailure) Is(other error) bool {
	_, ok := other.(CheckFailure)
	return ok
}

// WriteFailure writes each failed commit followed by its failed checks.
func (cf CheckFailure) WriteFailure(w io.Writer) error {
	if len(cf.Failures) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)

	var byCommit [][]FailureEntry
	for _, failure := range cf.Failures {
		found := false
		for i, prev := range byCommit {
			if sameCommit(prev[0], failure) {
				byCommit[i] = append(byCommit[i], failure)
				found = true
				break
			}
		}
		if !found {
			byCommit = append(byCommit, []FailureEntry{failure})
		}
	}

	for _, failures := range byCommit {
		first := failures[0]
		if first.commitID != "" {
			bw.WriteString(shortID(first.commitID))
			bw.WriteString(" ")
		}
		bw.WriteString(first.commitTitle)
		bw.WriteString("\n")
		for _, failure := range failures {
			bw.WriteString("  ")
			bw.WriteString(failure.err.Error())
			bw.WriteString("\n")
		}
	}

	return bw.Flush()
}

func sameCommit(a, b FailureEntry) bool {
	if a.commitID != "" || b.commitID != "" {
		return a.commitID == b.commitID
	}
	return a.commitTitle == b.commitTitle
}

func shortID(id string) string {
	c := model.Commit{ID: id}
	return c.ShortID()
}

type ruleCheck struct {
	label string
	check func(msg string) error
}

func (r *Runner) rules() []ruleCheck {
	rules := []ruleCheck{
		{
			label: "Message length:",
			check: func(msg string) error { return lint.Length(msg, r.cfg.MaxLength) },
		},
		{
			label: "Message scope:",
			check: lint.Scope,
		},
	}
	if len(r.cfg.AllowedScopes) > 0 {
		rules = append(rules, ruleCheck{
			label: "Message scope names:",
			check: func(msg string) error { return lint.AllowedScopes(msg, r.cfg.AllowedScopes) },
		})
	}
	return rules
}

// checkCommit runs every rule against c, reporting each result. It never
// stops at the first failure.
func (r *Runner) checkCommit(c *model.Commit) []FailureEntry {
	var failures []FailureEntry
	msg := c.Message()
	for _, rule := range r.rules() {
		if err := rule.check(msg); err != nil {
			r.cfg.Printf("%s FAILED: %v", rule.label, err)
			failures = append(failures, FailureEntry{commitID: c.ID, commitTitle: c.Subject, err: err})
			continue
		}
		r.cfg.Printf("%s OK", rule.label)
	}
	return failures
}

// CheckMessages checks raw commit messages, such as those passed on the
// command line.
// Messages are taken literally, so a subject starting with "#" is kept.
func (r *Runner) CheckMessages(ctx context.Context, msgs []string) error {
	commits := make([]*model.Commit, len(msgs))
	for i, msg := range msgs {
		commits[i] = splitMessage(msg)
	}
	return r.checkCommits(commits)
}

func (r *Runner) checkCommits(commits []*model.Commit) error {
	var failures []FailureEntry
	for _, c := range commits {
		r.cfg.Printf("%s", c)
		failures = append(failures, r.checkCommit(c)...)
	}
	if len(failures) > 0 {
		return CheckFailure{Failures: failures}
	}
	return nil
}

// CheckReader checks a single commit message read from rdr, for example the
// file git passes to a commit-msg hook.
func (r *Runner) CheckReader(ctx context.Context, rdr io.Reader) error {
	raw, err := io.ReadAll(rdr)
	if err != nil {
		return err
	}
	c := ParseMessage(string(raw))
	if strings.TrimSpace(c.Subject) == "" {
		return errors.New("runner: empty commit message")
	}
	return r.checkCommits([]*model.Commit{c})
}

const scissorsLine = "# ------------------------ >8 ------------------------"

// ParseMessage reads a raw commit message the way git cleans it up: comment
// lines and everything below the scissors line are dropped, and leading blank
// lines are skipped so the first remaining line is the subject.
func ParseMessage(s string) *model.Commit {
	var cleaned []string
	for _, line := range strings.Split(s, "\n") {
		if line == scissorsLine {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		if len(cleaned) == 0 && strings.TrimSpace(line) == "" {
			continue
		}
		cleaned = append(cleaned, line)
	}
	if len(cleaned) == 0 {
		return &model.Commit{}
	}

	return splitMessage(strings.Join(cleaned, "\n"))
}

// splitMessage splits a message into its subject line and body.
func splitMessage(s string) *model.Commit {
	subject, body, _ := strings.Cut(s, "\n")
	return &model.Commit{
		Subject: strings.TrimRight(subject, "\r"),
		Body:    strings.TrimSpace(body),
	}
}
