// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jeffrom/msgcheck/config"
	"github.com/jeffrom/msgcheck/model"
	"github.com/jeffrom/msgcheck/vcs"
)

// Git implements vcs.Interface using the git commandline tool.
type Git struct {
	cfg config.Config
	wd  string
}

func New(cfg config.Config, wd string) *Git {
	return &Git{
		cfg: cfg,
		wd:  wd,
	}
}

// RangeQuery builds the revision range of commits in head but not in base.
func RangeQuery(base, head string) string {
	return base + ".." + head
}

func (g *Git) ReadRange(ctx context.Context, base, head string) ([]*model.Commit, error) {
	query := RangeQuery(base, head)
	b, err := g.call(ctx, []string{"rev-list", "--format=oneline", query, "--"})
	if err != nil {
		return nil, err
	}
	return ParseOneline(b)
}

// ParseOneline parses "git rev-list --format=oneline" output: one
// "<hash> <summary>" line per commit.
func ParseOneline(b []byte) ([]*model.Commit, error) {
	var commits []*model.Commit
	scanner := bufio.NewScanner(bytes.NewReader(b))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		s := scanner.Text()
		if strings.TrimSpace(s) == "" {
			continue
		}
		id, subject, ok := strings.Cut(s, " ")
		if !ok || id == "" {
			return nil, fmt.Errorf("gitcli: unexpected rev-list line: %q", s)
		}
		commits = append(commits, &model.Commit{
			ID:      id,
			Subject: subject,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return commits, nil
}

func (g *Git) RevParse(ctx context.Context, ref string) (string, error) {
	b, err := g.call(ctx, []string{"rev-parse", "--verify", "--quiet", ref + "^{commit}"})
	if err != nil {
		return "", fmt.Errorf("%w: %v", vcs.NotFoundError{Ref: ref}, err)
	}
	return strings.TrimSpace(string(b)), nil
}
