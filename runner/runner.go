// Package runner manages command-line execution
package runner

import (
	"context"
	"fmt"

	"github.com/jeffrom/msgcheck/config"
	"github.com/jeffrom/msgcheck/model"
	"github.com/jeffrom/msgcheck/vcs"
)

type Runner struct {
	cfg config.Config
	vcs vcs.Interface
}

func New(cfg config.Config, vcs vcs.Interface) *Runner {
	return &Runner{
		cfg: cfg,
		vcs: vcs,
	}
}

// ReadRange resolves base and head and lists the commits between them.
func (r *Runner) ReadRange(ctx context.Context, base, head string) ([]*model.Commit, error) {
	if base == "" || head == "" {
		return nil, fmt.Errorf("runner: both base and head are required (base=%q, head=%q)", base, head)
	}
	for _, ref := range []string{base, head} {
		id, err := r.vcs.RevParse(ctx, ref)
		if err != nil {
			return nil, err
		}
		r.cfg.Debugf("%s is %s", ref, id)
	}

	commits, err := r.vcs.ReadRange(ctx, base, head)
	if err != nil {
		return nil, err
	}
	if len(commits) == 0 {
		r.cfg.Warnf("no commits in %s..%s", base, head)
	}
	r.cfg.Debugf("%d commit(s) in %s..%s", len(commits), base, head)
	return commits, nil
}

// CheckRange checks every commit reachable from head but not from base.
func (r *Runner) CheckRange(ctx context.Context, base, head string) error {
	commits, err := r.ReadRange(ctx, base, head)
	if err != nil {
		return err
	}

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
