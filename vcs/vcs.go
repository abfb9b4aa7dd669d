// Package vcs abstracts version control systems. Currently just git.
package vcs

import (
	"context"
	"fmt"

	"github.com/jeffrom/msgcheck/model"
)

type NotFoundError struct {
	Ref string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("vcs: ref %q not found", e.Ref)
}

type Interface interface {
	// ReadRange returns the commits reachable from head but not from base,
	// newest first.
	ReadRange(ctx context.Context, base, head string) ([]*model.Commit, error)
	// RevParse resolves ref to a commit id.
	RevParse(ctx context.Context, ref string) (string, error)
}
