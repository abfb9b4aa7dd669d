package vcs

import (
	"context"

	"github.com/jeffrom/msgcheck/model"
)

type Mock struct {
	refs    map[string]string
	commits []*model.Commit
	err     error
}

func NewMock() *Mock {
	return &Mock{refs: make(map[string]string)}
}

func (m *Mock) SetCommits(commits ...*model.Commit) *Mock {
	finalCommits := make([]*model.Commit, len(commits))
	for i, commit := range commits {
		c := *commit
		finalCommits[i] = &c
	}
	m.commits = finalCommits
	return m
}

// SetRef makes ref resolvable by RevParse.
func (m *Mock) SetRef(ref, id string) *Mock {
	m.refs[ref] = id
	return m
}

// SetError makes ReadRange fail with err.
func (m *Mock) SetError(err error) *Mock {
	m.err = err
	return m
}

func (m *Mock) ReadRange(ctx context.Context, base, head string) ([]*model.Commit, error) {
	if m.err != nil {
		return nil, m.err
	}
	if base == head {
		return nil, nil
	}
	return m.commits, nil
}

func (m *Mock) RevParse(ctx context.Context, ref string) (string, error) {
	if id, ok := m.refs[ref]; ok {
		return id, nil
	}
	if len(m.refs) == 0 {
		return ref, nil
	}
	return "", NotFoundError{Ref: ref}
}
