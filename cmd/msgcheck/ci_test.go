package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http/httptest"
	"os/exec"
	"runtime"
	"strings"
	"testing"

	"github.com/sosedoff/gitkit"

	"github.com/jeffrom/msgcheck/runner"
)

type ciModeTestCase struct {
	name       string
	ops        []testOperation
	args       []string
	environ    map[string]string
	shouldFail bool
	expect     []string
}

func TestMsgcheckCIMode(t *testing.T) {
	if testing.Short() {
		t.Skip("-short")
	}
	if runtime.GOOS == "windows" {
		t.Skip("windows not supported (gitkit uses syscall.Kill)")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not in PATH")
	}

	tcs := []ciModeTestCase{
		{
			name: "pass",
			ops: []testOperation{
				{Commit: "api: add endpoint"},
				{Commit: "api, docs: describe endpoint"},
			},
			args:   strs("HEAD", "origin/master"),
			expect: strs("All commit messages are formatted correctly."),
		},
		{
			name: "fail",
			ops: []testOperation{
				{Commit: "api: add endpoint"},
				{Commit: "add endpoint docs"},
			},
			args:       strs("HEAD", "origin/master"),
			shouldFail: true,
			expect: strs(
				"add endpoint docs\nMessage length: OK\nMessage scope: FAILED",
				"api: add endpoint\nMessage length: OK\nMessage scope: OK",
			),
		},
		{
			name: "base-from-env",
			ops: []testOperation{
				{Commit: "api core: missing comma"},
			},
			environ:    map[string]string{"GITHUB_BASE_REF": "master"},
			shouldFail: true,
			expect:     strs("Bad token: 'api core'"),
		},
		{
			name:   "up-to-date",
			args:   strs("HEAD", "origin/master"),
			expect: strs("All commit messages are formatted correctly."),
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, runCITest(tc))
	}
}

func runCITest(tc ciModeTestCase) func(t *testing.T) {
	return func(t *testing.T) {
		ctx := context.Background()
		t.Setenv("CI", "true")
		t.Setenv("GITHUB_BASE_REF", "")
		for k, v := range tc.environ {
			t.Setenv(k, v)
		}

		srv := newGitServer(t.TempDir())
		addr := srv.start(t)
		defer srv.stop(t)

		repoPath := t.TempDir()
		cloneURL := fmt.Sprintf("http://%s/myrepo.git", addr)
		call(ctx, t, repoPath, "git", "clone", "-q", cloneURL, ".")
		call(ctx, t, repoPath, "git", "config", "--local", "user.email", "msgcheck-test@example.com")
		call(ctx, t, repoPath, "git", "config", "--local", "user.name", "msgcheck-test")
		call(ctx, t, repoPath, "git", "commit", "-q", "--allow-empty", "-m", "initial commit")
		call(ctx, t, repoPath, "git", "push", "-q", "origin", "HEAD:refs/heads/master")
		call(ctx, t, repoPath, "git", "fetch", "-q", "origin")

		for _, op := range tc.ops {
			op := op
			runOp(ctx, t, repoPath, &op)
		}

		out, err := callMsgcheck(t, append(strs("--dir", repoPath), tc.args...)...)
		if tc.shouldFail {
			if !errors.Is(err, runner.CheckFailure{}) {
				t.Fatalf("expected check failure, got %v", err)
			}
		} else if err != nil {
			t.Fatal(err)
		}
		for _, expect := range tc.expect {
			if !strings.Contains(out, expect) {
				t.Errorf("expected output to contain %q", expect)
			}
		}
	}
}

type gitServer struct {
	dir  string
	svc  *gitkit.Server
	http *httptest.Server
}

func newGitServer(dir string) *gitServer {
	cfg := gitkit.Config{
		Dir:        dir,
		AutoCreate: true,
	}
	return &gitServer{
		dir: dir,
		svc: gitkit.New(cfg),
	}
}

func (g *gitServer) start(t *testing.T) net.Addr {
	t.Helper()
	t.Log("Setting up git server...")
	if err := g.svc.Setup(); err != nil {
		t.Fatal(err)
	}
	g.http = httptest.NewServer(g.svc)
	addr := g.http.Listener.Addr()
	t.Logf("Test git server listening: %s", addr)
	return addr
}

func (g *gitServer) stop(t *testing.T) {
	t.Logf("Stopping git server in %s", g.dir)
	g.http.Close()
}
