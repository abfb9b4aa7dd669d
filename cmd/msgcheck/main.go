package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/jeffrom/msgcheck/config"
	"github.com/jeffrom/msgcheck/runner"
	"github.com/jeffrom/msgcheck/vcs/gitcli"
)

var (
	// overridden by go build -X
	Version = "dev"
)

const (
	successMessage = "All commit messages are formatted correctly."
	failureMessage = "Some commit message checks failed. Please align commit messages with Contributing Guidelines and update the PR."
)

func main() {
	if err := run(os.Args); err != nil {
		// check failures were already reported by finish
		if !errors.Is(err, runner.CheckFailure{}) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(rawArgs []string) error {
	return runWithIO(rawArgs, nil)
}

func runWithIO(rawArgs []string, termio *config.TerminalIO) error {
	cfg := config.NewWithTerminalIO(nil, termio)

	var help bool
	var version bool
	var cfgFile string
	var printConfig bool
	var checkMessages []string
	var msgFile string
	flags := pflag.NewFlagSet("msgcheck", pflag.ContinueOnError)
	flags.SetOutput(cfg.Term.Stderr)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.BoolVar(&cfg.InCI, "ci", false, "Run in CI mode")
	flags.StringVarP(&cfg.Dir, "dir", "C", "", "run as if started in `path`")
	flags.IntVar(&cfg.MaxLength, "max-length", cfg.MaxLength, "maximum summary line length in characters")
	flags.StringArrayVar(&cfg.AllowedScopes, "allowed-scope", nil, "declare allowed scopes' `name`s")
	flags.StringArrayVar(&checkMessages, "check-message", nil, "only validate provided commit message `body` (- reads stdin)")
	flags.StringVarP(&msgFile, "file", "F", "", "validate the commit message in `file` (commit-msg hook)")
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&cfg.Quiet, "quiet", "q", false, "print as little as necessary")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.BoolVar(&printConfig, "print-config", false, "Print configuration and exit")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}
	args := flags.Args()
	if len(args) > 0 {
		args = args[1:]
	}

	if help {
		usage(cfg, flags)
		return nil
	}
	if version {
		cfg.Printf("%s", Version)
		return nil
	}
	if !cfg.InCI {
		if env := os.Getenv("CI"); env == "true" || env == "1" || env == "yes" {
			cfg.InCI = true
		}
	}

	if err := loadConfigFile(&cfg, flags, cfgFile); err != nil {
		return err
	}
	if printConfig {
		b, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cfg.Term.Stdout, "%s", b)
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Verbose {
		b, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		cfg.Debugf("config:\n%s", b)
	}
	// done setting up config

	ctx := context.Background()
	rnr := runner.New(cfg, gitcli.New(cfg, cfg.Dir))

	var err error
	switch {
	case msgFile != "":
		err = checkFile(ctx, rnr, msgFile)
	case flags.Lookup("check-message").Changed:
		if len(checkMessages) == 1 && checkMessages[0] == "-" {
			if !hasPipe(cfg.Term.Stdin) {
				return errors.New("--check-message -: stdin is a terminal")
			}
			err = rnr.CheckReader(ctx, cfg.Term.Stdin)
		} else {
			err = rnr.CheckMessages(ctx, checkMessages)
		}
	default:
		if len(args) == 0 && cfg.InCI {
			if ref := os.Getenv("GITHUB_BASE_REF"); ref != "" {
				args = []string{"HEAD", "origin/" + ref}
				cfg.Debugf("CI: checking %s against %s", args[0], args[1])
			}
		}
		if len(args) != 2 {
			usage(cfg, flags)
			return fmt.Errorf("expected 2 arguments (head, base), got %d", len(args))
		}
		head, base := args[0], args[1]
		err = rnr.CheckRange(ctx, base, head)
	}
	return finish(cfg, err)
}

// loadConfigFile merges msgcheck.yaml into cfg. Flags given on the command
// line win over the file.
func loadConfigFile(cfg *config.Config, flags *pflag.FlagSet, cfgFile string) error {
	var fileCfg *config.Config
	var err error
	if cfgFile != "" {
		fileCfg, err = config.ReadFile(cfgFile)
	} else {
		dir := cfg.Dir
		if dir == "" {
			dir = "."
		}
		fileCfg, cfgFile, err = config.Find(dir)
	}
	if err != nil {
		return err
	}
	if fileCfg == nil {
		return nil
	}
	cfg.Debugf("using config file %s", cfgFile)

	flagged := *cfg
	if err := cfg.Merge(fileCfg); err != nil {
		return err
	}
	flags.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "max-length":
			cfg.MaxLength = flagged.MaxLength
		case "allowed-scope":
			cfg.AllowedScopes = flagged.AllowedScopes
		case "dir":
			cfg.Dir = flagged.Dir
		}
	})
	return nil
}

func checkFile(ctx context.Context, rnr *runner.Runner, p string) error {
	f, err := os.Open(p)
	if err != nil {
		return err
	}
	defer f.Close()
	return rnr.CheckReader(ctx, f)
}

func finish(cfg config.Config, err error) error {
	if err == nil {
		cfg.Printf(successMessage)
		return nil
	}

	cf := runner.CheckFailure{}
	if errors.As(err, &cf) {
		cfg.Printf(failureMessage)
		if werr := cf.WriteFailure(cfg.Term.Stderr); werr != nil {
			cfg.Errorf("failed to write invalid commit information: %v", werr)
		}
	}
	return err
}

func hasPipe(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return true
	}
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	cfg.Printf(`%s [flags] <head> <base>

Validates the commit messages of a pull request: each summary line must be at
most 72 characters, and the scopes before the last colon must be
comma-separated ("api, core: fix bug").

FLAGS
%s

EXAMPLES

# check the commits of a pull request branch
$ msgcheck HEAD origin/main

# check a single message
$ msgcheck --check-message "api, core: fix bug"

# use as a commit-msg hook
$ msgcheck -F .git/COMMIT_EDITMSG

# restrict scopes to a known list
$ msgcheck --allowed-scope api --allowed-scope core HEAD origin/main
`, "msgcheck", flags.FlagUsages())
}
