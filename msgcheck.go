// Package msgcheck validates commit message formatting: summary line length
// and comma-separated scope tags before the title.
//
// Related packages: config, lint, runner, model, vcs, vcs/gitcli
package msgcheck

import "github.com/jeffrom/msgcheck/config"

// Config holds the configuration variables for msgcheck. This struct is
// intended for command-line use, so not all of its attributes are applicable
// to every operation.
//
// See "go doc github.com/jeffrom/msgcheck/config Config" for more information.
type Config = config.Config
