// Package config holds msgcheck's configuration and terminal output helpers.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/imdario/mergo"
)

type Config struct {
	// Version is the msgcheck.yaml schema version.
	Version       string     `json:"version,omitempty"`
	Verbose       bool       `json:"verbose,omitempty"`
	Quiet         bool       `json:"quiet,omitempty"`
	InCI          bool       `json:"ci,omitempty"`
	Dir           string     `json:"dir,omitempty"`
	MaxLength     int        `json:"max_summary_length,omitempty"`
	AllowedScopes []string   `json:"allowed_scopes,omitempty"`
	Term          TerminalIO `json:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	return cfg
}

// Merge applies non-zero values from a config file on top of c.
func (c *Config) Merge(file *Config) error {
	if file == nil {
		return nil
	}
	return mergo.Merge(c, file, mergo.WithOverride)
}

func (c Config) Validate() error {
	if c.MaxLength < 1 {
		return fmt.Errorf("config: max summary length must be positive, got %d", c.MaxLength)
	}
	if c.Quiet && c.Verbose {
		return errors.New("config: quiet and verbose are mutually exclusive")
	}
	if err := checkSchemaVersion(c.Version); err != nil {
		return err
	}
	return nil
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stdout, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	c.Logger().Errorf(msg, args...)
}

func (c Config) Warnf(msg string, args ...interface{}) {
	c.Logger().Warnf(msg, args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	if !c.Verbose {
		return
	}
	c.Logger().Debugf(msg, args...)
}

// Logger returns a logger writing to the configured stderr.
func (c Config) Logger() *log.Logger {
	w := c.Term.Stderr
	if w == nil {
		w = os.Stderr
	}
	level := log.WarnLevel
	if c.Verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "msgcheck",
	})
}
