package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/blang/semver/v4"
	"github.com/ghodss/yaml"
)

// FileName is the config file looked up from the working directory upward.
const FileName = "msgcheck.yaml"

// SchemaVersion is the msgcheck.yaml version this build understands. Files
// declaring another major version are rejected.
var SchemaVersion = semver.MustParse("1.0.0")

// ReadFile parses the config file at p.
func ReadFile(p string) (*Config, error) {
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", p, err)
	}
	if err := checkSchemaVersion(cfg.Version); err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return cfg, nil
}

// Find looks for FileName in dir and each of its parents. It returns nil and
// an empty path when no file exists.
func Find(dir string) (*Config, string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", err
	}

	for {
		candPath := filepath.Join(dir, FileName)
		cfg, err := ReadFile(candPath)
		if err == nil {
			return cfg, candPath, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, "", err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return nil, "", nil
}

// Marshal renders c as msgcheck.yaml.
func Marshal(c Config) ([]byte, error) {
	return yaml.Marshal(c)
}

func checkSchemaVersion(s string) error {
	if s == "" {
		return nil
	}
	v, err := semver.ParseTolerant(s)
	if err != nil {
		return fmt.Errorf("config: invalid version %q: %w", s, err)
	}
	if v.Major != SchemaVersion.Major {
		return fmt.Errorf("config: unsupported version %s (supported: %d.x)", v, SchemaVersion.Major)
	}
	return nil
}
