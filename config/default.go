package config

import "github.com/jeffrom/msgcheck/lint"

func GetDefault() Config {
	return Config{
		Version:   SchemaVersion.String(),
		MaxLength: lint.DefaultMaxLength,
	}
}
