// Package config loads process configuration and reports fatal startup
// errors.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads target, a pointer to a struct with `env` tags, from the
// process environment.
func ParseEnv(target any) error {
	return ParseEnvFrom(target, nil)
}

// ParseEnvFrom loads target from environ. A nil environ reads the process
// environment.
func ParseEnvFrom(target any, environ map[string]string) error {
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(target, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

var (
	exitOutput io.Writer = os.Stderr
	exitFunc             = os.Exit
)

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(exitOutput, format+"\n", args...)
	exitFunc(1)
}
