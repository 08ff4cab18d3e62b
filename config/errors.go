package config

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidApplyPolicy indicates the apply policy is not recognized.
	ErrInvalidApplyPolicy = errors.New("config: invalid apply policy (must be \"apply_all\" or \"apply_accepted\")")

	// ErrInvalidScheme indicates the signature scheme is not recognized.
	ErrInvalidScheme = errors.New("config: invalid signature scheme")

	// ErrInvalidLogLevel indicates the log level is not recognized.
	ErrInvalidLogLevel = errors.New("config: invalid log level (must be \"debug\", \"info\", \"warn\", or \"error\")")

	// ErrEmptyDataDir indicates the data directory path is empty.
	ErrEmptyDataDir = errors.New("config: data directory must not be empty")

	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("config: configuration file not found")
)
