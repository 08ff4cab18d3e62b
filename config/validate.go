package config

import (
	"strings"

	"github.com/Luismorlan/tx_handler/signature"
	"github.com/cockroachdb/errors"
)

// validLogLevels lists the accepted log level strings.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateConfig checks that all configuration values are within acceptable
// ranges and returns the first error encountered, or nil if valid.
func ValidateConfig(cfg AppConfig) error {
	if cfg.ApplyPolicy != ApplyAll && cfg.ApplyPolicy != ApplyAccepted {
		return ErrInvalidApplyPolicy
	}

	if _, err := signature.ParseScheme(cfg.SignatureScheme); err != nil {
		return errors.Wrapf(ErrInvalidScheme, "%q", cfg.SignatureScheme)
	}

	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		return ErrInvalidLogLevel
	}

	if cfg.DataDir == "" {
		return ErrEmptyDataDir
	}

	return nil
}
