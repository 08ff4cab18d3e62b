package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v2"
)

const (
	// Every candidate mutates the ledger, accepted or not.
	ApplyAll = "apply_all"
	// Only accepted transactions mutate the ledger.
	ApplyAccepted = "apply_accepted"
)

// This is the global app config for the transaction handler.
type AppConfig struct {
	// How rejected transactions affect the ledger, ApplyAll or ApplyAccepted.
	ApplyPolicy string `yaml:"apply_policy"`
	// Which signature scheme output owners use.
	SignatureScheme string `yaml:"signature_scheme"`
	// debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// Where ledger snapshots are stored between runs.
	DataDir string `yaml:"data_dir"`
}

// DefaultAppConfig returns the config used when no file is given.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		ApplyPolicy:     ApplyAll,
		SignatureScheme: "rsa",
		LogLevel:        "info",
		DataDir:         "/tmp/tx_handler",
	}
}

// ParseAppConfig reads a yaml config. Fields missing from the file keep their default values.
func ParseAppConfig(path string) (AppConfig, error) {
	c := DefaultAppConfig()
	yamlFile, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return AppConfig{}, errors.Wrapf(ErrConfigNotFound, "%s", path)
		}
		return AppConfig{}, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.UnmarshalStrict(yamlFile, &c); err != nil {
		return AppConfig{}, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := ValidateConfig(c); err != nil {
		return AppConfig{}, err
	}
	return c, nil
}
