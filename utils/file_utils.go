package utils

import (
	"crypto/rsa"
	"os"

	"github.com/cockroachdb/errors"
)

// ParseKeyFile loads the RSA key stored at fPath, or generates and stores a new one there when
// createNewKey is set.
func ParseKeyFile(fPath string, createNewKey bool) (*rsa.PrivateKey, error) {
	if fPath == "" {
		return nil, errors.New("file path is missing")
	}
	// Generate new key and save to given path
	if createNewKey {
		userKey, _, err := GenerateKeyPair(DefaultKeyBits)
		if err != nil {
			return nil, err
		}
		if err := SavePrivateKeyToFile(userKey, fPath); err != nil {
			return nil, err
		}
		return userKey, nil
	}
	// Read key from exsiting rsa file
	return ReadKeyFromFPath(fPath)
}

func SavePrivateKeyToFile(privkey *rsa.PrivateKey, fpath string) error {
	if err := os.WriteFile(fpath, PrivateKeyToBytes(privkey), 0600); err != nil {
		return errors.Wrapf(err, "failed to save key in %s", fpath)
	}
	return nil
}

func ReadKeyFromFPath(fPath string) (*rsa.PrivateKey, error) {
	fileContent, err := os.ReadFile(fPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read key from %s", fPath)
	}
	if len(fileContent) == 0 {
		return nil, errors.Newf("key file %s is empty", fPath)
	}
	return BytesToPrivateKey(fileContent)
}
