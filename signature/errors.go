package signature

import "github.com/cockroachdb/errors"

var (
	// ErrUnknownScheme indicates the signature scheme name is not recognized.
	ErrUnknownScheme = errors.New("signature: unknown scheme (must be \"rsa\", \"secp256k1\" or \"ed25519\")")

	// ErrSigningFailed indicates a signer could not produce a signature.
	ErrSigningFailed = errors.New("signature: signing failed")
)
