// Package signature provides the signature schemes transaction inputs are checked against.
// An output's owner is the public key encoding of the scheme in use.
package signature

import "github.com/cockroachdb/errors"

// Scheme names a signature algorithm.
type Scheme string

const (
	// RSA-PSS over SHA256, owners are PKIX DER public keys.
	SchemeRSA Scheme = "rsa"
	// ECDSA on secp256k1 over SHA256, owners are compressed public keys.
	SchemeSecp256k1 Scheme = "secp256k1"
	// Ed25519, owners are raw 32 byte public keys.
	SchemeEd25519 Scheme = "ed25519"
)

// Verifier checks that sig is owner's signature over msg.
type Verifier interface {
	Verify(owner, msg, sig []byte) bool
}

// VerifierFunc adapts a plain function to a Verifier.
type VerifierFunc func(owner, msg, sig []byte) bool

func (f VerifierFunc) Verify(owner, msg, sig []byte) bool {
	return f(owner, msg, sig)
}

// Signer holds a private key and signs on behalf of PublicKey.
type Signer interface {
	// PublicKey returns the owner identity outputs are locked to.
	PublicKey() []byte
	Sign(msg []byte) ([]byte, error)
}

// ParseScheme validates a scheme name.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(s) {
	case SchemeRSA, SchemeSecp256k1, SchemeEd25519:
		return Scheme(s), nil
	default:
		return "", errors.Wrapf(ErrUnknownScheme, "%q", s)
	}
}

// NewVerifier returns the verifier for the scheme.
func NewVerifier(s Scheme) (Verifier, error) {
	switch s {
	case SchemeRSA:
		return RSAVerifier{}, nil
	case SchemeSecp256k1:
		return Secp256k1Verifier{}, nil
	case SchemeEd25519:
		return Ed25519Verifier{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownScheme, "%q", s)
	}
}

// NewSigner generates a fresh key for the scheme.
func NewSigner(s Scheme) (Signer, error) {
	var (
		signer Signer
		err    error
	)
	switch s {
	case SchemeRSA:
		signer, err = NewRSASigner()
	case SchemeSecp256k1:
		signer, err = NewSecp256k1Signer()
	case SchemeEd25519:
		signer, err = NewEd25519Signer()
	default:
		return nil, errors.Wrapf(ErrUnknownScheme, "%q", s)
	}
	if err != nil {
		return nil, err
	}
	return signer, nil
}
