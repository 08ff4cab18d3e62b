package signature

import (
	"crypto/rand"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/ed25519"
)

// Ed25519Verifier verifies signatures against raw 32 byte public keys.
type Ed25519Verifier struct{}

func (Ed25519Verifier) Verify(owner, msg, sig []byte) bool {
	if len(owner) != ed25519.PublicKeySize || len(sig) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(owner), msg, sig)
}

type Ed25519Signer struct {
	Key ed25519.PrivateKey
}

func NewEd25519Signer() (*Ed25519Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate ed25519 key")
	}
	return &Ed25519Signer{Key: priv}, nil
}

func (s *Ed25519Signer) PublicKey() []byte {
	return []byte(s.Key.Public().(ed25519.PublicKey))
}

func (s *Ed25519Signer) Sign(msg []byte) ([]byte, error) {
	if len(s.Key) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(ErrSigningFailed, "malformed ed25519 key")
	}
	return ed25519.Sign(s.Key, msg), nil
}
