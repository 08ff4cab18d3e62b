package signature

import (
	"github.com/Luismorlan/tx_handler/utils"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/cockroachdb/errors"
)

// Secp256k1Verifier verifies DER encoded ECDSA signatures over the SHA256 of the message.
type Secp256k1Verifier struct{}

func (Secp256k1Verifier) Verify(owner, msg, sig []byte) bool {
	pubKey, err := btcec.ParsePubKey(owner)
	if err != nil {
		return false
	}
	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false
	}
	return parsed.Verify(utils.SHA256(msg), pubKey)
}

type Secp256k1Signer struct {
	Key *btcec.PrivateKey
}

func NewSecp256k1Signer() (*Secp256k1Signer, error) {
	priv, err := btcec.NewPrivateKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate secp256k1 key")
	}
	return &Secp256k1Signer{Key: priv}, nil
}

func (s *Secp256k1Signer) PublicKey() []byte {
	return s.Key.PubKey().SerializeCompressed()
}

func (s *Secp256k1Signer) Sign(msg []byte) ([]byte, error) {
	if s.Key == nil {
		return nil, errors.Wrap(ErrSigningFailed, "nil secp256k1 key")
	}
	return ecdsa.Sign(s.Key, utils.SHA256(msg)).Serialize(), nil
}
