package signature

import (
	"crypto/rsa"

	"github.com/Luismorlan/tx_handler/utils"
)

// RSAVerifier verifies RSA-PSS signatures against PKIX encoded owners.
type RSAVerifier struct{}

func (RSAVerifier) Verify(owner, msg, sig []byte) bool {
	pk := utils.BytesToPublicKey(owner)
	if pk == nil {
		return false
	}
	return utils.Verify(msg, pk, sig)
}

type RSASigner struct {
	Key *rsa.PrivateKey
}

// NewRSASigner generates a key of utils.DefaultKeyBits.
func NewRSASigner() (*RSASigner, error) {
	sk, _, err := utils.GenerateKeyPair(utils.DefaultKeyBits)
	if err != nil {
		return nil, err
	}
	return &RSASigner{Key: sk}, nil
}

func (s *RSASigner) PublicKey() []byte {
	return utils.PublicKeyToBytes(&s.Key.PublicKey)
}

func (s *RSASigner) Sign(msg []byte) ([]byte, error) {
	return utils.Sign(msg, s.Key)
}
