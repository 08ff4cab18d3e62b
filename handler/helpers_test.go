package handler

import (
	"testing"

	"github.com/Luismorlan/tx_handler/model"
	"github.com/Luismorlan/tx_handler/signature"
	"github.com/Luismorlan/tx_handler/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// claim is one input of a test transaction and the key that signs it.
type claim struct {
	utxo   model.UTXO
	signer signature.Signer
}

func newSigner(t *testing.T) signature.Signer {
	t.Helper()
	s, err := signature.NewSigner(signature.SchemeEd25519)
	require.NoError(t, err)
	return s
}

// createSignedTx builds a finalized transaction whose inputs are signed by the given signers.
func createSignedTx(t *testing.T, claims []claim, outputs []model.Output) *model.Transaction {
	t.Helper()
	tx := &model.Transaction{Outputs: outputs}
	for _, c := range claims {
		tx.Inputs = append(tx.Inputs, model.Input{PrevTxHash: c.utxo.PrevTxHash, Index: c.utxo.Index})
	}
	for i, c := range claims {
		msg, err := utils.GetInputDataToSignByIndex(tx, i)
		require.NoError(t, err)
		tx.Inputs[i].Signature, err = c.signer.Sign(msg)
		require.NoError(t, err)
	}
	utils.FinalizeTransaction(tx)
	return tx
}

func createTestHandler(t *testing.T, l *model.Ledger, opts ...Option) *TxHandler {
	t.Helper()
	h, err := NewTxHandler(l, signature.Ed25519Verifier{}, opts...)
	require.NoError(t, err)
	return h
}

func currentLedger(t *testing.T, h *TxHandler) model.Ledger {
	t.Helper()
	l, err := h.Ledger()
	require.NoError(t, err)
	return l
}

func assertBalance(t *testing.T, l model.Ledger, owner signature.Signer, expected int64) {
	t.Helper()
	balance, err := l.Balance(owner.PublicKey())
	require.NoError(t, err)
	assert.Equal(t, expected, balance)
}
