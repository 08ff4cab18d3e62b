package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTxSetCollapsesDuplicates(t *testing.T) {
	s := NewTxSet()
	tx := &Transaction{Hash: "bb"}

	assert.True(t, s.Add(tx))
	assert.False(t, s.Add(tx))
	assert.False(t, s.Add(&Transaction{Hash: "bb"}))
	assert.True(t, s.Add(&Transaction{Hash: "aa"}))

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("bb"))
	assert.False(t, s.Contains("cc"))

	txs := s.Transactions()
	assert.Equal(t, "aa", txs[0].Hash)
	assert.Equal(t, "bb", txs[1].Hash)
}
