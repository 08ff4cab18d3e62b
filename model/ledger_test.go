package model

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLedger() Ledger {
	l := NewLedger()
	l.Insert(UTXO{PrevTxHash: "aa", Index: 0}, Output{Value: 10, PublicKey: []byte("alice")})
	l.Insert(UTXO{PrevTxHash: "aa", Index: 1}, Output{Value: 5, PublicKey: []byte("bob")})
	l.Insert(UTXO{PrevTxHash: "0b", Index: 3}, Output{Value: 7, PublicKey: []byte("alice")})
	return l
}

func TestLedgerInsertLookup(t *testing.T) {
	l := createTestLedger()

	out, ok := l.Lookup(UTXO{PrevTxHash: "aa", Index: 1})
	assert.True(t, ok)
	assert.Equal(t, int64(5), out.Value)
	assert.Equal(t, []byte("bob"), out.PublicKey)

	_, ok = l.Lookup(UTXO{PrevTxHash: "aa", Index: 2})
	assert.False(t, ok)
	assert.False(t, l.Contains(UTXO{PrevTxHash: "cc", Index: 0}))

	// Insert overwrites.
	l.Insert(UTXO{PrevTxHash: "aa", Index: 1}, Output{Value: 6, PublicKey: []byte("carol")})
	out, _ = l.Lookup(UTXO{PrevTxHash: "aa", Index: 1})
	assert.Equal(t, int64(6), out.Value)
	assert.Equal(t, 3, l.Len())
}

func TestLedgerInsertIntoZeroValue(t *testing.T) {
	var l Ledger
	l.Insert(UTXO{PrevTxHash: "aa"}, Output{Value: 1})
	assert.True(t, l.Contains(UTXO{PrevTxHash: "aa"}))
}

func TestLedgerRemoveIsIdempotent(t *testing.T) {
	once := createTestLedger()
	twice := createTestLedger()
	utxo := UTXO{PrevTxHash: "aa", Index: 0}

	once.Remove(utxo)
	twice.Remove(utxo)
	twice.Remove(utxo)

	assert.False(t, once.Contains(utxo))
	assert.Equal(t, once, twice)

	// Removing something that never existed is fine too.
	twice.Remove(UTXO{PrevTxHash: "ff", Index: 9})
	assert.Equal(t, once, twice)
}

func TestCopyLedgerIsIndependent(t *testing.T) {
	src := createTestLedger()
	cp, err := CopyLedger(&src)
	require.NoError(t, err)
	assert.Equal(t, src, cp)

	cp.Remove(UTXO{PrevTxHash: "aa", Index: 0})
	cp.Insert(UTXO{PrevTxHash: "dd", Index: 0}, Output{Value: 1, PublicKey: []byte("dave")})

	assert.True(t, src.Contains(UTXO{PrevTxHash: "aa", Index: 0}))
	assert.False(t, src.Contains(UTXO{PrevTxHash: "dd", Index: 0}))
	assert.Equal(t, 3, src.Len())
}

func TestCopyLedgerSharesNoBytes(t *testing.T) {
	src := createTestLedger()
	utxo := UTXO{PrevTxHash: "aa", Index: 0}
	cp, err := CopyLedger(&src)
	require.NoError(t, err)

	cp.L[utxo].PublicKey[0] = 'X'

	out, ok := src.Lookup(utxo)
	require.True(t, ok)
	assert.Equal(t, []byte("alice"), out.PublicKey)
	copied, _ := cp.Lookup(utxo)
	assert.Equal(t, []byte("Xlice"), copied.PublicKey)
}

func TestCopyLedgerKeepsNilKeys(t *testing.T) {
	src := NewLedger()
	src.Insert(UTXO{PrevTxHash: "aa"}, Output{Value: 3})
	cp, err := CopyLedger(&src)
	require.NoError(t, err)
	assert.Equal(t, src, cp)
}

func TestCopyLedgerEmpty(t *testing.T) {
	cp, err := CopyLedger(nil)
	require.NoError(t, err)
	assert.NotNil(t, cp.L)
	assert.Equal(t, 0, cp.Len())

	empty := NewLedger()
	cp, err = CopyLedger(&empty)
	require.NoError(t, err)
	cp.Insert(UTXO{PrevTxHash: "aa"}, Output{Value: 1})
	assert.Equal(t, 0, empty.Len())
}

func TestLedgerUtxosSorted(t *testing.T) {
	l := createTestLedger()
	assert.Equal(t, []UTXO{
		{PrevTxHash: "0b", Index: 3},
		{PrevTxHash: "aa", Index: 0},
		{PrevTxHash: "aa", Index: 1},
	}, l.Utxos())
}

func TestLedgerBalance(t *testing.T) {
	l := createTestLedger()

	alice := l.UtxosForPublicKey([]byte("alice"))
	assert.Equal(t, 2, alice.Len())
	assert.True(t, alice.Contains(UTXO{PrevTxHash: "0b", Index: 3}))
	for owner, expected := range map[string]int64{"alice": 17, "bob": 5, "nobody": 0} {
		balance, err := l.Balance([]byte(owner))
		require.NoError(t, err)
		assert.Equal(t, expected, balance, owner)
	}
}

func TestLedgerBalanceOverflow(t *testing.T) {
	l := NewLedger()
	l.Insert(UTXO{PrevTxHash: "aa", Index: 0}, Output{Value: math.MaxInt64, PublicKey: []byte("alice")})
	l.Insert(UTXO{PrevTxHash: "aa", Index: 1}, Output{Value: 1, PublicKey: []byte("alice")})

	_, err := l.Balance([]byte("alice"))
	assert.True(t, errors.Is(err, ErrValueOverflow))
}

func TestAddValue(t *testing.T) {
	sum, ok := AddValue(3, 4)
	assert.True(t, ok)
	assert.Equal(t, int64(7), sum)

	sum, ok = AddValue(math.MaxInt64, -1)
	assert.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64-1), sum)

	_, ok = AddValue(math.MaxInt64, 1)
	assert.False(t, ok)
	_, ok = AddValue(math.MinInt64, -1)
	assert.False(t, ok)
}
