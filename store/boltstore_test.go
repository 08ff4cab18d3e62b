package store

import (
	"path/filepath"
	"testing"

	"github.com/Luismorlan/tx_handler/model"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *BoltStore {
	t.Helper()
	s, err := OpenBoltStore(filepath.Join(t.TempDir(), "nested", "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func createTestLedger(values ...int64) model.Ledger {
	l := model.NewLedger()
	for i, v := range values {
		l.Insert(model.UTXO{PrevTxHash: "aa", Index: int64(i)}, model.Output{Value: v, PublicKey: []byte{byte(i + 1)}})
	}
	return l
}

func TestSaveAndLoadLedger(t *testing.T) {
	s := openTestStore(t)
	l := createTestLedger(10, 5)

	require.NoError(t, s.SaveLedger(3, &l))
	loaded, err := s.LoadLedger(3)
	require.NoError(t, err)
	assert.Equal(t, l, loaded)

	_, err = s.LoadLedger(4)
	assert.True(t, errors.Is(err, ErrNoSnapshot))
}

func TestLoadLatest(t *testing.T) {
	s := openTestStore(t)

	_, _, err := s.LoadLatest()
	assert.True(t, errors.Is(err, ErrNoSnapshot))

	first := createTestLedger(1)
	second := createTestLedger(2, 3)
	tenth := createTestLedger(4)
	require.NoError(t, s.SaveLedger(1, &first))
	require.NoError(t, s.SaveLedger(10, &tenth))
	require.NoError(t, s.SaveLedger(2, &second))

	epoch, l, err := s.LoadLatest()
	require.NoError(t, err)
	assert.Equal(t, int64(10), epoch)
	assert.Equal(t, tenth, l)
}

func TestSaveEmptyLedger(t *testing.T) {
	s := openTestStore(t)
	empty := model.NewLedger()
	require.NoError(t, s.SaveLedger(0, &empty))

	epoch, l, err := s.LoadLatest()
	require.NoError(t, err)
	assert.Equal(t, int64(0), epoch)
	assert.Equal(t, 0, l.Len())

	assert.Error(t, s.SaveLedger(-1, &empty))
}

func TestReopenKeepsSnapshots(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	s, err := OpenBoltStore(path)
	require.NoError(t, err)
	l := createTestLedger(7)
	require.NoError(t, s.SaveLedger(1, &l))
	require.NoError(t, s.Close())

	s, err = OpenBoltStore(path)
	require.NoError(t, err)
	defer s.Close()
	_, loaded, err := s.LoadLatest()
	require.NoError(t, err)
	assert.Equal(t, l, loaded)
}
