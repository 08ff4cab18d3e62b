// Package store keeps ledger snapshots between runs. It sits outside the transaction handler:
// the handler only ever sees the ledger it was constructed from.
package store

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"os"
	"path/filepath"

	"github.com/Luismorlan/tx_handler/model"
	"github.com/cockroachdb/errors"
	"go.etcd.io/bbolt"
)

var bucketSnapshots = []byte("snapshots")

// ErrNoSnapshot indicates the store holds no ledger yet.
var ErrNoSnapshot = errors.New("store: no snapshot stored")

// snapshotEntry is the gob form of one ledger output.
type snapshotEntry struct {
	PrevTxHash string
	Index      int64
	Value      int64
	PublicKey  []byte
}

// BoltStore wraps a bbolt database holding one ledger snapshot per epoch.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore opens or creates the bbolt database at dbPath.
// The parent directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, errors.Wrap(err, "store: create directory")
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "store: open bolt db")
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketSnapshots)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "store: create buckets")
	}
	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// epochKey encodes an epoch as an 8-byte big-endian key so snapshots sort by epoch.
func epochKey(epoch int64) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(epoch))
	return k
}

// SaveLedger stores the ledger as the snapshot taken after epoch.
func (s *BoltStore) SaveLedger(epoch int64, l *model.Ledger) error {
	if epoch < 0 {
		return errors.Newf("store: negative epoch %d", epoch)
	}
	entries := make([]snapshotEntry, 0, l.Len())
	for _, utxo := range l.Utxos() {
		out := l.L[utxo]
		entries = append(entries, snapshotEntry{
			PrevTxHash: utxo.PrevTxHash,
			Index:      utxo.Index,
			Value:      out.Value,
			PublicKey:  out.PublicKey,
		})
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(entries); err != nil {
		return errors.Wrap(err, "store: encode snapshot")
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketSnapshots).Put(epochKey(epoch), buf.Bytes())
	})
}

// LoadLedger returns the snapshot stored for epoch.
func (s *BoltStore) LoadLedger(epoch int64) (model.Ledger, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketSnapshots).Get(epochKey(epoch)); v != nil {
			data = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return model.Ledger{}, errors.Wrap(err, "store: read snapshot")
	}
	if data == nil {
		return model.Ledger{}, errors.Wrapf(ErrNoSnapshot, "epoch %d", epoch)
	}
	return decodeLedger(data)
}

// LoadLatest returns the most recent snapshot and its epoch.
func (s *BoltStore) LoadLatest() (int64, model.Ledger, error) {
	var (
		key  []byte
		data []byte
	)
	err := s.db.View(func(tx *bbolt.Tx) error {
		k, v := tx.Bucket(bucketSnapshots).Cursor().Last()
		if k != nil {
			key = append([]byte{}, k...)
			data = append([]byte{}, v...)
		}
		return nil
	})
	if err != nil {
		return 0, model.Ledger{}, errors.Wrap(err, "store: read snapshot")
	}
	if key == nil {
		return 0, model.Ledger{}, ErrNoSnapshot
	}
	l, err := decodeLedger(data)
	if err != nil {
		return 0, model.Ledger{}, err
	}
	return int64(binary.BigEndian.Uint64(key)), l, nil
}

func decodeLedger(data []byte) (model.Ledger, error) {
	var entries []snapshotEntry
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&entries); err != nil {
		return model.Ledger{}, errors.Wrap(err, "store: decode snapshot")
	}
	l := model.NewLedger()
	for _, e := range entries {
		l.Insert(model.UTXO{PrevTxHash: e.PrevTxHash, Index: e.Index}, model.Output{Value: e.Value, PublicKey: e.PublicKey})
	}
	return l, nil
}
