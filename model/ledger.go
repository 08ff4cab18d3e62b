package model

import (
	"bytes"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/jinzhu/copier"
)

// Unspent transaction output. All UTXO are aggregated as a ledger and handed from one epoch to the next.
type UTXO struct {
	// Hex string of the transaction.
	PrevTxHash string
	// The index of the output in that transaction. Together with PrevTxHash, it identifies the unique output.
	Index int64
}

// LedgerView is the read only access the validator needs.
type LedgerView interface {
	// Contains reports whether the utxo is still unspent.
	Contains(utxo UTXO) bool
	// Lookup returns the output the utxo resolves to.
	Lookup(utxo UTXO) (Output, bool)
}

// Ledger is simply a pool of UTXO.
type Ledger struct {
	L map[UTXO]Output
}

func NewLedger() Ledger {
	return Ledger{
		L: make(map[UTXO]Output),
	}
}

// CopyLedger returns a deep copy of the given ledger. Nothing is shared with the source, so the
// copy can be mutated freely by one epoch without touching the snapshot it came from.
func CopyLedger(from *Ledger) (Ledger, error) {
	l := NewLedger()
	if from == nil {
		return l, nil
	}
	// copier cannot deep copy maps with struct keys, so only the outputs go through it.
	for utxo, output := range from.L {
		var out Output
		if err := copier.CopyWithOption(&out, &output, copier.Option{DeepCopy: true}); err != nil {
			return Ledger{}, errors.Wrapf(err, "failed to copy output %s:%d", utxo.PrevTxHash, utxo.Index)
		}
		// copier allocates empty slices for nil ones.
		if output.PublicKey == nil {
			out.PublicKey = nil
		}
		l.L[utxo] = out
	}
	return l, nil
}

func (l *Ledger) Contains(utxo UTXO) bool {
	_, ok := l.L[utxo]
	return ok
}

func (l *Ledger) Lookup(utxo UTXO) (Output, bool) {
	output, ok := l.L[utxo]
	return output, ok
}

// Insert adds the output, overwriting anything already stored under utxo.
func (l *Ledger) Insert(utxo UTXO, output Output) {
	if l.L == nil {
		l.L = make(map[UTXO]Output)
	}
	l.L[utxo] = output
}

// Remove deletes the utxo. Removing an absent utxo is a no-op.
func (l *Ledger) Remove(utxo UTXO) {
	delete(l.L, utxo)
}

func (l *Ledger) Len() int {
	return len(l.L)
}

// Utxos returns every utxo in the ledger ordered by transaction hash and then index.
func (l *Ledger) Utxos() []UTXO {
	utxos := make([]UTXO, 0, len(l.L))
	for utxo := range l.L {
		utxos = append(utxos, utxo)
	}
	sort.Slice(utxos, func(i, j int) bool {
		if utxos[i].PrevTxHash != utxos[j].PrevTxHash {
			return utxos[i].PrevTxHash < utxos[j].PrevTxHash
		}
		return utxos[i].Index < utxos[j].Index
	})
	return utxos
}

// UtxosForPublicKey returns a new ledger holding only the outputs owned by pk.
func (l *Ledger) UtxosForPublicKey(pk []byte) Ledger {
	res := NewLedger()
	for utxo, output := range l.L {
		if bytes.Equal(output.PublicKey, pk) {
			res.L[utxo] = output
		}
	}
	return res
}

// Balance sums the value of every output owned by pk.
func (l *Ledger) Balance(pk []byte) (int64, error) {
	var total int64
	for utxo, output := range l.L {
		if !bytes.Equal(output.PublicKey, pk) {
			continue
		}
		var ok bool
		if total, ok = AddValue(total, output.Value); !ok {
			return 0, errors.Wrapf(ErrValueOverflow, "at %s:%d", utxo.PrevTxHash, utxo.Index)
		}
	}
	return total, nil
}
