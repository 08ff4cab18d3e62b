package model

import "sort"

type Input struct {
	// Hash of the transaction that outputs this coin.
	PrevTxHash string
	// The index of the output in that transaction. Together with PrevTxHash, it identifies the unique output.
	Index int64
	// Signature using the previous owner's PK.
	Signature []byte
}

type Output struct {
	// How much value to transfer, in minor units. Negative values are representable so that
	// malformed transactions can be expressed and rejected.
	Value int64
	// Public key of the receiver, in the form of bytes.
	PublicKey []byte
}

type Transaction struct {
	// Hash of this transaction. We use this to uniquely identify the transaction.
	Hash string
	// All inputs of this transaction.
	Inputs []Input
	// All outputs of this transaction.
	Outputs []Output
}

// TxSet holds accepted transactions keyed by hash. Identical transactions collapse into one entry.
type TxSet struct {
	txs map[string]*Transaction
}

// NewTxSet creates an empty transaction set.
func NewTxSet() *TxSet {
	return &TxSet{
		txs: make(map[string]*Transaction),
	}
}

// Add stores tx and returns false if a transaction with the same hash was already present.
func (s *TxSet) Add(tx *Transaction) bool {
	if _, exist := s.txs[tx.Hash]; exist {
		return false
	}
	s.txs[tx.Hash] = tx
	return true
}

func (s *TxSet) Contains(hash string) bool {
	_, exist := s.txs[hash]
	return exist
}

func (s *TxSet) Len() int {
	return len(s.txs)
}

// Transactions returns the members sorted by hash. The order carries no meaning beyond being stable.
func (s *TxSet) Transactions() []*Transaction {
	res := make([]*Transaction, 0, len(s.txs))
	for _, tx := range s.txs {
		res = append(res, tx)
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Hash < res[j].Hash
	})
	return res
}
