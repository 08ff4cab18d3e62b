package handler

import (
	"github.com/Luismorlan/tx_handler/config"
	"github.com/Luismorlan/tx_handler/logger"
	"github.com/Luismorlan/tx_handler/model"
	"github.com/Luismorlan/tx_handler/signature"
	"github.com/Luismorlan/tx_handler/utils"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ApplyPolicy decides which candidates change the ledger during an epoch.
type ApplyPolicy int

const (
	// ApplyAll claims the inputs and stores the outputs of every candidate, valid or not.
	ApplyAll ApplyPolicy = iota
	// ApplyAccepted only lets accepted transactions touch the ledger.
	ApplyAccepted
)

func (p ApplyPolicy) String() string {
	switch p {
	case ApplyAll:
		return config.ApplyAll
	case ApplyAccepted:
		return config.ApplyAccepted
	default:
		return "unknown"
	}
}

// ParseApplyPolicy maps a config value to a policy.
func ParseApplyPolicy(s string) (ApplyPolicy, error) {
	switch s {
	case config.ApplyAll:
		return ApplyAll, nil
	case config.ApplyAccepted:
		return ApplyAccepted, nil
	default:
		return 0, errors.Wrapf(ErrInvalidApplyPolicy, "%q", s)
	}
}

// Option configures a TxHandler.
type Option func(h *TxHandler)

func WithPolicy(p ApplyPolicy) Option {
	return func(h *TxHandler) {
		h.policy = p
	}
}

func WithLogger(log *zap.SugaredLogger) Option {
	return func(h *TxHandler) {
		if log != nil {
			h.log = log
		}
	}
}

// TxHandler owns the ledger and advances it one epoch per HandleTxs call. It is not safe for
// concurrent use; callers serialize epochs.
type TxHandler struct {
	// The current pool of unspent outputs. Only HandleTxs mutates it.
	utxoPool model.Ledger
	// Checks input signatures against output owners.
	verifier signature.Verifier
	policy   ApplyPolicy
	log      *zap.SugaredLogger
	// Number of epochs handled so far.
	epoch int64
}

// NewTxHandler creates a handler whose ledger is a deep copy of utxoPool. The caller's pool is
// never touched afterwards.
func NewTxHandler(utxoPool *model.Ledger, v signature.Verifier, opts ...Option) (*TxHandler, error) {
	if v == nil {
		return nil, ErrNilVerifier
	}
	l, err := model.CopyLedger(utxoPool)
	if err != nil {
		return nil, err
	}
	h := &TxHandler{
		utxoPool: l,
		verifier: v,
		policy:   ApplyAll,
		log:      logger.NewNop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// ValidateTx validates tx against the current ledger.
func (h *TxHandler) ValidateTx(tx *model.Transaction) error {
	return Validate(tx, &h.utxoPool, h.verifier)
}

// IsValidTx reports whether tx is valid against the current ledger.
func (h *TxHandler) IsValidTx(tx *model.Transaction) bool {
	return h.ValidateTx(tx) == nil
}

// HandleTxs runs one epoch over possibleTxs in the given order and returns the accepted set.
// Each candidate is validated against the ledger as already changed by the candidates before
// it, so of two candidates claiming the same output only the earlier can be accepted. Nil
// candidates are skipped.
func (h *TxHandler) HandleTxs(possibleTxs []*model.Transaction) *model.TxSet {
	h.epoch++
	accepted := model.NewTxSet()
	for _, tx := range possibleTxs {
		if tx == nil {
			continue
		}
		err := h.ValidateTx(tx)
		if err == nil {
			accepted.Add(tx)
		} else {
			h.log.Debugw("rejected transaction", "epoch", h.epoch, "tx", tx.Hash, "reason", err)
		}
		if err == nil || h.policy == ApplyAll {
			h.apply(tx)
		}
	}
	h.log.Infow("epoch handled",
		"epoch", h.epoch,
		"policy", h.policy.String(),
		"candidates", len(possibleTxs),
		"accepted", accepted.Len(),
		"utxos", h.utxoPool.Len(),
	)
	return accepted
}

// apply claims every input and stores every output under (tx.Hash, index).
func (h *TxHandler) apply(tx *model.Transaction) {
	for i := 0; i < len(tx.Inputs); i++ {
		h.utxoPool.Remove(utils.CreateUtxoFromInput(&tx.Inputs[i]))
	}
	for i := 0; i < len(tx.Outputs); i++ {
		utxo := model.UTXO{
			PrevTxHash: tx.Hash,
			Index:      int64(i),
		}
		h.utxoPool.Insert(utxo, tx.Outputs[i])
	}
}

// Ledger returns a deep copy of the current ledger, the snapshot for the next epoch.
func (h *TxHandler) Ledger() (model.Ledger, error) {
	return model.CopyLedger(&h.utxoPool)
}

// Epoch returns how many epochs have been handled.
func (h *TxHandler) Epoch() int64 {
	return h.epoch
}

// SetEpoch sets the epoch counter, used when resuming from a stored snapshot.
func (h *TxHandler) SetEpoch(epoch int64) {
	h.epoch = epoch
}

func (h *TxHandler) Policy() ApplyPolicy {
	return h.policy
}
