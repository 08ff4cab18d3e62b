package wallet

import (
	"github.com/Luismorlan/tx_handler/model"
	"github.com/Luismorlan/tx_handler/signature"
	"github.com/Luismorlan/tx_handler/utils"
	"github.com/cockroachdb/errors"
)

var (
	// ErrInsufficientFunds indicates the owned outputs cannot cover the requested transfer.
	ErrInsufficientFunds = errors.New("wallet: insufficient funds")

	// ErrNegativeTransfer indicates a requested output has a negative value.
	ErrNegativeTransfer = errors.New("wallet: negative transfer value")
)

// User signs transactions spending the outputs it owns.
type Wallet struct {
	Signer signature.Signer
	UTXOs  map[model.UTXO]model.Output
}

func NewWallet(signer signature.Signer) *Wallet {
	return &Wallet{
		Signer: signer,
		UTXOs:  make(map[model.UTXO]model.Output),
	}
}

// PublicKey returns the owner identity of this wallet.
func (w *Wallet) PublicKey() []byte {
	return w.Signer.PublicKey()
}

// SyncFromLedger replaces the known outputs with the ones the ledger holds for this wallet.
func (w *Wallet) SyncFromLedger(l *model.Ledger) {
	owned := l.UtxosForPublicKey(w.PublicKey())
	w.UTXOs = owned.L
}

// Balance sums every known output.
func (w *Wallet) Balance() (int64, error) {
	var total int64
	for utxo, output := range w.UTXOs {
		var ok bool
		if total, ok = model.AddValue(total, output.Value); !ok {
			return 0, errors.Wrapf(model.ErrValueOverflow, "at %s:%d", utxo.PrevTxHash, utxo.Index)
		}
	}
	return total, nil
}

// TransferMoney creates a signed transaction paying value to receiverPK.
func (w *Wallet) TransferMoney(receiverPK []byte, value int64) (*model.Transaction, error) {
	return w.CreatePendingTransaction([]model.Output{{Value: value, PublicKey: receiverPK}})
}

// CreatePendingTransaction spends every known output to pay outputs and sends the rest back to
// the wallet. Inputs are ordered by utxo so the same wallet state always yields the same
// transaction layout. The spent outputs are forgotten once the transaction is signed.
func (w *Wallet) CreatePendingTransaction(outputs []model.Output) (*model.Transaction, error) {
	// Total amount of money will be transferred to others
	var totalTransferValue int64
	for i := 0; i < len(outputs); i++ {
		if outputs[i].Value < 0 {
			return nil, errors.Wrapf(ErrNegativeTransfer, "output %d", i)
		}
		var ok bool
		if totalTransferValue, ok = model.AddValue(totalTransferValue, outputs[i].Value); !ok {
			return nil, errors.Wrapf(model.ErrValueOverflow, "transfer sum at output %d", i)
		}
	}

	// building inputs for pending transaction
	owned := model.Ledger{L: w.UTXOs}
	utxos := owned.Utxos()
	var inputs []model.Input
	var totalValue int64
	for _, utxo := range utxos {
		inputs = append(inputs, model.Input{
			PrevTxHash: utxo.PrevTxHash,
			Index:      utxo.Index,
		})
		var ok bool
		if totalValue, ok = model.AddValue(totalValue, w.UTXOs[utxo].Value); !ok {
			return nil, errors.Wrapf(model.ErrValueOverflow, "owned sum at %s:%d", utxo.PrevTxHash, utxo.Index)
		}
	}
	if totalValue < totalTransferValue {
		return nil, errors.Wrapf(ErrInsufficientFunds, "have %d, need %d", totalValue, totalTransferValue)
	}

	// Output with amount of money left after transfer
	pendingOutputs := append([]model.Output{}, outputs...)
	if change := totalValue - totalTransferValue; change > 0 {
		pendingOutputs = append(pendingOutputs, model.Output{
			Value:     change,
			PublicKey: w.PublicKey(),
		})
	}
	pendingTransaction := &model.Transaction{
		Inputs:  inputs,
		Outputs: pendingOutputs,
	}

	// sign inputs with own private key
	for i := 0; i < len(pendingTransaction.Inputs); i++ {
		toSignMsg, err := utils.GetInputDataToSignByIndex(pendingTransaction, i)
		if err != nil {
			return nil, err
		}
		pendingTransaction.Inputs[i].Signature, err = w.Signer.Sign(toSignMsg)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to sign input %d", i)
		}
	}
	utils.FinalizeTransaction(pendingTransaction)

	for _, utxo := range utxos {
		delete(w.UTXOs, utxo)
	}
	return pendingTransaction, nil
}
