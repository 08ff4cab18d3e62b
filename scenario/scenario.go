// Package scenario reads and writes yaml descriptions of a genesis ledger followed by the
// candidate transactions of each epoch. Byte fields are hex encoded.
package scenario

import (
	"os"

	"github.com/Luismorlan/tx_handler/model"
	"github.com/Luismorlan/tx_handler/utils"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v2"
)

type ledgerEntry struct {
	PrevTxHash string `yaml:"prev_tx_hash"`
	Index      int64  `yaml:"index"`
	Value      int64  `yaml:"value"`
	PublicKey  string `yaml:"public_key"`
}

type inputEntry struct {
	PrevTxHash string `yaml:"prev_tx_hash"`
	Index      int64  `yaml:"index"`
	Signature  string `yaml:"signature"`
}

type outputEntry struct {
	Value     int64  `yaml:"value"`
	PublicKey string `yaml:"public_key"`
}

type txEntry struct {
	Hash    string        `yaml:"hash,omitempty"`
	Inputs  []inputEntry  `yaml:"inputs"`
	Outputs []outputEntry `yaml:"outputs"`
}

type epochEntry struct {
	Transactions []txEntry `yaml:"transactions"`
}

type document struct {
	Ledger []ledgerEntry `yaml:"ledger"`
	Epochs []epochEntry  `yaml:"epochs"`
}

// Scenario is a genesis ledger and the candidates of each epoch, in order.
type Scenario struct {
	Ledger model.Ledger
	Epochs [][]*model.Transaction
}

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read scenario %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scenario %s", path)
	}
	return s, nil
}

// Parse decodes a yaml scenario. Transactions without a hash get the content hash.
func Parse(data []byte) (*Scenario, error) {
	var doc document
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse scenario")
	}

	s := &Scenario{Ledger: model.NewLedger()}
	for i, e := range doc.Ledger {
		pk, err := utils.HexToBytes(e.PublicKey)
		if err != nil {
			return nil, errors.Wrapf(err, "ledger entry %d", i)
		}
		s.Ledger.Insert(model.UTXO{PrevTxHash: e.PrevTxHash, Index: e.Index}, model.Output{Value: e.Value, PublicKey: pk})
	}

	for i, epoch := range doc.Epochs {
		txs := make([]*model.Transaction, 0, len(epoch.Transactions))
		for j, e := range epoch.Transactions {
			tx, err := e.toTransaction()
			if err != nil {
				return nil, errors.Wrapf(err, "epoch %d transaction %d", i, j)
			}
			txs = append(txs, tx)
		}
		s.Epochs = append(s.Epochs, txs)
	}
	return s, nil
}

func (e txEntry) toTransaction() (*model.Transaction, error) {
	tx := &model.Transaction{Hash: e.Hash}
	for i, in := range e.Inputs {
		sig, err := utils.HexToBytes(in.Signature)
		if err != nil {
			return nil, errors.Wrapf(err, "input %d", i)
		}
		tx.Inputs = append(tx.Inputs, model.Input{PrevTxHash: in.PrevTxHash, Index: in.Index, Signature: sig})
	}
	for i, out := range e.Outputs {
		pk, err := utils.HexToBytes(out.PublicKey)
		if err != nil {
			return nil, errors.Wrapf(err, "output %d", i)
		}
		tx.Outputs = append(tx.Outputs, model.Output{Value: out.Value, PublicKey: pk})
	}
	if tx.Hash == "" {
		utils.FinalizeTransaction(tx)
	}
	return tx, nil
}

// Encode renders s as yaml. Ledger entries are written in utxo order.
func Encode(s *Scenario) ([]byte, error) {
	var doc document
	for _, utxo := range s.Ledger.Utxos() {
		out := s.Ledger.L[utxo]
		doc.Ledger = append(doc.Ledger, ledgerEntry{
			PrevTxHash: utxo.PrevTxHash,
			Index:      utxo.Index,
			Value:      out.Value,
			PublicKey:  utils.BytesToHex(out.PublicKey),
		})
	}
	for _, txs := range s.Epochs {
		var epoch epochEntry
		for _, tx := range txs {
			e := txEntry{Hash: tx.Hash}
			for _, in := range tx.Inputs {
				e.Inputs = append(e.Inputs, inputEntry{PrevTxHash: in.PrevTxHash, Index: in.Index, Signature: utils.BytesToHex(in.Signature)})
			}
			for _, out := range tx.Outputs {
				e.Outputs = append(e.Outputs, outputEntry{Value: out.Value, PublicKey: utils.BytesToHex(out.PublicKey)})
			}
			epoch.Transactions = append(epoch.Transactions, e)
		}
		doc.Epochs = append(doc.Epochs, epoch)
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode scenario")
	}
	return data, nil
}
