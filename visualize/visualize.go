package visualize

import (
	"fmt"
	"io"

	"github.com/Luismorlan/tx_handler/model"
	"github.com/Luismorlan/tx_handler/utils"
	"github.com/bradleyjkemp/memviz"
)

// We re-define the visualize model here because the ledger map and raw byte keys render as an
// unreadable graph.
type output struct {
	prevTxHash string
	index      int64
	value      int64
	publicKey  string
}

type transaction struct {
	hash    string
	outputs []output
}

type ledger struct {
	epoch    int64
	utxos    []output
	accepted []transaction
}

// The string of public key and hash is just too long to render, instead we take only first 3 and last 3
// characters and replace the middle part with '...'. E.g. "abcdefghi" will be rendered as "abc...ghi"
func shortenString(s string) string {
	if len(s) < 9 {
		return s
	}
	return fmt.Sprintf("%s...%s", s[0:3], s[len(s)-3:])
}

// Public keys share long common prefixes in their encodings, so the middle is the most telling part.
func shortenPK(s string) string {
	if len(s) < 9 {
		return s
	}
	mid := len(s) / 2
	i := mid - 1
	j := mid + 2
	return fmt.Sprintf("...%s...", s[i:j])
}

func toOutput(utxo model.UTXO, out model.Output) output {
	return output{
		prevTxHash: shortenString(utxo.PrevTxHash),
		index:      utxo.Index,
		value:      out.Value,
		publicKey:  shortenPK(utils.BytesToHex(out.PublicKey)),
	}
}

func txToTx(tx *model.Transaction) transaction {
	t := transaction{
		hash: shortenString(tx.Hash),
	}
	for i := 0; i < len(tx.Outputs); i++ {
		utxo := model.UTXO{PrevTxHash: tx.Hash, Index: int64(i)}
		t.outputs = append(t.outputs, toOutput(utxo, tx.Outputs[i]))
	}
	return t
}

func constructData(epoch int64, l *model.Ledger, accepted *model.TxSet) ledger {
	data := ledger{epoch: epoch}
	for _, utxo := range l.Utxos() {
		data.utxos = append(data.utxos, toOutput(utxo, l.L[utxo]))
	}
	if accepted != nil {
		for _, tx := range accepted.Transactions() {
			data.accepted = append(data.accepted, txToTx(tx))
		}
	}
	return data
}

// Render writes a graphviz dot description of the ledger after epoch, together with the
// transactions accepted in it. accepted may be nil. Turn it into an image with
// `dot -Tpng file -o out.png`.
func Render(w io.Writer, epoch int64, l *model.Ledger, accepted *model.TxSet) {
	data := constructData(epoch, l, accepted)
	memviz.Map(w, &data)
}
