package utils

import (
	"github.com/Luismorlan/tx_handler/model"
	"github.com/cockroachdb/errors"
)

// ErrIndexOutOfRange is returned when an input index does not exist in the transaction.
var ErrIndexOutOfRange = errors.New("index is out of the range")

func CreateUtxoFromInput(input *model.Input) model.UTXO {
	return model.UTXO{
		PrevTxHash: input.PrevTxHash,
		Index:      input.Index,
	}
}

// prevHashBytes decodes a hex transaction hash. Hashes that are not hex are taken verbatim so
// that every reference still has a canonical encoding.
func prevHashBytes(hash string) []byte {
	b, err := HexToBytes(hash)
	if err != nil {
		return []byte(hash)
	}
	return b
}

// appendWithLength appends b prefixed with its 8 byte length.
func appendWithLength(data []byte, b []byte) []byte {
	data = append(data, Int64ToBytes(int64(len(b)))...)
	return append(data, b...)
}

// GetInputBytes converts input to byte slice. With or without the signature.
func GetInputBytes(input *model.Input, withSig bool) []byte {
	var data []byte
	data = appendWithLength(data, prevHashBytes(input.PrevTxHash))
	data = append(data, Int64ToBytes(input.Index)...)
	if withSig {
		data = appendWithLength(data, input.Signature)
	}
	return data
}

func GetOutputBytes(output *model.Output) []byte {
	var data []byte
	data = append(data, Int64ToBytes(output.Value)...)
	data = appendWithLength(data, output.PublicKey)
	return data
}

// Concat all inputs (including signature) and outputs raw data in byte slices.
func GetTransactionBytes(t *model.Transaction) []byte {
	var data []byte
	for i := 0; i < len(t.Inputs); i++ {
		data = append(data, GetInputBytes(&t.Inputs[i], true /*withSig=*/)...)
	}
	for i := 0; i < len(t.Outputs); i++ {
		data = append(data, GetOutputBytes(&t.Outputs[i])...)
	}
	return data
}

// GetInputDataToSignByIndex returns the raw data the owner of input index signs: the input
// itself without signature followed by every output.
func GetInputDataToSignByIndex(t *model.Transaction, index int) ([]byte, error) {
	if index < 0 || index >= len(t.Inputs) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "input %d of %d", index, len(t.Inputs))
	}
	var data []byte
	// Don't include signature since we haven't signed it yet.
	data = append(data, GetInputBytes(&t.Inputs[index], false /*withSig=*/)...)
	for i := 0; i < len(t.Outputs); i++ {
		data = append(data, GetOutputBytes(&t.Outputs[i])...)
	}
	return data, nil
}

// HashTransaction returns the hex SHA256 digest of the transaction bytes.
func HashTransaction(t *model.Transaction) string {
	return BytesToHex(SHA256(GetTransactionBytes(t)))
}

// FinalizeTransaction fills in the hash. Call it once every input has been signed.
func FinalizeTransaction(t *model.Transaction) {
	t.Hash = HashTransaction(t)
}
