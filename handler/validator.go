package handler

import (
	"github.com/Luismorlan/tx_handler/model"
	"github.com/Luismorlan/tx_handler/signature"
	"github.com/Luismorlan/tx_handler/utils"
	"github.com/cockroachdb/errors"
)

// Validate checks tx against the view and returns nil when:
// 1. No output is claimed more than once by tx.
// 2. Every output claimed by tx is in the view.
// 3. Every input is signed by the owner of the output it claims.
// 4. All outputs of tx are non-negative.
// 5. The sum of the input values is at least the sum of the output values.
// Checks stop at the first failure and the returned error wraps the matching Err* value.
// The view is only read.
func Validate(tx *model.Transaction, view model.LedgerView, v signature.Verifier) error {
	if tx == nil {
		return ErrNilTransaction
	}
	var totalInput, totalOutput int64

	// Store all seen UTXOs to avoid double spending.
	seenUtxo := make(map[model.UTXO]bool, len(tx.Inputs))

	for i := 0; i < len(tx.Inputs); i++ {
		input := &tx.Inputs[i]
		inputUtxo := utils.CreateUtxoFromInput(input)

		if seenUtxo[inputUtxo] {
			return errors.Wrapf(ErrDuplicateClaim, "input %d claims %s:%d", i, inputUtxo.PrevTxHash, inputUtxo.Index)
		}
		seenUtxo[inputUtxo] = true

		// Verify the input is using UTXO.
		output, ok := view.Lookup(inputUtxo)
		if !ok {
			return errors.Wrapf(ErrMissingOutput, "input %d claims %s:%d", i, inputUtxo.PrevTxHash, inputUtxo.Index)
		}

		// Verify signature.
		msg, err := utils.GetInputDataToSignByIndex(tx, i)
		if err != nil || len(msg) == 0 {
			return errors.Wrapf(ErrBadSignature, "input %d has no data to sign", i)
		}
		if len(input.Signature) == 0 || v == nil || !v.Verify(output.PublicKey, msg, input.Signature) {
			return errors.Wrapf(ErrBadSignature, "input %d", i)
		}

		if totalInput, ok = model.AddValue(totalInput, output.Value); !ok {
			return errors.Wrapf(ErrValueNotConserved, "input sum overflows at input %d", i)
		}
	}

	for i := 0; i < len(tx.Outputs); i++ {
		// Output should be non-negative number.
		output := &tx.Outputs[i]
		if output.Value < 0 {
			return errors.Wrapf(ErrNegativeOutput, "output %d has value %d", i, output.Value)
		}
		var ok bool
		if totalOutput, ok = model.AddValue(totalOutput, output.Value); !ok {
			return errors.Wrapf(ErrValueNotConserved, "output sum overflows at output %d", i)
		}
	}

	if totalInput < totalOutput {
		return errors.Wrapf(ErrValueNotConserved, "inputs %d < outputs %d", totalInput, totalOutput)
	}
	return nil
}

// IsValid is Validate reduced to accept or reject.
func IsValid(tx *model.Transaction, view model.LedgerView, v signature.Verifier) bool {
	return Validate(tx, view, v) == nil
}
