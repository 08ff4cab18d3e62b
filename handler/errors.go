package handler

import "github.com/cockroachdb/errors"

var (
	// ErrMissingOutput indicates an input claims an output that was already spent or never existed.
	ErrMissingOutput = errors.New("handler: claimed output is not in the ledger")

	// ErrDuplicateClaim indicates two inputs of one transaction claim the same output.
	ErrDuplicateClaim = errors.New("handler: output claimed more than once")

	// ErrBadSignature indicates an input signature is missing or does not verify against the owner.
	ErrBadSignature = errors.New("handler: invalid input signature")

	// ErrNegativeOutput indicates an output carries a negative value.
	ErrNegativeOutput = errors.New("handler: negative output value")

	// ErrValueNotConserved indicates the outputs are worth more than the inputs.
	ErrValueNotConserved = errors.New("handler: output value exceeds input value")

	// ErrNilTransaction indicates a nil transaction was passed for validation.
	ErrNilTransaction = errors.New("handler: transaction is nil")

	// ErrNilVerifier indicates the handler was built without a signature verifier.
	ErrNilVerifier = errors.New("handler: signature verifier is nil")

	// ErrInvalidApplyPolicy indicates the apply policy name is not recognized.
	ErrInvalidApplyPolicy = errors.New("handler: invalid apply policy")
)
