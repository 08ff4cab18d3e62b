package model

import (
	"math"

	"github.com/cockroachdb/errors"
)

// ErrValueOverflow indicates a sum of output values does not fit in an int64.
var ErrValueOverflow = errors.New("model: value sum overflows int64")

// AddValue returns a+b and false if the sum does not fit in an int64.
func AddValue(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}
