package flashloan

import (
	"github.com/holiman/uint256"
)

// Fee constants.
const (
	// FeeBasisPoints is the default loan fee rate (500 bps = 5.00%).
	FeeBasisPoints = 500

	// FeeDenominator converts basis points to a fraction.
	FeeDenominator = 10_000
)

// ComputeFee returns floor(principal * FeeBasisPoints / FeeDenominator).
// The multiplication runs in 256-bit space so it cannot truncate before
// the division; a result outside the uint64 range is ErrOverflow.
func ComputeFee(principal uint64) (uint64, error) {
	return computeFee(principal, FeeBasisPoints)
}

// ComputeTotal returns principal + fee, or ErrOverflow if the sum exceeds
// the uint64 range.
func ComputeTotal(principal, fee uint64) (uint64, error) {
	total := new(uint256.Int).Add(
		uint256.NewInt(principal),
		uint256.NewInt(fee),
	)
	if !total.IsUint64() {
		return 0, ErrOverflow
	}
	return total.Uint64(), nil
}

// computeFee is ComputeFee with a caller-chosen rate, used by protocols
// configured with WithFeeBasisPoints.
func computeFee(principal, basisPoints uint64) (uint64, error) {
	wide := uint256.NewInt(principal)
	_, overflow := wide.MulOverflow(wide, uint256.NewInt(basisPoints))
	if overflow {
		return 0, ErrOverflow
	}
	wide.Div(wide, uint256.NewInt(FeeDenominator))
	if !wide.IsUint64() {
		return 0, ErrOverflow
	}
	return wide.Uint64(), nil
}
