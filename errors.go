// Package flashloan implements the validation core of an atomic flash-loan
// protocol.
package flashloan

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for common failure conditions.
var (
	// ErrInvalidAmount indicates a borrow principal of zero.
	ErrInvalidAmount = errors.New("flashloan: borrow amount must be greater than zero")

	// ErrOverflow indicates checked arithmetic exceeded the representable range.
	ErrOverflow = errors.New("flashloan: arithmetic overflow")

	// ErrMissingRepay indicates the last step of the unit is not this
	// protocol's repay operation.
	ErrMissingRepay = errors.New("flashloan: missing repay step at end of unit")

	// ErrMissingBorrow indicates the first step of the unit is not this
	// protocol's borrow operation.
	ErrMissingBorrow = errors.New("flashloan: missing borrow step at start of unit")

	// ErrUnitTooShort indicates the unit cannot contain a borrow/repay pair.
	ErrUnitTooShort = errors.New("flashloan: atomic unit needs paired borrow and repay steps")

	// ErrTooManySteps indicates the unit exceeds the addressable step range.
	ErrTooManySteps = errors.New("flashloan: atomic unit exceeds 65535 steps")

	// ErrUnknownInstruction indicates a payload discriminator this protocol
	// does not recognize.
	ErrUnknownInstruction = errors.New("flashloan: unknown instruction discriminator")

	// ErrReservedStep indicates a builder middle step carrying the loan
	// program's own identity.
	ErrReservedStep = errors.New("flashloan: middle steps cannot carry the loan program identity")

	// ErrInsufficientFunds is returned by Custody implementations when the
	// source account cannot cover a transfer.
	ErrInsufficientFunds = errors.New("flashloan: insufficient funds to cover transfer")
)

// OrderingError indicates a step is not at its required position in the unit.
type OrderingError struct {
	Op    string // "borrow" or "repay"
	Index uint16 // position the step is executing at
	Want  uint16 // position the step must occupy
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("flashloan: %s must be step %d of the unit, executing at step %d", e.Op, e.Want, e.Index)
}

// AccountMismatchError indicates the accounts of paired borrow and repay
// steps diverge at a given role position.
type AccountMismatchError struct {
	Role AccountRole
	Want common.Address
	Got  common.Address
}

func (e *AccountMismatchError) Error() string {
	return fmt.Sprintf("flashloan: %s account mismatch: expected %s, got %s", e.Role, e.Want.Hex(), e.Got.Hex())
}

// StepIndexError indicates a step index outside the unit's bounds.
type StepIndexError struct {
	Index uint16
	Len   uint16
}

func (e *StepIndexError) Error() string {
	return fmt.Sprintf("flashloan: step index %d out of range in %d-step unit", e.Index, e.Len)
}

// DecodeError indicates a payload too short for the field being read.
type DecodeError struct {
	Need int
	Have int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("flashloan: payload too short: need %d bytes, have %d", e.Need, e.Have)
}

// TransferError wraps a custody failure with the accounts involved.
type TransferError struct {
	From   common.Address
	To     common.Address
	Amount uint64
	Err    error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("flashloan: transfer of %d from %s to %s: %v", e.Amount, e.From.Hex(), e.To.Hex(), e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}
