package flashloan

import (
	"github.com/ethereum/go-ethereum/common"
)

// Validator enforces the ordering, pairing, and account-consistency rules
// between the borrow and repay steps of one atomic unit. It works only from
// the immutable Sequence: neither step ever sees the other's live state.
type Validator struct {
	programID common.Address
}

// NewValidator creates a validator bound to the protocol's program identity.
func NewValidator(programID common.Address) *Validator {
	return &Validator{programID: programID}
}

// ValidateBorrow runs the borrow-side checks:
//
//  1. The unit must contain at least two steps. A one-step unit would let a
//     step sit at index 0 and the last index simultaneously and validate
//     against itself, so it is rejected outright.
//  2. Borrow must be the very first step, preventing prepended steps from
//     manipulating state before the loan.
//  3. The last step of the unit must carry this program's identity and the
//     repay discriminator.
//  4. The last step's accounts must equal this step's accounts position by
//     position.
func (v *Validator) ValidateBorrow(seq *Sequence) error {
	if seq.Len() < 2 {
		return ErrUnitTooShort
	}
	if i := seq.CurrentIndex(); i != 0 {
		return &OrderingError{Op: "borrow", Index: i, Want: 0}
	}

	last, err := seq.At(seq.Len() - 1)
	if err != nil {
		return err
	}
	if last.ProgramID != v.programID {
		return ErrMissingRepay
	}
	disc, err := DecodeDiscriminator(last.Data)
	if err != nil || disc != RepayDiscriminator {
		return ErrMissingRepay
	}

	cur, err := seq.Current()
	if err != nil {
		return err
	}
	return matchAccounts(cur.Accounts, last.Accounts)
}

// ValidateRepay runs the repay-side checks, mirror-image of ValidateBorrow:
// repay must be the last step, step 0 must be this program's borrow with
// positionally identical accounts. On success it returns the principal
// decoded from the borrow payload, from which the caller computes the
// repayment total.
func (v *Validator) ValidateRepay(seq *Sequence) (uint64, error) {
	if seq.Len() < 2 {
		return 0, ErrUnitTooShort
	}
	if i, last := seq.CurrentIndex(), seq.Len()-1; i != last {
		return 0, &OrderingError{Op: "repay", Index: i, Want: last}
	}

	first, err := seq.At(0)
	if err != nil {
		return 0, err
	}
	if first.ProgramID != v.programID {
		return 0, ErrMissingBorrow
	}
	disc, err := DecodeDiscriminator(first.Data)
	if err != nil || disc != BorrowDiscriminator {
		return 0, ErrMissingBorrow
	}

	cur, err := seq.Current()
	if err != nil {
		return 0, err
	}
	if err := matchAccounts(cur.Accounts, first.Accounts); err != nil {
		return 0, err
	}

	return DecodeBorrowPayload(first.Data)
}

// matchAccounts compares the role positions of two account lists pairwise.
// Positional equality is deliberate: position encodes role, so a set-equal
// but reordered list is a mismatch.
func matchAccounts(want, got []AccountMeta) error {
	for r := AccountRole(0); r < roleCount; r++ {
		var w, g common.Address
		if int(r) < len(want) {
			w = want[r].Key
		}
		if int(r) < len(got) {
			g = got[r].Key
		}
		if w != g || w == (common.Address{}) {
			return &AccountMismatchError{Role: r, Want: w, Got: g}
		}
	}
	return nil
}
