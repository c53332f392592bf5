package flashloan

import (
	"math"

	"github.com/ethereum/go-ethereum/common"
)

// AccountRole names the positional role of an account in a loan step.
// Account equality between paired steps is checked position by position, so
// the index of an account in a step's account list is its role.
type AccountRole int

const (
	// RoleBorrower is the signing wallet taking the loan.
	RoleBorrower AccountRole = iota

	// RolePool is the protocol's derived custody pool identity.
	RolePool

	// RoleMint is the asset being lent.
	RoleMint

	// RoleBorrowerVault is the borrower's custody account for the asset.
	RoleBorrowerVault

	// RolePoolVault is the pool's custody account for the asset.
	RolePoolVault

	// roleCount is the number of accounts a loan step must carry.
	roleCount
)

// String returns the role name used in error messages.
func (r AccountRole) String() string {
	switch r {
	case RoleBorrower:
		return "borrower"
	case RolePool:
		return "pool"
	case RoleMint:
		return "mint"
	case RoleBorrowerVault:
		return "borrower vault"
	case RolePoolVault:
		return "pool vault"
	default:
		return "unknown"
	}
}

// AccountMeta is one entry in a step's ordered account list.
type AccountMeta struct {
	Key        common.Address
	IsSigner   bool
	IsWritable bool
}

// Step is one operation within an atomic unit: the program that owns it, the
// ordered accounts it touches, and an opaque payload whose leading 8 bytes
// are the operation discriminator.
type Step struct {
	ProgramID common.Address
	Accounts  []AccountMeta
	Data      []byte
}

// clone deep-copies the step so sequences own their contents.
func (s Step) clone() Step {
	c := Step{ProgramID: s.ProgramID}
	if s.Accounts != nil {
		c.Accounts = make([]AccountMeta, len(s.Accounts))
		copy(c.Accounts, s.Accounts)
	}
	if s.Data != nil {
		c.Data = make([]byte, len(s.Data))
		copy(c.Data, s.Data)
	}
	return c
}

// Sequence is an immutable random-access view of an atomic unit's full step
// list plus the index of the step currently executing. Every step of the
// unit, including steps that have not yet run, is visible: Borrow relies on
// that lookahead to inspect the Repay step at the end of the unit.
type Sequence struct {
	steps   []Step
	current uint16
}

// NewSequence builds a sequence over the given steps with the current
// execution index. The steps are deep-copied; later mutation of the input
// cannot change the view.
func NewSequence(steps []Step, current uint16) (*Sequence, error) {
	if len(steps) > math.MaxUint16 {
		return nil, ErrTooManySteps
	}
	if int(current) >= len(steps) {
		return nil, &StepIndexError{Index: current, Len: uint16(len(steps))}
	}

	owned := make([]Step, len(steps))
	for i, s := range steps {
		owned[i] = s.clone()
	}

	return &Sequence{steps: owned, current: current}, nil
}

// Len returns the number of steps in the unit.
func (s *Sequence) Len() uint16 {
	return uint16(len(s.steps))
}

// CurrentIndex returns the index of the step currently executing.
func (s *Sequence) CurrentIndex() uint16 {
	return s.current
}

// At returns the step at the given index. The step is copied so callers
// cannot reach back into the sequence through its slices.
func (s *Sequence) At(i uint16) (Step, error) {
	if int(i) >= len(s.steps) {
		return Step{}, &StepIndexError{Index: i, Len: s.Len()}
	}
	return s.steps[i].clone(), nil
}

// Current returns the step at the current execution index.
func (s *Sequence) Current() (Step, error) {
	return s.At(s.current)
}
