package flashloan

import (
	"github.com/ethereum/go-ethereum/common"
)

// UnitBuilder assembles a well-formed loan unit: a borrow step first, any
// number of caller steps in the middle (the arbitrage, liquidation, or other
// work the loan funds), and the matching repay step last. Both loan steps
// are built with the canonical account role ordering, so a built unit always
// passes the introspection checks.
type UnitBuilder struct {
	protocol      *Protocol
	borrower      common.Address
	mint          common.Address
	borrowerVault common.Address
	poolVault     common.Address
	principal     uint64
	middle        []Step
	err           error
}

// NewLoanBuilder starts a unit for borrowing principal of the given mint.
// The borrower signs; the vault accounts hold the asset on each side.
func (p *Protocol) NewLoanBuilder(borrower, mint, borrowerVault, poolVault common.Address, principal uint64) *UnitBuilder {
	return &UnitBuilder{
		protocol:      p,
		borrower:      borrower,
		mint:          mint,
		borrowerVault: borrowerVault,
		poolVault:     poolVault,
		principal:     principal,
	}
}

// Add appends a step between the borrow and repay steps. Steps carrying this
// protocol's own program identity are refused: the introspection design
// assumes exactly one borrow/repay pair per unit, and the builder will not
// assemble a unit that violates it.
func (b *UnitBuilder) Add(step Step) *UnitBuilder {
	if b.err != nil {
		return b
	}
	if step.ProgramID == b.protocol.programID {
		b.err = ErrReservedStep
		return b
	}
	b.middle = append(b.middle, step.clone())
	return b
}

// Len returns the number of steps the built unit will contain.
func (b *UnitBuilder) Len() int {
	return len(b.middle) + 2
}

// Build assembles the ordered step list for submission as one atomic unit.
func (b *UnitBuilder) Build() ([]Step, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.principal == 0 {
		return nil, ErrInvalidAmount
	}

	steps := make([]Step, 0, len(b.middle)+2)
	steps = append(steps, Step{
		ProgramID: b.protocol.programID,
		Accounts:  b.loanAccounts(),
		Data:      EncodeBorrowPayload(b.principal),
	})
	steps = append(steps, b.middle...)
	steps = append(steps, Step{
		ProgramID: b.protocol.programID,
		Accounts:  b.loanAccounts(),
		Data:      EncodeRepayPayload(),
	})

	return steps, nil
}

// loanAccounts lays out the account list shared by both loan steps.
// Position is role: borrower, pool, mint, borrower vault, pool vault.
func (b *UnitBuilder) loanAccounts() []AccountMeta {
	return []AccountMeta{
		{Key: b.borrower, IsSigner: true, IsWritable: true},
		{Key: b.protocol.pool},
		{Key: b.mint},
		{Key: b.borrowerVault, IsWritable: true},
		{Key: b.poolVault, IsWritable: true},
	}
}
