package flashloan

import (
	"github.com/ethereum/go-ethereum/common"
)

// Custody is the boundary with the external asset-custody mechanism. A
// Transfer debits from and credits to; it reports ErrInsufficientFunds when
// the source cannot cover the amount, and it takes part in the same
// all-or-nothing guarantee as the rest of the atomic unit.
type Custody interface {
	Transfer(from, to common.Address, amount uint64) error
}

// Protocol is the flash-loan program: it owns the derived pool identity and
// the borrow/repay step handlers.
type Protocol struct {
	programID common.Address
	pool      common.Address
	bump      uint8
	validator *Validator
	cfg       *protocolConfig
}

// NewProtocol creates a protocol with the given program identity. The pool
// identity is derived immediately from the configured seed and never read
// from caller input.
func NewProtocol(programID common.Address, opts ...ProtocolOption) *Protocol {
	cfg := defaultProtocolConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	pool, bump := DerivePoolIdentity(cfg.poolSeed)

	return &Protocol{
		programID: programID,
		pool:      pool,
		bump:      bump,
		validator: NewValidator(programID),
		cfg:       cfg,
	}
}

// ProgramID returns the protocol's program identity.
func (p *Protocol) ProgramID() common.Address {
	return p.programID
}

// Pool returns the derived pool identity.
func (p *Protocol) Pool() common.Address {
	return p.pool
}

// Bump returns the bump byte that disambiguated the pool identity.
func (p *Protocol) Bump() uint8 {
	return p.bump
}

// Execute routes the unit's current step to the matching handler based on
// its payload discriminator.
func (p *Protocol) Execute(seq *Sequence, custody Custody) error {
	cur, err := seq.Current()
	if err != nil {
		return err
	}
	disc, err := DecodeDiscriminator(cur.Data)
	if err != nil {
		return err
	}

	switch disc {
	case BorrowDiscriminator:
		principal, err := DecodeBorrowPayload(cur.Data)
		if err != nil {
			return err
		}
		return p.Borrow(seq, custody, principal)
	case RepayDiscriminator:
		return p.Repay(seq, custody)
	default:
		return ErrUnknownInstruction
	}
}

// Borrow handles the borrow step: reject a zero principal, confirm via
// introspection that a correct repay closes the unit, confirm the pool
// account is the real derived pool, then move the principal from the pool
// vault to the borrower vault. Any error aborts the whole unit.
func (p *Protocol) Borrow(seq *Sequence, custody Custody, principal uint64) error {
	if principal == 0 {
		return ErrInvalidAmount
	}

	if err := p.validator.ValidateBorrow(seq); err != nil {
		return err
	}

	cur, err := seq.Current()
	if err != nil {
		return err
	}
	if err := p.verifyPoolAccount(cur); err != nil {
		return err
	}

	return p.transfer(custody, cur.Accounts[RolePoolVault].Key, cur.Accounts[RoleBorrowerVault].Key, principal)
}

// Repay handles the repay step: confirm via introspection that the unit
// opened with a correct borrow, recover the principal from that step's
// payload, add the fee, then move the total from the borrower vault back to
// the pool vault.
func (p *Protocol) Repay(seq *Sequence, custody Custody) error {
	principal, err := p.validator.ValidateRepay(seq)
	if err != nil {
		return err
	}

	cur, err := seq.Current()
	if err != nil {
		return err
	}
	if err := p.verifyPoolAccount(cur); err != nil {
		return err
	}

	fee, err := computeFee(principal, p.cfg.feeBasisPoints)
	if err != nil {
		return err
	}
	total, err := ComputeTotal(principal, fee)
	if err != nil {
		return err
	}

	return p.transfer(custody, cur.Accounts[RoleBorrowerVault].Key, cur.Accounts[RolePoolVault].Key, total)
}

// verifyPoolAccount checks the step's claimed pool account against the
// derived identity. Validation has already ensured the role positions exist.
func (p *Protocol) verifyPoolAccount(s Step) error {
	return VerifyPoolIdentity(s.Accounts[RolePool].Key, p.cfg.poolSeed)
}

// transfer calls into custody, wrapping failures with the accounts involved.
func (p *Protocol) transfer(custody Custody, from, to common.Address, amount uint64) error {
	if err := custody.Transfer(from, to, amount); err != nil {
		return &TransferError{From: from, To: to, Amount: amount, Err: err}
	}
	return nil
}
