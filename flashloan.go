// Package flashloan implements the validation core of an atomic flash-loan
// protocol: a borrower may take funds out of a shared pool only if, within
// the same all-or-nothing unit of execution, a matching repayment (principal
// plus fee) is guaranteed to run before the unit completes.
//
// The package does not execute or schedule anything itself. An external
// execution environment assembles an ordered sequence of steps, guarantees
// that the whole sequence commits or aborts atomically, and hands each step
// a read-only view of the full sequence. This library supplies the pieces
// that make the loan safe:
//   - Introspection of the step sequence: Borrow confirms a correct Repay is
//     the last step of the unit, Repay confirms a correct Borrow was the
//     first, and both confirm the paired step touches the same accounts.
//   - Overflow-checked fee arithmetic (500 basis points on the principal).
//   - Deterministic derivation of the pool identity, so a caller can never
//     substitute a look-alike pool of their own.
//
// # Basic Usage
//
// Create a protocol, build a loan unit, and execute its steps in order:
//
//	protocol := flashloan.NewProtocol(programID)
//
//	steps, err := protocol.NewLoanBuilder(borrower, mint, borrowerVault, poolVault, 1_000).
//		Add(arbitrageStep).
//		Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// The runtime executes each step with a view of the whole unit.
//	for i := range steps {
//	    seq, _ := flashloan.NewSequence(steps, uint16(i))
//	    if steps[i].ProgramID == protocol.ProgramID() {
//	        if err := protocol.Execute(seq, custody); err != nil {
//	            log.Fatal(err) // aborts the whole unit
//	        }
//	    }
//	}
//
// # Introspection
//
// The Borrow and Repay steps never share live state; each sees only the
// immutable Sequence. Borrow runs at index 0 and looks ahead to the final
// step, requiring this protocol's Repay discriminator and positionally
// identical accounts. Repay runs at the final index and looks back to step 0,
// decoding the borrowed principal from the Borrow payload. Account equality
// is positional on purpose: the position of each account fixes its role
// (borrower, pool, mint, borrower vault, pool vault).
//
// # Payload Encoding
//
// Step payloads are a fixed-layout record: an 8-byte operation discriminator
// followed by fixed-offset fields. The Borrow payload carries the principal
// as a little-endian uint64 immediately after the discriminator; the Repay
// payload is the discriminator alone. All decoding is bounds-checked.
//
// # Fees
//
// The fee is floor(principal * 500 / 10_000), computed through a 256-bit
// intermediate so the multiplication can never truncate, and the
// principal+fee total is checked against the uint64 range. The rate is
// configurable per protocol with WithFeeBasisPoints.
//
// # Known Limitations
//
// The design assumes exactly one borrow/repay pair per unit. Steps between
// the first and last index are not inspected by the validators, so an extra
// step carrying this protocol's identity in a middle position is not
// rejected at validation time. The loan builder refuses to assemble such
// units, but a hand-assembled sequence can contain them.
package flashloan
