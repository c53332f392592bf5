package flashloan

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// poolNamespace tags pool identity preimages so they can never collide with
// hashes derived for any other purpose.
const poolNamespace = "flashloan:pool"

// DefaultPoolSeed is the seed material for the protocol's custody pool.
var DefaultPoolSeed = []byte("protocol")

// DerivePoolIdentity derives the canonical pool identity for the given seed
// material, together with the bump byte that disambiguates it. The identity
// is a pure function of the namespace tag, the seed, and the bump; no
// caller-supplied account ever enters the preimage.
//
// Bumps are tried from 255 downward and the first that yields a usable
// (non-zero) identity wins, so identical seeds always resolve to the
// identical identity and bump.
func DerivePoolIdentity(seed []byte) (common.Address, uint8) {
	for bump := 255; bump >= 0; bump-- {
		h := crypto.Keccak256([]byte(poolNamespace), seed, []byte{uint8(bump)})
		addr := common.BytesToAddress(h[12:])
		if addr != (common.Address{}) {
			return addr, uint8(bump)
		}
	}
	// 256 distinct keccak preimages cannot all map to the zero address.
	return common.Address{}, 0
}

// VerifyPoolIdentity checks a claimed pool identity from caller-controlled
// input against the freshly derived one. Callers are never trusted to name
// the pool directly: a mismatch means the step targets an account
// masquerading as the pool.
func VerifyPoolIdentity(claimed common.Address, seed []byte) error {
	derived, _ := DerivePoolIdentity(seed)
	if claimed != derived {
		return &AccountMismatchError{Role: RolePool, Want: derived, Got: claimed}
	}
	return nil
}
