package flashloan

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"
)

// Payload layout constants.
const (
	// DiscriminatorSize is the length of the leading operation tag.
	DiscriminatorSize = 8

	// PrincipalOffset is where the borrow principal starts.
	PrincipalOffset = DiscriminatorSize

	// PrincipalSize is the width of the borrow principal field.
	PrincipalSize = 8

	// BorrowPayloadSize is the full borrow payload length.
	// Format: [discriminator:8][principal:8 LE]
	BorrowPayloadSize = DiscriminatorSize + PrincipalSize

	// RepayPayloadSize is the full repay payload length.
	// Format: [discriminator:8]
	RepayPayloadSize = DiscriminatorSize
)

// Discriminator is the 8-byte tag identifying an operation kind.
type Discriminator [DiscriminatorSize]byte

// Operation discriminators, derived from the operation name so they are
// stable across builds and cannot collide by accident.
var (
	BorrowDiscriminator = deriveDiscriminator("loan:borrow")
	RepayDiscriminator  = deriveDiscriminator("loan:repay")
)

// deriveDiscriminator hashes the namespaced operation name and keeps the
// first 8 bytes.
func deriveDiscriminator(name string) Discriminator {
	var d Discriminator
	copy(d[:], crypto.Keccak256([]byte(name))[:DiscriminatorSize])
	return d
}

// EncodeBorrowPayload encodes a borrow instruction payload.
func EncodeBorrowPayload(principal uint64) []byte {
	data := make([]byte, BorrowPayloadSize)
	copy(data[0:DiscriminatorSize], BorrowDiscriminator[:])
	binary.LittleEndian.PutUint64(data[PrincipalOffset:PrincipalOffset+PrincipalSize], principal)
	return data
}

// EncodeRepayPayload encodes a repay instruction payload. Repay carries no
// arguments; the amount owed is read from the paired borrow step.
func EncodeRepayPayload() []byte {
	data := make([]byte, RepayPayloadSize)
	copy(data[0:DiscriminatorSize], RepayDiscriminator[:])
	return data
}

// DecodeDiscriminator reads the leading operation tag from a payload.
func DecodeDiscriminator(data []byte) (Discriminator, error) {
	var d Discriminator
	if len(data) < DiscriminatorSize {
		return d, &DecodeError{Need: DiscriminatorSize, Have: len(data)}
	}
	copy(d[:], data[0:DiscriminatorSize])
	return d, nil
}

// DecodeBorrowPayload decodes the principal from a borrow payload,
// checking the discriminator and the field bounds.
func DecodeBorrowPayload(data []byte) (uint64, error) {
	d, err := DecodeDiscriminator(data)
	if err != nil {
		return 0, err
	}
	if d != BorrowDiscriminator {
		return 0, ErrUnknownInstruction
	}
	if len(data) < BorrowPayloadSize {
		return 0, &DecodeError{Need: BorrowPayloadSize, Have: len(data)}
	}
	return binary.LittleEndian.Uint64(data[PrincipalOffset : PrincipalOffset+PrincipalSize]), nil
}
