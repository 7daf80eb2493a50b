package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is the ordinary principal issuing a call (an account). It is
// used for ownership checks and the per-identity voter record.
type Identity string

// ParseIdentity trims s and rejects the empty identity.
func ParseIdentity(s string) (Identity, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty identity", ErrInvalidInput)
	}
	return Identity(s), nil
}

// Address is the opaque handle of a campaign instance.
type Address string

// NewAddress returns a fresh random campaign address.
func NewAddress() Address {
	return Address(uuid.NewString())
}

// ParseAddress validates s as a campaign address.
func ParseAddress(s string) (Address, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: malformed campaign address", ErrInvalidInput)
	}
	return Address(id.String()), nil
}

// GroupID identifies an anonymous group. Zero is never a valid group.
type GroupID uint64

// scalarField is the BN254 scalar field modulus. Identity commitments are
// field elements and must be strictly below it.
var scalarField, _ = new(big.Int).SetString(
	"21888242871839275222246405745257275088548364400416034343698204186575808495617", 10)

// Commitment is an identity commitment in canonical decimal form. It lives
// in a namespace separate from Identity: nothing links the two.
type Commitment string

// ParseCommitment accepts a decimal or 0x-prefixed hexadecimal integer in
// the range (0, field modulus).
func ParseCommitment(s string) (Commitment, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s, base = s[2:], 16
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return "", fmt.Errorf("%w: malformed identity commitment", ErrInvalidInput)
	}
	if v.Sign() <= 0 || v.Cmp(scalarField) >= 0 {
		return "", fmt.Errorf("%w: identity commitment outside the scalar field", ErrInvalidInput)
	}
	return Commitment(v.String()), nil
}

// BigInt returns the numeric value of c.
func (c Commitment) BigInt() *big.Int {
	v, _ := new(big.Int).SetString(string(c), 10)
	return v
}

// Call carries the implicit context of every operation: who is calling and
// what time it is. Time is supplied from outside; the core never advances it.
type Call struct {
	Caller Identity
	Now    time.Time
}
