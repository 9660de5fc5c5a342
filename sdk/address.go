package sdk

import (
	"github.com/minio/sha256-simd"
	"github.com/mr-tron/base58"
)

// Address is a 32-byte account key, rendered as base58 text on the wire.
type Address [32]byte

var ZeroAddress Address

// String returns the base58 form used in payloads, events and logs.
// Example payload: sdk.AddressFromString("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")
func (a Address) String() string {
	return base58.Encode(a[:])
}

// Bytes exposes the raw key for seed derivation and commitment preimages.
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero reports whether the address is the all-zero key.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// MarshalJSON renders the address as a quoted base58 string.
func (a Address) MarshalJSON() ([]byte, error) {
	s := a.String()
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	out = append(out, s...)
	out = append(out, '"')
	return out, nil
}

// UnmarshalJSON parses a quoted base58 string back into the 32-byte key.
func (a *Address) UnmarshalJSON(data []byte) error {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	parsed, err := AddressFromString(string(data))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// AddressFromString decodes base58 text into an Address.
func AddressFromString(s string) (Address, error) {
	var a Address
	raw, err := base58.Decode(s)
	if err != nil {
		return a, err
	}
	if len(raw) != len(a) {
		return a, errAddressLength
	}
	copy(a[:], raw)
	return a, nil
}

// MustAddress is AddressFromString for fixtures and tooling; panics on bad input.
func MustAddress(s string) Address {
	a, err := AddressFromString(s)
	if err != nil {
		panic(err)
	}
	return a
}

// DeriveAddress maps a labeled seed tuple to a deterministic account key.
// Each seed is length-prefixed before hashing so ("ab","c") and ("a","bc")
// cannot collide.
func DeriveAddress(seeds ...[]byte) Address {
	h := sha256.New()
	for _, seed := range seeds {
		h.Write([]byte{byte(len(seed))})
		h.Write(seed)
	}
	h.Write([]byte("private_dao:account"))
	var a Address
	copy(a[:], h.Sum(nil))
	return a
}

// AssociatedTokenAddress locates the canonical token account holding `mint`
// units for `owner`.
func AssociatedTokenAddress(owner, mint Address) Address {
	return DeriveAddress([]byte("ata"), owner[:], mint[:])
}
