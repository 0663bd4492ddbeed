package burnsplit

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcutil/bech32"
	"github.com/iov-one/burnsplit/errors"
)

var (
	// AddressPrefix is the human readable part of all bech32 encoded
	// addresses. You can modify it in init() before any addresses are
	// rendered, but it must not change during the lifetime of the kvstore
	AddressPrefix = "terra"
)

const (
	// AccountAddressLength is the length of an address derived from a
	// public key.
	AccountAddressLength = 20
	// ContractAddressLength is the length of an address of a module
	// instance, such as a token contract.
	ContractAddressLength = 32
)

// Address represents a collision-free, one-way digest of data (usually a
// public key) that can be used to identify an account.
//
// It is either AccountAddressLength or ContractAddressLength long.
type Address []byte

// Equals checks if two addresses are the same
func (a Address) Equals(b Address) bool {
	return bytes.Equal(a, b)
}

// Clone returns an independent copy of this address.
func (a Address) Clone() Address {
	if a == nil {
		return nil
	}
	cpy := make(Address, len(a))
	copy(cpy, a)
	return cpy
}

// String returns the bech32 representation of the address, using
// AddressPrefix as the human readable part.
func (a Address) String() string {
	if len(a) == 0 {
		return "(nil)"
	}
	raw, err := encodeBech32(AddressPrefix, a)
	if err != nil {
		return "hex:" + strings.ToUpper(hex.EncodeToString(a))
	}
	return raw
}

// MarshalJSON provides a bech32 representation for JSON,
// to override the standard base64 []byte encoding
func (a Address) MarshalJSON() ([]byte, error) {
	if len(a) == 0 {
		return JSON.Marshal("")
	}
	return JSON.Marshal(a.String())
}

// UnmarshalJSON parses JSON in bech32 (default) or hex: representation.
func (a *Address) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := JSON.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(errors.ErrInput, "cannot decode json")
	}
	// No value zero the address.
	if len(enc) == 0 {
		*a = nil
		return nil
	}
	addr, err := ParseAddress(enc)
	if err != nil {
		return err
	}
	*a = addr
	return nil
}

// Validate returns an error if the address is not the valid size
func (a Address) Validate() error {
	switch len(a) {
	case AccountAddressLength, ContractAddressLength:
		return nil
	case 0:
		return errors.Wrap(errors.ErrEmpty, "address")
	default:
		return errors.Wrapf(errors.ErrInput, "address length %d", len(a))
	}
}

// ParseAddress decodes an address from its human readable form. Bech32
// encoding with the AddressPrefix is the default, hex encoding is accepted
// when prefixed with "hex:".
func ParseAddress(enc string) (Address, error) {
	if strings.HasPrefix(enc, "hex:") {
		val, err := hex.DecodeString(enc[4:])
		if err != nil {
			return nil, errors.Wrap(errors.ErrInput, "cannot decode hex")
		}
		addr := Address(val)
		return addr, addr.Validate()
	}

	hrp, payload, err := decodeBech32(enc)
	if err != nil {
		return nil, err
	}
	if hrp != AddressPrefix {
		return nil, errors.Wrapf(errors.ErrInput, "address prefix %q, want %q", hrp, AddressPrefix)
	}
	addr := Address(payload)
	return addr, addr.Validate()
}

// NewAddress hashes and truncates into the account address size.
func NewAddress(data []byte) Address {
	if data == nil {
		return nil
	}
	h := sha256.Sum256(data)
	return h[:AccountAddressLength]
}

func decodeBech32(raw string) (string, []byte, error) {
	hrp, payload, err := bech32.Decode(raw)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "bech32 decode: %s", err)
	}
	payload, err = bech32.ConvertBits(payload, 5, 8, false)
	if err != nil {
		return "", nil, errors.Wrapf(errors.ErrInput, "convert bits: %s", err)
	}
	return hrp, payload, nil
}

func encodeBech32(hrp string, payload []byte) (string, error) {
	conv, err := bech32.ConvertBits(payload, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "convert bits: %s", err)
	}
	raw, err := bech32.Encode(hrp, conv)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "bech32 encode: %s", err)
	}
	return raw, nil
}
