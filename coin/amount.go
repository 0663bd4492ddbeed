package coin

import (
	"strconv"

	"github.com/holiman/uint256"
	jsoniter "github.com/json-iterator/go"

	"github.com/iov-one/burnsplit/errors"
)

// MaxAmountBits is the width of the largest value an Amount can hold. All
// operations fail with ErrOverflow rather than produce a wider value.
const MaxAmountBits = 128

// Amount is a non negative integer value of at most MaxAmountBits bits. All
// arithmetic is done with 256 bit intermediates, so that a product of two
// amounts never wraps around before it is scaled back down.
//
// Zero value is a valid zero amount. Amount is immutable, all operations
// return a new instance.
type Amount struct {
	v uint256.Int
}

// NewAmount returns an amount of given value.
func NewAmount(n uint64) Amount {
	var a Amount
	a.v.SetUint64(n)
	return a
}

// ParseAmount decodes a base 10 representation of an amount. Only digits
// are accepted, without a sign or whitespace.
func ParseAmount(s string) (Amount, error) {
	var a Amount
	if len(s) == 0 {
		return a, errors.Wrap(errors.ErrAmount, "empty")
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return a, errors.Wrapf(errors.ErrAmount, "not a decimal number: %q", s)
		}
	}
	if err := a.v.SetFromDecimal(s); err != nil {
		return a, errors.Wrapf(errors.ErrOverflow, "%q: %s", s, err)
	}
	if a.v.BitLen() > MaxAmountBits {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%q exceeds %d bits", s, MaxAmountBits)
	}
	return a, nil
}

// MustParseAmount is ParseAmount that panics on error. Use only with
// constant values.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String returns the base 10 representation.
func (a Amount) String() string {
	return a.v.Dec()
}

// IsZero returns true if the value is zero.
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// IsPositive returns true if the value is greater than zero.
func (a Amount) IsPositive() bool {
	return !a.v.IsZero()
}

// Cmp returns -1 if a < b, 0 if a == b and 1 if a > b.
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// Equals returns true if both amounts represent the same value.
func (a Amount) Equals(b Amount) bool {
	return a.v.Eq(&b.v)
}

// Uint64 returns the value and true if it fits into uint64.
func (a Amount) Uint64() (uint64, bool) {
	return a.v.Uint64(), a.v.IsUint64()
}

// Add returns a + b.
func (a Amount) Add(b Amount) (Amount, error) {
	var res Amount
	if _, overflow := res.v.AddOverflow(&a.v, &b.v); overflow || res.v.BitLen() > MaxAmountBits {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s + %s", a, b)
	}
	return res, nil
}

// Sub returns a - b. Negative results are not representable.
func (a Amount) Sub(b Amount) (Amount, error) {
	var res Amount
	if _, underflow := res.v.SubOverflow(&a.v, &b.v); underflow {
		return Amount{}, errors.Wrapf(errors.ErrAmount, "%s - %s is negative", a, b)
	}
	return res, nil
}

// MulDiv returns floor(a * num / den). The product is computed on 256 bits
// and cannot overflow. The result must fit into MaxAmountBits bits.
func (a Amount) MulDiv(num, den Amount) (Amount, error) {
	if den.IsZero() {
		return Amount{}, errors.Wrap(errors.ErrInput, "division by zero")
	}
	var res Amount
	if _, overflow := res.v.MulOverflow(&a.v, &num.v); overflow {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s * %s", a, num)
	}
	res.v.Div(&res.v, &den.v)
	if res.v.BitLen() > MaxAmountBits {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s * %s / %s exceeds %d bits", a, num, den, MaxAmountBits)
	}
	return res, nil
}

// Quo returns floor(a / n). Any remainder is dropped.
func (a Amount) Quo(n uint64) (Amount, error) {
	return a.MulDiv(NewAmount(1), NewAmount(n))
}

// MarshalJSON encodes the amount as a decimal string, so that values wider
// than 53 bits survive JavaScript clients.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(a.String())), nil
}

// UnmarshalJSON accepts both a decimal string and a JSON number.
func (a *Amount) UnmarshalJSON(raw []byte) error {
	var s string
	if len(raw) > 0 && raw[0] == '"' {
		if err := jsoniter.Unmarshal(raw, &s); err != nil {
			return errors.Wrap(errors.ErrAmount, "cannot decode json string")
		}
	} else {
		s = string(raw)
	}
	val, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = val
	return nil
}
