package burnsplit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iov-one/burnsplit/coin"
	"github.com/iov-one/burnsplit/errors"
)

// Fraction is a non negative rational number. It is used to express rates
// and ratios, for example a fee of 1/100 of a deposit.
type Fraction struct {
	Numerator   uint32 `json:"numerator"`
	Denominator uint32 `json:"denominator"`
}

// NewFraction returns a fraction of given numerator and denominator.
func NewFraction(numerator, denominator uint32) Fraction {
	return Fraction{Numerator: numerator, Denominator: denominator}
}

// String returns a human readable fraction representation.
func (f Fraction) String() string {
	if f.Numerator == 0 {
		return "0"
	}
	if f.Denominator == 1 {
		return fmt.Sprint(f.Numerator)
	}
	return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
}

// MarshalJSON uses the verbose format so that the zero value is still a
// well formed document.
func (f Fraction) MarshalJSON() ([]byte, error) {
	type verbose Fraction
	return JSON.Marshal(verbose(f))
}

func (f *Fraction) UnmarshalJSON(raw []byte) error {
	// Prioritize human readable format.
	var human string
	if err := JSON.Unmarshal(raw, &human); err == nil {
		frac, err := ParseFraction(human)
		if err != nil {
			return errors.Wrap(err, "fraction string")
		}
		*f = frac
		return nil
	}

	type verbose Fraction
	var v verbose
	if err := JSON.Unmarshal(raw, &v); err != nil {
		return errors.Wrap(errors.ErrInput, "fraction must be a string or an object")
	}
	*f = Fraction(v)
	return nil
}

// Validate returns an error if this fraction represents an invalid value.
func (f Fraction) Validate() error {
	if f.Denominator == 0 {
		return errors.Wrap(errors.ErrInput, "zero division")
	}
	return nil
}

// ValidateRatio returns an error unless this fraction is a valid value in
// the range [0, 1].
func (f Fraction) ValidateRatio() error {
	if err := f.Validate(); err != nil {
		return err
	}
	if f.Numerator > f.Denominator {
		return errors.Wrapf(errors.ErrInput, "%s is greater than one", f)
	}
	return nil
}

// Normalize returns a new fraction instance that has its numerator and
// denominator reduced to the smallest possible representation.
func (f Fraction) Normalize() Fraction {
	div := uintGcd(f.Numerator, f.Denominator)
	if div == 0 {
		return f
	}
	return Fraction{
		Numerator:   f.Numerator / div,
		Denominator: f.Denominator / div,
	}
}

// Compare returns 0 if both fractions are of the same value, -1 if f is
// smaller and 1 if f is greater than given fraction. Zero denominator is
// treated as a zero value.
func (f Fraction) Compare(other Fraction) int {
	if f.Numerator == 0 || f.Denominator == 0 {
		if other.Numerator == 0 || other.Denominator == 0 {
			return 0
		}
		return -1
	}
	if other.Numerator == 0 || other.Denominator == 0 {
		return 1
	}
	a := uint64(f.Numerator) * uint64(other.Denominator)
	b := uint64(other.Numerator) * uint64(f.Denominator)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Complement returns 1 - f. The fraction must be a valid ratio.
func (f Fraction) Complement() Fraction {
	return Fraction{
		Numerator:   f.Denominator - f.Numerator,
		Denominator: f.Denominator,
	}
}

// Apply returns floor(a * f). Any remainder is dropped.
func (f Fraction) Apply(a coin.Amount) (coin.Amount, error) {
	return a.MulDiv(coin.NewAmount(uint64(f.Numerator)), coin.NewAmount(uint64(f.Denominator)))
}

func uintGcd(a, b uint32) uint32 {
	for b != 0 {
		t := b
		b = a % b
		a = t
	}
	return a
}

// ParseFraction returns a fraction value that is represented by given
// string, for example "1/100" or "3". Surrounding whitespace is ignored.
// This function does not fail if representation format is correct but the
// value is invalid (i.e. value of "2/0"). Use Validate for that.
func ParseFraction(raw string) (Fraction, error) {
	chunks := strings.SplitN(raw, "/", 2)
	n, err := strconv.ParseUint(strings.TrimSpace(chunks[0]), 10, 32)
	if err != nil {
		return Fraction{}, errors.Wrap(errors.ErrInput, "numerator")
	}
	if len(chunks) == 1 {
		return Fraction{Numerator: uint32(n), Denominator: 1}, nil
	}
	d, err := strconv.ParseUint(strings.TrimSpace(chunks[1]), 10, 32)
	if err != nil {
		return Fraction{}, errors.Wrap(errors.ErrInput, "denominator")
	}
	return Fraction{Numerator: uint32(n), Denominator: uint32(d)}, nil
}
