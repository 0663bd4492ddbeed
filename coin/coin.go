package coin

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/iov-one/burnsplit/errors"
)

//-------------- Coin -----------------------

// denomPattern follows the host denomination grammar, which admits native
// names such as "uluna" as well as "ibc/<HASH>" and factory denominations.
const denomPattern = `[a-zA-Z][a-zA-Z0-9/:._-]{2,127}`

// IsDenom is the RegExp to ensure valid denominations.
var IsDenom = regexp.MustCompile(`^` + denomPattern + `$`).MatchString

// Coin is an amount of a single denomination.
type Coin struct {
	Denom  string `json:"denom"`
	Amount Amount `json:"amount"`
}

// NewCoin creates a new coin object
func NewCoin(amount uint64, denom string) Coin {
	return Coin{
		Denom:  denom,
		Amount: NewAmount(amount),
	}
}

// Validate returns an error if the denomination is not valid.
func (c Coin) Validate() error {
	if !IsDenom(c.Denom) {
		return errors.Wrapf(errors.ErrCurrency, "invalid denomination %q", c.Denom)
	}
	return nil
}

// IsZero returns true if the amount is zero.
func (c Coin) IsZero() bool {
	return c.Amount.IsZero()
}

// Equals returns true if both coins are of the same denomination and value.
func (c Coin) Equals(o Coin) bool {
	return c.Denom == o.Denom && c.Amount.Equals(o.Amount)
}

// String provides a compact representation of the coin, the same format
// that is accepted by ParseCoin.
func (c Coin) String() string {
	return c.Amount.String() + c.Denom
}

var coinFormatRx = regexp.MustCompile(`^([0-9]+)(` + denomPattern + `)$`)

// ParseCoin parse a compact coin representation. Accepted format is a
// string:
//   "<amount><denom>"
// for example "1000000uluna".
func ParseCoin(raw string) (Coin, error) {
	m := coinFormatRx.FindStringSubmatch(raw)
	if m == nil {
		return Coin{}, errors.Wrapf(errors.ErrInput, "invalid coin format %q", raw)
	}
	amount, err := ParseAmount(m[1])
	if err != nil {
		return Coin{}, err
	}
	return Coin{Denom: m[2], Amount: amount}, nil
}

// Set updates this coin value to what is provided. This method implements
// flag.Value interface.
func (c *Coin) Set(raw string) error {
	val, err := ParseCoin(raw)
	if err != nil {
		return err
	}
	*c = val
	return nil
}

//-------------- Coins -----------------------

// Coins represents a set of coins attached to a request.
type Coins []Coin

// AmountOf returns the amount of the first coin of given denomination.
// Zero is returned if there is none. Other denominations are ignored.
func (cs Coins) AmountOf(denom string) Amount {
	for _, c := range cs {
		if c.Denom == denom {
			return c.Amount
		}
	}
	return Amount{}
}

// Validate requires that each coin is valid in it's own right and that no
// denomination is repeated.
func (cs Coins) Validate() error {
	var err error
	seen := make(map[string]struct{}, len(cs))
	for i, c := range cs {
		field := fmt.Sprintf("Coins.%d", i)
		err = errors.AppendField(err, field, c.Validate())
		if _, ok := seen[c.Denom]; ok {
			err = errors.AppendField(err, field, errors.Wrapf(errors.ErrDuplicate, "denomination %q", c.Denom))
		}
		seen[c.Denom] = struct{}{}
	}
	return err
}

// String returns a comma separated list of coins.
func (cs Coins) String() string {
	chunks := make([]string, len(cs))
	for i, c := range cs {
		chunks[i] = c.String()
	}
	return strings.Join(chunks, ",")
}

// ParseCoins decodes a comma separated list of coins, as produced by
// Coins.String.
func ParseCoins(raw string) (Coins, error) {
	if raw == "" {
		return nil, nil
	}
	var cs Coins
	for _, chunk := range strings.Split(raw, ",") {
		c, err := ParseCoin(chunk)
		if err != nil {
			return nil, err
		}
		cs = append(cs, c)
	}
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	return cs, nil
}
