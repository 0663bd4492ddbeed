package splitter

import (
	"strings"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/coin"
	"github.com/iov-one/burnsplit/errors"
	"github.com/iov-one/burnsplit/gconf"
)

// PackageName is the name under which the configuration is stored.
const PackageName = "splitter"

// PricingMode declares how the token amount owed to the sender is computed.
type PricingMode string

const (
	// FixedPricing credits one token unit per forwarded unit.
	FixedPricing PricingMode = "fixed"
	// OraclePricing converts the whole deposit using the stored price.
	OraclePricing PricingMode = "oracle"
)

// Validate returns an error if this is not a known pricing mode.
func (m PricingMode) Validate() error {
	switch m {
	case FixedPricing, OraclePricing:
		return nil
	default:
		return errors.Wrapf(errors.ErrInput, "unknown pricing mode %q", string(m))
	}
}

// Configuration is set once at initialization and never changes.
type Configuration struct {
	// Owner is the only account allowed to set the price.
	Owner burnsplit.Address `json:"owner"`
	// Liquidity receives the liquidity share of each deposit.
	Liquidity burnsplit.Address `json:"liquidity"`
	// Burn is an address without a known private key.
	Burn burnsplit.Address `json:"burn"`
	// TokenContract is the fungible token contract that transfers tokens to
	// the sender.
	TokenContract burnsplit.Address `json:"token_contract"`
	// Denom is the native currency denomination that is accepted.
	Denom string `json:"denom"`
	// FeeRate is the part of a deposit that is kept as a fee.
	FeeRate burnsplit.Fraction `json:"fee_rate"`
	// SplitRatio is the part of the forward amount sent to the liquidity
	// recipient. The rest of it is burned.
	SplitRatio burnsplit.Fraction `json:"split_ratio"`
	// PriceScale is the denominator of the stored price.
	PriceScale coin.Amount `json:"price_scale"`
	// PricingMode declares how the token amount is computed.
	PricingMode PricingMode `json:"pricing_mode"`
}

// DefaultConfiguration returns the configuration of the first
// deployment.
func DefaultConfiguration() Configuration {
	lp := mustParse("terra1hchcv5glp9aqgwp88lpw45htssz3g4q3m0rear")
	return Configuration{
		Owner:         lp,
		Liquidity:     lp,
		Burn:          mustParse("terra1sk06e3dyexuq4shw77y3dsv480xv42mq73anxu"),
		TokenContract: mustParse("terra1fvd5fvye7kgk0gudks6qtjz5nv6hcrdyukke59uj493w6496rv6sk87wpu"),
		Denom:         "uluna",
		FeeRate:       burnsplit.NewFraction(1, 100),
		SplitRatio:    burnsplit.NewFraction(1, 2),
		PriceScale:    coin.NewAmount(1000000),
		PricingMode:   FixedPricing,
	}
}

func mustParse(enc string) burnsplit.Address {
	addr, err := burnsplit.ParseAddress(enc)
	if err != nil {
		panic(err)
	}
	return addr
}

var _ gconf.Configuration = (*Configuration)(nil)

// Validate returns all found configuration problems as field errors.
func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Owner", c.Owner.Validate())
	errs = errors.AppendField(errs, "Liquidity", c.Liquidity.Validate())
	errs = errors.AppendField(errs, "Burn", c.Burn.Validate())
	errs = errors.AppendField(errs, "TokenContract", c.TokenContract.Validate())
	if !coin.IsDenom(c.Denom) {
		errs = errors.AppendField(errs, "Denom", errors.Wrapf(errors.ErrCurrency, "invalid denomination %q", c.Denom))
	}
	errs = errors.AppendField(errs, "FeeRate", c.FeeRate.ValidateRatio())
	if c.FeeRate.Compare(burnsplit.NewFraction(1, 1)) >= 0 {
		errs = errors.AppendField(errs, "FeeRate", errors.Wrap(errors.ErrInput, "fee must leave something to forward"))
	}
	errs = errors.AppendField(errs, "SplitRatio", c.SplitRatio.ValidateRatio())
	if c.PriceScale.IsZero() {
		errs = errors.AppendField(errs, "PriceScale", errors.Wrap(errors.ErrInput, "must be greater than zero"))
	}
	errs = errors.AppendField(errs, "PricingMode", c.PricingMode.Validate())
	return errs
}

// String returns a single line summary.
func (c Configuration) String() string {
	return strings.Join([]string{
		"mode=" + string(c.PricingMode),
		"denom=" + c.Denom,
		"fee=" + c.FeeRate.String(),
		"split=" + c.SplitRatio.String(),
		"liquidity=" + c.Liquidity.String(),
		"burn=" + c.Burn.String(),
		"token=" + c.TokenContract.String(),
	}, " ")
}

// LoadConfiguration returns the configuration saved during initialization.
func LoadConfiguration(db gconf.ReadStore) (Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, PackageName, &conf); err != nil {
		return conf, errors.Wrap(err, "load configuration")
	}
	return conf, nil
}
