package splitter

import (
	"fmt"

	"github.com/iov-one/burnsplit/coin"
	"github.com/iov-one/burnsplit/errors"
)

// Distribution is the result of splitting a single deposit.
type Distribution struct {
	// Deposit is the amount of the native currency received.
	Deposit coin.Amount
	// Fee is kept by the module account.
	Fee coin.Amount
	// Forward is the deposit without the fee.
	Forward coin.Amount
	// Liquidity is sent to the liquidity recipient.
	Liquidity coin.Amount
	// Burn is sent to the destruction address.
	Burn coin.Amount
	// Token is the amount of tokens owed to the sender.
	Token coin.Amount
}

func (d Distribution) String() string {
	return fmt.Sprintf("deposit=%s fee=%s forward=%s liquidity=%s burn=%s token=%s",
		d.Deposit, d.Fee, d.Forward, d.Liquidity, d.Burn, d.Token)
}

// Split computes how a deposit is distributed. Price is used only in the
// oracle pricing mode and can be nil otherwise.
//
// In the fixed mode the token amount equals the forward amount. In the
// oracle mode it is computed from the whole deposit, fee included:
//
//	token = floor(deposit * price / price_scale)
//
// Both rules are kept as deployed, even though they differ in the base
// value they use.
//
// Every division rounds down. The remainder of the fee and of the split is
// not sent anywhere.
func Split(conf Configuration, deposit coin.Amount, price *coin.Amount) (Distribution, error) {
	if deposit.IsZero() {
		return Distribution{}, errors.Wrapf(ErrEmptyDeposit, "no %s sent", conf.Denom)
	}

	fee, err := conf.FeeRate.Apply(deposit)
	if err != nil {
		return Distribution{}, errors.Wrap(err, "fee")
	}
	forward, err := deposit.Sub(fee)
	if err != nil {
		return Distribution{}, errors.Wrap(err, "forward")
	}
	if forward.IsZero() {
		return Distribution{}, errors.Wrapf(ErrInsufficientDeposit, "insufficient %s sent to cover the fee", conf.Denom)
	}

	liquidity, err := conf.SplitRatio.Apply(forward)
	if err != nil {
		return Distribution{}, errors.Wrap(err, "liquidity share")
	}
	burn, err := conf.SplitRatio.Complement().Apply(forward)
	if err != nil {
		return Distribution{}, errors.Wrap(err, "burn share")
	}

	var token coin.Amount
	switch conf.PricingMode {
	case FixedPricing:
		token = forward
	case OraclePricing:
		if price == nil {
			return Distribution{}, errors.Wrap(ErrPriceNotSet, "price required")
		}
		token, err = deposit.MulDiv(*price, conf.PriceScale)
		if err != nil {
			return Distribution{}, errors.Wrap(err, "token amount")
		}
	default:
		return Distribution{}, errors.Wrapf(errors.ErrState, "unknown pricing mode %q", string(conf.PricingMode))
	}

	return Distribution{
		Deposit:   deposit,
		Fee:       fee,
		Forward:   forward,
		Liquidity: liquidity,
		Burn:      burn,
		Token:     token,
	}, nil
}
