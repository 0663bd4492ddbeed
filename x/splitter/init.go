package splitter

import (
	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/coin"
	"github.com/iov-one/burnsplit/errors"
	"github.com/iov-one/burnsplit/gconf"
)

// Initializer fulfils the Initializer interface to load data from the genesis
// file
type Initializer struct {
	// Prices is where the initial price is written. The database backed
	// store is used when not set.
	Prices PriceStore
}

var _ burnsplit.Initializer = (*Initializer)(nil)

// FromGenesis stores the configuration found under the "conf" section. An
// initial price can be declared in the "splitter" section when the oracle
// pricing mode is used.
func (i *Initializer) FromGenesis(opts burnsplit.Options, db burnsplit.KVStore) error {
	var conf Configuration
	if err := gconf.InitConfig(db, opts, PackageName, &conf); err != nil {
		return errors.Wrap(err, "init config")
	}

	var state struct {
		Price *coin.Amount `json:"price"`
	}
	if err := opts.ReadOptions(PackageName, &state); err != nil {
		return errors.Wrapf(errors.ErrInput, "cannot load splitter state: %s", err)
	}
	if state.Price == nil {
		return nil
	}
	if conf.PricingMode != OraclePricing {
		return errors.Wrapf(errors.ErrInput, "price cannot be set in %q pricing mode", string(conf.PricingMode))
	}
	prices := i.Prices
	if prices == nil {
		prices = NewPriceStore()
	}
	if err := prices.SetPrice(db, *state.Price); err != nil {
		return errors.Wrap(err, "initial price")
	}
	return nil
}
