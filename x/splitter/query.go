package splitter

import (
	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/errors"
	"github.com/iov-one/burnsplit/gconf"
)

// RegisterQuery registers the price and the configuration for querying.
func RegisterQuery(qr burnsplit.QueryRouter, prices PriceStore) {
	qr.Register("/splitter/price", &priceQuery{prices: prices})
	qr.Register("/splitter/config", configQuery{})
}

type priceQuery struct {
	prices PriceStore
}

// Query returns the price record, or no models if the price was never set.
func (q *priceQuery) Query(db burnsplit.ReadOnlyKVStore, _ []byte) ([]burnsplit.Model, error) {
	price, err := q.prices.Price(db)
	switch {
	case err == nil:
		// ok
	case ErrPriceNotSet.Is(err):
		return nil, nil
	default:
		return nil, err
	}
	raw, err := burnsplit.JSON.Marshal(priceRecord{Price: price})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot serialize price: %s", err)
	}
	return []burnsplit.Model{{Key: []byte(PriceKey), Value: raw}}, nil
}

type configQuery struct{}

// Query returns the configuration as it is stored.
func (configQuery) Query(db burnsplit.ReadOnlyKVStore, _ []byte) ([]burnsplit.Model, error) {
	key := gconf.Key(PackageName)
	raw, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	return []burnsplit.Model{{Key: key, Value: raw}}, nil
}
