package splitter

import (
	"bytes"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/coin"
	"github.com/iov-one/burnsplit/errors"
)

// PriceKey is the database key of the conversion price record.
const PriceKey = "uluna_price"

// PriceStore holds the conversion price. The price is the number of token
// units paid for one unit of the native currency, multiplied by the
// configured price scale.
type PriceStore interface {
	// Price returns the current price or ErrPriceNotSet.
	Price(db burnsplit.ReadOnlyKVStore) (coin.Amount, error)
	// SetPrice overwrites the current price.
	SetPrice(db burnsplit.KVStore, price coin.Amount) error
}

// NewPriceStore returns a PriceStore that keeps the price in the database,
// under PriceKey.
func NewPriceStore() PriceStore {
	return &kvPriceStore{key: []byte(PriceKey)}
}

type kvPriceStore struct {
	key []byte
}

// priceRecord is the serialized form of the price.
type priceRecord struct {
	Price coin.Amount `json:"price"`
}

func (s *kvPriceStore) Price(db burnsplit.ReadOnlyKVStore) (coin.Amount, error) {
	raw, err := db.Get(s.key)
	if err != nil {
		return coin.Amount{}, errors.Wrap(err, "cannot read price")
	}
	if raw == nil {
		return coin.Amount{}, errors.Wrap(ErrPriceNotSet, "price was never set")
	}

	raw = bytes.TrimSpace(raw)
	// A bare number is accepted as well as the record.
	if len(raw) > 0 && raw[0] != '{' {
		var price coin.Amount
		if err := price.UnmarshalJSON(raw); err != nil {
			return coin.Amount{}, errors.Wrap(errors.ErrModel, "malformed price")
		}
		return price, nil
	}

	var rec priceRecord
	if err := burnsplit.JSON.Unmarshal(raw, &rec); err != nil {
		return coin.Amount{}, errors.Wrapf(errors.ErrModel, "malformed price record: %s", err)
	}
	return rec.Price, nil
}

func (s *kvPriceStore) SetPrice(db burnsplit.KVStore, price coin.Amount) error {
	raw, err := burnsplit.JSON.Marshal(priceRecord{Price: price})
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot serialize price: %s", err)
	}
	if err := db.Set(s.key, raw); err != nil {
		return errors.Wrap(err, "cannot write price")
	}
	return nil
}

// MemPriceStore is a PriceStore that keeps the price in memory and ignores
// the database. Use it in tests.
type MemPriceStore struct {
	price *coin.Amount
}

var _ PriceStore = (*MemPriceStore)(nil)

func (s *MemPriceStore) Price(burnsplit.ReadOnlyKVStore) (coin.Amount, error) {
	if s.price == nil {
		return coin.Amount{}, errors.Wrap(ErrPriceNotSet, "price was never set")
	}
	return *s.price, nil
}

func (s *MemPriceStore) SetPrice(_ burnsplit.KVStore, price coin.Amount) error {
	s.price = &price
	return nil
}
