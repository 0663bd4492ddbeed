package splitter

import (
	"testing"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/errors"
	"github.com/iov-one/burnsplit/store"
	"github.com/iov-one/burnsplit/weavetest/assert"
)

func genesisConf(t testing.TB, conf Configuration) []byte {
	t.Helper()
	raw, err := burnsplit.JSON.Marshal(map[string]Configuration{PackageName: conf})
	assert.Nil(t, err)
	return raw
}

func TestGenesis(t *testing.T) {
	cases := map[string]struct {
		opts      func(t testing.TB) burnsplit.Options
		wantErr   *errors.Error
		wantPrice string
	}{
		"fixed pricing": {
			opts: func(t testing.TB) burnsplit.Options {
				return burnsplit.Options{"conf": genesisConf(t, DefaultConfiguration())}
			},
		},
		"oracle pricing without a price": {
			opts: func(t testing.TB) burnsplit.Options {
				return burnsplit.Options{"conf": genesisConf(t, oracleConfiguration())}
			},
		},
		"oracle pricing with a price": {
			opts: func(t testing.TB) burnsplit.Options {
				return burnsplit.Options{
					"conf":     genesisConf(t, oracleConfiguration()),
					"splitter": []byte(`{"price": "2000000"}`),
				}
			},
			wantPrice: "2000000",
		},
		"price is not allowed in fixed pricing": {
			opts: func(t testing.TB) burnsplit.Options {
				return burnsplit.Options{
					"conf":     genesisConf(t, DefaultConfiguration()),
					"splitter": []byte(`{"price": "2000000"}`),
				}
			},
			wantErr: errors.ErrInput,
		},
		"malformed price": {
			opts: func(t testing.TB) burnsplit.Options {
				return burnsplit.Options{
					"conf":     genesisConf(t, oracleConfiguration()),
					"splitter": []byte(`{"price": "two"}`),
				}
			},
			wantErr: errors.ErrInput,
		},
		"missing configuration": {
			opts: func(t testing.TB) burnsplit.Options {
				return burnsplit.Options{}
			},
			wantErr: errors.ErrNotFound,
		},
		"invalid configuration": {
			opts: func(t testing.TB) burnsplit.Options {
				conf := DefaultConfiguration()
				conf.Burn = nil
				return burnsplit.Options{"conf": genesisConf(t, conf)}
			},
			wantErr: errors.ErrEmpty,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			var init Initializer
			err := init.FromGenesis(tc.opts(t), db)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}

			if _, err := LoadConfiguration(db); err != nil {
				t.Fatalf("cannot load configuration: %+v", err)
			}

			price, err := NewPriceStore().Price(db)
			if tc.wantPrice == "" {
				assert.IsErr(t, ErrPriceNotSet, err)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, tc.wantPrice, price.String())
		})
	}
}

func TestGenesisCustomPriceStore(t *testing.T) {
	prices := &MemPriceStore{}
	init := Initializer{Prices: prices}
	err := init.FromGenesis(burnsplit.Options{
		"conf":     genesisConf(t, oracleConfiguration()),
		"splitter": []byte(`{"price": 42}`),
	}, store.MemStore())
	assert.Nil(t, err)

	p, err := prices.Price(nil)
	assert.Nil(t, err)
	assert.Equal(t, "42", p.String())
}
