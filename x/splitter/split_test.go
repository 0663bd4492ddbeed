package splitter

import (
	"testing"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/coin"
	"github.com/iov-one/burnsplit/errors"
	"github.com/iov-one/burnsplit/weavetest/assert"
)

func oracleConfiguration() Configuration {
	conf := DefaultConfiguration()
	conf.PricingMode = OraclePricing
	return conf
}

func amountPtr(n uint64) *coin.Amount {
	a := coin.NewAmount(n)
	return &a
}

func TestSplit(t *testing.T) {
	ceiling := coin.MustParseAmount(maxAmount)

	cases := map[string]struct {
		conf    Configuration
		deposit coin.Amount
		price   *coin.Amount
		want    Distribution
		wantErr *errors.Error
	}{
		"fixed pricing pays the forward amount": {
			conf:    DefaultConfiguration(),
			deposit: coin.NewAmount(1000000),
			want: Distribution{
				Deposit:   coin.NewAmount(1000000),
				Fee:       coin.NewAmount(10000),
				Forward:   coin.NewAmount(990000),
				Liquidity: coin.NewAmount(495000),
				Burn:      coin.NewAmount(495000),
				Token:     coin.NewAmount(990000),
			},
		},
		"odd forward amount drops the remainder": {
			conf:    DefaultConfiguration(),
			deposit: coin.NewAmount(1001),
			want: Distribution{
				Deposit:   coin.NewAmount(1001),
				Fee:       coin.NewAmount(10),
				Forward:   coin.NewAmount(991),
				Liquidity: coin.NewAmount(495),
				Burn:      coin.NewAmount(495),
				Token:     coin.NewAmount(991),
			},
		},
		"deposit too small for a fee": {
			conf:    DefaultConfiguration(),
			deposit: coin.NewAmount(99),
			want: Distribution{
				Deposit:   coin.NewAmount(99),
				Fee:       coin.NewAmount(0),
				Forward:   coin.NewAmount(99),
				Liquidity: coin.NewAmount(49),
				Burn:      coin.NewAmount(49),
				Token:     coin.NewAmount(99),
			},
		},
		"single unit deposit": {
			conf:    DefaultConfiguration(),
			deposit: coin.NewAmount(1),
			want: Distribution{
				Deposit:   coin.NewAmount(1),
				Fee:       coin.NewAmount(0),
				Forward:   coin.NewAmount(1),
				Liquidity: coin.NewAmount(0),
				Burn:      coin.NewAmount(0),
				Token:     coin.NewAmount(1),
			},
		},
		"empty deposit": {
			conf:    DefaultConfiguration(),
			deposit: coin.NewAmount(0),
			wantErr: ErrEmptyDeposit,
		},
		"oracle pricing converts the full deposit": {
			conf:    oracleConfiguration(),
			deposit: coin.NewAmount(1000000),
			price:   amountPtr(2000000),
			want: Distribution{
				Deposit:   coin.NewAmount(1000000),
				Fee:       coin.NewAmount(10000),
				Forward:   coin.NewAmount(990000),
				Liquidity: coin.NewAmount(495000),
				Burn:      coin.NewAmount(495000),
				Token:     coin.NewAmount(2000000),
			},
		},
		"oracle pricing rounds down": {
			conf:    oracleConfiguration(),
			deposit: coin.NewAmount(333),
			price:   amountPtr(1500000),
			want: Distribution{
				Deposit:   coin.NewAmount(333),
				Fee:       coin.NewAmount(3),
				Forward:   coin.NewAmount(330),
				Liquidity: coin.NewAmount(165),
				Burn:      coin.NewAmount(165),
				Token:     coin.NewAmount(499),
			},
		},
		"zero price pays nothing": {
			conf:    oracleConfiguration(),
			deposit: coin.NewAmount(1000),
			price:   amountPtr(0),
			want: Distribution{
				Deposit:   coin.NewAmount(1000),
				Fee:       coin.NewAmount(10),
				Forward:   coin.NewAmount(990),
				Liquidity: coin.NewAmount(495),
				Burn:      coin.NewAmount(495),
				Token:     coin.NewAmount(0),
			},
		},
		"oracle pricing without a price": {
			conf:    oracleConfiguration(),
			deposit: coin.NewAmount(500000),
			wantErr: ErrPriceNotSet,
		},
		"token amount overflow": {
			conf:    oracleConfiguration(),
			deposit: ceiling,
			price:   amountPtr(2000000),
			wantErr: errors.ErrOverflow,
		},
		"fixed pricing ignores the price": {
			conf:    DefaultConfiguration(),
			deposit: coin.NewAmount(200),
			price:   amountPtr(5000000),
			want: Distribution{
				Deposit:   coin.NewAmount(200),
				Fee:       coin.NewAmount(2),
				Forward:   coin.NewAmount(198),
				Liquidity: coin.NewAmount(99),
				Burn:      coin.NewAmount(99),
				Token:     coin.NewAmount(198),
			},
		},
		"unknown pricing mode": {
			conf: func() Configuration {
				c := DefaultConfiguration()
				c.PricingMode = "auction"
				return c
			}(),
			deposit: coin.NewAmount(1000),
			wantErr: errors.ErrState,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			got, err := Split(tc.conf, tc.deposit, tc.price)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.want.String(), got.String())
		})
	}
}

func TestSplitUnevenRatio(t *testing.T) {
	conf := DefaultConfiguration()
	conf.FeeRate = burnsplit.NewFraction(3, 1000)
	conf.SplitRatio = burnsplit.NewFraction(1, 3)

	got, err := Split(conf, coin.NewAmount(10000), nil)
	assert.Nil(t, err)
	assert.Equal(t, "30", got.Fee.String())
	assert.Equal(t, "9970", got.Forward.String())
	assert.Equal(t, "3323", got.Liquidity.String())
	assert.Equal(t, "6646", got.Burn.String())
}

// maxAmount is 2^128 - 1, the largest deposit an amount can carry.
const maxAmount = "340282366920938463463374607431768211455"

// The fee is the floored hundredth of the deposit, fee and forward amount
// always add up to the deposit and the shares never exceed the forward
// amount.
func TestSplitConservation(t *testing.T) {
	deposits := []string{
		"1", "2", "3", "99", "100", "101", "199", "12345", "999999", "1000000",
		"18446744073709551615",
		"18446744073709551616",
		"340282366920938463463374607431768211355",
		maxAmount,
	}
	for _, raw := range deposits {
		deposit := coin.MustParseAmount(raw)
		d, err := Split(DefaultConfiguration(), deposit, nil)
		assert.Nil(t, err)

		wantFee, err := deposit.Quo(100)
		assert.Nil(t, err)
		if !d.Fee.Equals(wantFee) {
			t.Fatalf("%s: want fee %s, got %s", raw, wantFee, d.Fee)
		}

		total, err := d.Fee.Add(d.Forward)
		assert.Nil(t, err)
		if !total.Equals(deposit) {
			t.Fatalf("%s: fee %s and forward %s do not add up", raw, d.Fee, d.Forward)
		}

		shares, err := d.Liquidity.Add(d.Burn)
		assert.Nil(t, err)
		if shares.Cmp(d.Forward) > 0 {
			t.Fatalf("%s: shares %s exceed forward %s", raw, shares, d.Forward)
		}
		rest, err := d.Forward.Sub(shares)
		assert.Nil(t, err)
		if rest.Cmp(coin.NewAmount(1)) > 0 {
			t.Fatalf("%s: more than a single unit dropped: %s", raw, rest)
		}
		if !d.Liquidity.Equals(d.Burn) {
			t.Fatalf("%s: unequal halves %s and %s", raw, d.Liquidity, d.Burn)
		}
		if !d.Token.Equals(d.Forward) {
			t.Fatalf("%s: fixed mode token %s differs from forward %s", raw, d.Token, d.Forward)
		}
	}
}

func TestSplitOracleCeiling(t *testing.T) {
	deposit := coin.MustParseAmount(maxAmount)

	d, err := Split(oracleConfiguration(), deposit, amountPtr(1000000))
	assert.Nil(t, err)
	if !d.Token.Equals(deposit) {
		t.Fatalf("want token %s, got %s", deposit, d.Token)
	}

	if _, err := Split(oracleConfiguration(), deposit, amountPtr(1000001)); !errors.ErrOverflow.Is(err) {
		t.Fatalf("want overflow, got %+v", err)
	}
}
