package app

import "github.com/iov-one/burnsplit/coin"

func coinOf(n uint64) coin.Coin {
	return coin.NewCoin(n, "uluna")
}

func amountOf(n uint64) coin.Amount {
	return coin.NewAmount(n)
}
