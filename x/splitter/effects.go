package splitter

import (
	"fmt"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/coin"
)

// NativeTransfer requests the host to send native currency from the module
// account.
type NativeTransfer struct {
	To   burnsplit.Address `json:"to_address"`
	Coin coin.Coin         `json:"amount"`
}

var _ burnsplit.Effect = (*NativeTransfer)(nil)

func (NativeTransfer) Kind() string { return "bank/send" }

func (t NativeTransfer) String() string {
	return fmt.Sprintf("send %s to %s", t.Coin, t.To)
}

// TokenTransfer requests the token contract to transfer tokens to the
// recipient. No native funds are attached to the call.
type TokenTransfer struct {
	Contract  burnsplit.Address `json:"contract_addr"`
	Recipient burnsplit.Address `json:"recipient"`
	Amount    coin.Amount       `json:"amount"`
}

var _ burnsplit.Effect = (*TokenTransfer)(nil)

func (TokenTransfer) Kind() string { return "wasm/execute" }

func (t TokenTransfer) String() string {
	return fmt.Sprintf("transfer %s tokens of %s to %s", t.Amount, t.Contract, t.Recipient)
}

type tokenTransferBody struct {
	Transfer struct {
		Recipient burnsplit.Address `json:"recipient"`
		Amount    coin.Amount       `json:"amount"`
	} `json:"transfer"`
}

// Body returns the message executed by the token contract.
func (t TokenTransfer) Body() ([]byte, error) {
	var body tokenTransferBody
	body.Transfer.Recipient = t.Recipient
	body.Transfer.Amount = t.Amount
	return burnsplit.JSON.Marshal(body)
}

// Effects returns the outgoing requests of a distribution, in the order
// they must be executed.
func (d Distribution) Effects(conf Configuration, sender burnsplit.Address) []burnsplit.Effect {
	return []burnsplit.Effect{
		NativeTransfer{To: conf.Liquidity, Coin: coin.Coin{Denom: conf.Denom, Amount: d.Liquidity}},
		NativeTransfer{To: conf.Burn, Coin: coin.Coin{Denom: conf.Denom, Amount: d.Burn}},
		TokenTransfer{Contract: conf.TokenContract, Recipient: sender, Amount: d.Token},
	}
}
