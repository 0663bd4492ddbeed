package splitter

import (
	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/coin"
)

const (
	pathDistributeMsg = "splitter/distribute"
	pathSetPriceMsg   = "splitter/set_uluna_price"
)

// DistributeMsg requests the attached deposit to be distributed. It has no
// parameters, the deposit and the sender are taken from the request.
type DistributeMsg struct{}

var _ burnsplit.Msg = (*DistributeMsg)(nil)

func (DistributeMsg) Path() string {
	return pathDistributeMsg
}

func (*DistributeMsg) Validate() error {
	return nil
}

// SetPriceMsg updates the conversion price. Price is scaled by the
// configured price scale. Any value is accepted, including zero.
type SetPriceMsg struct {
	Price coin.Amount `json:"price"`
}

var _ burnsplit.Msg = (*SetPriceMsg)(nil)

func (SetPriceMsg) Path() string {
	return pathSetPriceMsg
}

func (*SetPriceMsg) Validate() error {
	return nil
}

// RegisterCodec declares how each message is tagged in a request. A request
// without any tag is a distribution request.
func RegisterCodec(c burnsplit.Codec) {
	c.RegisterDefault("distribute", &DistributeMsg{})
	c.Register("set_uluna_price", &SetPriceMsg{})
}
