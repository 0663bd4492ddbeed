package weavetest

import (
	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/coin"
)

// Tx represents a request processed by the application.
// Transaction represents a single message that is to be processed within this
// transaction, sent by Sender with Funds attached.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg burnsplit.Msg
	// Sender is the authenticated account that sent the request.
	Sender burnsplit.Address
	// Funds are the native coins attached to the request.
	Funds coin.Coins
	// Err if set is returned by GetMsg.
	Err error
}

var _ burnsplit.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (burnsplit.Msg, error) {
	return tx.Msg, tx.Err
}

func (tx *Tx) GetSender() burnsplit.Address {
	return tx.Sender
}

func (tx *Tx) GetFunds() coin.Coins {
	return tx.Funds
}

// Msg represents a message.
// Message is a request processed within a single transaction.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string
	// Err if set is returned by Validate.
	Err error
}

var _ burnsplit.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
