package burnsplit

import (
	"reflect"

	"github.com/iov-one/burnsplit/coin"
	"github.com/iov-one/burnsplit/errors"
)

// Msg is message for the application to take an action
// (Make a state transition). It is just the request, and
// must be validated by the Handlers. All authentication
// information is in the wrapping Tx.
type Msg interface {
	// Return the message path.
	// This is used by the Router to locate the proper Handler.
	// Msg should be created alongside the Handler that corresponds to them.
	//
	// Multiple types may have the same value, and will end up at the
	// same Handler.
	Path() string

	// Validate performs a stateless sanity check of the message.
	Validate() error
}

// Tx represent the data sent from the user to the application.
// It includes the actual message, the account that sent it, as
// authenticated by the host, and the native coins attached to it.
type Tx interface {
	// GetMsg returns the action we wish to communicate
	GetMsg() (Msg, error)

	// GetSender returns the authenticated sender of the request.
	GetSender() Address

	// GetFunds returns the native coins attached to the request.
	GetFunds() coin.Coins
}

// GetPath returns the path of the message, or (missing) if no message
func GetPath(tx Tx) string {
	msg, err := tx.GetMsg()
	if err == nil && msg != nil {
		return msg.Path()
	}
	return "(missing)"
}

// TxDecoder can parse bytes into a Tx
type TxDecoder func(txBytes []byte) (Tx, error)

// LoadMsg extracts the message represented by given transaction into given
// destination. Before returning message validation method is called.
func LoadMsg(tx Tx, destination interface{}) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get transaction message")
	}

	// We need to use reflection because of the interface type. Destination
	// must be a pointer to the same type as the message.
	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return errors.Wrap(errors.ErrType, "destination must be a non nil pointer")
	}
	src := reflect.ValueOf(msg)
	if src.Kind() == reflect.Ptr {
		src = src.Elem()
	}
	if !src.IsValid() {
		return errors.Wrap(errors.ErrType, "transaction has no message")
	}
	if src.Type() != dest.Elem().Type() {
		return errors.Wrapf(errors.ErrType, "want %T message, got %T", destination, msg)
	}
	dest.Elem().Set(src)

	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}
	return nil
}

// Codec is used to register every message type under a tag, so that a
// request envelope can be decoded into a concrete message.
type Codec interface {
	// Register declares the message decoded from the payload of given tag.
	Register(tag string, m Msg)
	// RegisterDefault works like Register, additionally selecting the
	// message used when a request carries no tag at all.
	RegisterDefault(tag string, m Msg)
}
