package app

import (
	"fmt"
	"reflect"

	jsoniter "github.com/json-iterator/go"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/coin"
	"github.com/iov-one/burnsplit/errors"
)

// Codec maps envelope tags to message types. It is the setup side of the
// request decoder.
type Codec struct {
	types      map[string]reflect.Type
	defaultTag string
}

var _ burnsplit.Codec = (*Codec)(nil)

// NewCodec returns a codec with no message registered.
func NewCodec() *Codec {
	return &Codec{types: make(map[string]reflect.Type)}
}

// Register declares that the payload under given tag decodes into a message
// of the same type as m. Panics if the tag is already registered.
func (c *Codec) Register(tag string, m burnsplit.Msg) {
	if tag == "" {
		panic("empty message tag")
	}
	if _, ok := c.types[tag]; ok {
		panic(fmt.Sprintf("re-registering tag: %q", tag))
	}
	t := reflect.TypeOf(m)
	if t.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("message for tag %q must be a pointer, got %T", tag, m))
	}
	c.types[tag] = t.Elem()
}

// RegisterDefault works like Register and additionally selects this tag for
// requests that carry no tag at all.
func (c *Codec) RegisterDefault(tag string, m burnsplit.Msg) {
	if c.defaultTag != "" {
		panic(fmt.Sprintf("default tag already set to %q", c.defaultTag))
	}
	c.Register(tag, m)
	c.defaultTag = tag
}

// decode returns a new message instance for given tag, filled with the
// payload.
func (c *Codec) decode(tag string, payload jsoniter.RawMessage) (burnsplit.Msg, error) {
	t, ok := c.types[tag]
	if !ok {
		return nil, errors.Wrapf(errors.ErrMalformedRequest, "unknown message %q", tag)
	}
	ptr := reflect.New(t)
	if len(payload) != 0 {
		if err := burnsplit.JSON.Unmarshal(payload, ptr.Interface()); err != nil {
			return nil, errors.Wrapf(errors.ErrMalformedRequest, "%s payload: %s", tag, err)
		}
	}
	return ptr.Interface().(burnsplit.Msg), nil
}

// Request is the envelope of every request processed by the application.
// The sender and the funds are provided by the host, the message is a
// single entry object keyed by the message tag.
type Request struct {
	Sender burnsplit.Address              `json:"sender"`
	Funds  coin.Coins                     `json:"funds,omitempty"`
	Msg    map[string]jsoniter.RawMessage `json:"msg,omitempty"`

	msg burnsplit.Msg
}

var _ burnsplit.Tx = (*Request)(nil)

// GetMsg returns the message decoded from the envelope.
func (r *Request) GetMsg() (burnsplit.Msg, error) {
	if r.msg == nil {
		return nil, errors.Wrap(errors.ErrMalformedRequest, "request not decoded")
	}
	return r.msg, nil
}

// GetSender returns the account that sent the request.
func (r *Request) GetSender() burnsplit.Address {
	return r.Sender
}

// GetFunds returns the native coins attached to the request.
func (r *Request) GetFunds() coin.Coins {
	return r.Funds
}

// NewTxDecoder returns a decoder that parses the JSON request envelope using
// messages registered in given codec.
func NewTxDecoder(c *Codec) burnsplit.TxDecoder {
	return func(raw []byte) (burnsplit.Tx, error) {
		var req Request
		if err := burnsplit.JSON.Unmarshal(raw, &req); err != nil {
			return nil, errors.Wrapf(errors.ErrMalformedRequest, "envelope: %s", err)
		}
		if err := req.Funds.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrMalformedRequest, err.Error())
		}

		var (
			tag     string
			payload jsoniter.RawMessage
		)
		switch len(req.Msg) {
		case 0:
			if c.defaultTag == "" {
				return nil, errors.Wrap(errors.ErrMalformedRequest, "missing message")
			}
			tag = c.defaultTag
		case 1:
			for k, v := range req.Msg {
				tag, payload = k, v
			}
		default:
			return nil, errors.Wrapf(errors.ErrMalformedRequest, "expected one message, got %d", len(req.Msg))
		}

		msg, err := c.decode(tag, payload)
		if err != nil {
			return nil, err
		}
		if err := msg.Validate(); err != nil {
			return nil, errors.Wrap(errors.ErrMalformedRequest, err.Error())
		}
		req.msg = msg
		return &req, nil
	}
}
