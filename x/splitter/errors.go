package splitter

import "github.com/iov-one/burnsplit/errors"

var (
	// ErrEmptyDeposit is returned when a distribution request does not
	// carry any coins of the configured denomination.
	ErrEmptyDeposit = errors.Register(100, "empty deposit")

	// ErrInsufficientDeposit is returned when nothing is left to forward
	// after the fee is deducted.
	ErrInsufficientDeposit = errors.Register(101, "insufficient deposit")

	// ErrPriceNotSet is returned when a price is required but the owner
	// never set one.
	ErrPriceNotSet = errors.Register(102, "price not set")
)
