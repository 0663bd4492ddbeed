package utils

import (
	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/errors"
)

// Recovery is a decorator to recover from panics in handlers,
// so that a coding error fails a single request as ErrPanic.
type Recovery struct{}

var _ burnsplit.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (Recovery) Check(ctx burnsplit.Context, store burnsplit.KVStore, tx burnsplit.Tx, next burnsplit.Checker) (_ *burnsplit.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (Recovery) Deliver(ctx burnsplit.Context, store burnsplit.KVStore, tx burnsplit.Tx, next burnsplit.Deliverer) (_ *burnsplit.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
