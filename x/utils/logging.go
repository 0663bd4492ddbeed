package utils

import (
	"time"

	"github.com/iov-one/burnsplit"
)

// Logging is a decorator to log requests as they pass through
type Logging struct{}

var _ burnsplit.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> error, success -> debug
func (Logging) Check(ctx burnsplit.Context, store burnsplit.KVStore, tx burnsplit.Tx, next burnsplit.Checker) (*burnsplit.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (Logging) Deliver(ctx burnsplit.Context, store burnsplit.KVStore, tx burnsplit.Tx, next burnsplit.Deliverer) (*burnsplit.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx burnsplit.Context, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := burnsplit.GetLogger(ctx).With("duration", delta/time.Microsecond)

	// Although message can be empty, we still want to emit a log entry
	// because it contains other relevant information beside the message.
	switch {
	case err != nil:
		logger.Error(msg, "err", err)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
