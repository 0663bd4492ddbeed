package weavetest

import "github.com/iov-one/burnsplit"

// Decorator is a mock implementation of the burnsplit.Decorator interface.
//
// Set CheckErr or DeliverErr to force error response for corresponding method.
// If error attributes are not set then wrapped handler method is called and
// its result returned.
// Each method call is counted. Regardless of the method call result the
// counter is incremented.
type Decorator struct {
	checkCall int
	// CheckErr if set is returned by the Check method before calling
	// the wrapped handler.
	CheckErr error

	deliverCall int
	// DeliverErr if set is returned by the Deliver method before calling
	// the wrapped handler.
	DeliverErr error

	// Panic if set is raised instead of calling the wrapped handler.
	Panic interface{}
}

var _ burnsplit.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx burnsplit.Context, db burnsplit.KVStore, tx burnsplit.Tx, next burnsplit.Checker) (*burnsplit.CheckResult, error) {
	d.checkCall++

	if d.Panic != nil {
		panic(d.Panic)
	}
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx burnsplit.Context, db burnsplit.KVStore, tx burnsplit.Tx, next burnsplit.Deliverer) (*burnsplit.DeliverResult, error) {
	d.deliverCall++

	if d.Panic != nil {
		panic(d.Panic)
	}
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

func (d *Decorator) CheckCallCount() int {
	return d.checkCall
}

func (d *Decorator) DeliverCallCount() int {
	return d.deliverCall
}

func (d *Decorator) CallCount() int {
	return d.checkCall + d.deliverCall
}
