package weavetest

import "github.com/iov-one/burnsplit"

// Handler is a mock implementation of the burnsplit.Handler interface.
//
// Writes are applied to the store on every call, before the configured
// result or error is returned. Use them to observe what is persisted when
// the handler fails.
type Handler struct {
	// Writes are key value pairs set on every call.
	Writes map[string]string

	checkCall   int
	CheckResult burnsplit.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult burnsplit.DeliverResult
	DeliverErr    error
}

var _ burnsplit.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx burnsplit.Context, db burnsplit.KVStore, tx burnsplit.Tx) (*burnsplit.CheckResult, error) {
	h.checkCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx burnsplit.Context, db burnsplit.KVStore, tx burnsplit.Tx) (*burnsplit.DeliverResult, error) {
	h.deliverCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) write(db burnsplit.KVStore) error {
	for k, v := range h.Writes {
		if err := db.Set([]byte(k), []byte(v)); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
