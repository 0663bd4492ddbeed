package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/errors"
)

// isPath is the RegExp to ensure the routes make sense
var isPath = regexp.MustCompile(`^[a-z0-9_\-]+/[a-z0-9_\-]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]burnsplit.Handler
}

var _ burnsplit.Registry = (*Router)(nil)
var _ burnsplit.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]burnsplit.Handler),
	}
}

// Handle adds a new Handler for the given message type.
//
// Panics on duplicate path or if the path is not valid. Both are
// programming errors.
func (r *Router) Handle(msg burnsplit.Msg, h burnsplit.Handler) {
	path := msg.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %q", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %q", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for this path. If no path is
// found, returns a handler that always fails with ErrMalformedRequest.
func (r *Router) handler(m burnsplit.Msg) burnsplit.Handler {
	path := m.Path()
	if h, ok := r.routes[path]; ok {
		return h
	}
	return notFoundHandler(path)
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx burnsplit.Context, store burnsplit.KVStore, tx burnsplit.Tx) (*burnsplit.CheckResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrMalformedRequest, "no message")
	}
	return r.handler(msg).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx burnsplit.Context, store burnsplit.KVStore, tx burnsplit.Tx) (*burnsplit.DeliverResult, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot load msg")
	}
	if msg == nil {
		return nil, errors.Wrap(errors.ErrMalformedRequest, "no message")
	}
	return r.handler(msg).Deliver(ctx, store, tx)
}

// notFoundHandler always returns ErrMalformedRequest without touching the
// store.
type notFoundHandler string

func (path notFoundHandler) Check(burnsplit.Context, burnsplit.KVStore, burnsplit.Tx) (*burnsplit.CheckResult, error) {
	return nil, errors.Wrapf(errors.ErrMalformedRequest, "no handler for %q", string(path))
}

func (path notFoundHandler) Deliver(burnsplit.Context, burnsplit.KVStore, burnsplit.Tx) (*burnsplit.DeliverResult, error) {
	return nil, errors.Wrapf(errors.ErrMalformedRequest, "no handler for %q", string(path))
}
