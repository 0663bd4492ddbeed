package app

import (
	"fmt"
	"strings"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/errors"
)

// QueryRouter allows us to register many query handlers
// to different paths and then direct each query
// to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type QueryRouter struct {
	routes map[string]burnsplit.QueryHandler
}

var _ burnsplit.QueryRouter = (*QueryRouter)(nil)

// NewQueryRouter initializes a QueryRouter with no routes
func NewQueryRouter() *QueryRouter {
	return &QueryRouter{
		routes: make(map[string]burnsplit.QueryHandler, 10),
	}
}

// Register adds a new Handler for the given path. Panics if the path is
// already taken.
func (r *QueryRouter) Register(path string, h burnsplit.QueryHandler) {
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("Re-registering route: %s", path))
	}
	r.routes[path] = h
}

// Handler returns the registered Handler for this path.
// If no path is found, returns nil
func (r *QueryRouter) Handler(path string) burnsplit.QueryHandler {
	return r.routes[splitPath(path)]
}

// splitPath strips a modifier, like "?prefix", from the path.
func splitPath(path string) string {
	if i := strings.Index(path, "?"); i >= 0 {
		return path[:i]
	}
	return path
}

// Query dispatches to the handler registered under given path.
func (r *QueryRouter) Query(db burnsplit.ReadOnlyKVStore, path string, data []byte) ([]burnsplit.Model, error) {
	h := r.Handler(path)
	if h == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "unknown query path %q", path)
	}
	return h.Query(db, data)
}
