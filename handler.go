package burnsplit

import (
	jsoniter "github.com/json-iterator/go"
)

// JSON is the codec used for all human readable serialization: genesis
// options, request envelopes, messages and state records.
var JSON = jsoniter.ConfigCompatibleWithStandardLibrary

// Handler is a core engine that can process a few specific messages
// This could represent "distribute a deposit", or "update the price"
type Handler interface {
	Checker
	Deliverer
}

// Checker is a subset of Handler to verify the validity of a request
// without producing any effect.
type Checker interface {
	Check(ctx Context, store KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer is a subset of Handler to execute a request.
type Deliverer interface {
	Deliver(ctx Context, store KVStore, tx Tx) (*DeliverResult, error)
}

// Decorator wraps a Handler to provide common functionality
// like logging or panic recovery.
type Decorator interface {
	Check(ctx Context, store KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, store KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry is an interface to register your handler,
// the setup side of a Router
type Registry interface {
	Handle(m Msg, h Handler)
}

// Options are the app options
// Each extension can look up it's key and parse the json as desired
type Options map[string]jsoniter.RawMessage

// ReadOptions reads the values stored under a given key,
// and parses the json into the given obj.
// Returns an error if it cannot parse.
// Noop and no error if key is missing
func (o Options) ReadOptions(key string, obj interface{}) error {
	msg := o[key]
	if len(msg) == 0 {
		return nil
	}
	return JSON.Unmarshal(msg, obj)
}

// Initializer implementations are used to initialize
// extensions from genesis file contents
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// QueryHandler reads application state for external tools. Queries never
// modify the state.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, data []byte) ([]Model, error)
}

// QueryRouter is the setup side of query dispatching.
type QueryRouter interface {
	Register(path string, h QueryHandler)
}

// Model groups together key and value to return
type Model struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}
