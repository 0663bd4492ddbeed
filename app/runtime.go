package app

import (
	"github.com/tendermint/tendermint/libs/common"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/errors"
	"github.com/iov-one/burnsplit/store"
)

const methodInstantiate = "instantiate"

// Runtime drives the processing of a single request at a time. Each request
// is executed against a cache wrap of the committed state. The state is
// committed only when the request succeeds, so a failed request never
// leaves partial writes behind.
//
// Runtime is not safe for concurrent use.
type Runtime struct {
	store       burnsplit.CommitKVStore
	handler     burnsplit.Handler
	decoder     burnsplit.TxDecoder
	queries     *QueryRouter
	initializer burnsplit.Initializer
	logger      log.Logger
	debug       bool
}

// NewRuntime returns a runtime that uses given handler to process requests
// decoded by decoder, and initializer to set up the genesis state.
func NewRuntime(
	store burnsplit.CommitKVStore,
	handler burnsplit.Handler,
	decoder burnsplit.TxDecoder,
	queries *QueryRouter,
	initializer burnsplit.Initializer,
) *Runtime {
	return &Runtime{
		store:       store,
		handler:     handler,
		decoder:     decoder,
		queries:     queries,
		initializer: initializer,
		logger:      burnsplit.DefaultLogger,
	}
}

// WithLogger sets the logger passed to handlers through the context.
func (r *Runtime) WithLogger(logger log.Logger) *Runtime {
	r.logger = logger
	return r
}

// WithDebug controls whether internal error details are exposed by
// Result.
func (r *Runtime) WithDebug(debug bool) *Runtime {
	r.debug = debug
	return r
}

// Debug reports whether internal error details are exposed.
func (r *Runtime) Debug() bool {
	return r.debug
}

// Instantiate stores the chain id and runs the initializer against given
// options. Nothing is committed unless all initializers succeed.
func (r *Runtime) Instantiate(ctx burnsplit.Context, chainID string, opts burnsplit.Options) (*burnsplit.DeliverResult, error) {
	cache := r.store.CacheWrap()
	if err := saveChainID(cache, chainID); err != nil {
		cache.Discard()
		return nil, err
	}
	if r.initializer != nil {
		if err := r.initializer.FromGenesis(opts, cache); err != nil {
			cache.Discard()
			return nil, errors.Wrap(err, "initialize")
		}
	}
	if err := r.commit(cache); err != nil {
		return nil, err
	}
	r.logger.Info("instantiated", "chain_id", chainID)
	return &burnsplit.DeliverResult{
		Tags: []common.KVPair{burnsplit.MethodTag(methodInstantiate)},
	}, nil
}

// Execute decodes and delivers a request.
func (r *Runtime) Execute(ctx burnsplit.Context, raw []byte) (*burnsplit.DeliverResult, error) {
	tx, err := r.decoder(raw)
	if err != nil {
		return nil, err
	}
	return r.ExecuteTx(ctx, tx)
}

// ExecuteTx delivers an already decoded request. On success the state
// changes are committed and the result carries the effects in the order
// they must be executed. On failure nothing is written.
func (r *Runtime) ExecuteTx(ctx burnsplit.Context, tx burnsplit.Tx) (*burnsplit.DeliverResult, error) {
	ctx, err := r.requestContext(ctx)
	if err != nil {
		return nil, err
	}
	cache := r.store.CacheWrap()
	db := store.NewRecordingStore(cache)
	res, err := r.handler.Deliver(ctx, db, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	for _, op := range db.Changes() {
		r.logger.Debug("state change", "op", op.String())
	}
	if err := r.commit(cache); err != nil {
		return nil, err
	}
	return res, nil
}

// Check decodes and checks a request.
func (r *Runtime) Check(ctx burnsplit.Context, raw []byte) (*burnsplit.CheckResult, error) {
	tx, err := r.decoder(raw)
	if err != nil {
		return nil, err
	}
	return r.CheckTx(ctx, tx)
}

// CheckTx validates a request against the current state. The state is never
// modified and no effect is produced.
func (r *Runtime) CheckTx(ctx burnsplit.Context, tx burnsplit.Tx) (*burnsplit.CheckResult, error) {
	ctx, err := r.requestContext(ctx)
	if err != nil {
		return nil, err
	}
	cache := r.store.CacheWrap()
	defer cache.Discard()
	return r.handler.Check(ctx, cache, tx)
}

// Query dispatches a read only query to the handler registered under path.
func (r *Runtime) Query(path string, data []byte) ([]burnsplit.Model, error) {
	if r.queries == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "unknown query path %q", path)
	}
	cache := r.store.CacheWrap()
	defer cache.Discard()
	return r.queries.Query(cache, path, data)
}

// ChainID returns the chain id stored at instantiation, or an empty string.
func (r *Runtime) ChainID() (string, error) {
	cache := r.store.CacheWrap()
	defer cache.Discard()
	return loadChainID(cache)
}

// LatestVersion returns info on the latest committed state.
func (r *Runtime) LatestVersion() (burnsplit.CommitID, error) {
	return r.store.LatestVersion()
}

// requestContext returns a context carrying the logger, the chain id and
// the height the request is executed at.
func (r *Runtime) requestContext(ctx burnsplit.Context) (burnsplit.Context, error) {
	chainID, err := r.ChainID()
	if err != nil {
		return nil, err
	}
	if chainID == "" {
		return nil, errors.Wrap(errors.ErrState, "not instantiated")
	}
	last, err := r.store.LatestVersion()
	if err != nil {
		return nil, err
	}
	ctx = burnsplit.WithLogger(ctx, r.logger)
	ctx = burnsplit.WithChainID(ctx, chainID)
	ctx = burnsplit.WithHeight(ctx, last.Version+1)
	return ctx, nil
}

func (r *Runtime) commit(cache burnsplit.KVCacheWrap) error {
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "write cache")
	}
	id, err := r.store.Commit()
	if err != nil {
		return errors.Wrap(err, "commit")
	}
	r.logger.Debug("committed", "version", id.Version)
	return nil
}

// Result is a printable summary of a processed request.
type Result struct {
	Code    uint32            `json:"code"`
	Log     string            `json:"log,omitempty"`
	Data    string            `json:"data,omitempty"`
	Tags    map[string]string `json:"tags,omitempty"`
	Effects []EffectResult    `json:"effects,omitempty"`
}

// EffectResult is a printable effect together with its kind.
type EffectResult struct {
	Kind string           `json:"kind"`
	Msg  burnsplit.Effect `json:"msg"`
}

// NewResult converts a delivery outcome into a Result, using the abci code
// and log for errors.
func NewResult(res *burnsplit.DeliverResult, err error, debug bool) Result {
	if err != nil {
		resp := burnsplit.DeliverTxError(err, debug)
		return Result{Code: resp.Code, Log: resp.Log}
	}
	tags := make(map[string]string, len(res.Tags))
	for _, t := range res.Tags {
		tags[string(t.Key)] = string(t.Value)
	}
	effects := make([]EffectResult, len(res.Effects))
	for i, e := range res.Effects {
		effects[i] = EffectResult{Kind: e.Kind(), Msg: e}
	}
	return Result{
		Log:     res.Log,
		Data:    string(res.Data),
		Tags:    tags,
		Effects: effects,
	}
}
