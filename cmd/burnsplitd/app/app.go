/*
Package app links together all the various components
to construct the burnsplitd application.
*/
package app

import (
	"path/filepath"
	"strings"

	"github.com/tendermint/tendermint/libs/log"

	"github.com/iov-one/burnsplit"
	"github.com/iov-one/burnsplit/app"
	"github.com/iov-one/burnsplit/errors"
	"github.com/iov-one/burnsplit/store/iavl"
	"github.com/iov-one/burnsplit/x/splitter"
	"github.com/iov-one/burnsplit/x/utils"
)

// Chain returns a chain of decorators, to handle logging and recovery.
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
	)
}

// Router returns a router dispatching splitter messages.
func Router(conf splitter.Configuration, prices splitter.PriceStore) *app.Router {
	r := app.NewRouter()
	splitter.RegisterRoutes(r, conf, prices)
	return r
}

// QueryRouter returns a query router,
// allowing access to "/splitter/price" and "/splitter/config"
func QueryRouter(prices splitter.PriceStore) *app.QueryRouter {
	r := app.NewQueryRouter()
	splitter.RegisterQuery(r, prices)
	return r
}

// Codec returns the codec that knows every message tag.
func Codec() *app.Codec {
	c := app.NewCodec()
	splitter.RegisterCodec(c)
	return c
}

// Stack wires up a standard router with a standard decorator
// chain.
func Stack(conf splitter.Configuration, prices splitter.PriceStore) burnsplit.Handler {
	return Chain().WithHandler(Router(conf, prices))
}

// Initializers returns all initializers run at instantiation.
func Initializers(prices splitter.PriceStore) burnsplit.Initializer {
	return app.ChainInitializers(
		&splitter.Initializer{Prices: prices},
	)
}

// Instantiate initializes a fresh store from given genesis.
func Instantiate(ctx burnsplit.Context, kv burnsplit.CommitKVStore, gen app.Genesis, logger log.Logger) (*burnsplit.DeliverResult, error) {
	prices := splitter.NewPriceStore()
	// Requests cannot be processed before the configuration is stored,
	// so the runtime is using an empty router.
	rt := app.NewRuntime(kv, app.NewRouter(), app.NewTxDecoder(Codec()), QueryRouter(prices), Initializers(prices)).
		WithLogger(logger)
	return rt.Instantiate(ctx, gen.ChainID, gen.AppState)
}

// Application constructs a runtime over an instantiated store, using the
// configuration saved at instantiation.
func Application(kv burnsplit.CommitKVStore, logger log.Logger, debug bool) (*app.Runtime, error) {
	conf, err := splitter.LoadConfiguration(kv)
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration loaded", "conf", conf.String())
	prices := splitter.NewPriceStore()
	rt := app.NewRuntime(kv, Stack(conf, prices), app.NewTxDecoder(Codec()), QueryRouter(prices), Initializers(prices)).
		WithLogger(logger).
		WithDebug(debug)
	return rt, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (iavl.CommitStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return iavl.CommitStore{}, errors.Wrapf(errors.ErrInput, "invalid database name: %s", dbPath)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	store, err := iavl.NewCommitStore(dir, name)
	if err != nil {
		return iavl.CommitStore{}, err
	}
	if err := store.LoadLatestVersion(); err != nil {
		store.Close()
		return iavl.CommitStore{}, err
	}
	return store, nil
}
