package app

import (
	"sync"

	"go.uber.org/zap"

	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
)

// EventSink consumes the events of committed commands, e.g. an indexer
// or a front end feed.
type EventSink func(nftmkt.Event)

// App applies commands one at a time, in a total order, each one
// all-or-nothing. Every command runs inside a cache wrap over the
// backing store; only a fully successful command is written through.
// Reads never observe a half-applied command.
type App struct {
	mu      sync.RWMutex
	db      nftmkt.CacheableKVStore
	handler nftmkt.Handler
	queries nftmkt.QueryRouter
	logger  *zap.Logger
	sinks   []EventSink
}

// New assembles an application from its parts.
func New(db nftmkt.CacheableKVStore, handler nftmkt.Handler, queries nftmkt.QueryRouter, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		db:      db,
		handler: handler,
		queries: queries,
		logger:  logger,
	}
}

// Subscribe registers a sink that receives the events of every
// committed command, after the commit.
func (a *App) Subscribe(sink EventSink) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sinks = append(a.sinks, sink)
}

// CheckTx runs the transaction through the handler stack without
// persisting anything.
func (a *App) CheckTx(ctx nftmkt.Context, tx nftmkt.Tx) (*nftmkt.CheckResult, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	cache := a.db.CacheWrap()
	defer cache.Discard()
	return a.handler.Check(ctx, cache, tx)
}

// DeliverTx executes the transaction. On success all its writes are
// committed together and its events are handed to the sinks. On any
// error nothing is persisted.
func (a *App) DeliverTx(ctx nftmkt.Context, tx nftmkt.Tx) (*nftmkt.DeliverResult, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	cache := a.db.CacheWrap()
	res, err := a.handler.Deliver(ctx, cache, tx)
	if err != nil {
		cache.Discard()
		return nil, err
	}
	if err := cache.Write(); err != nil {
		a.logger.Error("cannot commit", zap.Error(err))
		return nil, errors.Wrap(err, "cannot commit")
	}

	// events fire only after the commit
	for _, ev := range res.Events {
		for _, sink := range a.sinks {
			sink(ev)
		}
	}
	return res, nil
}

// Query resolves a read-only lookup against committed state.
func (a *App) Query(path string, key []byte) ([]byte, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	q := a.queries.Handler(path)
	if q == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "no query handler for %q", path)
	}
	return q(a.db, key)
}

// InitGenesis seeds the store from genesis options. Like a command,
// initialization is all-or-nothing.
func (a *App) InitGenesis(opts nftmkt.Options, inits ...nftmkt.Initializer) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	cache := a.db.CacheWrap()
	for _, ini := range inits {
		if err := ini.FromGenesis(opts, cache); err != nil {
			cache.Discard()
			return errors.Wrap(err, "cannot initialize from genesis")
		}
	}
	if err := cache.Write(); err != nil {
		return err
	}
	a.logger.Info("genesis initialized", zap.Int("initializers", len(inits)))
	return nil
}
