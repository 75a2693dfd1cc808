// Package app assembles the handlers, decorators and the store into a
// runnable application that applies one command at a time.
package app

import (
	"regexp"

	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
)

var isRoute = regexp.MustCompile(`^[a-z0-9_]+/[a-z0-9_]+$`).MatchString

// Router is a registry of handlers keyed by message path. It also
// implements Handler itself, dispatching to the registered route.
type Router struct {
	routes map[string]nftmkt.Handler
}

var _ nftmkt.Registry = (*Router)(nil)
var _ nftmkt.Handler = (*Router)(nil)

// NewRouter initializes a router with no routes.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]nftmkt.Handler),
	}
}

// Handle implements Registry. Path expressions are restricted to
// "extension/operation" in lowercase. Registering a path twice is a
// configuration error and panics.
func (r *Router) Handle(m nftmkt.Msg, h nftmkt.Handler) {
	path := m.Path()
	if !isRoute(path) {
		panic("invalid route expression: " + path)
	}
	if _, ok := r.routes[path]; ok {
		panic("re-registered route: " + path)
	}
	r.routes[path] = h
}

// Check dispatches to the proper handler based on the message path.
func (r *Router) Check(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.CheckResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Check(ctx, db, tx)
}

// Deliver dispatches to the proper handler based on the message path.
func (r *Router) Deliver(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.DeliverResult, error) {
	h, err := r.handler(tx)
	if err != nil {
		return nil, err
	}
	return h.Deliver(ctx, db, tx)
}

func (r *Router) handler(tx nftmkt.Tx) (nftmkt.Handler, error) {
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get message")
	}
	if h, ok := r.routes[msg.Path()]; ok {
		return h, nil
	}
	return nil, errors.Wrapf(errors.ErrNotFound, "no handler for %q", msg.Path())
}
