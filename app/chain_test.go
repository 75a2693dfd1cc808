package app

import (
	"context"
	"testing"

	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/mkttest"
	"github.com/unboxd/nftmkt/mkttest/assert"
	"github.com/unboxd/nftmkt/store"
)

// appendDecorator records its tag on the way down the stack
type appendDecorator struct {
	tag   string
	trace *[]string
}

var _ nftmkt.Decorator = appendDecorator{}

func (d appendDecorator) Check(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx, next nftmkt.Checker) (*nftmkt.CheckResult, error) {
	*d.trace = append(*d.trace, d.tag)
	return next.Check(ctx, db, tx)
}

func (d appendDecorator) Deliver(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx, next nftmkt.Deliverer) (*nftmkt.DeliverResult, error) {
	*d.trace = append(*d.trace, d.tag)
	return next.Deliver(ctx, db, tx)
}

func TestChainDecoratorsOrder(t *testing.T) {
	var trace []string
	h := ChainDecorators(
		appendDecorator{tag: "first", trace: &trace},
		nil,
		appendDecorator{tag: "second", trace: &trace},
	).Chain(
		appendDecorator{tag: "third", trace: &trace},
	).WithHandler(&mkttest.Handler{})

	_, err := h.Deliver(context.Background(), store.MemStore(), &mkttest.Tx{Msg: &mkttest.Msg{RoutePath: "test/any"}})
	assert.Nil(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, trace)

	trace = nil
	_, err = h.Check(context.Background(), store.MemStore(), &mkttest.Tx{Msg: &mkttest.Msg{RoutePath: "test/any"}})
	assert.Nil(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, trace)
}
