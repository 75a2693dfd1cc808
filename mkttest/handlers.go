package mkttest

import (
	"sync/atomic"

	"github.com/unboxd/nftmkt"
)

// Handler implements a mock handler that counts the calls and returns
// preconfigured results.
type Handler struct {
	checkCall   int64
	deliverCall int64

	// CheckResult is returned by Check method. A zero value result is
	// returned if not set.
	CheckResult nftmkt.CheckResult
	// CheckErr if set is returned by Check method.
	CheckErr error

	// DeliverResult is returned by Deliver method. A zero value result is
	// returned if not set.
	DeliverResult nftmkt.DeliverResult
	// DeliverErr if set is returned by Deliver method.
	DeliverErr error
}

var _ nftmkt.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.CheckResult, error) {
	atomic.AddInt64(&h.checkCall, 1)
	res := h.CheckResult
	return &res, h.CheckErr
}

func (h *Handler) Deliver(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.DeliverResult, error) {
	atomic.AddInt64(&h.deliverCall, 1)
	res := h.DeliverResult
	return &res, h.DeliverErr
}

// CheckCallCount returns the number of times Check was called.
func (h *Handler) CheckCallCount() int {
	return int(atomic.LoadInt64(&h.checkCall))
}

// DeliverCallCount returns the number of times Deliver was called.
func (h *Handler) DeliverCallCount() int {
	return int(atomic.LoadInt64(&h.deliverCall))
}

// CallCount returns the total number of times Check and Deliver were called.
func (h *Handler) CallCount() int {
	return h.CheckCallCount() + h.DeliverCallCount()
}
