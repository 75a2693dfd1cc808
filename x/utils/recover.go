// Package utils contains decorators shared by all routes.
package utils

import (
	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ nftmkt.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx, next nftmkt.Checker) (_ *nftmkt.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, db, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx, next nftmkt.Deliverer) (_ *nftmkt.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, db, tx)
}
