// Package x holds the shared interfaces between the application modules,
// along with common helpers to work with them.
package x

import (
	"context"

	"github.com/unboxd/nftmkt"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so they can decide who can access which data.
type Authenticator interface {
	// GetAddresses reveals all authenticated addresses
	GetAddresses(nftmkt.Context) []nftmkt.Address

	// HasAddress checks if any of the authenticated addresses
	// matches the given one
	HasAddress(nftmkt.Context, nftmkt.Address) bool
}

// MultiAuth chains together many Authenticators
type MultiAuth struct {
	impls []Authenticator
}

var _ Authenticator = MultiAuth{}

// ChainAuth groups together a series of Authenticators
func ChainAuth(impls ...Authenticator) MultiAuth {
	return MultiAuth{impls}
}

// GetAddresses combines all addresses from all Authenticators
func (m MultiAuth) GetAddresses(ctx nftmkt.Context) []nftmkt.Address {
	var res []nftmkt.Address
	for _, impl := range m.impls {
		res = append(res, impl.GetAddresses(ctx)...)
	}
	return res
}

// HasAddress returns true iff any Authenticator vouches for this address
func (m MultiAuth) HasAddress(ctx nftmkt.Context, addr nftmkt.Address) bool {
	for _, impl := range m.impls {
		if impl.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner returns the first authenticated address if any, otherwise nil
func MainSigner(ctx nftmkt.Context, auth Authenticator) nftmkt.Address {
	addrs := auth.GetAddresses(ctx)
	if len(addrs) == 0 {
		return nil
	}
	return addrs[0]
}

// HasAllAddresses returns true if all elements in required are
// also in context.
func HasAllAddresses(ctx nftmkt.Context, auth Authenticator, required []nftmkt.Address) bool {
	for _, addr := range required {
		if !auth.HasAddress(ctx, addr) {
			return false
		}
	}
	return true
}

type contextKey string

// CtxAuth is an authenticator that reads addresses previously stored in
// the context by a trusted decorator. The zero value is not usable, give
// each instance its own key.
type CtxAuth struct {
	Key string
}

var _ Authenticator = CtxAuth{}

// SetAddresses stores the given addresses in the context returned
func (a CtxAuth) SetAddresses(ctx nftmkt.Context, addrs ...nftmkt.Address) nftmkt.Context {
	return context.WithValue(ctx, contextKey(a.Key), addrs)
}

// GetAddresses returns the addresses stored with SetAddresses, if any
func (a CtxAuth) GetAddresses(ctx nftmkt.Context) []nftmkt.Address {
	val := ctx.Value(contextKey(a.Key))
	if val == nil {
		return nil
	}
	addrs, ok := val.([]nftmkt.Address)
	if !ok {
		return nil
	}
	return addrs
}

// HasAddress returns true iff this address was stored with SetAddresses
func (a CtxAuth) HasAddress(ctx nftmkt.Context, addr nftmkt.Address) bool {
	for _, stored := range a.GetAddresses(ctx) {
		if stored.Equals(addr) {
			return true
		}
	}
	return false
}
