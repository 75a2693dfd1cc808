package cash

import (
	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
	"github.com/unboxd/nftmkt/x"
)

const sendTxCost = 100

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r nftmkt.Registry, auth x.Authenticator, ctrl CoinMover) {
	r.Handle(&SendMsg{}, SendHandler{auth: auth, ctrl: ctrl})
}

// RegisterQuery will register this bucket as "/wallets".
func RegisterQuery(qr nftmkt.QueryRouter) {
	qr.Register("/wallets", queryWallet)
}

func queryWallet(db nftmkt.ReadOnlyKVStore, key []byte) ([]byte, error) {
	var w Wallet
	switch err := NewWalletBucket().One(db, key, &w); {
	case err == nil:
		return w.Marshal()
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// SendHandler moves funds between wallets on behalf of the source.
type SendHandler struct {
	auth x.Authenticator
	ctrl CoinMover
}

var _ nftmkt.Handler = SendHandler{}

// Check verifies the message and the authorization without mutating
// anything.
func (h SendHandler) Check(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftmkt.CheckResult{GasAllocated: sendTxCost}, nil
}

// Deliver executes the transfer.
func (h SendHandler) Deliver(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MoveCoins(db, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &nftmkt.DeliverResult{}, nil
}

func (h SendHandler) validate(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := nftmkt.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source must sign the transfer")
	}
	return &msg, nil
}
