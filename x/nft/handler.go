package nft

import (
	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
	"github.com/unboxd/nftmkt/orm"
	"github.com/unboxd/nftmkt/x"
)

const (
	issueTokenCost    = 200
	approveTokenCost  = 100
	transferTokenCost = 100
)

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r nftmkt.Registry, auth x.Authenticator) {
	ctrl := NewController()
	r.Handle(&IssueTokenMsg{}, IssueHandler{auth: auth, ctrl: ctrl})
	r.Handle(&ApproveTokenMsg{}, ApproveHandler{auth: auth, ctrl: ctrl})
	r.Handle(&TransferTokenMsg{}, TransferHandler{auth: auth, ctrl: ctrl})
}

// RegisterQuery will register this bucket as "/tokens".
func RegisterQuery(qr nftmkt.QueryRouter) {
	qr.Register("/tokens", queryToken)
}

func queryToken(db nftmkt.ReadOnlyKVStore, key []byte) ([]byte, error) {
	var t Token
	switch err := NewTokenBucket().One(db, key, &t); {
	case err == nil:
		return t.Marshal()
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

// IssueHandler mints new tokens. Minting is restricted to the
// collection address itself.
type IssueHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ nftmkt.Handler = IssueHandler{}

func (h IssueHandler) Check(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftmkt.CheckResult{GasAllocated: issueTokenCost}, nil
}

func (h IssueHandler) Deliver(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	id, err := h.ctrl.Issue(db, msg.Collection, msg.Owner)
	if err != nil {
		return nil, err
	}
	return &nftmkt.DeliverResult{Data: orm.EncodeSequence(int64(id))}, nil
}

func (h IssueHandler) validate(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*IssueTokenMsg, error) {
	var msg IssueTokenMsg
	if err := nftmkt.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Collection) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the collection may mint")
	}
	return &msg, nil
}

// ApproveHandler lets the token owner grant or revoke an operator.
type ApproveHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ nftmkt.Handler = ApproveHandler{}

func (h ApproveHandler) Check(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftmkt.CheckResult{GasAllocated: approveTokenCost}, nil
}

func (h ApproveHandler) Deliver(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Approve(db, msg.Collection, msg.TokenID, msg.Operator); err != nil {
		return nil, err
	}
	return &nftmkt.DeliverResult{}, nil
}

func (h ApproveHandler) validate(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*ApproveTokenMsg, error) {
	var msg ApproveTokenMsg
	if err := nftmkt.LoadMsg(tx, &msg); err != nil {
		return nil, err
	}
	owner, err := h.ctrl.OwnerOf(db, msg.Collection, msg.TokenID)
	if err != nil {
		return nil, err
	}
	if !h.auth.HasAddress(ctx, owner) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the owner may approve")
	}
	return &msg, nil
}

// TransferHandler moves a token, on request of its owner or the
// approved operator.
type TransferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ nftmkt.Handler = TransferHandler{}

func (h TransferHandler) Check(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftmkt.CheckResult{GasAllocated: transferTokenCost}, nil
}

func (h TransferHandler) Deliver(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.Transfer(db, msg.Collection, msg.TokenID, owner, msg.Destination); err != nil {
		return nil, err
	}
	return &nftmkt.DeliverResult{}, nil
}

func (h TransferHandler) validate(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*TransferTokenMsg, nftmkt.Address, error) {
	var msg TransferTokenMsg
	if err := nftmkt.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	owner, err := h.ctrl.OwnerOf(db, msg.Collection, msg.TokenID)
	if err != nil {
		return nil, nil, err
	}
	if h.auth.HasAddress(ctx, owner) {
		return &msg, owner, nil
	}
	for _, addr := range h.auth.GetAddresses(ctx) {
		ok, err := h.ctrl.IsApproved(db, msg.Collection, msg.TokenID, addr)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			return &msg, owner, nil
		}
	}
	return nil, nil, errors.Wrap(errors.ErrUnauthorized, "neither owner nor approved")
}
