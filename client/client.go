// Package client provides a typed, in-process front end to the
// marketplace application. Commands are submitted on behalf of a
// signer address and are applied atomically, reads resolve against
// committed state only.
package client

import (
	"context"

	"go.uber.org/zap"

	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/app"
	"github.com/unboxd/nftmkt/orm"
	"github.com/unboxd/nftmkt/store"
	"github.com/unboxd/nftmkt/x"
	"github.com/unboxd/nftmkt/x/cash"
	"github.com/unboxd/nftmkt/x/marketplace"
	"github.com/unboxd/nftmkt/x/nft"
	"github.com/unboxd/nftmkt/x/utils"
)

// Client submits commands to a marketplace application.
type Client struct {
	app  *app.App
	auth x.CtxAuth
}

// New wraps an assembled application.
func New(a *app.App, auth x.CtxAuth) *Client {
	return &Client{app: a, auth: auth}
}

// NewLocal assembles the complete marketplace application with an in
// memory store and returns a client bound to it. A nil logger disables
// logging.
func NewLocal(logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	auth := x.CtxAuth{Key: "auth"}
	tokens := nft.NewController()
	coins := cash.NewController()

	r := app.NewRouter()
	cash.RegisterRoutes(r, auth, coins)
	nft.RegisterRoutes(r, auth)
	marketplace.RegisterRoutes(r, auth, tokens, coins)

	qr := nftmkt.NewQueryRouter()
	qr.RegisterAll(
		cash.RegisterQuery,
		nft.RegisterQuery,
		marketplace.RegisterQuery,
	)

	handler := app.ChainDecorators(
		utils.NewLogging(logger),
		utils.NewRecovery(),
	).WithHandler(r)

	a := app.New(store.MemStore(), handler, qr, logger)
	return New(a, auth)
}

// InitGenesis seeds the application state, e.g. initial wallet funds.
func (c *Client) InitGenesis(opts nftmkt.Options) error {
	return c.app.InitGenesis(opts, cash.Initializer{})
}

// Subscribe registers a sink for the events of committed commands.
func (c *Client) Subscribe(sink app.EventSink) {
	c.app.Subscribe(sink)
}

func (c *Client) as(signer nftmkt.Address) nftmkt.Context {
	return c.auth.SetAddresses(context.Background(), signer)
}

func (c *Client) deliver(signer nftmkt.Address, msg nftmkt.Msg) error {
	_, err := c.app.DeliverTx(c.as(signer), app.NewTx(msg))
	return err
}

// ListItem offers the token for sale at the given price.
func (c *Client) ListItem(signer, collection nftmkt.Address, tokenID, price uint64) error {
	return c.deliver(signer, &marketplace.ListItemMsg{
		Collection: collection,
		TokenID:    tokenID,
		Price:      price,
	})
}

// BuyItem purchases a listed token, paying the given amount.
func (c *Client) BuyItem(signer, collection nftmkt.Address, tokenID, payment uint64) error {
	return c.deliver(signer, &marketplace.BuyItemMsg{
		Collection: collection,
		TokenID:    tokenID,
		Payment:    payment,
	})
}

// CancelItem takes the token off the market.
func (c *Client) CancelItem(signer, collection nftmkt.Address, tokenID uint64) error {
	return c.deliver(signer, &marketplace.CancelItemMsg{
		Collection: collection,
		TokenID:    tokenID,
	})
}

// UpdateItem changes the listing price.
func (c *Client) UpdateItem(signer, collection nftmkt.Address, tokenID, newPrice uint64) error {
	return c.deliver(signer, &marketplace.UpdateItemMsg{
		Collection: collection,
		TokenID:    tokenID,
		NewPrice:   newPrice,
	})
}

// WithdrawProceeds pays out the signer's full proceeds balance.
func (c *Client) WithdrawProceeds(signer nftmkt.Address) error {
	return c.deliver(signer, &marketplace.WithdrawProceedsMsg{})
}

// GetListing returns the current listing of the token. A zero price
// means the token is not listed. This read never fails on missing data.
func (c *Client) GetListing(collection nftmkt.Address, tokenID uint64) (marketplace.Listing, error) {
	var l marketplace.Listing
	raw, err := c.app.Query("/listings", nft.TokenKey(collection, tokenID))
	if err != nil {
		return l, err
	}
	if raw == nil {
		return l, nil
	}
	err = l.Unmarshal(raw)
	return l, err
}

// GetProceeds returns the withdrawable balance of the actor.
func (c *Client) GetProceeds(actor nftmkt.Address) (uint64, error) {
	raw, err := c.app.Query("/proceeds", actor)
	if err != nil || raw == nil {
		return 0, err
	}
	var p marketplace.Proceeds
	if err := p.Unmarshal(raw); err != nil {
		return 0, err
	}
	return p.Balance, nil
}

// GetBalance returns the wallet funds of the address.
func (c *Client) GetBalance(addr nftmkt.Address) (uint64, error) {
	raw, err := c.app.Query("/wallets", addr)
	if err != nil || raw == nil {
		return 0, err
	}
	var w cash.Wallet
	if err := w.Unmarshal(raw); err != nil {
		return 0, err
	}
	return w.Balance, nil
}

// GetToken returns the token record, or nil when it was never minted.
func (c *Client) GetToken(collection nftmkt.Address, tokenID uint64) (*nft.Token, error) {
	raw, err := c.app.Query("/tokens", nft.TokenKey(collection, tokenID))
	if err != nil || raw == nil {
		return nil, err
	}
	var t nft.Token
	if err := t.Unmarshal(raw); err != nil {
		return nil, err
	}
	return &t, nil
}

// IssueToken mints a new token in the collection and returns its ID.
// Only the collection address may sign this.
func (c *Client) IssueToken(signer, collection, owner nftmkt.Address) (uint64, error) {
	res, err := c.app.DeliverTx(c.as(signer), app.NewTx(&nft.IssueTokenMsg{
		Collection: collection,
		Owner:      owner,
	}))
	if err != nil {
		return 0, err
	}
	return uint64(orm.DecodeSequence(res.Data)), nil
}

// ApproveMarketplace grants the marketplace escrow transfer authority
// over the token, the precondition for listing it.
func (c *Client) ApproveMarketplace(signer, collection nftmkt.Address, tokenID uint64) error {
	return c.deliver(signer, &nft.ApproveTokenMsg{
		Collection: collection,
		TokenID:    tokenID,
		Operator:   marketplace.EscrowAddress(),
	})
}

// Send moves funds between two wallets.
func (c *Client) Send(signer, dest nftmkt.Address, amount uint64) error {
	return c.deliver(signer, &cash.SendMsg{
		Source:      signer,
		Destination: dest,
		Amount:      amount,
	})
}
