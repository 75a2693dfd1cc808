package client

import (
	"testing"

	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/mkttest"
	"github.com/unboxd/nftmkt/mkttest/assert"
	"github.com/unboxd/nftmkt/x/marketplace"
)

type market struct {
	c          *Client
	collection nftmkt.Address
	seller     nftmkt.Address
	buyer      nftmkt.Address
	tokenID    uint64
}

// newMarket returns a running application with one minted token,
// approved for the escrow, and a buyer holding 1000 in funds.
func newMarket(t *testing.T) *market {
	t.Helper()

	m := market{
		c:          NewLocal(nil),
		collection: mkttest.RandomAddress(),
		seller:     mkttest.RandomAddress(),
		buyer:      mkttest.RandomAddress(),
	}

	opts := nftmkt.Options{
		"cash": []byte(`[{"address": "` + m.buyer.String() + `", "balance": 1000}]`),
	}
	assert.Nil(t, m.c.InitGenesis(opts))

	id, err := m.c.IssueToken(m.collection, m.collection, m.seller)
	assert.Nil(t, err)
	m.tokenID = id
	assert.Nil(t, m.c.ApproveMarketplace(m.seller, m.collection, id))

	return &m
}

func TestSellAndWithdrawScenario(t *testing.T) {
	m := newMarket(t)
	const price = 100

	var events []nftmkt.Event
	m.c.Subscribe(func(ev nftmkt.Event) { events = append(events, ev) })

	assert.Nil(t, m.c.ListItem(m.seller, m.collection, m.tokenID, price))

	l, err := m.c.GetListing(m.collection, m.tokenID)
	assert.Nil(t, err)
	assert.Equal(t, m.seller, l.Seller)
	assert.Equal(t, uint64(price), l.Price)

	assert.Nil(t, m.c.BuyItem(m.buyer, m.collection, m.tokenID, price))

	// the listing is consumed
	l, err = m.c.GetListing(m.collection, m.tokenID)
	assert.Nil(t, err)
	assert.Equal(t, false, l.IsListed())

	// the token moved to the buyer
	tok, err := m.c.GetToken(m.collection, m.tokenID)
	assert.Nil(t, err)
	assert.Equal(t, m.buyer, tok.Owner)

	// the seller is owed the price and withdraws it
	got, err := m.c.GetProceeds(m.seller)
	assert.Nil(t, err)
	assert.Equal(t, uint64(price), got)

	assert.Nil(t, m.c.WithdrawProceeds(m.seller))

	got, err = m.c.GetProceeds(m.seller)
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), got)

	balance, err := m.c.GetBalance(m.seller)
	assert.Nil(t, err)
	assert.Equal(t, uint64(price), balance)

	// a second withdrawal finds nothing
	assert.IsErr(t, marketplace.ErrNoProceeds, m.c.WithdrawProceeds(m.seller))

	// one event per committed command
	assert.Equal(t, 2, len(events))
	assert.Equal(t, marketplace.EventItemListed, events[0].Type)
	assert.Equal(t, marketplace.EventItemSold, events[1].Type)
}

func TestUpdatePriceScenario(t *testing.T) {
	m := newMarket(t)

	assert.Nil(t, m.c.ListItem(m.seller, m.collection, m.tokenID, 100))
	assert.Nil(t, m.c.UpdateItem(m.seller, m.collection, m.tokenID, 250))

	l, err := m.c.GetListing(m.collection, m.tokenID)
	assert.Nil(t, err)
	assert.Equal(t, uint64(250), l.Price)

	// buying at the old price is rejected
	assert.IsErr(t, marketplace.ErrNotEnoughPrice, m.c.BuyItem(m.buyer, m.collection, m.tokenID, 100))
	assert.Nil(t, m.c.BuyItem(m.buyer, m.collection, m.tokenID, 250))
}

func TestCancelScenario(t *testing.T) {
	m := newMarket(t)

	assert.Nil(t, m.c.ListItem(m.seller, m.collection, m.tokenID, 100))
	assert.Nil(t, m.c.CancelItem(m.seller, m.collection, m.tokenID))

	l, err := m.c.GetListing(m.collection, m.tokenID)
	assert.Nil(t, err)
	assert.Equal(t, false, l.IsListed())

	assert.IsErr(t, marketplace.ErrNotListed, m.c.BuyItem(m.buyer, m.collection, m.tokenID, 100))
}

func TestFailedBuyLeavesNoTrace(t *testing.T) {
	m := newMarket(t)

	assert.Nil(t, m.c.ListItem(m.seller, m.collection, m.tokenID, 2000))

	// the buyer cannot afford the token
	err := m.c.BuyItem(m.buyer, m.collection, m.tokenID, 2000)
	if err == nil {
		t.Fatal("buy must fail")
	}

	// everything is exactly as before the attempt
	l, lerr := m.c.GetListing(m.collection, m.tokenID)
	assert.Nil(t, lerr)
	assert.Equal(t, uint64(2000), l.Price)

	tok, terr := m.c.GetToken(m.collection, m.tokenID)
	assert.Nil(t, terr)
	assert.Equal(t, m.seller, tok.Owner)

	balance, berr := m.c.GetBalance(m.buyer)
	assert.Nil(t, berr)
	assert.Equal(t, uint64(1000), balance)

	proceeds, perr := m.c.GetProceeds(m.seller)
	assert.Nil(t, perr)
	assert.Equal(t, uint64(0), proceeds)
}

func TestResaleByNewOwner(t *testing.T) {
	m := newMarket(t)

	assert.Nil(t, m.c.ListItem(m.seller, m.collection, m.tokenID, 100))
	assert.Nil(t, m.c.BuyItem(m.buyer, m.collection, m.tokenID, 100))

	// the old owner cannot relist what they sold
	assert.IsErr(t, marketplace.ErrNotOwner, m.c.ListItem(m.seller, m.collection, m.tokenID, 100))

	// the new owner approves and lists again
	assert.Nil(t, m.c.ApproveMarketplace(m.buyer, m.collection, m.tokenID))
	assert.Nil(t, m.c.ListItem(m.buyer, m.collection, m.tokenID, 500))

	l, err := m.c.GetListing(m.collection, m.tokenID)
	assert.Nil(t, err)
	assert.Equal(t, m.buyer, l.Seller)
	assert.Equal(t, uint64(500), l.Price)
}
