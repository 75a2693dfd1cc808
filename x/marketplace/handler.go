package marketplace

import (
	"math"

	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
	"github.com/unboxd/nftmkt/orm"
	"github.com/unboxd/nftmkt/x"
	"github.com/unboxd/nftmkt/x/cash"
	"github.com/unboxd/nftmkt/x/nft"
)

const (
	listItemCost     = 200
	buyItemCost      = 300
	cancelItemCost   = 100
	updateItemCost   = 100
	withdrawItemCost = 200
)

// RegisterRoutes will instantiate and register all handlers in this package.
func RegisterRoutes(r nftmkt.Registry, auth x.Authenticator, tokens nft.Ownership, coins cash.CoinMover) {
	listings := NewListingBucket()
	proceeds := NewProceedsBucket()

	r.Handle(&ListItemMsg{}, ListHandler{auth: auth, tokens: tokens, listings: listings})
	r.Handle(&BuyItemMsg{}, BuyHandler{auth: auth, tokens: tokens, coins: coins, listings: listings, proceeds: proceeds})
	r.Handle(&CancelItemMsg{}, CancelHandler{auth: auth, tokens: tokens, listings: listings})
	r.Handle(&UpdateItemMsg{}, UpdateHandler{auth: auth, tokens: tokens, listings: listings})
	r.Handle(&WithdrawProceedsMsg{}, WithdrawHandler{auth: auth, coins: coins, proceeds: proceeds})
}

// RegisterQuery will register listings as "/listings" and proceeds as
// "/proceeds".
func RegisterQuery(qr nftmkt.QueryRouter) {
	qr.Register("/listings", queryListing)
	qr.Register("/proceeds", queryProceeds)
}

func queryListing(db nftmkt.ReadOnlyKVStore, key []byte) ([]byte, error) {
	var l Listing
	switch err := NewListingBucket().One(db, key, &l); {
	case err == nil:
		return l.Marshal()
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

func queryProceeds(db nftmkt.ReadOnlyKVStore, key []byte) ([]byte, error) {
	var p Proceeds
	switch err := NewProceedsBucket().One(db, key, &p); {
	case err == nil:
		return p.Marshal()
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, err
	}
}

func mainSigner(ctx nftmkt.Context, auth x.Authenticator) (nftmkt.Address, error) {
	s := x.MainSigner(ctx, auth)
	if s == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "transaction has no signer")
	}
	return s, nil
}

// loadListing returns the active listing, or ErrNotListed when the
// token has no entry or the entry carries a zero price.
func loadListing(db nftmkt.ReadOnlyKVStore, listings orm.ModelBucket, collection nftmkt.Address, tokenID uint64) (*Listing, error) {
	var l Listing
	switch err := listings.One(db, nft.TokenKey(collection, tokenID), &l); {
	case err == nil:
		// fall through to the price check
	case errors.ErrNotFound.Is(err):
		return nil, errors.Wrapf(ErrNotListed, "token %d", tokenID)
	default:
		return nil, err
	}
	if !l.IsListed() {
		return nil, errors.Wrapf(ErrNotListed, "token %d", tokenID)
	}
	return &l, nil
}

// ListHandler puts a token on the market. The signer must own the
// token and must have approved the marketplace escrow to move it.
// Listing an already listed token silently replaces the old listing.
type ListHandler struct {
	auth     x.Authenticator
	tokens   nft.Ownership
	listings orm.ModelBucket
}

var _ nftmkt.Handler = ListHandler{}

func (h ListHandler) Check(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftmkt.CheckResult{GasAllocated: listItemCost}, nil
}

func (h ListHandler) Deliver(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.DeliverResult, error) {
	msg, seller, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	listing := Listing{Seller: seller, Price: msg.Price}
	if err := h.listings.Put(db, nft.TokenKey(msg.Collection, msg.TokenID), &listing); err != nil {
		return nil, err
	}

	return &nftmkt.DeliverResult{
		Events: []nftmkt.Event{
			itemListedEvent(seller, msg.Collection, msg.TokenID, msg.Price),
		},
	}, nil
}

func (h ListHandler) validate(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*ListItemMsg, nftmkt.Address, error) {
	var msg ListItemMsg
	if err := nftmkt.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	seller, err := mainSigner(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	owner, err := h.tokens.OwnerOf(db, msg.Collection, msg.TokenID)
	if err != nil {
		return nil, nil, err
	}
	if !owner.Equals(seller) {
		return nil, nil, errors.Wrapf(ErrNotOwner, "token %d", msg.TokenID)
	}
	ok, err := h.tokens.IsApproved(db, msg.Collection, msg.TokenID, EscrowAddress())
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return nil, nil, errors.Wrapf(ErrNotApproved, "token %d", msg.TokenID)
	}
	return &msg, seller, nil
}

// BuyHandler sells a listed token to the signer. The full payment goes
// into the escrow wallet and the seller is credited exactly the listed
// price; overpayment stays in the escrow. A sale only executes while
// the seller still owns the token and the escrow approval stands.
type BuyHandler struct {
	auth     x.Authenticator
	tokens   nft.Ownership
	coins    cash.CoinMover
	listings orm.ModelBucket
	proceeds orm.ModelBucket
}

var _ nftmkt.Handler = BuyHandler{}

func (h BuyHandler) Check(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftmkt.CheckResult{GasAllocated: buyItemCost}, nil
}

func (h BuyHandler) Deliver(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.DeliverResult, error) {
	msg, buyer, listing, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	key := nft.TokenKey(msg.Collection, msg.TokenID)

	// the listing is consumed before any transfer runs
	if err := h.listings.Delete(db, key); err != nil {
		return nil, err
	}

	var p Proceeds
	if err := h.proceeds.One(db, listing.Seller, &p); err != nil && !errors.ErrNotFound.Is(err) {
		return nil, err
	}
	if p.Balance > math.MaxUint64-listing.Price {
		return nil, errors.Wrap(errors.ErrOverflow, "proceeds balance")
	}
	p.Balance += listing.Price
	if err := h.proceeds.Put(db, listing.Seller, &p); err != nil {
		return nil, err
	}

	if err := h.coins.MoveCoins(db, buyer, EscrowAddress(), msg.Payment); err != nil {
		return nil, errors.Wrap(err, "cannot escrow the payment")
	}
	if err := h.tokens.Transfer(db, msg.Collection, msg.TokenID, listing.Seller, buyer); err != nil {
		return nil, errors.Wrap(err, "cannot transfer the token")
	}

	return &nftmkt.DeliverResult{
		Events: []nftmkt.Event{
			itemSoldEvent(buyer, msg.Collection, msg.TokenID, listing.Price),
		},
	}, nil
}

func (h BuyHandler) validate(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*BuyItemMsg, nftmkt.Address, *Listing, error) {
	var msg BuyItemMsg
	if err := nftmkt.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, err
	}
	buyer, err := mainSigner(ctx, h.auth)
	if err != nil {
		return nil, nil, nil, err
	}
	listing, err := loadListing(db, h.listings, msg.Collection, msg.TokenID)
	if err != nil {
		return nil, nil, nil, err
	}
	if msg.Payment < listing.Price {
		return nil, nil, nil, errors.Wrapf(ErrNotEnoughPrice, "payment %d, price %d", msg.Payment, listing.Price)
	}

	// a listing goes stale when the seller disposed of the token or
	// revoked the escrow approval after listing; a stale sale must not
	// touch the current owner
	owner, err := h.tokens.OwnerOf(db, msg.Collection, msg.TokenID)
	if err != nil {
		return nil, nil, nil, err
	}
	if !owner.Equals(listing.Seller) {
		return nil, nil, nil, errors.Wrapf(ErrNotListed, "stale listing for token %d", msg.TokenID)
	}
	ok, err := h.tokens.IsApproved(db, msg.Collection, msg.TokenID, EscrowAddress())
	if err != nil {
		return nil, nil, nil, err
	}
	if !ok {
		return nil, nil, nil, errors.Wrapf(ErrNotApproved, "token %d", msg.TokenID)
	}
	return &msg, buyer, listing, nil
}

// CancelHandler takes a listed token off the market on request of its
// owner.
type CancelHandler struct {
	auth     x.Authenticator
	tokens   nft.Ownership
	listings orm.ModelBucket
}

var _ nftmkt.Handler = CancelHandler{}

func (h CancelHandler) Check(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftmkt.CheckResult{GasAllocated: cancelItemCost}, nil
}

func (h CancelHandler) Deliver(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.DeliverResult, error) {
	msg, listing, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.listings.Delete(db, nft.TokenKey(msg.Collection, msg.TokenID)); err != nil {
		return nil, err
	}
	return &nftmkt.DeliverResult{
		Events: []nftmkt.Event{
			itemCanceledEvent(listing.Seller, msg.Collection, msg.TokenID),
		},
	}, nil
}

func (h CancelHandler) validate(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*CancelItemMsg, *Listing, error) {
	var msg CancelItemMsg
	if err := nftmkt.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	signer, err := mainSigner(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	// ownership is checked before the listing state
	owner, err := h.tokens.OwnerOf(db, msg.Collection, msg.TokenID)
	if err != nil {
		return nil, nil, err
	}
	if !owner.Equals(signer) {
		return nil, nil, errors.Wrapf(ErrNotOwner, "token %d", msg.TokenID)
	}
	listing, err := loadListing(db, h.listings, msg.Collection, msg.TokenID)
	if err != nil {
		return nil, nil, err
	}
	return &msg, listing, nil
}

// UpdateHandler changes the price of an existing listing. The seller
// is immutable, only the price changes. A new price of zero is stored
// as is and makes the token read as not listed.
type UpdateHandler struct {
	auth     x.Authenticator
	tokens   nft.Ownership
	listings orm.ModelBucket
}

var _ nftmkt.Handler = UpdateHandler{}

func (h UpdateHandler) Check(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftmkt.CheckResult{GasAllocated: updateItemCost}, nil
}

func (h UpdateHandler) Deliver(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.DeliverResult, error) {
	msg, listing, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	listing.Price = msg.NewPrice
	if err := h.listings.Put(db, nft.TokenKey(msg.Collection, msg.TokenID), listing); err != nil {
		return nil, err
	}
	return &nftmkt.DeliverResult{
		Events: []nftmkt.Event{
			itemListedEvent(listing.Seller, msg.Collection, msg.TokenID, msg.NewPrice),
		},
	}, nil
}

func (h UpdateHandler) validate(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*UpdateItemMsg, *Listing, error) {
	var msg UpdateItemMsg
	if err := nftmkt.LoadMsg(tx, &msg); err != nil {
		return nil, nil, err
	}
	signer, err := mainSigner(ctx, h.auth)
	if err != nil {
		return nil, nil, err
	}
	// the listing state is checked before ownership
	listing, err := loadListing(db, h.listings, msg.Collection, msg.TokenID)
	if err != nil {
		return nil, nil, err
	}
	owner, err := h.tokens.OwnerOf(db, msg.Collection, msg.TokenID)
	if err != nil {
		return nil, nil, err
	}
	if !owner.Equals(signer) {
		return nil, nil, errors.Wrapf(ErrNotOwner, "token %d", msg.TokenID)
	}
	return &msg, listing, nil
}

// WithdrawHandler pays the signer their full proceeds balance. The
// proceeds record is deleted before the funds move, a re-entering call
// finds an already empty balance.
type WithdrawHandler struct {
	auth     x.Authenticator
	coins    cash.CoinMover
	proceeds orm.ModelBucket
}

var _ nftmkt.Handler = WithdrawHandler{}

func (h WithdrawHandler) Check(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &nftmkt.CheckResult{GasAllocated: withdrawItemCost}, nil
}

func (h WithdrawHandler) Deliver(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (*nftmkt.DeliverResult, error) {
	actor, amount, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// zero the balance first, then pay out
	if err := h.proceeds.Delete(db, actor); err != nil {
		return nil, err
	}
	if err := h.coins.MoveCoins(db, EscrowAddress(), actor, amount); err != nil {
		return nil, errors.Wrap(err, "cannot pay out the proceeds")
	}

	return &nftmkt.DeliverResult{}, nil
}

func (h WithdrawHandler) validate(ctx nftmkt.Context, db nftmkt.KVStore, tx nftmkt.Tx) (nftmkt.Address, uint64, error) {
	var msg WithdrawProceedsMsg
	if err := nftmkt.LoadMsg(tx, &msg); err != nil {
		return nil, 0, err
	}
	actor, err := mainSigner(ctx, h.auth)
	if err != nil {
		return nil, 0, err
	}
	var p Proceeds
	switch err := h.proceeds.One(db, actor, &p); {
	case err == nil:
		// fall through to the balance check
	case errors.ErrNotFound.Is(err):
		return nil, 0, errors.Wrap(ErrNoProceeds, "nothing sold")
	default:
		return nil, 0, err
	}
	if p.Balance == 0 {
		return nil, 0, errors.Wrap(ErrNoProceeds, "already withdrawn")
	}
	return actor, p.Balance, nil
}
