package marketplace

import (
	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
)

const (
	pathListItemMsg         = "marketplace/list_item"
	pathBuyItemMsg          = "marketplace/buy_item"
	pathCancelItemMsg       = "marketplace/cancel_item"
	pathUpdateItemMsg       = "marketplace/update_item"
	pathWithdrawProceedsMsg = "marketplace/withdraw_proceeds"
)

// ListItemMsg offers a token for sale at the given price. The signer
// becomes the seller. Listing an already listed token replaces the old
// listing.
type ListItemMsg struct {
	Collection nftmkt.Address
	TokenID    uint64
	Price      uint64
}

var _ nftmkt.Msg = (*ListItemMsg)(nil)

func (ListItemMsg) Path() string {
	return pathListItemMsg
}

func (m *ListItemMsg) Validate() error {
	if err := m.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if m.Price == 0 {
		return errors.Wrap(ErrZeroPrice, "listing price")
	}
	return nil
}

// BuyItemMsg purchases a listed token. The attached payment must cover
// the listed price, anything above it is kept by the escrow.
type BuyItemMsg struct {
	Collection nftmkt.Address
	TokenID    uint64
	Payment    uint64
}

var _ nftmkt.Msg = (*BuyItemMsg)(nil)

func (BuyItemMsg) Path() string {
	return pathBuyItemMsg
}

func (m *BuyItemMsg) Validate() error {
	if err := m.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	return nil
}

// CancelItemMsg takes a listed token off the market.
type CancelItemMsg struct {
	Collection nftmkt.Address
	TokenID    uint64
}

var _ nftmkt.Msg = (*CancelItemMsg)(nil)

func (CancelItemMsg) Path() string {
	return pathCancelItemMsg
}

func (m *CancelItemMsg) Validate() error {
	if err := m.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	return nil
}

// UpdateItemMsg changes the price of an existing listing. The seller
// stays the same for the life of the listing. A new price of zero is
// allowed and makes the token read as not listed.
type UpdateItemMsg struct {
	Collection nftmkt.Address
	TokenID    uint64
	NewPrice   uint64
}

var _ nftmkt.Msg = (*UpdateItemMsg)(nil)

func (UpdateItemMsg) Path() string {
	return pathUpdateItemMsg
}

func (m *UpdateItemMsg) Validate() error {
	if err := m.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	return nil
}

// WithdrawProceedsMsg pays out the full proceeds balance of the signer.
type WithdrawProceedsMsg struct{}

var _ nftmkt.Msg = (*WithdrawProceedsMsg)(nil)

func (WithdrawProceedsMsg) Path() string {
	return pathWithdrawProceedsMsg
}

func (m *WithdrawProceedsMsg) Validate() error {
	return nil
}
