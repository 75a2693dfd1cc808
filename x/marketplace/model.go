// Package marketplace implements an escrow style marketplace for
// tokens. Sellers list their tokens at a price, buyers pay into the
// marketplace escrow, and sellers withdraw accumulated proceeds.
//
// Funds and tokens only ever move inside a single command, after all
// preconditions passed. Proceeds are zeroed before the payout transfer
// runs, so a re-entering call can never withdraw twice.
package marketplace

import (
	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
	"github.com/unboxd/nftmkt/orm"
)

var _ orm.Model = (*Listing)(nil)

// Validate ensures the listing can be stored. A zero price is valid in
// storage, it reads back as "not listed".
func (m *Listing) Validate() error {
	if err := m.Seller.Validate(); err != nil {
		return errors.Wrap(err, "seller")
	}
	return nil
}

// IsListed returns whether this listing offers the token for sale.
// An absent listing and a zero price listing are the same state.
func (m *Listing) IsListed() bool {
	return m.Price > 0
}

var _ orm.Model = (*Proceeds)(nil)

// Validate ensures the proceeds record can be stored.
func (m *Proceeds) Validate() error {
	return nil
}

// NewListingBucket returns the bucket holding all listings, keyed by
// nft.TokenKey.
func NewListingBucket() orm.ModelBucket {
	return orm.NewModelBucket("listing")
}

// NewProceedsBucket returns the bucket holding seller proceeds, keyed
// by seller address.
func NewProceedsBucket() orm.ModelBucket {
	return orm.NewModelBucket("proceeds")
}

// EscrowAddress is the wallet that buyer payments are held in until
// the seller withdraws them. Nobody signs for this address, only the
// marketplace handlers move funds out of it.
func EscrowAddress() nftmkt.Address {
	return nftmkt.NewCondition("nftmkt", "escrow", []byte("proceeds")).Address()
}
