// Package cash tracks the spendable funds of every address in simple
// wallets. Other extensions move funds through the Controller rather
// than touching the wallets directly.
package cash

import (
	"github.com/unboxd/nftmkt/orm"
)

var _ orm.Model = (*Wallet)(nil)

// Validate ensures the wallet can be stored.
func (m *Wallet) Validate() error {
	return nil
}

// NewWalletBucket returns the bucket holding all wallets, keyed by
// address.
func NewWalletBucket() orm.ModelBucket {
	return orm.NewModelBucket("wallet")
}
