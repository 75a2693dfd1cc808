package cash

import (
	"math"

	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
	"github.com/unboxd/nftmkt/orm"
)

// CoinMover is the interface other extensions use to move funds between
// wallets.
type CoinMover interface {
	// MoveCoins removes funds from the source wallet and adds them to the
	// destination wallet. The amount must be positive.
	MoveCoins(db nftmkt.KVStore, src, dest nftmkt.Address, amount uint64) error
}

// Controller is the full interface to the wallet functionality.
type Controller interface {
	CoinMover

	// Balance returns the funds held by the address. A missing wallet is
	// an empty wallet, not an error.
	Balance(db nftmkt.ReadOnlyKVStore, addr nftmkt.Address) (uint64, error)

	// IssueCoins creates new funds in the destination wallet.
	IssueCoins(db nftmkt.KVStore, dest nftmkt.Address, amount uint64) error
}

type controller struct {
	bucket orm.ModelBucket
}

var _ Controller = controller{}

// NewController returns a controller operating on the wallet bucket.
func NewController() Controller {
	return controller{bucket: NewWalletBucket()}
}

func (c controller) Balance(db nftmkt.ReadOnlyKVStore, addr nftmkt.Address) (uint64, error) {
	var w Wallet
	switch err := c.bucket.One(db, addr, &w); {
	case err == nil:
		return w.Balance, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, errors.Wrap(err, "cannot load wallet")
	}
}

func (c controller) IssueCoins(db nftmkt.KVStore, dest nftmkt.Address, amount uint64) error {
	var w Wallet
	if err := c.bucket.One(db, dest, &w); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "cannot load wallet")
	}
	if w.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "wallet balance")
	}
	w.Balance += amount
	return c.bucket.Put(db, dest, &w)
}

func (c controller) MoveCoins(db nftmkt.KVStore, src, dest nftmkt.Address, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrAmount, "transfer amount must be positive")
	}

	var sender Wallet
	if err := c.bucket.One(db, src, &sender); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "cannot load source wallet")
	}
	if sender.Balance < amount {
		return errors.Wrapf(errors.ErrInsufficientAmount,
			"wallet holds %d, need %d", sender.Balance, amount)
	}
	sender.Balance -= amount
	if err := c.bucket.Put(db, src, &sender); err != nil {
		return errors.Wrap(err, "cannot update source wallet")
	}

	// src may equal dest, so reload after the debit
	var receiver Wallet
	if err := c.bucket.One(db, dest, &receiver); err != nil && !errors.ErrNotFound.Is(err) {
		return errors.Wrap(err, "cannot load destination wallet")
	}
	if receiver.Balance > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "wallet balance")
	}
	receiver.Balance += amount
	return c.bucket.Put(db, dest, &receiver)
}
