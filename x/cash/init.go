package cash

import (
	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
)

// Initializer fulfils the Initializer interface to load initial wallet
// balances from genesis file.
type Initializer struct{}

var _ nftmkt.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial account info from genesis and save it
// to the database.
func (Initializer) FromGenesis(opts nftmkt.Options, db nftmkt.KVStore) error {
	accounts := []struct {
		Address nftmkt.Address `json:"address"`
		Balance uint64         `json:"balance"`
	}{}
	if err := opts.ReadOptions("cash", &accounts); err != nil {
		return errors.Wrap(err, "cannot parse cash genesis")
	}

	ctrl := NewController()
	for i, a := range accounts {
		if err := a.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account #%d address", i)
		}
		if err := ctrl.IssueCoins(db, a.Address, a.Balance); err != nil {
			return errors.Wrapf(err, "cannot fund account #%d", i)
		}
	}
	return nil
}
