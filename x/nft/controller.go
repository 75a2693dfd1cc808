package nft

import (
	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
	"github.com/unboxd/nftmkt/orm"
)

// Ownership is the subset of token functionality other extensions need
// to validate and move tokens.
type Ownership interface {
	// OwnerOf returns the address holding the token. Returns ErrNotFound
	// if the token was never minted.
	OwnerOf(db nftmkt.ReadOnlyKVStore, collection nftmkt.Address, tokenID uint64) (nftmkt.Address, error)

	// IsApproved returns whether the operator is allowed to move the
	// token on behalf of its owner.
	IsApproved(db nftmkt.ReadOnlyKVStore, collection nftmkt.Address, tokenID uint64, operator nftmkt.Address) (bool, error)

	// Transfer hands the token over from its current owner to the
	// destination address and clears any standing approval. It fails
	// when from does not hold the token.
	Transfer(db nftmkt.KVStore, collection nftmkt.Address, tokenID uint64, from, dest nftmkt.Address) error
}

// Controller is the full interface to the token registry.
type Controller interface {
	Ownership

	// Issue mints a new token in the collection and returns its ID.
	Issue(db nftmkt.KVStore, collection, owner nftmkt.Address) (uint64, error)

	// Approve allows the operator to move the token. An empty operator
	// clears the approval.
	Approve(db nftmkt.KVStore, collection nftmkt.Address, tokenID uint64, operator nftmkt.Address) error
}

type controller struct {
	bucket orm.ModelBucket
}

var _ Controller = controller{}

// NewController returns a controller operating on the token bucket.
func NewController() Controller {
	return controller{bucket: NewTokenBucket()}
}

func (c controller) load(db nftmkt.ReadOnlyKVStore, collection nftmkt.Address, tokenID uint64) (*Token, error) {
	var t Token
	if err := c.bucket.One(db, TokenKey(collection, tokenID), &t); err != nil {
		return nil, errors.Wrapf(err, "token %d", tokenID)
	}
	return &t, nil
}

func (c controller) OwnerOf(db nftmkt.ReadOnlyKVStore, collection nftmkt.Address, tokenID uint64) (nftmkt.Address, error) {
	t, err := c.load(db, collection, tokenID)
	if err != nil {
		return nil, err
	}
	return t.Owner, nil
}

func (c controller) IsApproved(db nftmkt.ReadOnlyKVStore, collection nftmkt.Address, tokenID uint64, operator nftmkt.Address) (bool, error) {
	t, err := c.load(db, collection, tokenID)
	if err != nil {
		return false, err
	}
	return len(t.Approved) != 0 && t.Approved.Equals(operator), nil
}

func (c controller) Transfer(db nftmkt.KVStore, collection nftmkt.Address, tokenID uint64, from, dest nftmkt.Address) error {
	t, err := c.load(db, collection, tokenID)
	if err != nil {
		return err
	}
	if !t.Owner.Equals(from) {
		return errors.Wrapf(errors.ErrUnauthorized, "token %d is not held by the source", tokenID)
	}
	t.Owner = dest
	t.Approved = nil
	return c.bucket.Put(db, TokenKey(collection, tokenID), t)
}

func (c controller) Issue(db nftmkt.KVStore, collection, owner nftmkt.Address) (uint64, error) {
	seq := orm.NewSequence("nft", collection.String())
	id, err := seq.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "cannot acquire token ID")
	}
	t := Token{Owner: owner}
	if err := c.bucket.Put(db, TokenKey(collection, uint64(id)), &t); err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (c controller) Approve(db nftmkt.KVStore, collection nftmkt.Address, tokenID uint64, operator nftmkt.Address) error {
	t, err := c.load(db, collection, tokenID)
	if err != nil {
		return err
	}
	t.Approved = operator
	return c.bucket.Put(db, TokenKey(collection, tokenID), t)
}
