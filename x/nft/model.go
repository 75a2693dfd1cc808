// Package nft keeps a registry of non fungible tokens. Tokens are
// grouped into collections, each collection controlled by the address
// allowed to mint into it. Within a collection every token is known by
// a numeric ID.
package nft

import (
	"encoding/binary"

	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
	"github.com/unboxd/nftmkt/orm"
)

var _ orm.Model = (*Token)(nil)

// Validate ensures the token can be stored.
func (m *Token) Validate() error {
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if len(m.Approved) != 0 {
		if err := m.Approved.Validate(); err != nil {
			return errors.Wrap(err, "approved")
		}
	}
	return nil
}

// NewTokenBucket returns the bucket holding all tokens.
func NewTokenBucket() orm.ModelBucket {
	return orm.NewModelBucket("token")
}

// TokenKey builds the primary key of a token from its collection and
// ID. The big endian encoding keeps tokens of one collection together
// and ordered by ID.
func TokenKey(collection nftmkt.Address, tokenID uint64) []byte {
	key := make([]byte, len(collection)+8)
	n := copy(key, collection)
	binary.BigEndian.PutUint64(key[n:], tokenID)
	return key
}
