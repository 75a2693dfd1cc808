package app

import (
	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
)

// Tx wraps a single message for processing. Authorization is carried
// in the request context, set up by the submitting layer.
type Tx struct {
	msg nftmkt.Msg
}

var _ nftmkt.Tx = (*Tx)(nil)

// NewTx wraps the message into a transaction.
func NewTx(msg nftmkt.Msg) *Tx {
	return &Tx{msg: msg}
}

// GetMsg returns the wrapped message.
func (tx *Tx) GetMsg() (nftmkt.Msg, error) {
	if tx.msg == nil {
		return nil, errors.Wrap(errors.ErrEmpty, "transaction without a message")
	}
	return tx.msg, nil
}
