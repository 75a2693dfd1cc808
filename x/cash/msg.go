package cash

import (
	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
)

const pathSendMsg = "cash/send"

// SendMsg moves funds from the source wallet to the destination wallet.
type SendMsg struct {
	Source      nftmkt.Address
	Destination nftmkt.Address
	Amount      uint64
}

var _ nftmkt.Msg = (*SendMsg)(nil)

// Path returns the routing path for this message.
func (SendMsg) Path() string {
	return pathSendMsg
}

// Validate makes sure that this is sensible.
func (m *SendMsg) Validate() error {
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrAmount, "transfer amount must be positive")
	}
	return nil
}
