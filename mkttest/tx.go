package mkttest

import "github.com/unboxd/nftmkt"

// Tx represents a transaction carrying a single message to be processed.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg nftmkt.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ nftmkt.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (nftmkt.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg is a mock message.
type Msg struct {
	// Path returned by the path method, consumed by the router.
	RoutePath string
	// Err if set is returned by any method call.
	Err error
}

var _ nftmkt.Msg = (*Msg)(nil)

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
