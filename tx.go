package nftmkt

import (
	"reflect"

	"github.com/unboxd/nftmkt/errors"
)

// Msg is a command to be processed by a handler. Each extension defines its
// own message types; the path is used by the router to find the handler
// responsible for it.
type Msg interface {
	// Path returns the routing path for this message, in the form
	// "extension/operation".
	Path() string

	// Validate performs a sanity check on the message content that does
	// not require any state access.
	Validate() error
}

// Tx represents a command submitted to the engine. Signature verification is
// the responsibility of the submitting layer; by the time a Tx reaches a
// handler its authorization is expressed through the request context.
type Tx interface {
	// GetMsg returns the action we wish to perform
	GetMsg() (Msg, error)
}

// LoadMsg extracts the message from the transaction, validates it and loads
// it into the given destination. The destination must be a non-nil pointer of
// the same type as the transaction message.
func LoadMsg(tx Tx, destination Msg) error {
	msg, err := tx.GetMsg()
	if err != nil {
		return errors.Wrap(err, "cannot get message")
	}
	if err := msg.Validate(); err != nil {
		return errors.Wrap(err, "invalid message")
	}

	dest := reflect.ValueOf(destination)
	if dest.Kind() != reflect.Ptr || dest.IsNil() {
		return errors.Wrapf(errors.ErrType, "%T is not a valid message destination", destination)
	}
	if !reflect.TypeOf(msg).AssignableTo(dest.Type()) {
		return errors.Wrapf(errors.ErrType, "want %T, got %T", destination, msg)
	}
	dest.Elem().Set(reflect.ValueOf(msg).Elem())
	return nil
}
