package nft

import (
	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
)

const (
	pathIssueTokenMsg    = "nft/issue_token"
	pathApproveTokenMsg  = "nft/approve_token"
	pathTransferTokenMsg = "nft/transfer_token"
)

// IssueTokenMsg mints a new token in the collection, owned by the given
// address. Only the collection address itself may mint.
type IssueTokenMsg struct {
	Collection nftmkt.Address
	Owner      nftmkt.Address
}

var _ nftmkt.Msg = (*IssueTokenMsg)(nil)

func (IssueTokenMsg) Path() string {
	return pathIssueTokenMsg
}

func (m *IssueTokenMsg) Validate() error {
	if err := m.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

// ApproveTokenMsg allows the operator to move the token on behalf of
// its owner. An empty operator clears a standing approval.
type ApproveTokenMsg struct {
	Collection nftmkt.Address
	TokenID    uint64
	Operator   nftmkt.Address
}

var _ nftmkt.Msg = (*ApproveTokenMsg)(nil)

func (ApproveTokenMsg) Path() string {
	return pathApproveTokenMsg
}

func (m *ApproveTokenMsg) Validate() error {
	if err := m.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if len(m.Operator) != 0 {
		if err := m.Operator.Validate(); err != nil {
			return errors.Wrap(err, "operator")
		}
	}
	return nil
}

// TransferTokenMsg hands the token over to the destination address.
type TransferTokenMsg struct {
	Collection  nftmkt.Address
	TokenID     uint64
	Destination nftmkt.Address
}

var _ nftmkt.Msg = (*TransferTokenMsg)(nil)

func (TransferTokenMsg) Path() string {
	return pathTransferTokenMsg
}

func (m *TransferTokenMsg) Validate() error {
	if err := m.Collection.Validate(); err != nil {
		return errors.Wrap(err, "collection")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	return nil
}
