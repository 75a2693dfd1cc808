package cash

import (
	"encoding/binary"

	"github.com/gogo/protobuf/proto"

	"github.com/unboxd/nftmkt/errors"
)

// Hand-maintained wire codec for the types in codec.proto.
// Field numbers are frozen, do not reuse them.

// Wallet holds the spendable funds of an address.
type Wallet struct {
	Balance uint64 `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

var _ proto.Message = (*Wallet)(nil)

func (m *Wallet) Reset()         { *m = Wallet{} }
func (m *Wallet) String() string { return proto.CompactTextString(m) }
func (*Wallet) ProtoMessage()    {}

func (m *Wallet) Marshal() ([]byte, error) {
	data := make([]byte, m.Size())
	n, err := m.MarshalTo(data)
	if err != nil {
		return nil, err
	}
	return data[:n], nil
}

func (m *Wallet) MarshalTo(data []byte) (int, error) {
	var i int
	if m.Balance != 0 {
		data[i] = 0x8
		i++
		i = encodeVarintCodec(data, i, m.Balance)
	}
	return i, nil
}

func (m *Wallet) Size() (n int) {
	if m.Balance != 0 {
		n += 1 + sovCodec(m.Balance)
	}
	return n
}

func (m *Wallet) Unmarshal(data []byte) error {
	*m = Wallet{}
	var i int
	for i < len(data) {
		tag, n, err := decodeVarintCodec(data[i:])
		if err != nil {
			return err
		}
		i += n
		fieldNum := int32(tag >> 3)
		wireType := int(tag & 0x7)
		switch {
		case fieldNum == 1 && wireType == 0:
			v, n, err := decodeVarintCodec(data[i:])
			if err != nil {
				return err
			}
			i += n
			m.Balance = v
		default:
			n, err := skipFieldCodec(data[i:], wireType)
			if err != nil {
				return err
			}
			i += n
		}
	}
	return nil
}

func init() {
	proto.RegisterType((*Wallet)(nil), "cash.Wallet")
}

func encodeVarintCodec(data []byte, offset int, v uint64) int {
	for v >= 1<<7 {
		data[offset] = uint8(v&0x7f | 0x80)
		v >>= 7
		offset++
	}
	data[offset] = uint8(v)
	return offset + 1
}

func sovCodec(x uint64) (n int) {
	for {
		n++
		x >>= 7
		if x == 0 {
			return n
		}
	}
}

func decodeVarintCodec(data []byte) (uint64, int, error) {
	v, n := binary.Uvarint(data)
	if n <= 0 {
		return 0, 0, errors.Wrap(errors.ErrInput, "malformed varint")
	}
	return v, n, nil
}

func skipFieldCodec(data []byte, wireType int) (int, error) {
	switch wireType {
	case 0:
		_, n, err := decodeVarintCodec(data)
		return n, err
	case 1:
		if len(data) < 8 {
			return 0, errors.Wrap(errors.ErrInput, "truncated field")
		}
		return 8, nil
	case 2:
		l, n, err := decodeVarintCodec(data)
		if err != nil {
			return 0, err
		}
		if uint64(len(data)-n) < l {
			return 0, errors.Wrap(errors.ErrInput, "truncated field")
		}
		return n + int(l), nil
	case 5:
		if len(data) < 4 {
			return 0, errors.Wrap(errors.ErrInput, "truncated field")
		}
		return 4, nil
	default:
		return 0, errors.Wrapf(errors.ErrInput, "unsupported wire type %d", wireType)
	}
}
