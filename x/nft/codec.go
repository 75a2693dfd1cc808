package nft

import (
	"encoding/binary"

	"github.com/gogo/protobuf/proto"

	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
)

// Hand-maintained wire codec for the types in codec.proto.
// Field numbers are frozen, do not reuse them.

// Token is a single non fungible token within a collection.
type Token struct {
	// Owner is the address holding this token.
	Owner nftmkt.Address `protobuf:"bytes,1,opt,name=owner,proto3,casttype=github.com/unboxd/nftmkt.Address" json:"owner,omitempty"`
	// Approved is an address allowed to move this token on behalf of the
	// owner. Cleared on every transfer.
	Approved nftmkt.Address `protobuf:"bytes,2,opt,name=approved,proto3,casttype=github.com/unboxd/nftmkt.Address" json:"approved,omitempty"`
}

var _ proto.Message = (*Token)(nil)

func (m *Token) Reset()         { *m = Token{} }
func (m *Token) String() string { return proto.CompactTextString(m) }
func (*Token) ProtoMessage()    {}

func (m *Token) Marshal() ([]byte, error) {
	data := make([]byte, m.Size())
	n, err := m.MarshalTo(data)
	if err != nil {
		return nil, err
	}
	return data[:n], nil
}

func (m *Token) MarshalTo(data []byte) (int, error) {
	var i int
	if len(m.Owner) > 0 {
		data[i] = 0xa
		i++
		i = encodeVarintCodec(data, i, uint64(len(m.Owner)))
		i += copy(data[i:], m.Owner)
	}
	if len(m.Approved) > 0 {
		data[i] = 0x12
		i++
		i = encodeVarintCodec(data, i, uint64(len(m.Approved)))
		i += copy(data[i:], m.Approved)
	}
	return i, nil
}

func (m *Token) Size() (n int) {
	if l := len(m.Owner); l > 0 {
		n += 1 + sovCodec(uint64(l)) + l
	}
	if l := len(m.Approved); l > 0 {
		n += 1 + sovCodec(uint64(l)) + l
	}
	return n
}

func (m *Token) Unmarshal(data []byte) error {
	*m = Token{}
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
		case fieldNum == 1 && wireType == 2:
			raw, n, err := decodeBytesCodec(data[i:])
			if err != nil {
				return err
			}
			i += n
			m.Owner = raw
		case fieldNum == 2 && wireType == 2:
			raw, n, err := decodeBytesCodec(data[i:])
			if err != nil {
				return err
			}
			i += n
			m.Approved = raw
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
	proto.RegisterType((*Token)(nil), "nft.Token")
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

func decodeBytesCodec(data []byte) ([]byte, int, error) {
	l, n, err := decodeVarintCodec(data)
	if err != nil {
		return nil, 0, err
	}
	if uint64(len(data)-n) < l {
		return nil, 0, errors.Wrap(errors.ErrInput, "truncated field")
	}
	raw := make([]byte, l)
	copy(raw, data[n:n+int(l)])
	return raw, n + int(l), nil
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
		_, n, err := decodeBytesCodec(data)
		return n, err
	case 5:
		if len(data) < 4 {
			return 0, errors.Wrap(errors.ErrInput, "truncated field")
		}
		return 4, nil
	default:
		return 0, errors.Wrapf(errors.ErrInput, "unsupported wire type %d", wireType)
	}
}
