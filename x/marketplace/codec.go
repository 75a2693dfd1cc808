package marketplace

import (
	"encoding/binary"

	"github.com/gogo/protobuf/proto"

	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
)

// Hand-maintained wire codec for the types in codec.proto.
// Field numbers are frozen, do not reuse them.

// Listing is an active sale offer for a single token.
type Listing struct {
	// Seller is the address that listed the token and receives the
	// proceeds of a sale.
	Seller nftmkt.Address `protobuf:"bytes,1,opt,name=seller,proto3,casttype=github.com/unboxd/nftmkt.Address" json:"seller,omitempty"`
	// Price in the smallest currency unit. A price of zero means the
	// token is not for sale.
	Price uint64 `protobuf:"varint,2,opt,name=price,proto3" json:"price,omitempty"`
}

var _ proto.Message = (*Listing)(nil)

func (m *Listing) Reset()         { *m = Listing{} }
func (m *Listing) String() string { return proto.CompactTextString(m) }
func (*Listing) ProtoMessage()    {}

func (m *Listing) Marshal() ([]byte, error) {
	data := make([]byte, m.Size())
	n, err := m.MarshalTo(data)
	if err != nil {
		return nil, err
	}
	return data[:n], nil
}

func (m *Listing) MarshalTo(data []byte) (int, error) {
	var i int
	if len(m.Seller) > 0 {
		data[i] = 0xa
		i++
		i = encodeVarintCodec(data, i, uint64(len(m.Seller)))
		i += copy(data[i:], m.Seller)
	}
	if m.Price != 0 {
		data[i] = 0x10
		i++
		i = encodeVarintCodec(data, i, m.Price)
	}
	return i, nil
}

func (m *Listing) Size() (n int) {
	if l := len(m.Seller); l > 0 {
		n += 1 + sovCodec(uint64(l)) + l
	}
	if m.Price != 0 {
		n += 1 + sovCodec(m.Price)
	}
	return n
}

func (m *Listing) Unmarshal(data []byte) error {
	*m = Listing{}
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
			m.Seller = raw
		case fieldNum == 2 && wireType == 0:
			v, n, err := decodeVarintCodec(data[i:])
			if err != nil {
				return err
			}
			i += n
			m.Price = v
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

// Proceeds is the withdrawable balance a seller earned from sales.
type Proceeds struct {
	Balance uint64 `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
}

var _ proto.Message = (*Proceeds)(nil)

func (m *Proceeds) Reset()         { *m = Proceeds{} }
func (m *Proceeds) String() string { return proto.CompactTextString(m) }
func (*Proceeds) ProtoMessage()    {}

func (m *Proceeds) Marshal() ([]byte, error) {
	data := make([]byte, m.Size())
	n, err := m.MarshalTo(data)
	if err != nil {
		return nil, err
	}
	return data[:n], nil
}

func (m *Proceeds) MarshalTo(data []byte) (int, error) {
	var i int
	if m.Balance != 0 {
		data[i] = 0x8
		i++
		i = encodeVarintCodec(data, i, m.Balance)
	}
	return i, nil
}

func (m *Proceeds) Size() (n int) {
	if m.Balance != 0 {
		n += 1 + sovCodec(m.Balance)
	}
	return n
}

func (m *Proceeds) Unmarshal(data []byte) error {
	*m = Proceeds{}
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
	proto.RegisterType((*Listing)(nil), "marketplace.Listing")
	proto.RegisterType((*Proceeds)(nil), "marketplace.Proceeds")
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
