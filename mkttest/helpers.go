package mkttest

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/unboxd/nftmkt"
)

// RandomAddress returns a random address. Each call generates a unique
// value.
func RandomAddress() nftmkt.Address {
	raw := make([]byte, nftmkt.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		panic(err)
	}
	return nftmkt.Address(raw)
}

// SequenceID returns an ID in the same format as sequence counters
// generate them.
func SequenceID(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}
