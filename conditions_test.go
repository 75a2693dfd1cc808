package nftmkt_test

import (
	"encoding/json"
	"testing"

	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
	"github.com/unboxd/nftmkt/mkttest/assert"
)

func TestConditionAddress(t *testing.T) {
	cond := nftmkt.NewCondition("nftmkt", "escrow", []byte("proceeds"))
	assert.Nil(t, cond.Validate())

	addr := cond.Address()
	assert.Nil(t, addr.Validate())
	assert.Equal(t, nftmkt.AddressLength, len(addr))

	// the derivation is deterministic
	again := nftmkt.NewCondition("nftmkt", "escrow", []byte("proceeds")).Address()
	assert.Equal(t, true, addr.Equals(again))

	other := nftmkt.NewCondition("nftmkt", "escrow", []byte("other")).Address()
	assert.Equal(t, false, addr.Equals(other))
}

func TestConditionParse(t *testing.T) {
	cases := map[string]struct {
		cond    nftmkt.Condition
		wantErr *errors.Error
		wantExt string
		wantTyp string
	}{
		"valid condition": {
			cond:    nftmkt.NewCondition("foo", "bar", []byte("data")),
			wantExt: "foo",
			wantTyp: "bar",
		},
		"data may contain a slash": {
			cond:    nftmkt.NewCondition("foo", "bar", []byte("da/ta")),
			wantExt: "foo",
			wantTyp: "bar",
		},
		"missing section": {
			cond:    nftmkt.Condition("foo/data"),
			wantErr: errors.ErrInput,
		},
		"empty": {
			cond:    nftmkt.Condition(""),
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ext, typ, _, err := tc.cond.Parse()
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantExt, ext)
			assert.Equal(t, tc.wantTyp, typ)
		})
	}
}

func TestAddressJSON(t *testing.T) {
	cases := map[string]struct {
		json     string
		wantErr  *errors.Error
		wantAddr nftmkt.Address
	}{
		"hex decoding": {
			json:     `"0102030405060708090a0b0c0d0e0f1011121314"`,
			wantAddr: nftmkt.Address{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
		},
		"zero address": {
			json:     `""`,
			wantAddr: nil,
		},
		"not hex": {
			json:    `"zzzz"`,
			wantErr: errors.ErrInput,
		},
		"wrong length": {
			json:    `"0102"`,
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var a nftmkt.Address
			err := json.Unmarshal([]byte(tc.json), &a)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantAddr, a)

			raw, err := json.Marshal(a)
			assert.Nil(t, err)
			var back nftmkt.Address
			assert.Nil(t, json.Unmarshal(raw, &back))
			assert.Equal(t, a, back)
		})
	}
}
