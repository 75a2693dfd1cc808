package cash

import (
	"context"
	"testing"

	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
	"github.com/unboxd/nftmkt/mkttest"
	"github.com/unboxd/nftmkt/mkttest/assert"
	"github.com/unboxd/nftmkt/store"
	"github.com/unboxd/nftmkt/x"
)

func TestSendHandler(t *testing.T) {
	alice := mkttest.RandomAddress()
	bob := mkttest.RandomAddress()

	cases := map[string]struct {
		msg            *SendMsg
		signer         nftmkt.Address
		wantCheckErr   *errors.Error
		wantDeliverErr *errors.Error
		wantSrcLeft    uint64
	}{
		"happy path": {
			msg:         &SendMsg{Source: alice, Destination: bob, Amount: 40},
			signer:      alice,
			wantSrcLeft: 60,
		},
		"not signed by the source": {
			msg:            &SendMsg{Source: alice, Destination: bob, Amount: 40},
			signer:         bob,
			wantCheckErr:   errors.ErrUnauthorized,
			wantDeliverErr: errors.ErrUnauthorized,
		},
		"zero amount": {
			msg:            &SendMsg{Source: alice, Destination: bob, Amount: 0},
			signer:         alice,
			wantCheckErr:   errors.ErrAmount,
			wantDeliverErr: errors.ErrAmount,
		},
		"invalid source": {
			msg:            &SendMsg{Source: []byte{1, 2, 3}, Destination: bob, Amount: 40},
			signer:         alice,
			wantCheckErr:   errors.ErrInput,
			wantDeliverErr: errors.ErrInput,
		},
		"insufficient funds": {
			msg:            &SendMsg{Source: alice, Destination: bob, Amount: 101},
			signer:         alice,
			wantDeliverErr: errors.ErrInsufficientAmount,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			assert.Nil(t, ctrl.IssueCoins(db, alice, 100))

			auth := x.CtxAuth{Key: "auth"}
			ctx := auth.SetAddresses(context.Background(), tc.signer)
			h := SendHandler{auth: auth, ctrl: ctrl}
			tx := &mkttest.Tx{Msg: tc.msg}

			cache := db.CacheWrap()
			_, err := h.Check(ctx, cache, tx)
			if tc.wantCheckErr != nil {
				assert.IsErr(t, tc.wantCheckErr, err)
			} else {
				assert.Nil(t, err)
			}
			cache.Discard()

			_, err = h.Deliver(ctx, db, tx)
			if tc.wantDeliverErr != nil {
				assert.IsErr(t, tc.wantDeliverErr, err)
				return
			}
			assert.Nil(t, err)

			got, err := ctrl.Balance(db, alice)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantSrcLeft, got)
		})
	}
}

func TestInitializerFromGenesis(t *testing.T) {
	addr := mkttest.RandomAddress()
	opts := nftmkt.Options{
		"cash": []byte(`[{"address": "` + addr.String() + `", "balance": 250}]`),
	}

	db := store.MemStore()
	var ini Initializer
	assert.Nil(t, ini.FromGenesis(opts, db))

	got, err := NewController().Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(250), got)
}
