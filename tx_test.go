package nftmkt_test

import (
	"testing"

	"github.com/unboxd/nftmkt"
	"github.com/unboxd/nftmkt/errors"
	"github.com/unboxd/nftmkt/mkttest"
	"github.com/unboxd/nftmkt/mkttest/assert"
)

func TestLoadMsg(t *testing.T) {
	cases := map[string]struct {
		tx      nftmkt.Tx
		dest    nftmkt.Msg
		wantErr *errors.Error
	}{
		"valid message": {
			tx:   &mkttest.Tx{Msg: &mkttest.Msg{RoutePath: "test/good"}},
			dest: &mkttest.Msg{},
		},
		"broken transaction": {
			tx:      &mkttest.Tx{Err: errors.ErrState.New("no message")},
			dest:    &mkttest.Msg{},
			wantErr: errors.ErrState,
		},
		"invalid message": {
			tx:      &mkttest.Tx{Msg: &mkttest.Msg{RoutePath: "test/bad", Err: errors.ErrMsg.New("invalid")}},
			dest:    &mkttest.Msg{},
			wantErr: errors.ErrMsg,
		},
		"nil destination": {
			tx:      &mkttest.Tx{Msg: &mkttest.Msg{RoutePath: "test/good"}},
			dest:    (*mkttest.Msg)(nil),
			wantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := nftmkt.LoadMsg(tc.tx, tc.dest)
			if !tc.wantErr.Is(err) {
				t.Fatalf("got error: %+v", err)
			}
			if err == nil {
				assert.Equal(t, "test/good", tc.dest.Path())
			}
		})
	}
}
