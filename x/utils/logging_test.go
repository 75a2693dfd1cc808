package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/unboxd/nftmkt/errors"
	"github.com/unboxd/nftmkt/mkttest"
	"github.com/unboxd/nftmkt/store"
)

func TestLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewLogging(zap.New(core))

	ctx := context.Background()
	db := store.MemStore()
	tx := &mkttest.Tx{Msg: &mkttest.Msg{RoutePath: "test/any"}}

	ok := &mkttest.Handler{}
	_, err := l.Check(ctx, db, tx, ok)
	assert.NoError(t, err)
	_, err = l.Deliver(ctx, db, tx, ok)
	assert.NoError(t, err)

	failing := &mkttest.Handler{
		CheckErr:   errors.ErrState.New("broken"),
		DeliverErr: errors.ErrState.New("broken"),
	}
	_, err = l.Check(ctx, db, tx, failing)
	assert.Error(t, err)
	_, err = l.Deliver(ctx, db, tx, failing)
	assert.Error(t, err)

	entries := logs.All()
	assert.Len(t, entries, 4)
	assert.Equal(t, zap.DebugLevel, entries[0].Level)
	assert.Equal(t, zap.InfoLevel, entries[1].Level)
	assert.Equal(t, zap.WarnLevel, entries[2].Level)
	assert.Equal(t, zap.ErrorLevel, entries[3].Level)

	// every entry carries the message path
	for _, e := range entries {
		assert.Equal(t, "test/any", e.ContextMap()["path"])
	}
}
