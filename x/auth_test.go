package x

import (
	"context"
	"testing"

	"github.com/unboxd/nftmkt"
)

func TestCtxAuth(t *testing.T) {
	a := nftmkt.NewAddress([]byte("annie"))
	b := nftmkt.NewAddress([]byte("bert"))
	c := nftmkt.NewAddress([]byte("carl"))

	auth := CtxAuth{Key: "auth"}
	ctx := auth.SetAddresses(context.Background(), a, b)

	if got := auth.GetAddresses(ctx); len(got) != 2 {
		t.Fatalf("want 2 addresses, got %d", len(got))
	}
	if !auth.HasAddress(ctx, a) || !auth.HasAddress(ctx, b) {
		t.Fatal("stored addresses must authenticate")
	}
	if auth.HasAddress(ctx, c) {
		t.Fatal("unknown address must not authenticate")
	}

	if got := MainSigner(ctx, auth); !got.Equals(a) {
		t.Fatalf("main signer must be the first address, got %s", got)
	}

	// an empty context carries no auth
	empty := context.Background()
	if auth.GetAddresses(empty) != nil {
		t.Fatal("empty context must have no addresses")
	}
	if MainSigner(empty, auth) != nil {
		t.Fatal("empty context must have no main signer")
	}
}

func TestChainAuth(t *testing.T) {
	a := nftmkt.NewAddress([]byte("annie"))
	b := nftmkt.NewAddress([]byte("bert"))

	first := CtxAuth{Key: "first"}
	second := CtxAuth{Key: "second"}
	chained := ChainAuth(first, second)

	ctx := first.SetAddresses(context.Background(), a)
	ctx = second.SetAddresses(ctx, b)

	if !chained.HasAddress(ctx, a) || !chained.HasAddress(ctx, b) {
		t.Fatal("chained auth must accept either source")
	}
	if got := chained.GetAddresses(ctx); len(got) != 2 {
		t.Fatalf("want 2 addresses, got %d", len(got))
	}
	if !HasAllAddresses(ctx, chained, []nftmkt.Address{a, b}) {
		t.Fatal("all addresses are present")
	}
	if HasAllAddresses(ctx, chained, []nftmkt.Address{a, nftmkt.NewAddress([]byte("carl"))}) {
		t.Fatal("missing address must fail the check")
	}
}
