package marketplace

import "github.com/unboxd/nftmkt/errors"

var (
	// ErrZeroPrice is returned when an item is listed for nothing.
	ErrZeroPrice = errors.Register(1100, "price must be greater than zero")

	// ErrNotOwner is returned when anyone but the current token owner
	// tries to manage a listing.
	ErrNotOwner = errors.Register(1101, "not the token owner")

	// ErrNotApproved is returned when the marketplace was not granted
	// transfer authority over the token.
	ErrNotApproved = errors.Register(1102, "not approved for the marketplace")

	// ErrNotListed is returned when the token has no active listing.
	ErrNotListed = errors.Register(1103, "token is not listed")

	// ErrNotEnoughPrice is returned when the payment does not cover the
	// listed price.
	ErrNotEnoughPrice = errors.Register(1104, "payment below the listed price")

	// ErrNoProceeds is returned on withdrawal when there is nothing to
	// pay out.
	ErrNoProceeds = errors.Register(1105, "no proceeds to withdraw")
)
