package marketplace

import (
	"strconv"

	"github.com/unboxd/nftmkt"
)

// Event types emitted by the marketplace handlers. Each successful
// command emits exactly one event, update emits the same event type as
// list.
const (
	EventItemListed   = "item_listed"
	EventItemSold     = "item_sold"
	EventItemCanceled = "item_canceled"
)

func itemListedEvent(seller, collection nftmkt.Address, tokenID, price uint64) nftmkt.Event {
	return nftmkt.NewEvent(EventItemListed,
		"seller", seller.String(),
		"collection", collection.String(),
		"token_id", strconv.FormatUint(tokenID, 10),
		"price", strconv.FormatUint(price, 10),
	)
}

func itemSoldEvent(buyer, collection nftmkt.Address, tokenID, price uint64) nftmkt.Event {
	return nftmkt.NewEvent(EventItemSold,
		"buyer", buyer.String(),
		"collection", collection.String(),
		"token_id", strconv.FormatUint(tokenID, 10),
		"price", strconv.FormatUint(price, 10),
	)
}

func itemCanceledEvent(seller, collection nftmkt.Address, tokenID uint64) nftmkt.Event {
	return nftmkt.NewEvent(EventItemCanceled,
		"seller", seller.String(),
		"collection", collection.String(),
		"token_id", strconv.FormatUint(tokenID, 10),
	)
}
