/*
Package nftmkt is the core of an escrow-style marketplace ledger for unique,
transferable assets.

It contains the basic types and interfaces shared by every extension: addresses
and conditions, the key-value store abstractions, transactions and messages,
and the Check/Deliver handler contract. Commands are applied one at a time in a
total order and each command is all-or-nothing: the dispatcher in the app
package runs every command against a cache-wrapped store that is written on
success and discarded on failure.

Extensions live under x/ and follow the same layout: a model with a protobuf
codec, messages with their own validation, and handlers that sequence
validation, state mutation and external transfers.
*/
package nftmkt
