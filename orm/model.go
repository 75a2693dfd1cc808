// Package orm provides an easy to use db wrapper
//
// Break state space into prefixed sections called buckets,
// and keep all data in a bucket as serialized models with
// validation hooks.
package orm

import (
	"github.com/unboxd/nftmkt"
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	nftmkt.Persistent
	Validate() error
}
