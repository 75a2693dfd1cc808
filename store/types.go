package store

import "github.com/unboxd/nftmkt"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = nftmkt.ReadOnlyKVStore
type KVStore = nftmkt.KVStore
type SetDeleter = nftmkt.SetDeleter
type Batch = nftmkt.Batch
type Iterator = nftmkt.Iterator
type CacheableKVStore = nftmkt.CacheableKVStore
type KVCacheWrap = nftmkt.KVCacheWrap
