//nolint
package store

import "github.com/iov-one/burnsplit"

// Move references for all storage types into this package
// for shorter names everywhere

type ReadOnlyKVStore = burnsplit.ReadOnlyKVStore
type SetDeleter = burnsplit.SetDeleter
type KVStore = burnsplit.KVStore
type Batch = burnsplit.Batch
type CacheableKVStore = burnsplit.CacheableKVStore
type KVCacheWrap = burnsplit.KVCacheWrap
type CommitKVStore = burnsplit.CommitKVStore
type CommitID = burnsplit.CommitID
