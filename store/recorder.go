package store

// Recorder interface is implemented by anything returned from
// NewRecordingStore
type Recorder interface {
	// Changes returns all write operations in the order they were
	// performed.
	Changes() []Op
}

// NewRecordingStore wraps given store and records all write operations
// performed on it, including those done through a batch. The wrapped
// store is still modified.
func NewRecordingStore(db KVStore) *RecordingStore {
	return &RecordingStore{KVStore: db}
}

// RecordingStore is a KVStore that keeps a log of all writes.
type RecordingStore struct {
	KVStore
	changes []Op
}

var _ KVStore = (*RecordingStore)(nil)
var _ Recorder = (*RecordingStore)(nil)

// Changes returns the recorded operations.
func (r *RecordingStore) Changes() []Op {
	return r.changes
}

// Set records the changes while performing
func (r *RecordingStore) Set(key, value []byte) error {
	if err := r.KVStore.Set(key, value); err != nil {
		return err
	}
	r.changes = append(r.changes, SetOp(key, value))
	return nil
}

// Delete records the changes while performing
func (r *RecordingStore) Delete(key []byte) error {
	if err := r.KVStore.Delete(key); err != nil {
		return err
	}
	r.changes = append(r.changes, DelOp(key))
	return nil
}

// NewBatch makes sure all writes go through this one
func (r *RecordingStore) NewBatch() Batch {
	return NewNonAtomicBatch(r)
}
