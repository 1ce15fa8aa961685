package repository

// Store is the processed-message cache used to suppress duplicate relay.
// Has followed by Put is a best-effort check-then-set, not a linearizable
// guarantee; the single-stream update handler makes that acceptable.
type Store interface {
	// Has reports whether the key was recorded within the TTL window.
	Has(key string) bool
	// Put records the key as processed now, refreshing it if present.
	Put(key string)
	// Sweep drops expired entries, then evicts oldest-inserted entries
	// until the size cap is respected.
	Sweep()
	// Len returns the current number of cached keys.
	Len() int
}
