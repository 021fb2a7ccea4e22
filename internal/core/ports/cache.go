package ports

// Hasher computes the content hash used as a cache key.
type Hasher interface {
	// Hash returns a deterministic digest of css.
	Hash(css string) string
}

// MemoryCache is the in-process tier keyed by consumer identity and content hash.
type MemoryCache interface {
	// Get returns the cached output for the consumer and hash.
	Get(consumerID, hash string) (string, bool)
	// Put stores output for the consumer and hash, applying the overflow policy first.
	Put(consumerID, hash, css string)
}

// DiskCache is the directory-backed tier keyed by content hash.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type DiskCache interface {
	// Get returns the cached output stored under dir for hash.
	// A missing entry is reported as ok == false with a nil error.
	Get(dir, hash string) (css string, ok bool, err error)
	// Put stores output under dir, creating the directory if needed.
	Put(dir, hash, css string) error
}
