// Package cache stores fetched patent pages so repeated batch runs do not
// refetch documents that are already on disk.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is the page-cache contract shared by the memory, disk and layered
// implementations.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for a patent page URL.
func Key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return "patentgrab:v1:" + hex.EncodeToString(hash[:])
}
