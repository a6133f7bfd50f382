// Package cache provides result caching for layout computations.
//
// Iterative layouts over large graphs can take a while; since every built-in
// algorithm is deterministic for a given input, algorithm, and parameter set,
// the computed result can be reused verbatim. The CLI stores results in a
// file cache keyed by a hash of those three inputs.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache stores computed layout results keyed by request hash.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live. A zero ttl means
	// the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Key builds a cache key from the layout request: the graph text, the
// algorithm name, and its parameters. Equal requests hash equally, so the
// key is stable across processes.
func Key(graphText, algorithm string, params any) string {
	data, _ := json.Marshal(struct {
		Graph     string `json:"graph"`
		Algorithm string `json:"algorithm"`
		Params    any    `json:"params"`
	}{graphText, algorithm, params})
	return Hash(data)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
