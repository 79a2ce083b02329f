package trie

import (
	"encoding/base64"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/minio/blake2b-simd"
)

// DigestCache caches the digests of immutable nodes. Digests depend on
// the Marshal function, so care should be taken to use a separate cache
// for tries that marshal values differently.
type DigestCache interface {
	// Add records the digest of a node.
	Add(key, value interface{})
	// Get retrieves the digest of a node, if cached.
	Get(key interface{}) (value interface{}, ok bool)
}

// NewDigestCache creates a new ARC-based digest cache of the given size.
// One cache can be shared by any number of tries.
func NewDigestCache(size int) DigestCache {
	cache, err := lru.NewARC(size)
	if err != nil {
		panic(err)
	}
	return cache
}

// Digest returns a content hash of the trie. Versions holding the same
// values under the same keys have the same digest, regardless of the
// order of the operations that produced them, unless StrictValuePath
// is set.
func (t Trie) Digest() (string, error) {
	root := t.root
	if root == nil {
		root = &node{}
	}
	hash, err := t.nodeDigest(root, "")
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(hash), nil
}

func (t Trie) nodeDigest(n *node, prefix string) ([]byte, error) {
	cache := t.options().DigestCache
	if cache != nil {
		if digest, ok := cache.Get(n); ok {
			return digest.([]byte), nil
		}
	}
	encoded, err := encodeNode(n, prefix, t.options().Marshal, func(label byte, child *node) ([]byte, error) {
		return t.nodeDigest(child, prefix+string([]byte{label}))
	})
	if err != nil {
		return nil, err
	}
	sum := blake2b.Sum256(encoded)
	if cache != nil {
		cache.Add(n, sum[:])
	}
	return sum[:], nil
}
