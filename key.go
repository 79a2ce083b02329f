package trie

// A Key is a sequence of edge labels, one per byte.
type Key interface {
	~string | ~[]byte
}
