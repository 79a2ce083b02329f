package trie

import (
	"github.com/hashicorp/go-hclog"
)

// Options sets parameters for a trie and every version derived from it.
type Options struct {
	// StrictValuePath restricts walks to children that bear a value: a
	// lookup can't pass through a plain branching node, even if a value
	// is stored further down. Put replaces such a node with a fresh path,
	// and Remove treats keys behind one as absent. The default walks
	// through branching nodes like an ordinary prefix tree.
	StrictValuePath bool

	// Logger receives trace output for mutations. Defaults to a null logger.
	Logger hclog.Logger

	// Marshal serializes values for Digest. Defaults to JSON, or
	// deterministic protobuf encoding for proto.Message values.
	Marshal func(interface{}) ([]byte, error)

	// DigestCache caches node digests and may be shared across multiple
	// tries that use the same Marshal.
	DigestCache DigestCache
}

var defaultOptions = newOptions(nil)

func newOptions(in *Options) *Options {
	var o Options
	if in != nil {
		o = *in
	}
	if o.Logger == nil {
		o.Logger = hclog.NewNullLogger()
	}
	if o.Marshal == nil {
		o.Marshal = defaultMarshal
	}
	return &o
}

// Trie is one immutable version of a persistent trie. Put and Remove
// return new versions that share all unchanged nodes with the receiver,
// which is never modified. The zero value is an empty trie with default
// options. A Trie is safe for concurrent use by multiple goroutines.
type Trie struct {
	root *node
	opts *Options
}

// New returns an empty trie with the given options. nil means defaults.
func New(opts *Options) Trie {
	return Trie{opts: newOptions(opts)}
}

func (t Trie) options() *Options {
	if t.opts == nil {
		return defaultOptions
	}
	return t.opts
}

func (t Trie) logger() hclog.Logger {
	return t.options().Logger
}

// Get returns the value stored under key, or nil if there isn't one or
// it was stored with a type other than T. The returned value is shared
// with every version containing it and must not be modified.
func Get[T any, K Key](t Trie, key K) *T {
	if t.root == nil {
		return nil
	}
	path, consumed := t.findPath(string(key))
	if consumed != len(key) {
		return nil
	}
	v, _ := lookup[T](path[len(path)-1].node)
	return v
}

// Put returns a new version with value stored under key, replacing any
// previous value of any type.
func Put[T any, K Key](t Trie, key K, value T) Trie {
	return t.insert(string(key), &box[T]{v: value})
}

// Remove returns a new version without the value for key. If there is
// no such value, t itself is returned.
func Remove[K Key](t Trie, key K) Trie {
	return t.remove(string(key))
}

// Size returns the number of values stored in the trie. Under
// StrictValuePath this includes values that lookups can't reach.
func (t Trie) Size() int {
	if t.root == nil {
		return 0
	}
	return t.root.size
}

// IsEmpty signifies the trie has no nodes.
func (t Trie) IsEmpty() bool {
	return t.root == nil
}
