/*
Package trie provides an immutable, versioned map keyed by byte
strings, implemented as a persistent (copy-on-write) trie.

Every Put or Remove returns a new version of the trie, and leaves the
version it was called on exactly as it was. Only the nodes on the path
to the changed key are copied; every other node is shared between the
old and new versions, so versions are cheap to create and to keep
around. A node is reclaimed once no live version reaches it.

Uses

- Snapshots of configuration or routing tables that readers can hold
onto while writers publish newer versions

- Efficient copy-on-write alternative to Go builtin map for small
string keys

Values

Each key holds one value of any type. The type is part of the entry:
Get[uint32] of a key that was Put with a string misses, the same way a
missing key does. Values are stored by reference and are never copied
by the trie, so they should not be modified after being Put.

	t := trie.Put(trie.Trie{}, "a", uint32(1))
	t2 := trie.Put(t, "ab", uint32(2))
	v := trie.Get[uint32](t2, "ab") // *v == 2
	t3 := trie.Remove(t2, "ab")     // t2 still holds "ab"

Concurrency

Versions are never modified once returned, so any number of goroutines
may read the same version, or derive new versions from it, without
locking. Two versions derived from the same base are independent;
choosing which one becomes "current" (e.g. with a compare-and-swap on
an atomic.Pointer) is up to the caller.

Lookup policy

By default a lookup walks through intermediate nodes that hold no
value, like an ordinary prefix tree. Options.StrictValuePath instead
only continues through nodes that hold a value, so a key is reachable
only while every one of its proper, non-empty prefixes holds a value
too.
*/
package trie
