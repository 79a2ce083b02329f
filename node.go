package trie

import "reflect"

// boxed is implemented by *box[T] for every T.
type boxed interface {
	unbox() interface{}
	typeName() string
}

// box holds a value of a caller-chosen type. The concrete box type is the
// node's type tag: a lookup for T only hits a *box[T].
type box[T any] struct {
	v T
}

func (b *box[T]) unbox() interface{} {
	return b.v
}

func (b *box[T]) typeName() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// node is one position in a trie. A node with a nil value is a plain
// branching node; otherwise it is value-bearing and may still branch.
// Nodes are never modified after they become reachable from a Trie.
type node struct {
	value    boxed
	children map[byte]*node
	size     int
}

func newLeaf(value boxed) *node {
	return &node{
		value: value,
		size:  1,
	}
}

func (n *node) hasValue() bool {
	return n.value != nil
}

func (n *node) isEmpty() bool {
	return n.value == nil && len(n.children) == 0
}

func (n *node) child(label byte) (*node, bool) {
	c, ok := n.children[label]
	return c, ok
}

// clone makes a shallow copy: the value box and child pointers are
// shared, the children map is not.
func (n *node) clone() *node {
	newNode := node{
		value: n.value,
		size:  n.size,
	}
	if len(n.children) > 0 {
		newNode.children = make(map[byte]*node, len(n.children)+1)
		for label, c := range n.children {
			newNode.children[label] = c
		}
	}
	return &newNode
}

// setChild grafts c under label, or removes the edge if c is nil. Only
// called on a clone that hasn't been published yet.
func (n *node) setChild(label byte, c *node) {
	if old, ok := n.children[label]; ok {
		n.size -= old.size
		if c == nil {
			delete(n.children, label)
		}
	}
	if c == nil {
		return
	}
	if n.children == nil {
		n.children = make(map[byte]*node, 1)
	}
	n.children[label] = c
	n.size += c.size
}

// setValue replaces the value box (nil clears it). Only called on an
// unpublished clone.
func (n *node) setValue(value boxed) {
	if n.value != nil {
		n.size--
	}
	n.value = value
	if value != nil {
		n.size++
	}
}

func lookup[T any](n *node) (*T, bool) {
	b, ok := n.value.(*box[T])
	if !ok {
		return nil, false
	}
	return &b.v, true
}
