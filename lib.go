package trie

import (
	"fmt"
	"sort"
	"strings"
)

type pathEntry struct {
	node  *node
	label byte
}

// findPath walks key from the root and returns every node passed through,
// root first, along with the number of key bytes consumed. The walk stops
// at the first missing edge, or under the strict policy at the first
// child that doesn't bear a value.
func (t Trie) findPath(key string) ([]pathEntry, int) {
	root := t.root
	if root == nil {
		root = &node{}
	}
	path := make([]pathEntry, 1, len(key)+1)
	path[0] = pathEntry{node: root}
	cur := root
	for i := 0; i < len(key); i++ {
		child, ok := cur.child(key[i])
		if !ok {
			return path, i
		}
		if t.options().StrictValuePath && !child.hasValue() {
			return path, i
		}
		path = append(path, pathEntry{child, key[i]})
		cur = child
	}
	return path, len(key)
}

// savePathForRoot copies every node on path, bottom-up, replacing the
// last one with the given node. Nodes left with neither a value nor
// children are pruned. Returns the new root (nil if the whole trie is
// now empty) and the number of nodes pruned.
func savePathForRoot(path []pathEntry, replacement *node) (*node, int) {
	pruned := 0
	below := replacement
	for i := len(path) - 1; i > 0; i-- {
		if below != nil && below.isEmpty() {
			below = nil
			pruned++
		}
		parent := path[i-1].node.clone()
		parent.setChild(path[i].label, below)
		below = parent
	}
	if below != nil && below.isEmpty() {
		below = nil
		pruned++
	}
	return below, pruned
}

// newChain builds the plain branching nodes for rest, ending in a
// value-bearing node.
func newChain(rest string, value boxed) *node {
	tail := newLeaf(value)
	for i := len(rest) - 1; i >= 0; i-- {
		parent := &node{}
		parent.setChild(rest[i], tail)
		tail = parent
	}
	return tail
}

func (t Trie) insert(key string, value boxed) Trie {
	path, consumed := t.findPath(key)
	last := path[len(path)-1].node.clone()
	if consumed == len(key) {
		last.setValue(value)
	} else {
		last.setChild(key[consumed], newChain(key[consumed+1:], value))
	}
	root, _ := savePathForRoot(path, last)
	t.logger().Trace("put", "key", key, "shared_depth", consumed, "size", root.size)
	return t.withRoot(root)
}

func (t Trie) remove(key string) Trie {
	if t.root == nil {
		t.logger().Trace("remove", "key", key, "noop", true)
		return t
	}
	path, consumed := t.findPath(key)
	target := path[len(path)-1].node
	if consumed != len(key) || !target.hasValue() {
		t.logger().Trace("remove", "key", key, "noop", true)
		return t
	}
	replacement := target.clone()
	replacement.setValue(nil)
	root, pruned := savePathForRoot(path, replacement)
	t.logger().Trace("remove", "key", key, "pruned", pruned)
	return t.withRoot(root)
}

func (t Trie) withRoot(root *node) Trie {
	t.root = root
	return t
}

func (n *node) sortedLabels() []byte {
	labels := make([]byte, 0, len(n.children))
	for label := range n.children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

func (n *node) string(indent string) string {
	var sb strings.Builder
	for _, label := range n.sortedLabels() {
		child := n.children[label]
		sb.WriteString(fmt.Sprintf("%s%q", indent, label))
		if child.hasValue() {
			sb.WriteString(fmt.Sprintf(": %v", child.value.unbox()))
		}
		if len(child.children) == 0 {
			sb.WriteString(" {}\n")
			continue
		}
		sb.WriteString(" {\n")
		sb.WriteString(child.string(indent + "   "))
		sb.WriteString(indent + "}\n")
	}
	return sb.String()
}

func (t Trie) dump() string {
	if t.root == nil {
		return "NIL\n"
	}
	head := "{"
	if t.root.hasValue() {
		head = fmt.Sprintf("%v {", t.root.value.unbox())
	}
	return fmt.Sprintf("%s\n%s}\n", head, t.root.string("   "))
}
