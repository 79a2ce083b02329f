package trie

// SharingStats counts the nodes of two versions by whether the other
// version shares them.
type SharingStats struct {
	// Shared is the number of nodes reachable from both versions.
	Shared int
	// OnlyOld is the number of nodes only reachable from the old version.
	OnlyOld int
	// OnlyNew is the number of nodes only reachable from the new version.
	OnlyNew int
}

// DiffNodes invokes the given callback for every node that is reachable
// from only one of the two versions. Shared subtrees are skipped without
// being visited. The iteration stops if the callback returns
// keepGoing==false.
func (t Trie) DiffNodes(oldTrie Trie, f func(removed bool, key string, hasValue bool) bool) {
	t.diff(oldTrie, f)
}

// Sharing compares the structure of two versions.
func (t Trie) Sharing(oldTrie Trie) SharingStats {
	var stats SharingStats
	inOld := map[*node]struct{}{}
	stack := newNodeStack(oldTrie.root)
	for {
		item := stack.pop()
		if item == nil {
			break
		}
		inOld[item.node] = struct{}{}
		stack.pushChildren(item)
	}
	stack = newNodeStack(t.root)
	for {
		item := stack.pop()
		if item == nil {
			break
		}
		if _, ok := inOld[item.node]; ok {
			stats.Shared += item.node.count()
			continue
		}
		stats.OnlyNew++
		stack.pushChildren(item)
	}
	stats.OnlyOld = len(inOld) - stats.Shared
	return stats
}

func (t Trie) diff(oldTrie Trie, f func(removed bool, key string, hasValue bool) bool) {
	inNew := map[*node]struct{}{}
	stack := newNodeStack(t.root)
	for {
		item := stack.pop()
		if item == nil {
			break
		}
		inNew[item.node] = struct{}{}
		stack.pushChildren(item)
	}
	stack = newNodeStack(oldTrie.root)
	shared := map[*node]struct{}{}
	for {
		item := stack.pop()
		if item == nil {
			break
		}
		if _, ok := inNew[item.node]; ok {
			shared[item.node] = struct{}{}
			continue
		}
		if !f(true, item.key, item.node.hasValue()) {
			return
		}
		stack.pushChildren(item)
	}
	stack = newNodeStack(t.root)
	for {
		item := stack.pop()
		if item == nil {
			break
		}
		if _, ok := shared[item.node]; ok {
			continue
		}
		if !f(false, item.key, item.node.hasValue()) {
			return
		}
		stack.pushChildren(item)
	}
}

// count returns the number of nodes in the subtree.
func (n *node) count() int {
	total := 1
	for _, c := range n.children {
		total += c.count()
	}
	return total
}

type stackItem struct {
	node *node
	key  string
}

type nodeStack struct {
	things []stackItem
}

func newNodeStack(root *node) nodeStack {
	if root == nil {
		return nodeStack{}
	}
	return nodeStack{[]stackItem{{node: root}}}
}

func (stack *nodeStack) pop() *stackItem {
	if len(stack.things) > 0 {
		popped := stack.things[len(stack.things)-1]
		stack.things = stack.things[0 : len(stack.things)-1]
		return &popped
	}
	return nil
}

// pushChildren pushes the children of item so that they pop in label
// order.
func (stack *nodeStack) pushChildren(item *stackItem) {
	labels := item.node.sortedLabels()
	for i := len(labels) - 1; i >= 0; i-- {
		stack.things = append(stack.things, stackItem{
			node: item.node.children[labels[i]],
			key:  item.key + string([]byte{labels[i]}),
		})
	}
}
