// Package tree contains the implementation of an unbalanced binary search
// tree.
//
// Nodes are held in an arena owned by the tree and link to each other through
// integer handles rather than pointers. Each node also records a handle to its
// parent, which removals use to splice nodes out of the tree; the parent
// handle is only a navigation aid and never keeps a node alive.
//
// The tree does not rebalance itself: its height depends on the order in which
// keys are inserted, and may grow linearly with the number of keys. All
// traversals are iterative so degenerate trees do not exhaust the stack.
//
// Trees are not safe to use concurrently from multiple goroutines.
package tree

import (
	"iter"

	"github.com/pkg/errors"
)

// Tree is a binary search tree containing keys of type K.
//
// The zero-value is a valid empty tree which supports lookups and removals,
// but must be initialized by a call to New or Init prior to inserting keys.
type Tree[K any] struct {
	cmp    func(K, K) int
	policy DuplicatePolicy
	nodes  []node[K]
	free   []handle
	root   handle
	len    int // elements, counting every occurrence
	size   int // live nodes
}

// New constructs a new tree using the comparison function passed as argument
// to order the keys, and the given policy to handle duplicate keys.
func New[K any](cmp func(K, K) int, policy DuplicatePolicy) *Tree[K] {
	t := new(Tree[K])
	t.Init(cmp, policy)
	return t
}

// Init initializes (or re-initializes) the tree. Any keys held by the tree are
// discarded.
//
// Complexity: O(1)
func (t *Tree[K]) Init(cmp func(K, K) int, policy DuplicatePolicy) {
	t.cmp = cmp
	t.policy = policy
	t.Clear()
}

// Clear removes all keys from the tree, retaining its comparison function
// and policy.
//
// Complexity: O(1)
func (t *Tree[K]) Clear() {
	t.nodes = nil
	t.free = nil
	t.root = null
	t.len = 0
	t.size = 0
}

// Policy returns the duplicate key policy of the tree.
func (t *Tree[K]) Policy() DuplicatePolicy { return t.policy }

// Len returns the number of keys in the tree. Under the CountOccurrences
// policy every occurrence of a key is counted.
//
// Complexity: O(1)
func (t *Tree[K]) Len() int { return t.len }

// Insert inserts key in the tree.
//
// When the key already exists, the outcome depends on the policy of the tree:
// Reject returns an error wrapping ErrDuplicateKey and leaves the tree
// unchanged, CountOccurrences records one more occurrence of the existing key,
// and AllowEqualRight adds a new node in the right subtree of the existing
// one.
//
// The tree must have been initialized by a call to New or Init or the call to
// Insert will panic.
//
// Complexity: O(height)
func (t *Tree[K]) Insert(key K) error {
	if t.root == null {
		t.root = t.alloc(key, null)
		t.len++
		return nil
	}

	h, rel := t.locate(key, t.root)

	for rel == equal {
		switch t.policy {
		case CountOccurrences:
			t.nodes[h].count++
			t.len++
			return nil
		case AllowEqualRight:
			if r := t.nodes[h].right; r != null {
				h, rel = t.locate(key, r)
			} else {
				rel = greaterThan
			}
		default:
			return errors.Wrapf(ErrDuplicateKey, "inserting key %v", key)
		}
	}

	n := t.alloc(key, h)
	if rel == lessThan {
		t.nodes[h].left = n
	} else {
		t.nodes[h].right = n
	}
	t.len++
	return nil
}

// Search returns the key held by the tree which compares equal to the one
// passed as argument, and a boolean indicating whether it was found.
//
// Complexity: O(height)
func (t *Tree[K]) Search(key K) (match K, found bool) {
	if t.root != null {
		if h, rel := t.locate(key, t.root); rel == equal {
			return t.nodes[h].key, true
		}
	}
	return match, false
}

// Contains returns true if the given key exists in the tree.
func (t *Tree[K]) Contains(key K) (found bool) {
	_, found = t.Search(key)
	return found
}

// Occurrences returns the number of times key is present in the tree. It is
// at most one under the Reject policy.
//
// Complexity: O(height) for Reject and CountOccurrences, O(n) in the worst
// case for AllowEqualRight.
func (t *Tree[K]) Occurrences(key K) int {
	if t.root == null {
		return 0
	}

	h, rel := t.locate(key, t.root)
	if rel != equal {
		return 0
	}

	if t.policy != AllowEqualRight {
		return t.nodes[h].count
	}

	// Equal keys sit in the right subtree of the first match, but not
	// necessarily along a single path, so every node of that subtree which
	// may hold the key is visited.
	count := 0
	stack := []handle{h}
	for len(stack) > 0 {
		h = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[h]

		switch cmp := t.cmp(key, n.key); {
		case cmp < 0:
			if n.left != null {
				stack = append(stack, n.left)
			}
		case cmp > 0:
			if n.right != null {
				stack = append(stack, n.right)
			}
		default:
			count++
			if n.left != null {
				stack = append(stack, n.left)
			}
			if n.right != null {
				stack = append(stack, n.right)
			}
		}
	}
	return count
}

// Floor returns the largest key in the tree which is less or equal to the one
// passed as argument.
//
// Complexity: O(height)
func (t *Tree[K]) Floor(key K) (match K, found bool) {
	if t.root == null {
		return match, false
	}

	r := null
	for h := t.root; h != null; {
		n := &t.nodes[h]
		switch cmp := t.cmp(key, n.key); {
		case cmp < 0:
			h = n.left
		case cmp > 0:
			r = h
			h = n.right
		default:
			return n.key, true
		}
	}

	if r != null {
		return t.nodes[r].key, true
	}
	return match, false
}

// Min returns the smallest key in the tree.
//
// Complexity: O(height)
func (t *Tree[K]) Min() (key K, found bool) {
	if t.root != null {
		key, found = t.nodes[t.leftmost(t.root)].key, true
	}
	return key, found
}

// Max returns the largest key in the tree.
//
// Complexity: O(height)
func (t *Tree[K]) Max() (key K, found bool) {
	if t.root != null {
		key, found = t.nodes[t.rightmost(t.root)].key, true
	}
	return key, found
}

// Remove removes key from the tree and returns the key that was held by the
// tree, with a boolean indicating whether it was found. If the key does not
// exist, the tree is not modified.
//
// Under the CountOccurrences policy a single occurrence is removed, and the
// node holding the key is only unlinked once its last occurrence is gone.
//
// Complexity: O(height)
func (t *Tree[K]) Remove(key K) (removed K, found bool) {
	if t.root == null {
		return removed, false
	}

	h, rel := t.locate(key, t.root)
	if rel != equal {
		return removed, false
	}

	n := &t.nodes[h]
	removed = n.key
	t.len--

	if n.count > 1 {
		n.count--
	} else {
		t.unlink(h)
	}

	return removed, true
}

// unlink detaches the node h from the tree and releases it.
//
// A node with two children is not detached itself: it takes the key of its
// in-order successor, which has no left child and is unlinked instead.
func (t *Tree[K]) unlink(h handle) {
	if n := &t.nodes[h]; n.left != null && n.right != null {
		s := t.leftmost(n.right)
		n.key, n.count = t.nodes[s].key, t.nodes[s].count
		h = s
	}

	n := &t.nodes[h]
	child := n.left
	if child == null {
		child = n.right
	}

	t.replace(h, child)
	t.release(h)
}

// Depth returns the number of edges on the longest path from the root to a
// leaf. A tree with a single node has a depth of zero, and an empty tree
// returns ErrEmptyTree.
//
// Every node is visited since any leaf of an unbalanced tree may be the
// deepest.
//
// Complexity: O(n)
func (t *Tree[K]) Depth() (int, error) {
	if t.root == null {
		return 0, ErrEmptyTree
	}

	type frame struct {
		h     handle
		depth int
	}

	deepest := 0
	stack := []frame{{h: t.root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.depth > deepest {
			deepest = f.depth
		}

		n := &t.nodes[f.h]
		if n.left != null {
			stack = append(stack, frame{h: n.left, depth: f.depth + 1})
		}
		if n.right != null {
			stack = append(stack, frame{h: n.right, depth: f.depth + 1})
		}
	}

	return deepest, nil
}

// Rebalance always returns ErrUnsupported: the tree keeps the shape produced
// by the sequence of insertions and removals.
func (t *Tree[K]) Rebalance() error {
	return errors.Wrap(ErrUnsupported, "rebalancing an unbalanced binary search tree")
}

// Range calls f for each key in the tree, in the order defined by the
// comparison function. If f returns false, the iteration is stopped.
//
// Under the CountOccurrences policy each distinct key is presented once.
//
// Complexity: O(n)
func (t *Tree[K]) Range(f func(K) bool) {
	for key := range t.All() {
		if !f(key) {
			break
		}
	}
}

// All returns an iterator over the keys of the tree in ascending order.
//
// The tree must not be modified during the iteration.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		var stack []handle

		for h := t.root; h != null || len(stack) > 0; {
			for h != null {
				stack = append(stack, h)
				h = t.nodes[h].left
			}

			h = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if !yield(t.nodes[h].key) {
				return
			}

			h = t.nodes[h].right
		}
	}
}
