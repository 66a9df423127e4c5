package tree

// handle is the index of a node in the arena of a tree. The zero handle is the
// null link: slot 0 of the arena is never allocated and always holds the zero
// node, so following a null or released handle never escapes the arena.
type handle uint32

const null handle = 0

type node[K any] struct {
	left   handle
	right  handle
	parent handle // back-reference, never an ownership edge
	count  int
	key    K
}

// alloc places a new node holding key in the arena and links its parent
// back-reference. The returned handle is not yet referenced by the parent.
//
// Pointers to arena nodes obtained before calling alloc are invalidated.
func (t *Tree[K]) alloc(key K, parent handle) handle {
	if t.nodes == nil {
		t.nodes = make([]node[K], 1, 8)
	}

	var h handle
	if n := len(t.free); n > 0 {
		h = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		h = handle(len(t.nodes))
		t.nodes = append(t.nodes, node[K]{})
	}

	t.nodes[h] = node[K]{parent: parent, count: 1, key: key}
	t.size++
	return h
}

// release returns the slot of h to the free list. The node must already be
// detached from its parent and children.
func (t *Tree[K]) release(h handle) {
	t.nodes[h] = node[K]{}
	t.size--

	if t.size == 0 {
		// Last node gone, every slot past the null node is free.
		t.nodes = t.nodes[:1]
		t.free = t.free[:0]
		return
	}

	t.free = append(t.free, h)
}

// replace substitutes child for h in the link held by the parent of h (or the
// root), and updates the back-reference of child.
func (t *Tree[K]) replace(h, child handle) {
	parent := t.nodes[h].parent

	if child != null {
		t.nodes[child].parent = parent
	}

	switch {
	case parent == null:
		t.root = child
	case t.nodes[parent].left == h:
		t.nodes[parent].left = child
	default:
		t.nodes[parent].right = child
	}
}

func (t *Tree[K]) leftmost(h handle) handle {
	for t.nodes[h].left != null {
		h = t.nodes[h].left
	}
	return h
}

func (t *Tree[K]) rightmost(h handle) handle {
	for t.nodes[h].right != null {
		h = t.nodes[h].right
	}
	return h
}
