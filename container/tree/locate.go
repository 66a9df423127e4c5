package tree

// relation is the position of a key relative to the node returned by locate.
type relation int8

const (
	lessThan    relation = -1
	equal       relation = 0
	greaterThan relation = +1
)

// locate walks down from start toward key and returns the last node visited
// along with the relation of key to it. When the relation is equal the node
// holds key; otherwise key belongs in the (empty) left or right child slot of
// the returned node.
//
// start must not be null.
func (t *Tree[K]) locate(key K, start handle) (handle, relation) {
	h := start
	for {
		n := &t.nodes[h]
		switch cmp := t.cmp(key, n.key); {
		case cmp < 0:
			if n.left == null {
				return h, lessThan
			}
			h = n.left
		case cmp > 0:
			if n.right == null {
				return h, greaterThan
			}
			h = n.right
		default:
			return h, equal
		}
	}
}
