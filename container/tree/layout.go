package tree

import (
	"fmt"
	"iter"
	"strings"

	"github.com/segmentio/searchtree/container/queue"
	"github.com/xlab/treeprint"
)

// DefaultSpacing is the horizontal distance between a node and its children
// used by Layout when no positive spacing is given.
const DefaultSpacing = 5

type placement struct {
	h      handle
	offset int
}

// Levels returns an iterator over the levels of the tree, from the root down.
// Each step yields the distance of the level from the root, and the keys of
// the level ordered from left to right.
//
// The tree must not be modified during the iteration.
//
// Complexity: O(n)
func (t *Tree[K]) Levels() iter.Seq2[int, []K] {
	return func(yield func(int, []K) bool) {
		t.levels(0, 0, func(depth int, level []placement) bool {
			keys := make([]K, len(level))
			for i, p := range level {
				keys[i] = t.nodes[p.h].key
			}
			return yield(depth, keys)
		})
	}
}

// Layout returns an iterator over the lines of a text rendering of the tree,
// one line per level, produced breadth-first.
//
// Each key is formatted with the %v verb of the fmt package and written at a
// column derived from its parent: spacing columns to the left for a left
// child, spacing columns to the right for a right child. Keys that would
// overlap the previous key of the same line are shifted right to leave a
// single blank between them. The root is placed so that the leftmost key
// starts at the first column.
//
// The lines are recomputed from the current state of the tree every time the
// iterator is used. The tree must not be modified during the iteration.
//
// Complexity: O(n)
func (t *Tree[K]) Layout(spacing int) iter.Seq[string] {
	if spacing <= 0 {
		spacing = DefaultSpacing
	}
	return func(yield func(string) bool) {
		if t.root == null {
			return
		}

		line := new(strings.Builder)
		t.levels(t.origin(spacing), spacing, func(_ int, level []placement) bool {
			line.Reset()

			for _, p := range level {
				column := p.offset
				if line.Len() > 0 && column <= line.Len() {
					column = line.Len() + 1
				}
				for line.Len() < column {
					line.WriteByte(' ')
				}
				fmt.Fprintf(line, "%v", t.nodes[p.h].key)
			}

			return yield(line.String())
		})
	}
}

// Render returns a hierarchical rendering of the tree, where the left and
// right children of each node are labeled L and R.
//
// Complexity: O(n)
func (t *Tree[K]) Render() string {
	if t.root == null {
		return treeprint.New().String()
	}

	type frame struct {
		h      handle
		branch treeprint.Tree
	}

	root := treeprint.NewWithRoot(t.nodes[t.root].key)
	stack := []frame{{h: t.root, branch: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[f.h]

		if n.left != null {
			branch := f.branch.AddMetaBranch("L", t.nodes[n.left].key)
			stack = append(stack, frame{h: n.left, branch: branch})
		}
		if n.right != null {
			branch := f.branch.AddMetaBranch("R", t.nodes[n.right].key)
			stack = append(stack, frame{h: n.right, branch: branch})
		}
	}

	return root.String()
}

// origin computes the column of the root so that no node of the layout is
// placed at a negative offset.
func (t *Tree[K]) origin(spacing int) int {
	leftmost := 0
	t.levels(0, spacing, func(_ int, level []placement) bool {
		// Levels are ordered by structure, not by offset, so the whole
		// level is scanned.
		for _, p := range level {
			if p.offset < leftmost {
				leftmost = p.offset
			}
		}
		return true
	})
	return -leftmost
}

// levels walks the tree breadth-first, calling f with the placements of each
// level until it returns false. The root is placed at offset origin, and
// children are placed spacing columns away from their parent.
func (t *Tree[K]) levels(origin, spacing int, f func(int, []placement) bool) {
	if t.root == null {
		return
	}

	var q queue.Queue[placement]
	var level []placement
	q.PushBack(placement{h: t.root, offset: origin})

	for depth := 0; q.Len() > 0; depth++ {
		level = level[:0]

		for remaining := q.Len(); remaining > 0; remaining-- {
			p, _ := q.PopFront()
			level = append(level, p)

			n := &t.nodes[p.h]
			if n.left != null {
				q.PushBack(placement{h: n.left, offset: p.offset - spacing})
			}
			if n.right != null {
				q.PushBack(placement{h: n.right, offset: p.offset + spacing})
			}
		}

		if !f(depth, level) {
			return
		}
	}
}
