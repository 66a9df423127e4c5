// Package queue contains the implementation of a type-safe FIFO queue.
//
// The queue is backed by a singly-linked list of nodes. Nodes released by
// PopFront are retained on a free list and reused by subsequent calls to
// PushBack, which keeps breadth-first traversals that repeatedly fill and
// drain a queue from allocating on every step.
//
// The zero-value is a valid empty queue. Queues are not safe to use
// concurrently from multiple goroutines.
package queue

// Queue is a first-in first-out container of values of type T.
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
	free *node[T]
	size int
}

type node[T any] struct {
	next  *node[T]
	value T
}

// Len returns the number of values in the queue.
//
// Complexity: O(1)
func (q *Queue[T]) Len() int { return q.size }

// Front returns the value at the front of the queue without removing it, and a
// boolean indicating whether the queue was non-empty.
//
// Complexity: O(1)
func (q *Queue[T]) Front() (value T, ok bool) {
	if q.head != nil {
		value, ok = q.head.value, true
	}
	return value, ok
}

// PushBack appends value at the back of the queue.
//
// Complexity: O(1)
func (q *Queue[T]) PushBack(value T) {
	n := q.alloc()
	n.value = value

	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}

	q.tail = n
	q.size++
}

// PopFront removes the value at the front of the queue and returns it. The
// boolean is false if the queue was empty.
//
// Complexity: O(1)
func (q *Queue[T]) PopFront() (value T, ok bool) {
	n := q.head
	if n == nil {
		return value, false
	}

	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	q.size--

	value = n.value
	q.release(n)
	return value, true
}

// Clear removes all values from the queue.
//
// Complexity: O(n)
func (q *Queue[T]) Clear() {
	for q.size > 0 {
		q.PopFront()
	}
}

func (q *Queue[T]) alloc() *node[T] {
	if n := q.free; n != nil {
		q.free = n.next
		n.next = nil
		return n
	}
	return new(node[T])
}

func (q *Queue[T]) release(n *node[T]) {
	var zero T
	n.value = zero
	n.next = q.free
	q.free = n
}
