package queue

import (
	"testing"
	"testing/quick"
)

func TestPushBack(t *testing.T) {
	queue := new(Queue[int])

	for i := 0; i < 10; i++ {
		queue.PushBack(i)
	}

	assertQueue(t, queue, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)
}

func TestPopFrontEmpty(t *testing.T) {
	queue := new(Queue[int])

	if v, ok := queue.PopFront(); ok {
		t.Errorf("value returned from an empty queue: %d", v)
	}
	if v, ok := queue.Front(); ok {
		t.Errorf("front value returned from an empty queue: %d", v)
	}
	if n := queue.Len(); n != 0 {
		t.Errorf("wrong queue length: got=%d want=0", n)
	}
}

func TestInterleaved(t *testing.T) {
	queue := new(Queue[int])

	queue.PushBack(1)
	queue.PushBack(2)

	if v, _ := queue.PopFront(); v != 1 {
		t.Errorf("wrong value popped from the queue: got=%d want=1", v)
	}

	queue.PushBack(3)
	queue.PushBack(4)

	if v, _ := queue.Front(); v != 2 {
		t.Errorf("wrong front value: got=%d want=2", v)
	}

	assertQueue(t, queue, 2, 3, 4)

	// The queue is reusable after being drained.
	queue.PushBack(5)
	assertQueue(t, queue, 5)
}

func TestClear(t *testing.T) {
	queue := new(Queue[string])
	queue.PushBack("A")
	queue.PushBack("B")
	queue.Clear()

	if n := queue.Len(); n != 0 {
		t.Errorf("wrong queue length after clear: got=%d want=0", n)
	}

	queue.PushBack("C")
	if v, ok := queue.PopFront(); !ok || v != "C" {
		t.Errorf("wrong value popped after clear: got=%q want=%q", v, "C")
	}
}

func TestOrderPreserved(t *testing.T) {
	f := func(values []int16) bool {
		queue := new(Queue[int16])

		for _, v := range values {
			queue.PushBack(v)
		}

		if n := queue.Len(); n != len(values) {
			t.Errorf("wrong queue length: got=%d want=%d", n, len(values))
			return false
		}

		for i, want := range values {
			got, ok := queue.PopFront()
			if !ok {
				t.Errorf("queue drained early at index %d", i)
				return false
			}
			if got != want {
				t.Errorf("wrong value at index %d: got=%d want=%d", i, got, want)
				return false
			}
		}

		return queue.Len() == 0
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func assertQueue(t *testing.T, queue *Queue[int], values ...int) {
	t.Helper()

	if n := queue.Len(); n != len(values) {
		t.Errorf("wrong queue length: got=%d want=%d", n, len(values))
	}

	for i, want := range values {
		got, ok := queue.PopFront()
		if !ok {
			t.Errorf("missing value at index %d: want=%d", i, want)
			return
		}
		if got != want {
			t.Errorf("wrong value at index %d: got=%d want=%d", i, got, want)
		}
	}

	if v, ok := queue.PopFront(); ok {
		t.Errorf("unexpected value at the end of the queue: %d", v)
	}
}
