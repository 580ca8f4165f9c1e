package lexsearch

// boundedHeap is a fixed-capacity binary max-heap, the Go generic
// translation of original_source/src/heap.h's macro-generated heap:
// where the C source instantiates one specialized heap per element type
// via text macros, a generic type parameterized by a comparator field is
// the idiomatic Go equivalent (the teacher's own code reaches for a
// comparator function passed to sort.Slice in the same situation).
//
// push admits an element only while the heap is below capacity, or when
// the element sorts before the current root (replacing it and sifting
// down) once at capacity — so after a full scan the heap holds the
// `capacity` least elements under cmp. finish sorts the result ascending.
type boundedHeap[T any] struct {
	items    []T
	capacity int
	cmp      func(a, b T) int
}

func newBoundedHeap[T any](capacity int, cmp func(a, b T) int) *boundedHeap[T] {
	return &boundedHeap[T]{
		items:    make([]T, 0, capacity),
		capacity: capacity,
		cmp:      cmp,
	}
}

func (h *boundedHeap[T]) Len() int { return len(h.items) }

// push offers x for admission. It reports whether x was kept (either
// added, because the heap wasn't full, or swapped in for the previous
// max because x is smaller).
func (h *boundedHeap[T]) push(x T) bool {
	if len(h.items) < h.capacity {
		h.items = append(h.items, x)
		h.siftUp(len(h.items) - 1)
		return true
	}
	if h.capacity == 0 {
		return false
	}
	if h.cmp(x, h.items[0]) < 0 {
		h.items[0] = x
		h.siftDown(0)
		return true
	}
	return false
}

func (h *boundedHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.cmp(h.items[i], h.items[parent]) <= 0 {
			break
		}
		h.items[i], h.items[parent] = h.items[parent], h.items[i]
		i = parent
	}
}

func (h *boundedHeap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		left, right := 2*i+1, 2*i+2
		largest := i
		if left < n && h.cmp(h.items[left], h.items[largest]) > 0 {
			largest = left
		}
		if right < n && h.cmp(h.items[right], h.items[largest]) > 0 {
			largest = right
		}
		if largest == i {
			break
		}
		h.items[i], h.items[largest] = h.items[largest], h.items[i]
		i = largest
	}
}

// finish returns the heap's contents sorted ascending under cmp,
// consuming the heap.
func (h *boundedHeap[T]) finish() []T {
	out := h.items
	for i := len(out) - 1; i > 0; i-- {
		out[0], out[i] = out[i], out[0]
		h.items = out[:i]
		h.siftDown(0)
	}
	h.items = out
	return out
}
