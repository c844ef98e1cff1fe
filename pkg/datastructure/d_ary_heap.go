package datastructure

import (
	"errors"

	"github.com/lintang-b-s/ridepool/pkg/util"
)

// MinHeap d-ary heap priorityqueue ordered by less
type MinHeap[T any] struct {
	heap []T
	d    int
	less func(a, b T) bool
}

func NewBinaryHeap[T any](less func(a, b T) bool) *MinHeap[T] {
	return NewdAryHeap[T](2, less)
}

func NewFourAryHeap[T any](less func(a, b T) bool) *MinHeap[T] {
	return NewdAryHeap[T](4, less)
}

func NewdAryHeap[T any](d int, less func(a, b T) bool) *MinHeap[T] {
	if d < 2 {
		d = 2
	}
	return &MinHeap[T]{
		heap: make([]T, 0),
		d:    d,
		less: less,
	}
}

func (h *MinHeap[T]) Preallocate(maxSize int) {
	h.heap = make([]T, 0, maxSize)
}

func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / h.d
}

// heapifyUp swaps index with its parent while it is smaller. O(log_d N).
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.less(h.heap[index], h.heap[h.parent(index)]) {
		h.swap(index, h.parent(index))
		index = h.parent(index)
	}
}

// heapifyDown swaps index with its smallest child while that child is smaller. O(d log_d N).
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		leftMostChild := index*h.d + 1
		if leftMostChild >= len(h.heap) {
			return
		}

		sentinel := leftMostChild + h.d
		if sentinel > len(h.heap) {
			sentinel = len(h.heap)
		}

		smallest := leftMostChild
		for i := leftMostChild + 1; i < sentinel; i++ {
			if h.less(h.heap[i], h.heap[smallest]) {
				smallest = i
			}
		}

		if !h.less(h.heap[smallest], h.heap[index]) {
			return
		}
		h.swap(index, smallest)
		index = smallest
	}
}

func (h *MinHeap[T]) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
}

func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

func (h *MinHeap[T]) Clear() {
	h.heap = h.heap[:0]
}

func (h *MinHeap[T]) GetMin() (T, error) {
	if h.IsEmpty() {
		var zero T
		return zero, errors.New("heap is empty")
	}
	return h.heap[0], nil
}

func (h *MinHeap[T]) Insert(item T) {
	h.heap = append(h.heap, item)
	h.heapifyUp(len(h.heap) - 1)
}

// ExtractMin pops the minimum item. O(d log_d N)
func (h *MinHeap[T]) ExtractMin() (T, error) {
	if h.IsEmpty() {
		var zero T
		return zero, errors.New("heap is empty")
	}
	root := h.heap[0]

	last := len(h.heap) - 1
	h.swap(0, last)
	h.heap = h.heap[:last]
	if len(h.heap) > 0 {
		h.heapifyDown(0)
	}

	return root, nil
}

// SmallestK returns the k smallest items of items in ascending order. items is not modified.
func SmallestK[T any](items []T, k int, less func(a, b T) bool) []T {
	if k <= 0 || len(items) == 0 {
		return []T{}
	}
	h := NewFourAryHeap(less)
	h.Preallocate(len(items))
	for _, it := range items {
		h.Insert(it)
	}
	k = util.Min(k, h.Size())
	res := make([]T, 0, k)
	for len(res) < k {
		it, _ := h.ExtractMin()
		res = append(res, it)
	}
	return res
}
