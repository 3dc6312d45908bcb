package tiling

import "sync"

// RingBuffer is a thread-safe circular buffer that keeps the most recent
// items, dropping the oldest when full.
type RingBuffer[T any] struct {
	buffer []T
	head   int
	tail   int
	size   int
	cap    int
	mu     sync.RWMutex
}

// NewRingBuffer creates a new ring buffer with the specified capacity.
func NewRingBuffer[T any](capacity int) *RingBuffer[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &RingBuffer[T]{
		buffer: make([]T, capacity),
		cap:    capacity,
	}
}

// Add inserts an item, evicting the oldest one when full.
func (rb *RingBuffer[T]) Add(item T) {
	rb.mu.Lock()
	defer rb.mu.Unlock()

	rb.buffer[rb.head] = item
	rb.head = (rb.head + 1) % rb.cap

	if rb.size < rb.cap {
		rb.size++
	} else {
		rb.tail = (rb.tail + 1) % rb.cap
	}
}

// GetAll returns the items oldest first.
func (rb *RingBuffer[T]) GetAll() []T {
	rb.mu.RLock()
	defer rb.mu.RUnlock()

	if rb.size == 0 {
		return nil
	}

	result := make([]T, rb.size)
	for i := 0; i < rb.size; i++ {
		idx := (rb.tail + i) % rb.cap
		result[i] = rb.buffer[idx]
	}
	return result
}

// Newest returns the items newest first.
func (rb *RingBuffer[T]) Newest() []T {
	all := rb.GetAll()
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all
}

// Len returns the number of stored items.
func (rb *RingBuffer[T]) Len() int {
	rb.mu.RLock()
	defer rb.mu.RUnlock()
	return rb.size
}

// Clear drops every item.
func (rb *RingBuffer[T]) Clear() {
	rb.mu.Lock()
	defer rb.mu.Unlock()
	var zero T
	for i := range rb.buffer {
		rb.buffer[i] = zero
	}
	rb.head, rb.tail, rb.size = 0, 0, 0
}
